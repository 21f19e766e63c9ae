package api

import (
	"net/http"

	"aaai-platform/internal/domain/catalog"
	reqdto "aaai-platform/internal/handler/dto/request"
	resdto "aaai-platform/internal/handler/dto/response"
	"aaai-platform/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// @Summary List code labs
// @Description List code labs, optionally filtered by difficulty
// @Tags labs
// @Produce json
// @Param difficulty query string false "Difficulty filter"
// @Success 200 {array} resdto.CodeLabResponse
// @Failure 500 {object} map[string]string
// @Router /labs [get]
func (h *CatalogHandler) ListCodeLabs(c *gin.Context) {
	var (
		labs []catalog.CodeLab
		err  error
	)
	if difficulty := c.Query("difficulty"); difficulty != "" {
		labs, err = h.q.CodeLabsByDifficulty(c.Request.Context(), difficulty)
	} else {
		labs, err = h.q.AllCodeLabs(c.Request.Context())
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch code labs", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCodeLabs(labs))
}

// @Summary Get code lab
// @Description Get a code lab by ID
// @Tags labs
// @Produce json
// @Param id path string true "Code lab ID"
// @Success 200 {object} resdto.CodeLabResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /labs/{id} [get]
func (h *CatalogHandler) GetCodeLab(c *gin.Context) {
	lab, err := h.q.CodeLabByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch code lab", nil)
		return
	}
	if lab == nil {
		httperr.AbortWithError(c, http.StatusNotFound, nil, "Code lab not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCodeLab(lab))
}

// @Summary Create code lab
// @Description Create or replace a code lab
// @Tags labs
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCodeLabRequest true "Code lab"
// @Success 201 {object} resdto.CodeLabResponse
// @Failure 400 {object} map[string]string
// @Router /labs [post]
func (h *CatalogHandler) CreateCodeLab(c *gin.Context) {
	var req reqdto.CreateCodeLabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid code lab data", nil)
		return
	}
	lab, err := h.cmds.CreateCodeLab(c.Request.Context(), req.ToDomain())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid code lab data", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCodeLab(lab))
}
