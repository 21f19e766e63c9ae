package api

import (
	"net/http"

	"aaai-platform/internal/domain/catalog"
	reqdto "aaai-platform/internal/handler/dto/request"
	resdto "aaai-platform/internal/handler/dto/response"
	"aaai-platform/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// @Summary List documentation
// @Description List documentation, optionally filtered by category or full-text search. Search takes precedence over category.
// @Tags docs
// @Produce json
// @Param category query string false "Category filter"
// @Param search query string false "Search query (title, content, tags)"
// @Success 200 {array} resdto.DocumentationResponse
// @Failure 500 {object} map[string]string
// @Router /docs [get]
func (h *CatalogHandler) ListDocumentation(c *gin.Context) {
	var (
		docs []catalog.Documentation
		err  error
	)
	if search := c.Query("search"); search != "" {
		docs, err = h.q.SearchDocumentation(c.Request.Context(), search)
	} else if category := c.Query("category"); category != "" {
		docs, err = h.q.DocumentationByCategory(c.Request.Context(), category)
	} else {
		docs, err = h.q.AllDocumentation(c.Request.Context())
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch documentation", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDocumentationList(docs))
}

// @Summary Get documentation
// @Description Get a documentation entry by ID
// @Tags docs
// @Produce json
// @Param id path string true "Documentation ID"
// @Success 200 {object} resdto.DocumentationResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /docs/{id} [get]
func (h *CatalogHandler) GetDocumentation(c *gin.Context) {
	doc, err := h.q.DocumentationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch documentation", nil)
		return
	}
	if doc == nil {
		httperr.AbortWithError(c, http.StatusNotFound, nil, "Documentation not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDocumentation(doc))
}

// @Summary Create documentation
// @Description Create or replace a documentation entry
// @Tags docs
// @Accept json
// @Produce json
// @Param request body reqdto.CreateDocumentationRequest true "Documentation"
// @Success 201 {object} resdto.DocumentationResponse
// @Failure 400 {object} map[string]string
// @Router /docs [post]
func (h *CatalogHandler) CreateDocumentation(c *gin.Context) {
	var req reqdto.CreateDocumentationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid documentation data", nil)
		return
	}
	doc, err := h.cmds.CreateDocumentation(c.Request.Context(), req.ToDomain())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid documentation data", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromDocumentation(doc))
}

// @Summary Catalog stats
// @Description Aggregate catalog counts and distinct technology count
// @Tags stats
// @Produce json
// @Success 200 {object} resdto.StatsResponse
// @Failure 500 {object} map[string]string
// @Router /stats [get]
func (h *CatalogHandler) Stats(c *gin.Context) {
	stats, err := h.q.Stats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch stats", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStats(stats))
}
