package api

import (
	"net/http"

	"aaai-platform/internal/domain/catalog"
	reqdto "aaai-platform/internal/handler/dto/request"
	resdto "aaai-platform/internal/handler/dto/response"
	"aaai-platform/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// @Summary Get user progress
// @Description List progress entries for a user, optionally scoped to a course
// @Tags progress
// @Produce json
// @Param userId path string true "User ID"
// @Param courseId query string false "Course filter"
// @Success 200 {array} resdto.ProgressResponse
// @Failure 500 {object} map[string]string
// @Router /users/{userId}/progress [get]
func (h *CatalogHandler) GetUserProgress(c *gin.Context) {
	userID := c.Param("userId")

	var (
		entries []catalog.UserProgress
		err     error
	)
	if courseID := c.Query("courseId"); courseID != "" {
		entries, err = h.q.UserCourseProgress(c.Request.Context(), userID, courseID)
	} else {
		entries, err = h.q.UserProgress(c.Request.Context(), userID)
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch user progress", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProgressList(entries))
}

// @Summary Record user progress
// @Description Record a progress entry for a user
// @Tags progress
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param request body reqdto.RecordProgressRequest true "Progress entry"
// @Success 201 {object} resdto.ProgressResponse
// @Failure 400 {object} map[string]string
// @Router /users/{userId}/progress [post]
func (h *CatalogHandler) RecordUserProgress(c *gin.Context) {
	var req reqdto.RecordProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid progress data", nil)
		return
	}
	entry, err := h.cmds.RecordProgress(c.Request.Context(), req.ToDomain(c.Param("userId")))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid progress data", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromProgress(entry))
}
