package api

import (
	"net/http"

	"aaai-platform/internal/domain/catalog"
	reqdto "aaai-platform/internal/handler/dto/request"
	resdto "aaai-platform/internal/handler/dto/response"
	"aaai-platform/internal/handler/httperr"
	"aaai-platform/internal/usecase/commands"
	"aaai-platform/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary List courses
// @Description List all courses in catalog order
// @Tags courses
// @Produce json
// @Success 200 {array} resdto.CourseResponse
// @Failure 500 {object} map[string]string
// @Router /courses [get]
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	courses, err := h.q.AllCourses(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch courses", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourses(courses))
}

// @Summary Get course
// @Description Get a course by ID
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} resdto.CourseResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /courses/{id} [get]
func (h *CatalogHandler) GetCourse(c *gin.Context) {
	course, err := h.q.CourseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch course", nil)
		return
	}
	if course == nil {
		httperr.AbortWithError(c, http.StatusNotFound, nil, "Course not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourse(course))
}

// @Summary Create course
// @Description Create or replace a course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCourseRequest true "Course"
// @Success 201 {object} resdto.CourseResponse
// @Failure 400 {object} map[string]string
// @Router /courses [post]
func (h *CatalogHandler) CreateCourse(c *gin.Context) {
	var req reqdto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid course data", nil)
		return
	}
	course, err := h.cmds.CreateCourse(c.Request.Context(), req.ToDomain())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid course data", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCourse(course))
}

// @Summary List projects
// @Description List projects, optionally filtered by category
// @Tags projects
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} resdto.ProjectResponse
// @Failure 500 {object} map[string]string
// @Router /projects [get]
func (h *CatalogHandler) ListProjects(c *gin.Context) {
	var (
		projects []catalog.Project
		err      error
	)
	if category := c.Query("category"); category != "" {
		projects, err = h.q.ProjectsByCategory(c.Request.Context(), category)
	} else {
		projects, err = h.q.AllProjects(c.Request.Context())
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch projects", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProjects(projects))
}

// @Summary Get project
// @Description Get a project by ID
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} resdto.ProjectResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /projects/{id} [get]
func (h *CatalogHandler) GetProject(c *gin.Context) {
	project, err := h.q.ProjectByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch project", nil)
		return
	}
	if project == nil {
		httperr.AbortWithError(c, http.StatusNotFound, nil, "Project not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProject(project))
}

// @Summary Create project
// @Description Create or replace a project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body reqdto.CreateProjectRequest true "Project"
// @Success 201 {object} resdto.ProjectResponse
// @Failure 400 {object} map[string]string
// @Router /projects [post]
func (h *CatalogHandler) CreateProject(c *gin.Context) {
	var req reqdto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid project data", nil)
		return
	}
	project, err := h.cmds.CreateProject(c.Request.Context(), req.ToDomain())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid project data", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromProject(project))
}
