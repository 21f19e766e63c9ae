//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"aaai-platform/internal/domain/catalog"
	"aaai-platform/internal/handler/api"
	resdto "aaai-platform/internal/handler/dto/response"
	"aaai-platform/internal/usecase/queries"
	"aaai-platform/tests/common/builder"
	"aaai-platform/tests/common/httptest"
	"aaai-platform/tests/common/testutil"
	commandsmock "aaai-platform/tests/mock/commands"
	queriesmock "aaai-platform/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockCatalogQueries
	handler      *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/courses", s.handler.ListCourses)
	s.router.GET("/courses/:id", s.handler.GetCourse)
	s.router.POST("/courses", s.handler.CreateCourse)
	s.router.GET("/projects", s.handler.ListProjects)
	s.router.GET("/projects/:id", s.handler.GetProject)
	s.router.GET("/labs", s.handler.ListCodeLabs)
	s.router.GET("/docs", s.handler.ListDocumentation)
	s.router.GET("/docs/:id", s.handler.GetDocumentation)
	s.router.GET("/users/:userId/progress", s.handler.GetUserProgress)
	s.router.POST("/users/:userId/progress", s.handler.RecordUserProgress)
	s.router.GET("/stats", s.handler.Stats)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListCourses() {
	course := builder.NewCourseBuilder().BuildDomain()
	s.mockQueries.EXPECT().AllCourses(gomock.Any()).Return([]catalog.Course{course}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/courses", nil)

	var resp []resdto.CourseResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Require().Len(resp, 1)
	s.Equal(course.ID, resp[0].ID)
	s.Require().NotNil(resp[0].Price)
	s.Equal(*course.Price, *resp[0].Price)
}

func (s *CatalogHandlerTestSuite) TestListCoursesStoreFailure() {
	s.mockQueries.EXPECT().AllCourses(gomock.Any()).Return(nil, errors.New("boom"))

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/courses", nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to fetch courses")
}

func (s *CatalogHandlerTestSuite) TestGetCourseNotFound() {
	s.mockQueries.EXPECT().CourseByID(gomock.Any(), "missing").Return(nil, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/courses/missing", nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Course not found")
}

func (s *CatalogHandlerTestSuite) TestGetCourse() {
	course := builder.NewCourseBuilder().BuildDomain()
	s.mockQueries.EXPECT().CourseByID(gomock.Any(), course.ID).Return(&course, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/courses/"+course.ID, nil)

	var resp resdto.CourseResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Equal(course.Title, resp.Title)
	s.Len(resp.Modules, len(course.Modules))
}

func (s *CatalogHandlerTestSuite) TestCreateCourse() {
	reqBody := builder.NewCourseBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().CreateCourse(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, c catalog.Course) (*catalog.Course, error) {
				return &c, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/courses", reqBody)

		var resp resdto.CourseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(reqBody.ID, resp.ID)
	})

	missing := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing field: id", mutate: testutil.Field("id", nil)},
		{name: "missing field: title", mutate: testutil.Field("title", nil)},
		{name: "missing field: description", mutate: testutil.Field("description", nil)},
		{name: "missing field: category", mutate: testutil.Field("category", nil)},
		{name: "missing field: difficulty", mutate: testutil.Field("difficulty", nil)},
	}
	for _, tc := range missing {
		s.Run(tc.name, func() {
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/courses", body)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid course data")
		})
	}
}

func (s *CatalogHandlerTestSuite) TestListProjectsByCategory() {
	s.mockQueries.EXPECT().ProjectsByCategory(gomock.Any(), "Quantum AI").
		Return([]catalog.Project{{ID: "q1", Category: "Quantum AI"}}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/projects?category=Quantum+AI", nil)

	var resp []resdto.ProjectResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Require().Len(resp, 1)
	s.Equal("q1", resp[0].ID)
}

func (s *CatalogHandlerTestSuite) TestListProjectsUnfiltered() {
	s.mockQueries.EXPECT().AllProjects(gomock.Any()).Return([]catalog.Project{}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/projects", nil)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
}

func (s *CatalogHandlerTestSuite) TestGetProjectNotFound() {
	s.mockQueries.EXPECT().ProjectByID(gomock.Any(), "nope").Return(nil, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/projects/nope", nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Project not found")
}

func (s *CatalogHandlerTestSuite) TestListCodeLabsByDifficulty() {
	s.mockQueries.EXPECT().CodeLabsByDifficulty(gomock.Any(), "Beginner").
		Return([]catalog.CodeLab{{ID: "lab1", Difficulty: "Beginner"}}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/labs?difficulty=Beginner", nil)

	var resp []resdto.CodeLabResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Require().Len(resp, 1)
	s.Equal("lab1", resp[0].ID)
}

func (s *CatalogHandlerTestSuite) TestListDocumentationSearchWinsOverCategory() {
	s.mockQueries.EXPECT().SearchDocumentation(gomock.Any(), "pytorch").
		Return([]catalog.Documentation{{ID: "getting-started"}}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/docs?category=setup&search=pytorch", nil)

	var resp []resdto.DocumentationResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Require().Len(resp, 1)
	s.Equal("getting-started", resp[0].ID)
}

func (s *CatalogHandlerTestSuite) TestGetDocumentationNotFound() {
	s.mockQueries.EXPECT().DocumentationByID(gomock.Any(), "nope").Return(nil, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/docs/nope", nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Documentation not found")
}

func (s *CatalogHandlerTestSuite) TestGetUserProgressScopedToCourse() {
	s.mockQueries.EXPECT().UserCourseProgress(gomock.Any(), "user-1", "foundation").
		Return([]catalog.UserProgress{{UserID: "user-1", CourseID: "foundation"}}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/user-1/progress?courseId=foundation", nil)

	var resp []resdto.ProgressResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Require().Len(resp, 1)
	s.Equal("foundation", resp[0].CourseID)
}

func (s *CatalogHandlerTestSuite) TestRecordUserProgress() {
	s.mockCommands.EXPECT().RecordProgress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, entry catalog.UserProgress) (*catalog.UserProgress, error) {
			s.Equal("user-1", entry.UserID)
			s.Equal("foundation", entry.CourseID)
			return &entry, nil
		})

	body := map[string]any{"courseId": "foundation", "moduleId": "linux-git", "completed": true, "progress": 100}
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users/user-1/progress", body)

	var resp resdto.ProgressResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
	s.Equal("user-1", resp.UserID)
}

func (s *CatalogHandlerTestSuite) TestRecordUserProgressInvalidBody() {
	body := map[string]any{"moduleId": "linux-git"} // courseId missing
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users/user-1/progress", body)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid progress data")
}

func (s *CatalogHandlerTestSuite) TestStats() {
	s.mockQueries.EXPECT().Stats(gomock.Any()).
		Return(&queries.StatsView{Courses: 7, Projects: 70, Labs: 1, Technologies: 42}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stats", nil)

	var resp resdto.StatsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Equal(7, resp.Courses)
	s.Equal(70, resp.Projects)
	s.Equal(1, resp.Labs)
	s.Equal(42, resp.Technologies)
}
