//go:build unit

package queries_test

import (
	"context"
	"testing"

	"aaai-platform/internal/domain/catalog"
	"aaai-platform/internal/usecase/queries"
	usecasemock "aaai-platform/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogQueriesTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	mockRepo *usecasemock.MockCatalogRepository
	q        queries.CatalogQueries
}

func (s *CatalogQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = usecasemock.NewMockCatalogRepository(s.mockCtrl)
	s.q = queries.NewCatalogQueries(s.mockRepo)
}

func (s *CatalogQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogQueriesSuite(t *testing.T) {
	suite.Run(t, new(CatalogQueriesTestSuite))
}

func (s *CatalogQueriesTestSuite) TestStatsDeduplicatesTechnologies() {
	s.mockRepo.EXPECT().GetAllCourses(gomock.Any()).Return([]catalog.Course{
		{ID: "c1", Technologies: []string{"Python", "PyTorch"}},
		{ID: "c2", Technologies: []string{"Python", "TensorFlow"}},
	}, nil)
	s.mockRepo.EXPECT().GetAllProjects(gomock.Any()).Return([]catalog.Project{
		{ID: "p1", Technologies: []string{"PyTorch", "Docker"}},
	}, nil)
	s.mockRepo.EXPECT().GetAllCodeLabs(gomock.Any()).Return([]catalog.CodeLab{{ID: "l1"}}, nil)

	stats, err := s.q.Stats(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, stats.Courses)
	s.Equal(1, stats.Projects)
	s.Equal(1, stats.Labs)
	// Python, PyTorch, TensorFlow, Docker
	s.Equal(4, stats.Technologies)
}

func (s *CatalogQueriesTestSuite) TestStatsEmptyCatalog() {
	s.mockRepo.EXPECT().GetAllCourses(gomock.Any()).Return(nil, nil)
	s.mockRepo.EXPECT().GetAllProjects(gomock.Any()).Return(nil, nil)
	s.mockRepo.EXPECT().GetAllCodeLabs(gomock.Any()).Return(nil, nil)

	stats, err := s.q.Stats(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, stats.Courses)
	s.Equal(0, stats.Technologies)
}
