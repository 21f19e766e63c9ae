//go:build unit

package memstore_test

import (
	"context"
	"testing"

	"aaai-platform/internal/domain/catalog"
	"aaai-platform/internal/infra/memstore"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memstore.Store
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) TestSeededCatalogCounts() {
	courses, err := s.store.GetAllCourses(s.ctx)
	s.Require().NoError(err)
	s.Len(courses, 7)

	projects, err := s.store.GetAllProjects(s.ctx)
	s.Require().NoError(err)
	s.Len(projects, 70)

	labs, err := s.store.GetAllCodeLabs(s.ctx)
	s.Require().NoError(err)
	s.Len(labs, 1)

	docs, err := s.store.GetAllDocumentation(s.ctx)
	s.Require().NoError(err)
	s.Len(docs, 1)
}

func (s *StoreTestSuite) TestGetCourse() {
	course, err := s.store.GetCourse(s.ctx, "foundation")
	s.Require().NoError(err)
	s.Require().NotNil(course)
	s.Equal("foundation", course.ID)
	s.Require().NotNil(course.Price)
	s.Equal(25000, *course.Price)
	s.NotEmpty(course.Modules)
}

func (s *StoreTestSuite) TestGetCourseUnknownIDReturnsNil() {
	course, err := s.store.GetCourse(s.ctx, "no-such-course")
	s.Require().NoError(err)
	s.Nil(course)
}

func (s *StoreTestSuite) TestListingPreservesInsertionOrder() {
	courses, err := s.store.GetAllCourses(s.ctx)
	s.Require().NoError(err)
	s.Equal("foundation", courses[0].ID)
	s.Equal("machine-learning", courses[1].ID)
	s.Equal("deep-learning", courses[2].ID)
}

func (s *StoreTestSuite) TestProjectsByCategory() {
	projects, err := s.store.GetProjectsByCategory(s.ctx, "Quantum AI")
	s.Require().NoError(err)
	s.Len(projects, 10)
	for _, p := range projects {
		s.Equal("Quantum AI", p.Category)
	}
}

func (s *StoreTestSuite) TestProjectsByCategoryUnknownReturnsEmpty() {
	projects, err := s.store.GetProjectsByCategory(s.ctx, "Underwater Basket Weaving")
	s.Require().NoError(err)
	s.Empty(projects)
}

func (s *StoreTestSuite) TestCodeLabsByDifficulty() {
	labs, err := s.store.GetCodeLabsByDifficulty(s.ctx, "Beginner")
	s.Require().NoError(err)
	s.Require().Len(labs, 1)
	s.Equal("linear-regression-pytorch", labs[0].ID)

	labs, err = s.store.GetCodeLabsByDifficulty(s.ctx, "Expert")
	s.Require().NoError(err)
	s.Empty(labs)
}

func (s *StoreTestSuite) TestSearchDocumentationMatchesTags() {
	docs, err := s.store.SearchDocumentation(s.ctx, "PyTorch")
	s.Require().NoError(err)
	s.Require().NotEmpty(docs)
	s.Equal("getting-started", docs[0].ID)
}

func (s *StoreTestSuite) TestSearchDocumentationNoMatch() {
	docs, err := s.store.SearchDocumentation(s.ctx, "zzz-nothing-here")
	s.Require().NoError(err)
	s.Empty(docs)
}

func (s *StoreTestSuite) TestSeededDocumentationHasTimestamp() {
	doc, err := s.store.GetDocumentation(s.ctx, "getting-started")
	s.Require().NoError(err)
	s.Require().NotNil(doc)
	s.False(doc.LastUpdated.IsZero())
}

func (s *StoreTestSuite) TestCreateCourseOverwriteKeepsOrderAndCount() {
	before, err := s.store.GetAllCourses(s.ctx)
	s.Require().NoError(err)

	updated := before[0]
	updated.Title = "Foundation (revised)"
	created, err := s.store.CreateCourse(s.ctx, updated)
	s.Require().NoError(err)
	s.Equal("Foundation (revised)", created.Title)

	after, err := s.store.GetAllCourses(s.ctx)
	s.Require().NoError(err)
	s.Len(after, len(before))
	s.Equal(before[0].ID, after[0].ID)
	s.Equal("Foundation (revised)", after[0].Title)
}

func (s *StoreTestSuite) TestCreateCourseRoundTrip() {
	price := 12000
	course := catalog.Course{
		ID:           "new-course",
		Title:        "New Course",
		Description:  "Fresh content",
		Category:     "MLOps",
		Difficulty:   "Intermediate",
		Price:        &price,
		Modules:      []catalog.Module{{ID: "intro", Title: "Intro"}},
		Technologies: []string{"Go"},
	}
	_, err := s.store.CreateCourse(s.ctx, course)
	s.Require().NoError(err)

	got, err := s.store.GetCourse(s.ctx, "new-course")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Empty(cmp.Diff(course, *got))
}

func (s *StoreTestSuite) TestUserProgress() {
	entry := catalog.UserProgress{
		UserID:    "user-1",
		CourseID:  "foundation",
		ModuleID:  "linux-git",
		Completed: true,
		Progress:  100,
	}
	_, err := s.store.UpsertUserProgress(s.ctx, entry)
	s.Require().NoError(err)

	other := catalog.UserProgress{UserID: "user-1", CourseID: "machine-learning", Progress: 10}
	_, err = s.store.UpsertUserProgress(s.ctx, other)
	s.Require().NoError(err)

	all, err := s.store.GetUserProgress(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Len(all, 2)

	scoped, err := s.store.GetUserCourseProgress(s.ctx, "user-1", "foundation")
	s.Require().NoError(err)
	s.Require().Len(scoped, 1)
	s.Equal("linux-git", scoped[0].ModuleID)

	none, err := s.store.GetUserProgress(s.ctx, "stranger")
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *StoreTestSuite) TestStoresAreIndependent() {
	_, err := s.store.CreateCourse(s.ctx, catalog.Course{ID: "only-here", Title: "Only Here"})
	s.Require().NoError(err)

	fresh := memstore.New()
	course, err := fresh.GetCourse(s.ctx, "only-here")
	s.Require().NoError(err)
	s.Nil(course)
}
