package queries

import (
	"context"

	"aaai-platform/internal/domain/catalog"
	"aaai-platform/internal/usecase"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog_mock.go -package=queriesmock

// StatsView aggregates catalog counts for the landing page.
type StatsView struct {
	Courses      int
	Projects     int
	Labs         int
	Technologies int // distinct across courses and projects
}

type CatalogQueries interface {
	AllCourses(ctx context.Context) ([]catalog.Course, error)
	CourseByID(ctx context.Context, id string) (*catalog.Course, error)

	AllProjects(ctx context.Context) ([]catalog.Project, error)
	ProjectsByCategory(ctx context.Context, category string) ([]catalog.Project, error)
	ProjectByID(ctx context.Context, id string) (*catalog.Project, error)

	AllCodeLabs(ctx context.Context) ([]catalog.CodeLab, error)
	CodeLabsByDifficulty(ctx context.Context, difficulty string) ([]catalog.CodeLab, error)
	CodeLabByID(ctx context.Context, id string) (*catalog.CodeLab, error)

	AllDocumentation(ctx context.Context) ([]catalog.Documentation, error)
	DocumentationByCategory(ctx context.Context, category string) ([]catalog.Documentation, error)
	DocumentationByID(ctx context.Context, id string) (*catalog.Documentation, error)
	SearchDocumentation(ctx context.Context, query string) ([]catalog.Documentation, error)

	UserProgress(ctx context.Context, userID string) ([]catalog.UserProgress, error)
	UserCourseProgress(ctx context.Context, userID, courseID string) ([]catalog.UserProgress, error)

	Stats(ctx context.Context) (*StatsView, error)
}

type catalogQueriesImpl struct {
	repo usecase.CatalogRepository
}

func NewCatalogQueries(repo usecase.CatalogRepository) CatalogQueries {
	return &catalogQueriesImpl{repo: repo}
}

func (q *catalogQueriesImpl) AllCourses(ctx context.Context) ([]catalog.Course, error) {
	return q.repo.GetAllCourses(ctx)
}

func (q *catalogQueriesImpl) CourseByID(ctx context.Context, id string) (*catalog.Course, error) {
	return q.repo.GetCourse(ctx, id)
}

func (q *catalogQueriesImpl) AllProjects(ctx context.Context) ([]catalog.Project, error) {
	return q.repo.GetAllProjects(ctx)
}

func (q *catalogQueriesImpl) ProjectsByCategory(ctx context.Context, category string) ([]catalog.Project, error) {
	return q.repo.GetProjectsByCategory(ctx, category)
}

func (q *catalogQueriesImpl) ProjectByID(ctx context.Context, id string) (*catalog.Project, error) {
	return q.repo.GetProject(ctx, id)
}

func (q *catalogQueriesImpl) AllCodeLabs(ctx context.Context) ([]catalog.CodeLab, error) {
	return q.repo.GetAllCodeLabs(ctx)
}

func (q *catalogQueriesImpl) CodeLabsByDifficulty(ctx context.Context, difficulty string) ([]catalog.CodeLab, error) {
	return q.repo.GetCodeLabsByDifficulty(ctx, difficulty)
}

func (q *catalogQueriesImpl) CodeLabByID(ctx context.Context, id string) (*catalog.CodeLab, error) {
	return q.repo.GetCodeLab(ctx, id)
}

func (q *catalogQueriesImpl) AllDocumentation(ctx context.Context) ([]catalog.Documentation, error) {
	return q.repo.GetAllDocumentation(ctx)
}

func (q *catalogQueriesImpl) DocumentationByCategory(ctx context.Context, category string) ([]catalog.Documentation, error) {
	return q.repo.GetDocumentationByCategory(ctx, category)
}

func (q *catalogQueriesImpl) DocumentationByID(ctx context.Context, id string) (*catalog.Documentation, error) {
	return q.repo.GetDocumentation(ctx, id)
}

func (q *catalogQueriesImpl) SearchDocumentation(ctx context.Context, query string) ([]catalog.Documentation, error) {
	return q.repo.SearchDocumentation(ctx, query)
}

func (q *catalogQueriesImpl) UserProgress(ctx context.Context, userID string) ([]catalog.UserProgress, error) {
	return q.repo.GetUserProgress(ctx, userID)
}

func (q *catalogQueriesImpl) UserCourseProgress(ctx context.Context, userID, courseID string) ([]catalog.UserProgress, error) {
	return q.repo.GetUserCourseProgress(ctx, userID, courseID)
}

func (q *catalogQueriesImpl) Stats(ctx context.Context) (*StatsView, error) {
	courses, err := q.repo.GetAllCourses(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := q.repo.GetAllProjects(ctx)
	if err != nil {
		return nil, err
	}
	labs, err := q.repo.GetAllCodeLabs(ctx)
	if err != nil {
		return nil, err
	}

	technologies := make(map[string]struct{})
	for _, c := range courses {
		for _, t := range c.Technologies {
			technologies[t] = struct{}{}
		}
	}
	for _, p := range projects {
		for _, t := range p.Technologies {
			technologies[t] = struct{}{}
		}
	}

	return &StatsView{
		Courses:      len(courses),
		Projects:     len(projects),
		Labs:         len(labs),
		Technologies: len(technologies),
	}, nil
}
