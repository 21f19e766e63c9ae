package commands

import (
	"context"
	"time"

	"aaai-platform/internal/domain/catalog"
	"aaai-platform/internal/usecase"

	"github.com/google/uuid"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/commands/catalog_mock.go -package=commandsmock

// CatalogCommands covers the administrative write side of the catalog.
// Creates are insert-or-overwrite by id; nothing is ever deleted.
type CatalogCommands interface {
	CreateCourse(ctx context.Context, course catalog.Course) (*catalog.Course, error)
	CreateProject(ctx context.Context, project catalog.Project) (*catalog.Project, error)
	CreateCodeLab(ctx context.Context, lab catalog.CodeLab) (*catalog.CodeLab, error)
	CreateDocumentation(ctx context.Context, doc catalog.Documentation) (*catalog.Documentation, error)
	RecordProgress(ctx context.Context, entry catalog.UserProgress) (*catalog.UserProgress, error)
}

type catalogUseCaseImpl struct {
	repo usecase.CatalogRepository
}

func NewCatalogCommands(repo usecase.CatalogRepository) CatalogCommands {
	return &catalogUseCaseImpl{repo: repo}
}

func (uc *catalogUseCaseImpl) CreateCourse(ctx context.Context, course catalog.Course) (*catalog.Course, error) {
	return uc.repo.CreateCourse(ctx, course)
}

func (uc *catalogUseCaseImpl) CreateProject(ctx context.Context, project catalog.Project) (*catalog.Project, error) {
	return uc.repo.CreateProject(ctx, project)
}

func (uc *catalogUseCaseImpl) CreateCodeLab(ctx context.Context, lab catalog.CodeLab) (*catalog.CodeLab, error) {
	return uc.repo.CreateCodeLab(ctx, lab)
}

func (uc *catalogUseCaseImpl) CreateDocumentation(ctx context.Context, doc catalog.Documentation) (*catalog.Documentation, error) {
	doc.LastUpdated = time.Now()
	return uc.repo.CreateDocumentation(ctx, doc)
}

func (uc *catalogUseCaseImpl) RecordProgress(ctx context.Context, entry catalog.UserProgress) (*catalog.UserProgress, error) {
	entry.ID = uuid.New()
	entry.LastAccessed = time.Now()
	return uc.repo.UpsertUserProgress(ctx, entry)
}
