package usecase

import (
	"context"

	"aaai-platform/internal/domain/catalog"
)

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports_mock.go -package=usecasemock

// CatalogRepository is the authoritative store of catalog entities. Lookups of
// missing ids return (nil, nil); only backend failures produce errors, so the
// handler layer alone decides what absence means.
type CatalogRepository interface {
	GetAllCourses(ctx context.Context) ([]catalog.Course, error)
	GetCourse(ctx context.Context, id string) (*catalog.Course, error)
	CreateCourse(ctx context.Context, course catalog.Course) (*catalog.Course, error)

	GetAllProjects(ctx context.Context) ([]catalog.Project, error)
	GetProjectsByCategory(ctx context.Context, category string) ([]catalog.Project, error)
	GetProject(ctx context.Context, id string) (*catalog.Project, error)
	CreateProject(ctx context.Context, project catalog.Project) (*catalog.Project, error)

	GetAllCodeLabs(ctx context.Context) ([]catalog.CodeLab, error)
	GetCodeLabsByDifficulty(ctx context.Context, difficulty string) ([]catalog.CodeLab, error)
	GetCodeLab(ctx context.Context, id string) (*catalog.CodeLab, error)
	CreateCodeLab(ctx context.Context, lab catalog.CodeLab) (*catalog.CodeLab, error)

	GetAllDocumentation(ctx context.Context) ([]catalog.Documentation, error)
	GetDocumentationByCategory(ctx context.Context, category string) ([]catalog.Documentation, error)
	GetDocumentation(ctx context.Context, id string) (*catalog.Documentation, error)
	SearchDocumentation(ctx context.Context, query string) ([]catalog.Documentation, error)
	CreateDocumentation(ctx context.Context, doc catalog.Documentation) (*catalog.Documentation, error)

	GetUserProgress(ctx context.Context, userID string) ([]catalog.UserProgress, error)
	GetUserCourseProgress(ctx context.Context, userID, courseID string) ([]catalog.UserProgress, error)
	UpsertUserProgress(ctx context.Context, entry catalog.UserProgress) (*catalog.UserProgress, error)
}

// Product and Price mirror the processor-side entities; they are never
// persisted locally.
type Product struct {
	ID          string
	Name        string
	Description string
	Metadata    map[string]string
}

type Price struct {
	ID         string
	ProductID  string
	UnitAmount int64 // minor currency units
	Currency   string
}

// CheckoutSession is ephemeral; the redirect URL alone carries state forward.
type CheckoutSession struct {
	ID  string
	URL string
}

type CheckoutSessionInput struct {
	PriceID       string
	SuccessURL    string
	CancelURL     string
	CustomerEmail string
	Metadata      map[string]string
}

// PaymentGateway isolates every call to the external payment processor so the
// checkout orchestration never touches the wire protocol. Implementations do
// not retry; processor errors propagate unchanged.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, in CheckoutSessionInput) (*CheckoutSession, error)
	CreateProduct(ctx context.Context, name, description string, metadata map[string]string) (*Product, error)
	CreatePrice(ctx context.Context, productID string, unitAmount int64, currency string) (*Price, error)
	// ListProducts returns active products only, bounded to the processor's
	// page size (100).
	ListProducts(ctx context.Context) ([]Product, error)
	// ListPrices returns active prices, optionally filtered by product id
	// (empty string means all).
	ListPrices(ctx context.Context, productID string) ([]Price, error)
}
