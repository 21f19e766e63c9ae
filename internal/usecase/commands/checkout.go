package commands

import (
	"context"
	"fmt"
	"sync"

	"aaai-platform/internal/domain/catalog"
	"aaai-platform/internal/pkg/errs"
	"aaai-platform/internal/usecase"

	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=checkout.go -destination=../../../tests/mock/commands/checkout_mock.go -package=commandsmock

var (
	ErrCourseNotFound   = errs.New("course not found")
	ErrNoPriceAvailable = errs.New("no price found for this course")
	ErrCheckoutFailed   = errs.New("failed to create checkout session")
)

const (
	// Charged when a course carries no price of its own.
	fallbackPriceRupees = 25000
	checkoutCurrency    = "inr"

	courseIDMetadataKey = "courseId"
)

type StartCheckoutInput struct {
	CourseID string
	Email    string
	Name     string
	Phone    string
	// BaseURL is the scheme+host the success/cancel redirects point back to.
	BaseURL string
}

type StartCheckoutResult struct {
	URL       string
	SessionID string
}

// CheckoutCommands turns "buyer wants to pay for course X" into a hosted
// payment page redirect, creating processor-side objects on demand.
type CheckoutCommands interface {
	StartCheckout(ctx context.Context, in StartCheckoutInput) (*StartCheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	repo    usecase.CatalogRepository
	gateway usecase.PaymentGateway

	// find-or-create is not atomic on the processor side; the singleflight
	// group collapses concurrent in-process resolutions per course and the
	// cache lets repeat checkouts skip the full product scan.
	group      singleflight.Group
	mu         sync.RWMutex
	productIDs map[string]string // courseID -> processor product id
}

func NewCheckoutCommands(repo usecase.CatalogRepository, gateway usecase.PaymentGateway) CheckoutCommands {
	return &checkoutUseCaseImpl{
		repo:       repo,
		gateway:    gateway,
		productIDs: make(map[string]string),
	}
}

func (uc *checkoutUseCaseImpl) StartCheckout(ctx context.Context, in StartCheckoutInput) (*StartCheckoutResult, error) {
	course, err := uc.repo.GetCourse(ctx, in.CourseID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load course")
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	productID, err := uc.resolveProduct(ctx, course)
	if err != nil {
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}

	prices, err := uc.gateway.ListPrices(ctx, productID)
	if err != nil {
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}
	if len(prices) == 0 {
		return nil, ErrNoPriceAvailable
	}

	session, err := uc.gateway.CreateCheckoutSession(ctx, usecase.CheckoutSessionInput{
		PriceID:       prices[0].ID,
		SuccessURL:    fmt.Sprintf("%s/payment/success?courseId=%s", in.BaseURL, in.CourseID),
		CancelURL:     fmt.Sprintf("%s/payment/cancel?courseId=%s", in.BaseURL, in.CourseID),
		CustomerEmail: in.Email,
		Metadata: map[string]string{
			courseIDMetadataKey: course.ID,
			"courseName":        course.Title,
			"customerName":      in.Name,
			"customerPhone":     in.Phone,
		},
	})
	if err != nil {
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}

	return &StartCheckoutResult{URL: session.URL, SessionID: session.ID}, nil
}

// resolveProduct returns the processor product backing the course, creating
// the product and its single price when none exists yet. The product list is
// processor-ordered; the first metadata match wins.
func (uc *checkoutUseCaseImpl) resolveProduct(ctx context.Context, course *catalog.Course) (string, error) {
	uc.mu.RLock()
	id, ok := uc.productIDs[course.ID]
	uc.mu.RUnlock()
	if ok {
		return id, nil
	}

	v, err, _ := uc.group.Do(course.ID, func() (any, error) {
		products, err := uc.gateway.ListProducts(ctx)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			if p.Metadata[courseIDMetadataKey] == course.ID {
				return p.ID, nil
			}
		}

		product, err := uc.gateway.CreateProduct(ctx, course.Title, course.Description, map[string]string{
			courseIDMetadataKey: course.ID,
		})
		if err != nil {
			return nil, err
		}

		amount := fallbackPriceRupees
		if course.Price != nil {
			amount = *course.Price
		}
		if _, err := uc.gateway.CreatePrice(ctx, product.ID, int64(amount)*100, checkoutCurrency); err != nil {
			return nil, err
		}
		return product.ID, nil
	})
	if err != nil {
		return "", err
	}

	productID := v.(string)
	uc.mu.Lock()
	uc.productIDs[course.ID] = productID
	uc.mu.Unlock()
	return productID, nil
}
