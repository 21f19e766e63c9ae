//go:build unit || e2e

package builder

import (
	"aaai-platform/internal/domain/catalog"
	reqdto "aaai-platform/internal/handler/dto/request"
)

type CourseBuilder struct {
	ID             string
	Title          string
	Description    string
	Category       string
	Difficulty     string
	Color          string
	Icon           string
	EstimatedHours int
	Price          *int
	Weeks          string
	Modules        []catalog.Module
	Prerequisites  []string
	Technologies   []string
}

func NewCourseBuilder() *CourseBuilder {
	price := 25000
	return &CourseBuilder{
		ID:             "test-course",
		Title:          "Test Course",
		Description:    "A course used in tests",
		Category:       "Machine Learning",
		Difficulty:     "Beginner",
		Color:          "blue",
		Icon:           "brain",
		EstimatedHours: 40,
		Price:          &price,
		Weeks:          "8 weeks",
		Modules: []catalog.Module{
			{ID: "m1", Title: "Getting Started"},
			{ID: "m2", Title: "Core Concepts"},
		},
		Prerequisites: []string{"Python basics"},
		Technologies:  []string{"Python", "PyTorch"},
	}
}

// Fluent builder methods
func (b *CourseBuilder) WithID(id string) *CourseBuilder {
	b.ID = id
	return b
}

func (b *CourseBuilder) WithTitle(title string) *CourseBuilder {
	b.Title = title
	return b
}

func (b *CourseBuilder) WithCategory(category string) *CourseBuilder {
	b.Category = category
	return b
}

func (b *CourseBuilder) WithDifficulty(difficulty string) *CourseBuilder {
	b.Difficulty = difficulty
	return b
}

func (b *CourseBuilder) WithPrice(price int) *CourseBuilder {
	b.Price = &price
	return b
}

func (b *CourseBuilder) WithoutPrice() *CourseBuilder {
	b.Price = nil
	return b
}

func (b *CourseBuilder) WithTechnologies(technologies ...string) *CourseBuilder {
	b.Technologies = technologies
	return b
}

// Build methods
func (b *CourseBuilder) BuildDomain() catalog.Course {
	return catalog.Course{
		ID:             b.ID,
		Title:          b.Title,
		Description:    b.Description,
		Category:       b.Category,
		Difficulty:     b.Difficulty,
		Color:          b.Color,
		Icon:           b.Icon,
		EstimatedHours: b.EstimatedHours,
		Price:          b.Price,
		Weeks:          b.Weeks,
		Modules:        b.Modules,
		Prerequisites:  b.Prerequisites,
		Technologies:   b.Technologies,
	}
}

func (b *CourseBuilder) BuildCreateRequestDTO() reqdto.CreateCourseRequest {
	modules := make([]reqdto.CourseModuleRequest, len(b.Modules))
	for i, m := range b.Modules {
		modules[i] = reqdto.CourseModuleRequest{ID: m.ID, Title: m.Title, Completed: m.Completed}
	}
	return reqdto.CreateCourseRequest{
		ID:             b.ID,
		Title:          b.Title,
		Description:    b.Description,
		Category:       b.Category,
		Difficulty:     b.Difficulty,
		Color:          b.Color,
		Icon:           b.Icon,
		EstimatedHours: b.EstimatedHours,
		Price:          b.Price,
		Weeks:          b.Weeks,
		Modules:        modules,
		Prerequisites:  b.Prerequisites,
		Technologies:   b.Technologies,
	}
}

type CheckoutBuilder struct {
	CourseID string
	Email    string
	Name     string
	Phone    string
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		CourseID: "test-course",
		Email:    "buyer@example.com",
		Name:     "Test Buyer",
		Phone:    "+911234567890",
	}
}

func (b *CheckoutBuilder) WithCourseID(id string) *CheckoutBuilder {
	b.CourseID = id
	return b
}

func (b *CheckoutBuilder) BuildRequestDTO() reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{
		CourseID: b.CourseID,
		Email:    b.Email,
		Name:     b.Name,
		Phone:    b.Phone,
	}
}
