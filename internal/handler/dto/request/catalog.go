package request

import (
	"aaai-platform/internal/domain/catalog"
)

type CourseModuleRequest struct {
	ID        string `json:"id" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Completed bool   `json:"completed"`
}

type CreateCourseRequest struct {
	ID             string                `json:"id" binding:"required"`
	Title          string                `json:"title" binding:"required"`
	Description    string                `json:"description" binding:"required"`
	Category       string                `json:"category" binding:"required"`
	Difficulty     string                `json:"difficulty" binding:"required"`
	Color          string                `json:"color"`
	Icon           string                `json:"icon"`
	EstimatedHours int                   `json:"estimatedHours"`
	Price          *int                  `json:"price"`
	Weeks          string                `json:"weeks"`
	Modules        []CourseModuleRequest `json:"modules"`
	Prerequisites  []string              `json:"prerequisites"`
	Technologies   []string              `json:"technologies"`
}

func (r *CreateCourseRequest) ToDomain() catalog.Course {
	modules := make([]catalog.Module, len(r.Modules))
	for i, m := range r.Modules {
		modules[i] = catalog.Module{ID: m.ID, Title: m.Title, Completed: m.Completed}
	}
	return catalog.Course{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		Category:       r.Category,
		Difficulty:     r.Difficulty,
		Color:          r.Color,
		Icon:           r.Icon,
		EstimatedHours: r.EstimatedHours,
		Price:          r.Price,
		Weeks:          r.Weeks,
		Modules:        modules,
		Prerequisites:  r.Prerequisites,
		Technologies:   r.Technologies,
	}
}

type CreateProjectRequest struct {
	ID           string   `json:"id" binding:"required"`
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	Difficulty   string   `json:"difficulty" binding:"required"`
	Technologies []string `json:"technologies"`
	Features     []string `json:"features"`
	DownloadURL  string   `json:"downloadUrl"`
	ImageURL     string   `json:"imageUrl"`
	GithubURL    string   `json:"githubUrl"`
}

func (r *CreateProjectRequest) ToDomain() catalog.Project {
	return catalog.Project{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Category:     r.Category,
		Difficulty:   r.Difficulty,
		Technologies: r.Technologies,
		Features:     r.Features,
		DownloadURL:  r.DownloadURL,
		ImageURL:     r.ImageURL,
		GithubURL:    r.GithubURL,
	}
}

type CreateCodeLabRequest struct {
	ID            string   `json:"id" binding:"required"`
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	Difficulty    string   `json:"difficulty" binding:"required"`
	Category      string   `json:"category" binding:"required"`
	Instructions  string   `json:"instructions"`
	StarterCode   string   `json:"starterCode"`
	Solution      string   `json:"solution"`
	Hints         []string `json:"hints"`
	EstimatedTime int      `json:"estimatedTime"`
}

func (r *CreateCodeLabRequest) ToDomain() catalog.CodeLab {
	return catalog.CodeLab{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Difficulty:    r.Difficulty,
		Category:      r.Category,
		Instructions:  r.Instructions,
		StarterCode:   r.StarterCode,
		Solution:      r.Solution,
		Hints:         r.Hints,
		EstimatedTime: r.EstimatedTime,
	}
}

type CreateDocumentationRequest struct {
	ID       string   `json:"id" binding:"required"`
	Title    string   `json:"title" binding:"required"`
	Content  string   `json:"content" binding:"required"`
	Category string   `json:"category" binding:"required"`
	Tags     []string `json:"tags"`
}

func (r *CreateDocumentationRequest) ToDomain() catalog.Documentation {
	return catalog.Documentation{
		ID:       r.ID,
		Title:    r.Title,
		Content:  r.Content,
		Category: r.Category,
		Tags:     r.Tags,
	}
}
