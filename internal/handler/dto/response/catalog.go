package response

import (
	"time"

	"aaai-platform/internal/domain/catalog"
	"aaai-platform/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CourseModuleResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type CourseResponse struct {
	ID             string                 `json:"id"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Category       string                 `json:"category"`
	Difficulty     string                 `json:"difficulty"`
	Color          string                 `json:"color"`
	Icon           string                 `json:"icon"`
	EstimatedHours int                    `json:"estimatedHours"`
	Price          *int                   `json:"price"`
	Weeks          string                 `json:"weeks"`
	Modules        []CourseModuleResponse `json:"modules"`
	Prerequisites  []string               `json:"prerequisites"`
	Technologies   []string               `json:"technologies"`
}

func FromCourse(c *catalog.Course) *CourseResponse {
	var resp CourseResponse
	_ = copier.Copy(&resp, c)
	return &resp
}

func FromCourses(courses []catalog.Course) []*CourseResponse {
	res := make([]*CourseResponse, len(courses))
	for i := range courses {
		res[i] = FromCourse(&courses[i])
	}
	return res
}

type ProjectResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Difficulty   string   `json:"difficulty"`
	Technologies []string `json:"technologies"`
	Features     []string `json:"features"`
	DownloadURL  string   `json:"downloadUrl"`
	ImageURL     string   `json:"imageUrl"`
	GithubURL    string   `json:"githubUrl"`
}

func FromProject(p *catalog.Project) *ProjectResponse {
	var resp ProjectResponse
	_ = copier.Copy(&resp, p)
	return &resp
}

func FromProjects(projects []catalog.Project) []*ProjectResponse {
	res := make([]*ProjectResponse, len(projects))
	for i := range projects {
		res[i] = FromProject(&projects[i])
	}
	return res
}

type CodeLabResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Difficulty    string   `json:"difficulty"`
	Category      string   `json:"category"`
	Instructions  string   `json:"instructions"`
	StarterCode   string   `json:"starterCode"`
	Solution      string   `json:"solution"`
	Hints         []string `json:"hints"`
	EstimatedTime int      `json:"estimatedTime"`
}

func FromCodeLab(l *catalog.CodeLab) *CodeLabResponse {
	var resp CodeLabResponse
	_ = copier.Copy(&resp, l)
	return &resp
}

func FromCodeLabs(labs []catalog.CodeLab) []*CodeLabResponse {
	res := make([]*CodeLabResponse, len(labs))
	for i := range labs {
		res[i] = FromCodeLab(&labs[i])
	}
	return res
}

type StatsResponse struct {
	Courses      int `json:"courses"`
	Projects     int `json:"projects"`
	Labs         int `json:"labs"`
	Technologies int `json:"technologies"`
}

func FromStats(s *queries.StatsView) *StatsResponse {
	return &StatsResponse{
		Courses:      s.Courses,
		Projects:     s.Projects,
		Labs:         s.Labs,
		Technologies: s.Technologies,
	}
}

type DocumentationResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func FromDocumentation(d *catalog.Documentation) *DocumentationResponse {
	var resp DocumentationResponse
	_ = copier.Copy(&resp, d)
	return &resp
}

func FromDocumentationList(docs []catalog.Documentation) []*DocumentationResponse {
	res := make([]*DocumentationResponse, len(docs))
	for i := range docs {
		res[i] = FromDocumentation(&docs[i])
	}
	return res
}
