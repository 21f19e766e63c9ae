package response

import (
	"time"

	"aaai-platform/internal/domain/catalog"
)

type ProgressResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	CourseID     string    `json:"courseId"`
	ModuleID     string    `json:"moduleId"`
	Completed    bool      `json:"completed"`
	Progress     int       `json:"progress"`
	LastAccessed time.Time `json:"lastAccessed"`
}

func FromProgress(p *catalog.UserProgress) *ProgressResponse {
	return &ProgressResponse{
		ID:           p.ID.String(),
		UserID:       p.UserID,
		CourseID:     p.CourseID,
		ModuleID:     p.ModuleID,
		Completed:    p.Completed,
		Progress:     p.Progress,
		LastAccessed: p.LastAccessed,
	}
}

func FromProgressList(entries []catalog.UserProgress) []*ProgressResponse {
	res := make([]*ProgressResponse, len(entries))
	for i := range entries {
		res[i] = FromProgress(&entries[i])
	}
	return res
}
