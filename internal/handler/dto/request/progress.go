package request

import (
	"aaai-platform/internal/domain/catalog"
)

// RecordProgressRequest omits the user id; it comes from the path.
type RecordProgressRequest struct {
	CourseID  string `json:"courseId" binding:"required"`
	ModuleID  string `json:"moduleId"`
	Completed bool   `json:"completed"`
	Progress  int    `json:"progress" binding:"min=0,max=100"`
}

func (r *RecordProgressRequest) ToDomain(userID string) catalog.UserProgress {
	return catalog.UserProgress{
		UserID:    userID,
		CourseID:  r.CourseID,
		ModuleID:  r.ModuleID,
		Completed: r.Completed,
		Progress:  r.Progress,
	}
}
