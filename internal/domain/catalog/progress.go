package catalog

import (
	"time"

	"github.com/google/uuid"
)

// UserProgress records how far a user has gotten in a course module.
type UserProgress struct {
	ID           uuid.UUID
	UserID       string
	CourseID     string
	ModuleID     string
	Completed    bool
	Progress     int // percent, 0-100
	LastAccessed time.Time
}
