package request

// CheckoutRequest carries no binding:"required" on CourseID; the handler
// reports a missing course id with a dedicated message instead of a generic
// validation failure.
type CheckoutRequest struct {
	CourseID string `json:"courseId"`
	Email    string `json:"email" binding:"omitempty,email"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}
