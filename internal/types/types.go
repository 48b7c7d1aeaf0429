package types

import "time"

const ContextUserKey = "user"

type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

// ErrorResponse is the structured envelope written for authentication
// rejections and unhandled faults.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
	Path      string `json:"path"`
}

func NewErrorResponse(errorLabel, message, path string) ErrorResponse {
	return ErrorResponse{
		Error:     errorLabel,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
		Path:      path,
	}
}
