package models

// ErrorResponse is the standard error body for all endpoints.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
