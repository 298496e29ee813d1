package dto

// ErrorResponse is the standard error payload for every failing request
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
