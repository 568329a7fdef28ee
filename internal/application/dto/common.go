package dto

// ErrorResponse HTTP error body. The message is deliberately coarse for
// auth failures: login never reveals whether the email or the password was
// wrong.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PageResponse pagination metadata for list responses.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
