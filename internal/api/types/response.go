// internal/api/types/response.go
package types

// ErrorResponse is the uniform error envelope returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
