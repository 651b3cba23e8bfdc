// Package dto defines the JSON request and response shapes of the HTTP API.
// Field casing is uneven across resources because the API contract predates
// this service; clients depend on it as is.
package dto

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse acknowledges a mutation without returning the row.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginRequest carries user credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UploadResponse describes a stored file.
type UploadResponse struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}
