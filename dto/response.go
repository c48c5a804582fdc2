package dto

// ErrorResponseDTO is the shared error envelope for every endpoint.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"invalid_token"`
}

// MessageResponseDTO is the shared success envelope for endpoints that
// only return a message.
type MessageResponseDTO struct {
	Message string `json:"message" example:"successfully subscribed to newsletter"`
}
