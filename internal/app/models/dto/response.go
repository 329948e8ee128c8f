package dto

// MessageResponse is the standard success body for mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
