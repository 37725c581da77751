package models

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse acknowledges a request that has no other payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by POST /login.
type LoginResponse struct {
	Success  bool   `json:"success"`
	Token    string `json:"token"`
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
