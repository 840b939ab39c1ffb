package api

import "time"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse carries the flat error message surfaced for any failed
// request; root causes stay in the server logs.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the generic confirmation payload
type MessageResponse struct {
	Message string `json:"message"`
}

// ReferenceResponse carries a freshly generated reference number
type ReferenceResponse struct {
	ReferenceNumber string `json:"reference_number"`
}

// VisitorCountResponse carries the current visitor tally
type VisitorCountResponse struct {
	VisitorCount int64 `json:"visitorCount"`
}

// UserInfo is the public slice of an account returned on login
type UserInfo struct {
	Username string `json:"username"`
}

// LoginResponse confirms a successful credential check. No token or
// session accompanies it; callers re-authenticate per request.
type LoginResponse struct {
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
}
