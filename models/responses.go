package models

// MessageResponse is the generic JSON envelope for endpoints that return
// only a human-readable outcome ("User registered successfully",
// "Invalid or expired token", ...).
type MessageResponse struct {
	Message string `json:"message"`
}

// SessionUserResponse is the body of GET /api/auth/check: the identity
// of the user owning the presented session.
type SessionUserResponse struct {
	User SessionUser `json:"user"`
}

// SessionUser is the minimal user view exposed to authenticated clients.
// Credential fields are deliberately absent.
type SessionUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// CustomerListResponse is the body of GET /api/customers.
type CustomerListResponse struct {
	Customers []Customer `json:"customers"`
}
