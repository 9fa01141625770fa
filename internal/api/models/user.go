package models

// User represents a row in the users table. The password hash and the
// advisory last-issued token never leave the server.
type User struct {
	ID       int64   `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Email    string  `db:"email" json:"email"`
	Password string  `db:"password" json:"-"`
	Token    *string `db:"token" json:"-"`
}

// RegisterRequest carries the registration payload. Validation happens in the
// validation package so each field failure maps to its own message.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,gmail"`
	Password string `json:"password" validate:"required,min=5"`
}

// LoginRequest defines the structure for a user login request.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ResetLinkRequest asks for a password reset email.
type ResetLinkRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest sets a new password for the given email.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}
