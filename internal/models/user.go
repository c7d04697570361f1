// Package models defines the persisted record types of the showcase demo:
// users, posts, and comments.
package models

// Role classifies a user account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Status is the moderation state of an account.
type Status string

const (
	StatusActive Status = "active"
	StatusBanned Status = "banned"
)

// User is an account record. Passwords are stored and compared in plaintext;
// this is demo data, not a credential store.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Status   Status `json:"status"`
	Avatar   string `json:"avatar"`
}

// IsAdmin reports whether the account has the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
