package entity

import "time"

// Valid roles for User. The set is closed: registration validates against
// it so a typo in a role string cannot mint an unreachable privilege level.
const (
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleEditor || role == RoleAdmin
}

// User represents an authenticated principal. Role is set once at creation;
// there is no administrative update path in current scope.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt digest, never the plaintext
	Role         string // editor, admin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
