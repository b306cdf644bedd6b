package domain

import "time"

// Role is one of the fixed board roles. There is no scope system behind
// these; authorization is a straight role match.
type Role string

const (
	RoleAdmin       Role = "Admin"
	RoleScrumMaster Role = "Scrum Master"
	RoleDeveloper   Role = "Developer"
	RoleTester      Role = "Tester"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleScrumMaster, RoleDeveloper, RoleTester:
		return true
	}
	return false
}

// User is an entry in the login directory.
type User struct {
	ID           string
	Email        string
	Name         string
	Role         Role
	PasswordHash string // argon2 encoded

	// FirstLogin forces a password-set flow before normal access. Cleared
	// the first time the user sets a password.
	FirstLogin bool

	// WorkspaceIDs are the workspaces the user is a member of.
	WorkspaceIDs []string

	CreatedAt time.Time
	UpdatedAt time.Time
}
