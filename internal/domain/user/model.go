package user

import "fmt"

// Role separates league administrators from regular managers.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is a league participant. ExternalID links the user to the account
// service identity that authenticated them.
type User struct {
	ID         string
	Name       string
	Role       Role
	ExternalID string
}

func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if u.Name == "" {
		return fmt.Errorf("user name is required")
	}
	if u.Role != RoleAdmin && u.Role != RoleUser {
		return fmt.Errorf("unknown user role: %s", u.Role)
	}

	return nil
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	UserID string
	Role   Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
