// Package authorization defines the user roles supplied by the identity collaborator.
package authorization

// UserRole is the role attached to an authenticated request. The core trusts
// the value as given by the token issuer.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleStudent UserRole = "student"
)

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleStudent
}

func (r UserRole) String() string {
	return string(r)
}
