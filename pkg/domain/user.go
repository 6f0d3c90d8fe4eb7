package domain

import "github.com/google/uuid"

// UserID uniquely identifies an authenticated user (the JWT subject).
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical UUID representation.
func (id UserID) String() string { return uuid.UUID(id).String() }

// Role is the authorization role carried by the access token.
type Role string

const (
	// RoleCustomer is the default role of self-registered users.
	RoleCustomer Role = "customer"
	// RoleStaff is granted to warehouse employees (package intake, route plans).
	RoleStaff Role = "staff"
	// RoleAdmin has full access to the admin console.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleCustomer || r.IsStaff()
}

// IsStaff reports whether the role may use the admin console.
func (r Role) IsStaff() bool {
	return r == RoleStaff || r == RoleAdmin
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	UserID UserID
	Role   Role
}
