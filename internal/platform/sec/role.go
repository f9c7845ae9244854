// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package sec

// # Operator Roles

// OperatorRole represents the authorization level granted to an operator
// ("encargado") account.
type OperatorRole string

const (
	// Full access: event creation, records view, operator management
	RoleAdmin OperatorRole = "admin"

	// Default role: may run attendee intake against existing events
	RoleStaff OperatorRole = "staff"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r OperatorRole) AtLeast(target OperatorRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r OperatorRole) level() int {

	// Linear scale (10-20) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 20
	case RoleStaff:
		return 10
	default:
		return 0
	}
}
