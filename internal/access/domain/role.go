// Package domain defines the access control domain models: roles, access keys,
// the permission rules between them, and the audit trail of privileged actions.
package domain

import (
	"fmt"

	"github.com/keypanel/keypanel/internal/errors"
)

// Role is the capability level assigned to an access key. The four roles form
// a strict order of privilege: developer > creator > admin > user.
type Role string

const (
	// RoleUser can only authenticate and submit dispatch requests.
	RoleUser Role = "user"

	// RoleAdmin can manage user-level keys.
	RoleAdmin Role = "admin"

	// RoleCreator can manage admin- and user-level keys.
	RoleCreator Role = "creator"

	// RoleDeveloper is the highest privilege level. Developer keys are never
	// visible to or deletable by other actors.
	RoleDeveloper Role = "developer"
)

// rank maps each role to its position in the privilege order. The numeric rank
// exists only for comparison; it is never stored.
var rank = map[Role]int{
	RoleUser:      0,
	RoleAdmin:     1,
	RoleCreator:   2,
	RoleDeveloper: 3,
}

// Valid reports whether r is one of the four defined roles.
func (r Role) Valid() bool {
	_, ok := rank[r]
	return ok
}

// Outranks reports whether r strictly outranks other under the fixed order
// developer > creator > admin > user. Irreflexive: no role outranks itself.
func (r Role) Outranks(other Role) bool {
	return rank[r] > rank[other]
}

// ParseRole converts external input into a Role.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.Valid() {
		return "", errors.Wrap(errors.ErrInvalidInput,
			fmt.Sprintf("invalid role: %q (valid options: user, admin, creator, developer)", s))
	}
	return role, nil
}

// AssignableRoles returns the roles an actor may assign when creating a new
// key, in ascending privilege order. Used by the CLI and the panel to present
// role choices; CanAssignRole remains the authoritative check.
func AssignableRoles(actor Role) []Role {
	roles := []Role{RoleUser, RoleAdmin}
	if actor == RoleCreator || actor == RoleDeveloper {
		roles = append(roles, RoleCreator)
	}
	return roles
}
