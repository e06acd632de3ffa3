// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted system access
	RoleAdmin UserRole = "admin"

	// Can manage the sport catalog and review registrations
	RoleCoach UserRole = "coach"

	// Default role for registered athletes
	RoleAthlete UserRole = "athlete"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// ID maps a role to the numeric role_id persisted alongside credentials.
func (r UserRole) ID() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleCoach:
		return 2
	case RoleAthlete:
		return 1
	default:
		return 0
	}
}

// RoleFromID resolves a stored role_id back to its [UserRole].
// Unknown identifiers fall back to the athlete role.
func RoleFromID(id int) UserRole {
	switch id {
	case 3:
		return RoleAdmin
	case 2:
		return RoleCoach
	default:
		return RoleAthlete
	}
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-30) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 30
	case RoleCoach:
		return 20
	case RoleAthlete:
		return 10
	default:
		return 0
	}
}
