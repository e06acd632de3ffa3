// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package profile manages the supplementary athlete data attached to an account.

A profile row may be created together with the credential (roll-number
deployments) or later, once the athlete completes their details (username
deployments). The combined credential+profile view decides whether an account
counts as "profile complete".
*/
package profile

import "github.com/taibuivan/kreeda/internal/platform/constants"

// # Domain Entities

// Profile holds the per-principal athlete details.
type Profile struct {
	PrincipalID string `json:"principal_id"`
	DisplayName string `json:"name"`
	SportID     int64  `json:"sport_id"`
	Year        int    `json:"year"`
	Gender      string `json:"gender"`
}

// Combined is the credential joined with its (possibly absent) profile.
type Combined struct {
	PrincipalID string `json:"principal_id"`
	RoleID      int    `json:"role_id"`
	IsActive    bool   `json:"is_active"`
	DisplayName string `json:"name,omitempty"`
	SportID     int64  `json:"sport_id,omitempty"`
	Year        int    `json:"year,omitempty"`
	Gender      string `json:"gender,omitempty"`

	// ProfileComplete is true iff a display name exists and is not the
	// placeholder sentinel.
	ProfileComplete bool `json:"-"`
}

// computeComplete applies the completeness rule to a display name.
func computeComplete(displayName string) bool {
	return displayName != "" && displayName != constants.ProfilePlaceholderName
}

// Flag renders the completeness as the wire-level 0/1 integer.
func (c *Combined) Flag() int {
	if c.ProfileComplete {
		return 1
	}
	return 0
}

// # Field Identifiers

const (
	FieldDisplayName = "name"
	FieldSportID     = "sport_id"
	FieldYear        = "year"
	FieldGender      = "gender"
)
