// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the credential and session entry points of the
registration system.

It defines the core domain entity (Credential) and the logic for account
creation, login, and token decoding.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to identity.
*/
package auth

import (
	"time"
)

// # Domain Entities

// Credential represents a registered account keyed by its principal
// identifier — a roll number or a username, depending on the deployment's
// identity scheme. The identifier is unique case-insensitively; it is
// normalized to lowercase before every read and write.
type Credential struct {
	PrincipalID  string    `json:"principal_id"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	IsActive     bool      `json:"is_active"`
	RoleID       int       `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldPrincipalID = "principal_id"
	FieldRollNo      = "roll_no"
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldDisplayName = "name"
	FieldSportID     = "sport_id"
	FieldYear        = "year"
	FieldGender      = "gender"
	FieldToken       = "token"
	FieldMessage     = "message"
)
