// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema defines table and column descriptors for every relation the
// application touches.
//
// # Safety
//
// SQL text in the storage layer is assembled exclusively from these
// compile-time constants, never from request input. Values are always bound
// through placeholders.
package schema

// RegAccountTable represents the 'reg.account' table
type RegAccountTable struct {
	Table        string
	PrincipalID  string
	PasswordHash string
	IsActive     string
	RoleID       string
	CreatedAt    string
}

// RegAccount is the schema definition for reg.account
var RegAccount = RegAccountTable{
	Table:        "reg.account",
	PrincipalID:  "principalid",
	PasswordHash: "passwordhash",
	IsActive:     "isactive",
	RoleID:       "roleid",
	CreatedAt:    "createdat",
}

// Columns returns all standard column names
func (t RegAccountTable) Columns() []string {
	return []string{t.PrincipalID, t.PasswordHash, t.IsActive, t.RoleID, t.CreatedAt}
}
