// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// RegProfileTable represents the 'reg.profile' table
type RegProfileTable struct {
	Table       string
	PrincipalID string
	DisplayName string
	SportID     string
	Year        string
	Gender      string
}

// RegProfile is the schema definition for reg.profile
var RegProfile = RegProfileTable{
	Table:       "reg.profile",
	PrincipalID: "principalid",
	DisplayName: "displayname",
	SportID:     "sportid",
	Year:        "year",
	Gender:      "gender",
}

// Columns returns all standard column names
func (t RegProfileTable) Columns() []string {
	return []string{t.PrincipalID, t.DisplayName, t.SportID, t.Year, t.Gender}
}
