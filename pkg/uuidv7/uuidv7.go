// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 wraps google/uuid to generate time-ordered UUIDv7 values.
//
// # Why UUIDv7?
//
// Request identifiers are emitted in every log line and response header, so
// time-sortable values make correlating a burst of traffic trivial: sorting
// the IDs sorts the requests.
package uuidv7

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// # Safety
//
// Generation can only fail if the OS random source is unavailable; in that
// case a random UUIDv4 is returned instead so that callers always get a
// usable identifier.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}

	return id.String()
}
