// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kreeda/internal/platform/apperr"
	"github.com/taibuivan/kreeda/internal/users/profile"
)

// fakeRepository stores profiles in a map and serves combined views.
type fakeRepository struct {
	profiles map[string]*profile.Profile
	views    map[string]*profile.Combined
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		profiles: make(map[string]*profile.Profile),
		views:    make(map[string]*profile.Combined),
	}
}

func (repo *fakeRepository) GetCombined(_ context.Context, principalID string) (*profile.Combined, error) {
	view, ok := repo.views[principalID]
	if !ok {
		return nil, apperr.NotFound("Account")
	}
	return view, nil
}

func (repo *fakeRepository) Upsert(_ context.Context, athleteProfile *profile.Profile) error {
	repo.profiles[athleteProfile.PrincipalID] = athleteProfile
	return nil
}

/*
TestService_Upsert verifies trimming, lowercase normalization, and storage.
*/
func TestService_Upsert(t *testing.T) {
	repo := newFakeRepository()
	service := profile.NewService(repo)

	stored, err := service.Upsert(context.Background(), profile.UpsertInput{
		PrincipalID: "21CS001",
		DisplayName: "  Priya Sharma  ",
		SportID:     3,
		Year:        2,
		Gender:      "female",
	})
	require.NoError(t, err)

	assert.Equal(t, "21cs001", stored.PrincipalID)
	assert.Equal(t, "Priya Sharma", stored.DisplayName)
	assert.Same(t, stored, repo.profiles["21cs001"])
}

/*
TestService_Upsert_Validation covers every field rule, including the reserved
placeholder name.
*/
func TestService_Upsert_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input profile.UpsertInput
	}{
		{"missing_name", profile.UpsertInput{PrincipalID: "21cs001", SportID: 1, Year: 1, Gender: "male"}},
		{"reserved_name", profile.UpsertInput{PrincipalID: "21cs001", DisplayName: "Unknown", SportID: 1, Year: 1, Gender: "male"}},
		{"missing_sport", profile.UpsertInput{PrincipalID: "21cs001", DisplayName: "Priya", Year: 1, Gender: "male"}},
		{"year_out_of_range", profile.UpsertInput{PrincipalID: "21cs001", DisplayName: "Priya", SportID: 1, Year: 6, Gender: "male"}},
		{"bad_gender", profile.UpsertInput{PrincipalID: "21cs001", DisplayName: "Priya", SportID: 1, Year: 1, Gender: "robot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			service := profile.NewService(repo)

			_, err := service.Upsert(context.Background(), tt.input)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)
			assert.Empty(t, repo.profiles)
		})
	}
}

/*
TestCombined_Flag verifies the 0/1 wire rendering of the completeness flag.
*/
func TestCombined_Flag(t *testing.T) {
	complete := &profile.Combined{ProfileComplete: true}
	incomplete := &profile.Combined{ProfileComplete: false}

	assert.Equal(t, 1, complete.Flag())
	assert.Equal(t, 0, incomplete.Flag())
}
