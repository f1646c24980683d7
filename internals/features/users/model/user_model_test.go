package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeOn(t *testing.T) {
	date := func(value string) time.Time {
		parsed, err := time.Parse("2006-01-02", value)
		if err != nil {
			t.Fatalf("bad date %s: %v", value, err)
		}
		return parsed
	}

	cases := []struct {
		name string
		dob  string
		at   string
		want int
	}{
		{"day before birthday", "1996-08-31", "2026-08-30", 29},
		{"on birthday, leap dob year vs common year", "1996-08-31", "2026-08-31", 30},
		{"day after birthday", "1996-08-31", "2026-09-01", 30},
		{"common dob year vs leap year", "1995-08-31", "2024-08-31", 29},
		{"birthday not yet reached in year", "2010-12-01", "2026-08-31", 15},
		{"leap day birth on feb 28", "2008-02-29", "2026-02-28", 17},
		{"leap day birth on mar 1", "2008-02-29", "2026-03-01", 18},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user := &UserModel{UserDateOfBirth: date(tc.dob)}
			assert.Equal(t, tc.want, user.AgeOn(date(tc.at)))
		})
	}
}

func TestHasAadhaarDocuments(t *testing.T) {
	user := &UserModel{UserAadhaarFrontPhoto: "uploads/users/a/front.webp"}
	assert.False(t, user.HasAadhaarDocuments())

	user.UserAadhaarBackPhoto = "uploads/users/a/back.webp"
	assert.True(t, user.HasAadhaarDocuments())
}
