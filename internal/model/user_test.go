package model

import (
	"testing"
	"time"
)

func TestSeedUsers_Fixed(t *testing.T) {
	t.Parallel()

	users := SeedUsers()
	if len(users) != 3 {
		t.Fatalf("len = %d, want 3", len(users))
	}

	for i, u := range users {
		if u.ID != int64(i+1) {
			t.Errorf("users[%d].ID = %d, want %d", i, u.ID, i+1)
		}
		if u.Name == "" || u.Email == "" {
			t.Errorf("users[%d] has empty name or email", i)
		}
		if !u.CreatedAt.IsZero() {
			t.Errorf("users[%d].CreatedAt should be zero", i)
		}
	}
}

func TestSeedUsers_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first := SeedUsers()
	first[0].Name = "mutated"
	first = append(first, User{ID: 99})

	second := SeedUsers()
	if len(second) != 3 {
		t.Fatalf("len = %d, want 3", len(second))
	}
	if second[0].Name == "mutated" {
		t.Error("mutation leaked into later SeedUsers call")
	}
}

func TestNewUser(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 12, 30, 0, 123_000_000, time.FixedZone("ICT", 7*3600))
	u := NewUser("X", "y@z.com", now)

	if u.ID != now.UnixMilli() {
		t.Errorf("ID = %d, want %d", u.ID, now.UnixMilli())
	}
	if u.Name != "X" || u.Email != "y@z.com" {
		t.Errorf("unexpected name/email: %q %q", u.Name, u.Email)
	}
	if u.CreatedAt.Location() != time.UTC {
		t.Errorf("CreatedAt location = %s, want UTC", u.CreatedAt.Location())
	}
	if !u.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %s, want %s", u.CreatedAt, now)
	}
}
