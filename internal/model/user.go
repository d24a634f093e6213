// Package model defines domain entities for the application.
package model

import "time"

// User is a user record. Records are never stored: seeded users are fixed and
// created users live only for the duration of one response.
type User struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time // zero for seeded users
}

// SeedUsers returns the fixed user list. A fresh slice is returned on every
// call so callers cannot alter what later requests observe.
func SeedUsers() []User {
	return []User{
		{ID: 1, Name: "Nguyen Van A", Email: "nguyenvana@email.com"},
		{ID: 2, Name: "Tran Thi B", Email: "tranthib@email.com"},
		{ID: 3, Name: "Le Van C", Email: "levanc@email.com"},
	}
}

// NewUser mints a transient user whose ID is the creation time in epoch
// milliseconds.
func NewUser(name, email string, now time.Time) User {
	createdAt := now.UTC()
	return User{
		ID:        createdAt.UnixMilli(),
		Name:      name,
		Email:     email,
		CreatedAt: createdAt,
	}
}
