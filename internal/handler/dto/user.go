// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/hpnchanel/scaffold/internal/model"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// CreateUserRequest holds the fields read from a decoded POST /api/users body.
type CreateUserRequest struct {
	Name  string
	Email string
}

// Valid reports whether both required fields are present.
func (r CreateUserRequest) Valid() bool {
	return r.Name != "" && r.Email != ""
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// UserListResponse is the body of GET /api/users.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// CreateUserResponse is the body of a successful POST /api/users.
type CreateUserResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// ToUserResponse converts a User model to UserResponse DTO.
// Seeded users carry no creation time and omit createdAt.
func ToUserResponse(u model.User) UserResponse {
	resp := UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
	if !u.CreatedAt.IsZero() {
		resp.CreatedAt = FormatTimestamp(u.CreatedAt)
	}
	return resp
}

// ToUserListResponse converts a slice of User models to UserListResponse.
func ToUserListResponse(users []model.User) UserListResponse {
	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = ToUserResponse(u)
	}
	return UserListResponse{Users: responses}
}
