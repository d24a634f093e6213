package handler

import (
	"net/http"

	"github.com/hpnchanel/scaffold/internal/handler/dto"
	"github.com/hpnchanel/scaffold/internal/middleware"
	"github.com/hpnchanel/scaffold/internal/model"
)

// ListUsers returns the fixed user list.
// GET /api/users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(w, http.StatusOK, dto.ToUserListResponse(model.SeedUsers()))
}

// CreateUser echoes a freshly minted user built from the decoded body.
// The user is not stored anywhere.
//
// POST /api/users
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) error {
	req := createUserRequest(middleware.BodyFrom(r.Context()))
	if !req.Valid() {
		h.metrics.IncUserRejected()
		return writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: msgMissingFields})
	}

	user := model.NewUser(req.Name, req.Email, h.now())
	h.metrics.IncUserCreated()

	h.logger.DebugContext(r.Context(), "user_created",
		"user_id", user.ID,
		"request_id", middleware.GetRequestID(r.Context()),
	)

	return writeJSON(w, http.StatusCreated, dto.CreateUserResponse{
		Message: msgUserCreated,
		User:    dto.ToUserResponse(user),
	})
}

// createUserRequest reads name and email from body. Non-string values count
// as missing.
func createUserRequest(body middleware.Body) dto.CreateUserRequest {
	name, _ := body.String("name")
	email, _ := body.String("email")
	return dto.CreateUserRequest{Name: name, Email: email}
}
