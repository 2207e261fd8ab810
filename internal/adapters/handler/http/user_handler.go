package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/nthusa/voting/internal/core/domain"
	"github.com/nthusa/voting/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
	admins  ports.AdminChecker
}

func NewUserHandler(service ports.UserService, admins ports.AdminChecker) *UserHandler {
	return &UserHandler{
		service: service,
		admins:  admins,
	}
}

type meResponse struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name,omitempty"`
	IsAdmin   bool   `json:"is_admin"`
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch user: "+err.Error())
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, domain.ErrUserNotFound.Error())
		return
	}

	isAdmin, err := h.admins.IsAdmin(r.Context(), user.StudentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to check admin roster")
		return
	}

	writeJSON(w, http.StatusOK, meResponse{
		StudentID: user.StudentID,
		Name:      user.Name,
		IsAdmin:   isAdmin,
	})
}
