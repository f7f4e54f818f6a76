package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ekshore/loot-list/internal/domain"
	"github.com/ekshore/loot-list/internal/service/user"
	"github.com/ekshore/loot-list/pkg/ctxutil"
)

type profileService interface {
	GetProfile(ctx context.Context, p domain.Principal) (*domain.User, error)
	UpdateProfile(ctx context.Context, p domain.Principal, input user.UpdateProfileInput) (*domain.User, error)
}

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type profileRequest struct {
	Name string `json:"name"`
}

// Get handles GET /api/me.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context(), ctxutil.PrincipalFromCtx(r.Context()))
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Update handles PUT /api/me.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), ctxutil.PrincipalFromCtx(r.Context()), user.UpdateProfileInput{Name: req.Name})
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, toUserResponse(u))
}
