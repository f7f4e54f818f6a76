package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ekshore/loot-list/internal/domain"
	"github.com/ekshore/loot-list/internal/service/list"
	"github.com/ekshore/loot-list/pkg/ctxutil"
)

type listService interface {
	CreateList(ctx context.Context, p domain.Principal, input list.CreateListInput) (uuid.UUID, error)
	GetListDetails(ctx context.Context, listID uuid.UUID, p domain.Principal) (*domain.ListDetails, error)
	UpdateListDetails(ctx context.Context, listID uuid.UUID, p domain.Principal, input list.UpdateListInput) error
	DeleteList(ctx context.Context, listID uuid.UUID, p domain.Principal) error
}

// ListHandler serves list CRUD endpoints.
type ListHandler struct {
	svc listService
	log *slog.Logger
}

// NewListHandler creates a ListHandler.
func NewListHandler(svc listService, logger *slog.Logger) *ListHandler {
	return &ListHandler{svc: svc, log: logger.With("handler", "lists")}
}

type listRequest struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
	Public  bool   `json:"public"`
}

type listResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Name      string    `json:"name"`
	Summary   string    `json:"summary"`
	Public    bool      `json:"public"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type listDetailsResponse struct {
	listResponse
	OwnerName string `json:"ownerName"`
	IsOwner   bool   `json:"isOwner"`
}

type createdResponse struct {
	ID string `json:"id"`
}

// Create handles POST /api/lists.
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req listRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	id, err := h.svc.CreateList(r.Context(), ctxutil.PrincipalFromCtx(r.Context()), list.CreateListInput{
		Name:    req.Name,
		Summary: req.Summary,
		Public:  req.Public,
	})
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	writeOK(w, http.StatusCreated, createdResponse{ID: id.String()})
}

// Get handles GET /api/lists/{listID}.
func (h *ListHandler) Get(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "listID")
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	details, err := h.svc.GetListDetails(r.Context(), listID, ctxutil.PrincipalFromCtx(r.Context()))
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toListDetailsResponse(details))
}

// Update handles PUT /api/lists/{listID}.
func (h *ListHandler) Update(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "listID")
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	var req listRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	err = h.svc.UpdateListDetails(r.Context(), listID, ctxutil.PrincipalFromCtx(r.Context()), list.UpdateListInput{
		Name:    req.Name,
		Summary: req.Summary,
		Public:  req.Public,
	})
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	writeOK(w, http.StatusOK, nil)
}

// Delete handles DELETE /api/lists/{listID}.
func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "listID")
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteList(r.Context(), listID, ctxutil.PrincipalFromCtx(r.Context())); err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	writeOK(w, http.StatusOK, nil)
}

func toListResponse(l domain.List) listResponse {
	return listResponse{
		ID:        l.ID.String(),
		OwnerID:   l.OwnerID.String(),
		Name:      l.Name,
		Summary:   l.Summary,
		Public:    l.Public,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func toListResponses(ls []domain.List) []listResponse {
	out := make([]listResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, toListResponse(l))
	}
	return out
}

func toListDetailsResponse(d *domain.ListDetails) listDetailsResponse {
	return listDetailsResponse{
		listResponse: toListResponse(d.List),
		OwnerName:    d.OwnerName,
		IsOwner:      d.IsOwner,
	}
}
