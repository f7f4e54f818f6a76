package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ekshore/loot-list/internal/domain"
	"github.com/ekshore/loot-list/internal/service/item"
	"github.com/ekshore/loot-list/pkg/ctxutil"
)

type itemService interface {
	AddItem(ctx context.Context, listID uuid.UUID, p domain.Principal, input item.AddItemInput) (*domain.Item, error)
	UpdateItem(ctx context.Context, itemID uuid.UUID, p domain.Principal, input item.UpdateItemInput) (*domain.Item, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID, p domain.Principal) error
	ListItems(ctx context.Context, listID uuid.UUID, p domain.Principal) ([]domain.Item, error)
	MarkPurchased(ctx context.Context, itemID uuid.UUID) (time.Time, error)
	UnmarkPurchased(ctx context.Context, itemID uuid.UUID) error
}

// ItemHandler serves item endpoints, including purchase marking.
type ItemHandler struct {
	svc itemService
	log *slog.Logger
}

// NewItemHandler creates an ItemHandler.
func NewItemHandler(svc itemService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{svc: svc, log: logger.With("handler", "items")}
}

type itemRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
}

type itemResponse struct {
	ID            string     `json:"id"`
	ListID        string     `json:"listId"`
	Name          string     `json:"name"`
	Description   *string    `json:"description"`
	URL           *string    `json:"url"`
	Purchased     bool       `json:"purchased"`
	DatePurchased *time.Time `json:"datePurchased"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type purchaseResponse struct {
	DatePurchased time.Time `json:"datePurchased"`
}

// List handles GET /api/lists/{listID}/items.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "listID")
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	items, err := h.svc.ListItems(r.Context(), listID, ctxutil.PrincipalFromCtx(r.Context()))
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	out := make([]itemResponse, 0, len(items))
	for i := range items {
		out = append(out, toItemResponse(&items[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Add handles POST /api/lists/{listID}/items.
func (h *ItemHandler) Add(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "listID")
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	var req itemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	it, err := h.svc.AddItem(r.Context(), listID, ctxutil.PrincipalFromCtx(r.Context()), item.AddItemInput{
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
	})
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	writeOK(w, http.StatusCreated, toItemResponse(it))
}

// Update handles PUT /api/items/{itemID}.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemID")
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	var req itemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	it, err := h.svc.UpdateItem(r.Context(), itemID, ctxutil.PrincipalFromCtx(r.Context()), item.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
	})
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	writeOK(w, http.StatusOK, toItemResponse(it))
}

// Delete handles DELETE /api/items/{itemID}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemID")
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteItem(r.Context(), itemID, ctxutil.PrincipalFromCtx(r.Context())); err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	writeOK(w, http.StatusOK, nil)
}

// Purchase handles POST /api/items/{itemID}/purchase. Open to anonymous callers.
func (h *ItemHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemID")
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	at, err := h.svc.MarkPurchased(r.Context(), itemID)
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	writeOK(w, http.StatusOK, purchaseResponse{DatePurchased: at})
}

// Unpurchase handles DELETE /api/items/{itemID}/purchase. Open to anonymous callers.
func (h *ItemHandler) Unpurchase(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemID")
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	if err := h.svc.UnmarkPurchased(r.Context(), itemID); err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	writeOK(w, http.StatusOK, nil)
}

func toItemResponse(it *domain.Item) itemResponse {
	return itemResponse{
		ID:            it.ID.String(),
		ListID:        it.ListID.String(),
		Name:          it.Name,
		Description:   it.Description,
		URL:           it.URL,
		Purchased:     it.IsPurchased(),
		DatePurchased: it.DatePurchased,
		CreatedAt:     it.CreatedAt,
	}
}
