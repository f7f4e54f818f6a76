package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ekshore/loot-list/internal/domain"
	"github.com/ekshore/loot-list/pkg/ctxutil"
)

type feedService interface {
	HomeFeed(ctx context.Context, p domain.Principal) ([]domain.FeedEntry, error)
	VisibleLists(ctx context.Context, p domain.Principal) (*domain.ListFeed, error)
	UserLists(ctx context.Context, p domain.Principal) ([]domain.List, error)
	SharedLists(ctx context.Context, p domain.Principal) ([]domain.List, error)
	PublicLists(ctx context.Context) ([]domain.List, error)
}

// FeedHandler serves the read-only list collections.
type FeedHandler struct {
	svc feedService
	log *slog.Logger
}

// NewFeedHandler creates a FeedHandler.
func NewFeedHandler(svc feedService, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{svc: svc, log: logger.With("handler", "feed")}
}

type feedEntryResponse struct {
	listResponse
	OwnerName string `json:"ownerName"`
}

type visibleListsResponse struct {
	Mine   []listResponse `json:"mine"`
	Shared []listResponse `json:"shared"`
}

// Home handles GET /api/feed.
func (h *FeedHandler) Home(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.HomeFeed(r.Context(), ctxutil.PrincipalFromCtx(r.Context()))
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	out := make([]feedEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, feedEntryResponse{listResponse: toListResponse(e.List), OwnerName: e.OwnerName})
	}
	writeJSON(w, http.StatusOK, out)
}

// Visible handles GET /api/lists.
func (h *FeedHandler) Visible(w http.ResponseWriter, r *http.Request) {
	feed, err := h.svc.VisibleLists(r.Context(), ctxutil.PrincipalFromCtx(r.Context()))
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, visibleListsResponse{
		Mine:   toListResponses(feed.Mine),
		Shared: toListResponses(feed.Shared),
	})
}

// Mine handles GET /api/lists/mine.
func (h *FeedHandler) Mine(w http.ResponseWriter, r *http.Request) {
	h.writeLists(w, r, func(ctx context.Context) ([]domain.List, error) {
		return h.svc.UserLists(ctx, ctxutil.PrincipalFromCtx(ctx))
	})
}

// Shared handles GET /api/lists/shared.
func (h *FeedHandler) Shared(w http.ResponseWriter, r *http.Request) {
	h.writeLists(w, r, func(ctx context.Context) ([]domain.List, error) {
		return h.svc.SharedLists(ctx, ctxutil.PrincipalFromCtx(ctx))
	})
}

// Public handles GET /api/lists/public.
func (h *FeedHandler) Public(w http.ResponseWriter, r *http.Request) {
	h.writeLists(w, r, h.svc.PublicLists)
}

func (h *FeedHandler) writeLists(w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context) ([]domain.List, error)) {
	lists, err := fetch(r.Context())
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toListResponses(lists))
}
