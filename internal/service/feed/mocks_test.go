package feed

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ekshore/loot-list/internal/domain"
)

var _ listRepo = &listRepoMock{}

type listRepoMock struct {
	ListByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) ([]domain.List, error)
	ListPublicFunc  func(ctx context.Context, excludeOwner *uuid.UUID) ([]domain.List, error)
	ListVisibleFunc func(ctx context.Context, viewer *uuid.UUID) ([]domain.FeedEntry, error)

	calls struct {
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		ListPublic []struct {
			Ctx          context.Context
			ExcludeOwner *uuid.UUID
		}
		ListVisible []struct {
			Ctx    context.Context
			Viewer *uuid.UUID
		}
	}
	lockListByOwner sync.RWMutex
	lockListPublic  sync.RWMutex
	lockListVisible sync.RWMutex
}

func (mock *listRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.List, error) {
	if mock.ListByOwnerFunc == nil {
		panic("listRepoMock.ListByOwnerFunc: method is nil but listRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID)
}

func (mock *listRepoMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *listRepoMock) ListPublic(ctx context.Context, excludeOwner *uuid.UUID) ([]domain.List, error) {
	if mock.ListPublicFunc == nil {
		panic("listRepoMock.ListPublicFunc: method is nil but listRepo.ListPublic was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		ExcludeOwner *uuid.UUID
	}{Ctx: ctx, ExcludeOwner: excludeOwner}
	mock.lockListPublic.Lock()
	mock.calls.ListPublic = append(mock.calls.ListPublic, callInfo)
	mock.lockListPublic.Unlock()
	return mock.ListPublicFunc(ctx, excludeOwner)
}

func (mock *listRepoMock) ListPublicCalls() []struct {
	Ctx          context.Context
	ExcludeOwner *uuid.UUID
} {
	mock.lockListPublic.RLock()
	calls := mock.calls.ListPublic
	mock.lockListPublic.RUnlock()
	return calls
}

func (mock *listRepoMock) ListVisible(ctx context.Context, viewer *uuid.UUID) ([]domain.FeedEntry, error) {
	if mock.ListVisibleFunc == nil {
		panic("listRepoMock.ListVisibleFunc: method is nil but listRepo.ListVisible was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Viewer *uuid.UUID
	}{Ctx: ctx, Viewer: viewer}
	mock.lockListVisible.Lock()
	mock.calls.ListVisible = append(mock.calls.ListVisible, callInfo)
	mock.lockListVisible.Unlock()
	return mock.ListVisibleFunc(ctx, viewer)
}

func (mock *listRepoMock) ListVisibleCalls() []struct {
	Ctx    context.Context
	Viewer *uuid.UUID
} {
	mock.lockListVisible.RLock()
	calls := mock.calls.ListVisible
	mock.lockListVisible.RUnlock()
	return calls
}
