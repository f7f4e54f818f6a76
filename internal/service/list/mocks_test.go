package list

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ekshore/loot-list/internal/domain"
)

var _ listRepo = &listRepoMock{}

type listRepoMock struct {
	CreateFunc     func(ctx context.Context, l *domain.List) (*domain.List, error)
	GetDetailsFunc func(ctx context.Context, id uuid.UUID) (*domain.ListDetails, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, params domain.ListUpdateParams, at time.Time) (*domain.List, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			L   *domain.List
		}
		GetDetails []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.ListUpdateParams
			At     time.Time
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockGetDetails sync.RWMutex
	lockUpdate     sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *listRepoMock) Create(ctx context.Context, l *domain.List) (*domain.List, error) {
	if mock.CreateFunc == nil {
		panic("listRepoMock.CreateFunc: method is nil but listRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.List
	}{Ctx: ctx, L: l}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *listRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   *domain.List
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *listRepoMock) GetDetails(ctx context.Context, id uuid.UUID) (*domain.ListDetails, error) {
	if mock.GetDetailsFunc == nil {
		panic("listRepoMock.GetDetailsFunc: method is nil but listRepo.GetDetails was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetDetails.Lock()
	mock.calls.GetDetails = append(mock.calls.GetDetails, callInfo)
	mock.lockGetDetails.Unlock()
	return mock.GetDetailsFunc(ctx, id)
}

func (mock *listRepoMock) GetDetailsCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetDetails.RLock()
	calls := mock.calls.GetDetails
	mock.lockGetDetails.RUnlock()
	return calls
}

func (mock *listRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.ListUpdateParams, at time.Time) (*domain.List, error) {
	if mock.UpdateFunc == nil {
		panic("listRepoMock.UpdateFunc: method is nil but listRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.ListUpdateParams
		At     time.Time
	}{Ctx: ctx, ID: id, Params: params, At: at}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params, at)
}

func (mock *listRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.ListUpdateParams
	At     time.Time
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *listRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("listRepoMock.DeleteFunc: method is nil but listRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *listRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	DeleteByListFunc func(ctx context.Context, listID uuid.UUID) (int64, error)

	calls struct {
		DeleteByList []struct {
			Ctx    context.Context
			ListID uuid.UUID
		}
	}
	lockDeleteByList sync.RWMutex
}

func (mock *itemRepoMock) DeleteByList(ctx context.Context, listID uuid.UUID) (int64, error) {
	if mock.DeleteByListFunc == nil {
		panic("itemRepoMock.DeleteByListFunc: method is nil but itemRepo.DeleteByList was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
	}{Ctx: ctx, ListID: listID}
	mock.lockDeleteByList.Lock()
	mock.calls.DeleteByList = append(mock.calls.DeleteByList, callInfo)
	mock.lockDeleteByList.Unlock()
	return mock.DeleteByListFunc(ctx, listID)
}

func (mock *itemRepoMock) DeleteByListCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
} {
	mock.lockDeleteByList.RLock()
	calls := mock.calls.DeleteByList
	mock.lockDeleteByList.RUnlock()
	return calls
}

var _ accessChecker = &accessCheckerMock{}

type accessCheckerMock struct {
	RequireListOwnerFunc func(ctx context.Context, listID uuid.UUID, p domain.Principal) error

	calls struct {
		RequireListOwner []struct {
			Ctx    context.Context
			ListID uuid.UUID
			P      domain.Principal
		}
	}
	lockRequireListOwner sync.RWMutex
}

func (mock *accessCheckerMock) RequireListOwner(ctx context.Context, listID uuid.UUID, p domain.Principal) error {
	if mock.RequireListOwnerFunc == nil {
		panic("accessCheckerMock.RequireListOwnerFunc: method is nil but accessChecker.RequireListOwner was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
		P      domain.Principal
	}{Ctx: ctx, ListID: listID, P: p}
	mock.lockRequireListOwner.Lock()
	mock.calls.RequireListOwner = append(mock.calls.RequireListOwner, callInfo)
	mock.lockRequireListOwner.Unlock()
	return mock.RequireListOwnerFunc(ctx, listID, p)
}

func (mock *accessCheckerMock) RequireListOwnerCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
	P      domain.Principal
} {
	mock.lockRequireListOwner.RLock()
	calls := mock.calls.RequireListOwner
	mock.lockRequireListOwner.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
