package item

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ekshore/loot-list/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	CreateFunc       func(ctx context.Context, it *domain.Item) (*domain.Item, error)
	UpdateFunc       func(ctx context.Context, id uuid.UUID, params domain.ItemUpdateParams) (*domain.Item, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	ListByListFunc   func(ctx context.Context, listID uuid.UUID) ([]domain.Item, error)
	SetPurchasedFunc func(ctx context.Context, id uuid.UUID, at *time.Time) (*domain.Item, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			It  *domain.Item
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.ItemUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByList []struct {
			Ctx    context.Context
			ListID uuid.UUID
		}
		SetPurchased []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  *time.Time
		}
	}
	lockCreate       sync.RWMutex
	lockUpdate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockListByList   sync.RWMutex
	lockSetPurchased sync.RWMutex
}

func (mock *itemRepoMock) Create(ctx context.Context, it *domain.Item) (*domain.Item, error) {
	if mock.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		It  *domain.Item
	}{Ctx: ctx, It: it}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, it)
}

func (mock *itemRepoMock) CreateCalls() []struct {
	Ctx context.Context
	It  *domain.Item
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *itemRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.ItemUpdateParams) (*domain.Item, error) {
	if mock.UpdateFunc == nil {
		panic("itemRepoMock.UpdateFunc: method is nil but itemRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.ItemUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *itemRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.ItemUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *itemRepoMock) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	if mock.DeleteFunc == nil {
		panic("itemRepoMock.DeleteFunc: method is nil but itemRepo.Delete was just called")
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

func (mock *itemRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *itemRepoMock) ListByList(ctx context.Context, listID uuid.UUID) ([]domain.Item, error) {
	if mock.ListByListFunc == nil {
		panic("itemRepoMock.ListByListFunc: method is nil but itemRepo.ListByList was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
	}{Ctx: ctx, ListID: listID}
	mock.lockListByList.Lock()
	mock.calls.ListByList = append(mock.calls.ListByList, callInfo)
	mock.lockListByList.Unlock()
	return mock.ListByListFunc(ctx, listID)
}

func (mock *itemRepoMock) ListByListCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
} {
	mock.lockListByList.RLock()
	calls := mock.calls.ListByList
	mock.lockListByList.RUnlock()
	return calls
}

func (mock *itemRepoMock) SetPurchased(ctx context.Context, id uuid.UUID, at *time.Time) (*domain.Item, error) {
	if mock.SetPurchasedFunc == nil {
		panic("itemRepoMock.SetPurchasedFunc: method is nil but itemRepo.SetPurchased was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		At  *time.Time
	}{Ctx: ctx, ID: id, At: at}
	mock.lockSetPurchased.Lock()
	mock.calls.SetPurchased = append(mock.calls.SetPurchased, callInfo)
	mock.lockSetPurchased.Unlock()
	return mock.SetPurchasedFunc(ctx, id, at)
}

func (mock *itemRepoMock) SetPurchasedCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	At  *time.Time
} {
	mock.lockSetPurchased.RLock()
	calls := mock.calls.SetPurchased
	mock.lockSetPurchased.RUnlock()
	return calls
}

var _ listRepo = &listRepoMock{}

type listRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.List, error)
	TouchFunc   func(ctx context.Context, id uuid.UUID, at time.Time) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Touch []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  time.Time
		}
	}
	lockGetByID sync.RWMutex
	lockTouch   sync.RWMutex
}

func (mock *listRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error) {
	if mock.GetByIDFunc == nil {
		panic("listRepoMock.GetByIDFunc: method is nil but listRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *listRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *listRepoMock) Touch(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.TouchFunc == nil {
		panic("listRepoMock.TouchFunc: method is nil but listRepo.Touch was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}{Ctx: ctx, ID: id, At: at}
	mock.lockTouch.Lock()
	mock.calls.Touch = append(mock.calls.Touch, callInfo)
	mock.lockTouch.Unlock()
	return mock.TouchFunc(ctx, id, at)
}

func (mock *listRepoMock) TouchCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	At  time.Time
} {
	mock.lockTouch.RLock()
	calls := mock.calls.Touch
	mock.lockTouch.RUnlock()
	return calls
}

var _ accessChecker = &accessCheckerMock{}

type accessCheckerMock struct {
	RequireListOwnerFunc func(ctx context.Context, listID uuid.UUID, p domain.Principal) error
	RequireItemOwnerFunc func(ctx context.Context, itemID uuid.UUID, p domain.Principal) (uuid.UUID, error)

	calls struct {
		RequireListOwner []struct {
			Ctx    context.Context
			ListID uuid.UUID
			P      domain.Principal
		}
		RequireItemOwner []struct {
			Ctx    context.Context
			ItemID uuid.UUID
			P      domain.Principal
		}
	}
	lockRequireListOwner sync.RWMutex
	lockRequireItemOwner sync.RWMutex
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

func (mock *accessCheckerMock) RequireItemOwner(ctx context.Context, itemID uuid.UUID, p domain.Principal) (uuid.UUID, error) {
	if mock.RequireItemOwnerFunc == nil {
		panic("accessCheckerMock.RequireItemOwnerFunc: method is nil but accessChecker.RequireItemOwner was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
		P      domain.Principal
	}{Ctx: ctx, ItemID: itemID, P: p}
	mock.lockRequireItemOwner.Lock()
	mock.calls.RequireItemOwner = append(mock.calls.RequireItemOwner, callInfo)
	mock.lockRequireItemOwner.Unlock()
	return mock.RequireItemOwnerFunc(ctx, itemID, p)
}

func (mock *accessCheckerMock) RequireItemOwnerCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
	P      domain.Principal
} {
	mock.lockRequireItemOwner.RLock()
	calls := mock.calls.RequireItemOwner
	mock.lockRequireItemOwner.RUnlock()
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
