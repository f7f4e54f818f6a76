package seeder

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ekshore/loot-list/internal/domain"
	"github.com/ekshore/loot-list/internal/service/auth"
	"github.com/ekshore/loot-list/internal/service/item"
	"github.com/ekshore/loot-list/internal/service/list"
)

var _ accountService = &accountServiceMock{}

type accountServiceMock struct {
	RegisterFunc func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginFunc    func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)

	calls struct {
		Register []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
	}
	lockRegister sync.RWMutex
	lockLogin    sync.RWMutex
}

func (mock *accountServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("accountServiceMock.RegisterFunc: method is nil but accountService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *accountServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input auth.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *accountServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("accountServiceMock.LoginFunc: method is nil but accountService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *accountServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

var _ listCreator = &listCreatorMock{}

type listCreatorMock struct {
	CreateListFunc func(ctx context.Context, p domain.Principal, input list.CreateListInput) (uuid.UUID, error)

	calls struct {
		CreateList []struct {
			Ctx   context.Context
			P     domain.Principal
			Input list.CreateListInput
		}
	}
	lockCreateList sync.RWMutex
}

func (mock *listCreatorMock) CreateList(ctx context.Context, p domain.Principal, input list.CreateListInput) (uuid.UUID, error) {
	if mock.CreateListFunc == nil {
		panic("listCreatorMock.CreateListFunc: method is nil but listCreator.CreateList was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		P     domain.Principal
		Input list.CreateListInput
	}{Ctx: ctx, P: p, Input: input}
	mock.lockCreateList.Lock()
	mock.calls.CreateList = append(mock.calls.CreateList, callInfo)
	mock.lockCreateList.Unlock()
	return mock.CreateListFunc(ctx, p, input)
}

func (mock *listCreatorMock) CreateListCalls() []struct {
	Ctx   context.Context
	P     domain.Principal
	Input list.CreateListInput
} {
	mock.lockCreateList.RLock()
	calls := mock.calls.CreateList
	mock.lockCreateList.RUnlock()
	return calls
}

var _ itemWriter = &itemWriterMock{}

type itemWriterMock struct {
	AddItemFunc       func(ctx context.Context, listID uuid.UUID, p domain.Principal, input item.AddItemInput) (*domain.Item, error)
	MarkPurchasedFunc func(ctx context.Context, itemID uuid.UUID) (time.Time, error)

	calls struct {
		AddItem []struct {
			Ctx    context.Context
			ListID uuid.UUID
			P      domain.Principal
			Input  item.AddItemInput
		}
		MarkPurchased []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
	}
	lockAddItem       sync.RWMutex
	lockMarkPurchased sync.RWMutex
}

func (mock *itemWriterMock) AddItem(ctx context.Context, listID uuid.UUID, p domain.Principal, input item.AddItemInput) (*domain.Item, error) {
	if mock.AddItemFunc == nil {
		panic("itemWriterMock.AddItemFunc: method is nil but itemWriter.AddItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
		P      domain.Principal
		Input  item.AddItemInput
	}{Ctx: ctx, ListID: listID, P: p, Input: input}
	mock.lockAddItem.Lock()
	mock.calls.AddItem = append(mock.calls.AddItem, callInfo)
	mock.lockAddItem.Unlock()
	return mock.AddItemFunc(ctx, listID, p, input)
}

func (mock *itemWriterMock) AddItemCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
	P      domain.Principal
	Input  item.AddItemInput
} {
	mock.lockAddItem.RLock()
	calls := mock.calls.AddItem
	mock.lockAddItem.RUnlock()
	return calls
}

func (mock *itemWriterMock) MarkPurchased(ctx context.Context, itemID uuid.UUID) (time.Time, error) {
	if mock.MarkPurchasedFunc == nil {
		panic("itemWriterMock.MarkPurchasedFunc: method is nil but itemWriter.MarkPurchased was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockMarkPurchased.Lock()
	mock.calls.MarkPurchased = append(mock.calls.MarkPurchased, callInfo)
	mock.lockMarkPurchased.Unlock()
	return mock.MarkPurchasedFunc(ctx, itemID)
}

func (mock *itemWriterMock) MarkPurchasedCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockMarkPurchased.RLock()
	calls := mock.calls.MarkPurchased
	mock.lockMarkPurchased.RUnlock()
	return calls
}
