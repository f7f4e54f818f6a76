package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ekshore/loot-list/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	CreateFunc     func(ctx context.Context, user *domain.User) (*domain.User, error)

	calls struct {
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		Create []struct {
			Ctx  context.Context
			User *domain.User
		}
	}
	lockGetByEmail sync.RWMutex
	lockCreate     sync.RWMutex
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{Ctx: ctx, User: user}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ authMethodRepo = &authMethodRepoMock{}

type authMethodRepoMock struct {
	GetByUserAndMethodFunc func(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error)
	CreateFunc             func(ctx context.Context, am *domain.AuthMethod) (*domain.AuthMethod, error)

	calls struct {
		GetByUserAndMethod []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Method domain.AuthMethodType
		}
		Create []struct {
			Ctx context.Context
			Am  *domain.AuthMethod
		}
	}
	lockGetByUserAndMethod sync.RWMutex
	lockCreate             sync.RWMutex
}

func (mock *authMethodRepoMock) GetByUserAndMethod(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error) {
	if mock.GetByUserAndMethodFunc == nil {
		panic("authMethodRepoMock.GetByUserAndMethodFunc: method is nil but authMethodRepo.GetByUserAndMethod was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Method domain.AuthMethodType
	}{Ctx: ctx, UserID: userID, Method: method}
	mock.lockGetByUserAndMethod.Lock()
	mock.calls.GetByUserAndMethod = append(mock.calls.GetByUserAndMethod, callInfo)
	mock.lockGetByUserAndMethod.Unlock()
	return mock.GetByUserAndMethodFunc(ctx, userID, method)
}

func (mock *authMethodRepoMock) GetByUserAndMethodCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Method domain.AuthMethodType
} {
	mock.lockGetByUserAndMethod.RLock()
	calls := mock.calls.GetByUserAndMethod
	mock.lockGetByUserAndMethod.RUnlock()
	return calls
}

func (mock *authMethodRepoMock) Create(ctx context.Context, am *domain.AuthMethod) (*domain.AuthMethod, error) {
	if mock.CreateFunc == nil {
		panic("authMethodRepoMock.CreateFunc: method is nil but authMethodRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Am  *domain.AuthMethod
	}{Ctx: ctx, Am: am}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, am)
}

func (mock *authMethodRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Am  *domain.AuthMethod
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
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

var _ tokenManager = &tokenManagerMock{}

type tokenManagerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID, name string) (string, error)
	ValidateAccessTokenFunc func(token string) (uuid.UUID, string, error)

	calls struct {
		GenerateAccessToken []struct {
			UserID uuid.UUID
			Name   string
		}
		ValidateAccessToken []struct {
			Token string
		}
	}
	lockGenerateAccessToken sync.RWMutex
	lockValidateAccessToken sync.RWMutex
}

func (mock *tokenManagerMock) GenerateAccessToken(userID uuid.UUID, name string) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("tokenManagerMock.GenerateAccessTokenFunc: method is nil but tokenManager.GenerateAccessToken was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Name   string
	}{UserID: userID, Name: name}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(userID, name)
}

func (mock *tokenManagerMock) GenerateAccessTokenCalls() []struct {
	UserID uuid.UUID
	Name   string
} {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}

func (mock *tokenManagerMock) ValidateAccessToken(token string) (uuid.UUID, string, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("tokenManagerMock.ValidateAccessTokenFunc: method is nil but tokenManager.ValidateAccessToken was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockValidateAccessToken.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, callInfo)
	mock.lockValidateAccessToken.Unlock()
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *tokenManagerMock) ValidateAccessTokenCalls() []struct {
	Token string
} {
	mock.lockValidateAccessToken.RLock()
	calls := mock.calls.ValidateAccessToken
	mock.lockValidateAccessToken.RUnlock()
	return calls
}
