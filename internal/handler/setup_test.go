package handler_test

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"agenda/internal/auth"
	"agenda/internal/config"
	"agenda/internal/handler"
	"agenda/internal/model"
	"agenda/internal/router"
	"agenda/internal/service"
)

const testJWTSecret = "test-secret"

// MockContactService is a mock implementation of service.ContactService.
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) List(ctx context.Context) ([]model.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

func (m *MockContactService) Get(ctx context.Context, id uint) (*model.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *MockContactService) Create(ctx context.Context, contact *model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactService) Update(ctx context.Context, id uint, contact *model.Contact) error {
	args := m.Called(ctx, id, contact)
	return args.Error(0)
}

func (m *MockContactService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCardService is a mock implementation of service.CardService.
type MockCardService struct {
	mock.Mock
}

func (m *MockCardService) List(ctx context.Context) ([]model.Card, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Card), args.Error(1)
}

func (m *MockCardService) Get(ctx context.Context, id uint) (*model.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Card), args.Error(1)
}

func (m *MockCardService) Create(ctx context.Context, card *model.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardService) Update(ctx context.Context, id uint, card *model.Card) error {
	args := m.Called(ctx, id, card)
	return args.Error(0)
}

func (m *MockCardService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAccountRepository is a mock implementation of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *model.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

type testMocks struct {
	contacts    *MockContactService
	cards       *MockCardService
	accountRepo *MockAccountRepository
	jwt         *auth.JWTService
}

// newTestServer wires the full router with mocked services so tests exercise
// binding, validation and error mapping end to end.
func newTestServer() (*echo.Echo, *testMocks) {
	mocks := &testMocks{
		contacts:    new(MockContactService),
		cards:       new(MockCardService),
		accountRepo: new(MockAccountRepository),
		jwt:         auth.NewJWTService(testJWTSecret),
	}

	cfg := &config.Config{
		JWTSecret:  testJWTSecret,
		CORSOrigin: "*",
	}

	authService := service.NewAuthService(mocks.accountRepo, mocks.jwt)

	e := echo.New()
	router.Register(
		e,
		cfg,
		mocks.jwt,
		handler.NewContactHandler(mocks.contacts),
		handler.NewCardHandler(mocks.cards),
		handler.NewAuthHandler(authService),
	)
	return e, mocks
}
