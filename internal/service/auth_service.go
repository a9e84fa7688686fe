package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"agenda/internal/auth"
	apperrors "agenda/internal/errors"
	"agenda/internal/model"
	"agenda/internal/repository"
)

const bcryptCost = 10

// SignupInput carries the fields required to register an account.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Birthday  string
	Password  string
}

// AuthService handles registration and login.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*model.Account, error)
	Login(ctx context.Context, email, password string) (token string, err error)
}

type authService struct {
	accountRepo repository.AccountRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(accountRepo repository.AccountRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		accountRepo: accountRepo,
		jwtService:  jwtService,
	}
}

// Signup creates a new account with a hashed password. The email existence
// check gives the friendly error; the unique index on email is what actually
// guarantees uniqueness when two signups race, and the resulting
// duplicate-key error is mapped to the same failure.
func (s *authService) Signup(ctx context.Context, input SignupInput) (*model.Account, error) {
	existing, err := s.accountRepo.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateAccount
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check account existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &model.Account{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Birthday:     input.Birthday,
		PasswordHash: string(hashedPassword),
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateAccount
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	return account, nil
}

// Login verifies the credentials and returns a signed token. Unknown email
// and wrong password produce the identical error so callers cannot enumerate
// accounts.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(account.ID)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	return token, nil
}
