package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/itsaryankaushik/Shipsy-sub001/internal/auth/domain"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/auth/dto"
	apperrors "github.com/itsaryankaushik/Shipsy-sub001/internal/errors"
)

const tokenType = "Bearer"

// UserService orchestrates the credential lifecycle. Every operation is a
// single read plus at most a single write; failed persistence calls surface
// immediately, nothing is retried here.
type UserService struct {
	repo   domain.UserRepository
	tokens TokenGenerator
	hasher PasswordHasher
}

func NewUserService(repo domain.UserRepository, tokens TokenGenerator, hasher PasswordHasher) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
		hasher: hasher,
	}
}

// Register creates a new shop-owner account. It does not issue tokens; login
// is a separate explicit step.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	email := normalizeEmail(input.Email)

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrEmailAlreadyInUse
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         input.Name,
		Phone:        input.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and issues a token pair. An unknown email
// and a wrong password produce the same error so callers cannot enumerate
// accounts.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginOutput, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return nil, err
	}

	if user == nil || !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginOutput{
		User:   dto.NewUserOutput(user),
		Tokens: *pair,
	}, nil
}

// Refresh rotates a token pair. The user record is re-read so a deleted
// account cannot keep refreshing; the old refresh token is not revoked
// server-side (tokens are stateless and trusted until expiry).
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	claims, err := s.tokens.Verify(refreshToken, RefreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrInvalidToken
	}

	return s.issuePair(user)
}

// ChangePassword re-hashes after verifying the current password. Tokens
// issued before the change stay valid until natural expiry.
func (s *UserService) ChangePassword(ctx context.Context, userID string, input dto.ChangePasswordInput) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.ErrUserNotFound
	}

	if !s.hasher.Verify(input.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	passwordHash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePasswordHash(ctx, userID, passwordHash)
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, input dto.UpdateProfileInput) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	name := user.Name
	if input.Name != nil {
		name = *input.Name
	}

	phone := user.Phone
	if input.Phone != nil {
		phone = *input.Phone
	}

	updated, err := s.repo.UpdateProfile(ctx, userID, name, phone)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.ErrUserNotFound
	}

	return updated, nil
}

func (s *UserService) issuePair(user *domain.User) (*dto.TokenPair, error) {
	accessToken, refreshToken, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    tokenType,
		ExpiresIn:    int(s.tokens.AccessTokenTTL().Seconds()),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
