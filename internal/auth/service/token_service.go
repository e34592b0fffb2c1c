package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/itsaryankaushik/Shipsy-sub001/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "github.com/itsaryankaushik/Shipsy-sub001/internal/errors"
)

// TokenClass selects which signing secret a token is bound to. A token issued
// under one class never verifies under the other.
type TokenClass string

const (
	AccessToken  TokenClass = "access"
	RefreshToken TokenClass = "refresh"
)

type TokenGenerator interface {
	Generate(userID, email string) (accessToken, refreshToken string, err error)
	Verify(tokenString string, class TokenClass) (*Claims, error)
	AccessTokenTTL() time.Duration
	RefreshTokenTTL() time.Duration
}

type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// TokenService signs and verifies the access/refresh token pair. Secrets are
// injected once at construction and never read from global state.
type TokenService struct {
	accessSecret    []byte
	refreshSecret   []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		accessSecret:    []byte(accessSecret),
		refreshSecret:   []byte(refreshSecret),
		accessTokenTTL:  accessTTL,
		refreshTokenTTL: refreshTTL,
	}
}

// Issue signs a single token of the given class for the identity. The jti
// claim gets a fresh UUID so a revocation side-table could key on it later.
func (ts *TokenService) Issue(userID, email string, class TokenClass) (string, error) {
	secret, ttl, err := ts.classParams(class)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", class, err)
	}

	return signed, nil
}

// Generate issues a fresh access/refresh pair for the identity.
func (ts *TokenService) Generate(userID, email string) (string, string, error) {
	accessToken, err := ts.Issue(userID, email, AccessToken)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := ts.Issue(userID, email, RefreshToken)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// Verify parses and validates a token against the class secret. It fails
// closed: any defect (bad signature, wrong class, malformed structure, expiry)
// comes back as ErrInvalidToken without distinguishing the cause. The expiry
// window is exclusive: a token checked exactly at exp is already expired.
func (ts *TokenService) Verify(tokenString string, class TokenClass) (*Claims, error) {
	secret, _, err := ts.classParams(class)
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

func (ts *TokenService) AccessTokenTTL() time.Duration {
	return ts.accessTokenTTL
}

func (ts *TokenService) RefreshTokenTTL() time.Duration {
	return ts.refreshTokenTTL
}

func (ts *TokenService) classParams(class TokenClass) ([]byte, time.Duration, error) {
	switch class {
	case AccessToken:
		return ts.accessSecret, ts.accessTokenTTL, nil
	case RefreshToken:
		return ts.refreshSecret, ts.refreshTokenTTL, nil
	default:
		return nil, 0, fmt.Errorf("unknown token class %q", class)
	}
}
