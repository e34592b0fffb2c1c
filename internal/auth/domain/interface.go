package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/itsaryankaushik/Shipsy-sub001/internal/auth/domain UserRepository

// UserRepository is the persistence contract the auth service depends on.
// Lookup methods return (nil, nil) when no row matches.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) error
	UpdateProfile(ctx context.Context, id, name, phone string) (*User, error)
}
