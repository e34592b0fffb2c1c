package domain

import "time"

// Customer belongs to exactly one shop owner; every query is scoped by
// OwnerID so owners never see each other's records.
type Customer struct {
	ID        string
	OwnerID   string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// ListQuery carries pagination and the optional free-text search.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
}

func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Clamp normalizes out-of-range pagination to safe bounds.
func (q ListQuery) Clamp() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageLimit
	}
	if q.Limit > MaxPageLimit {
		q.Limit = MaxPageLimit
	}

	return q
}
