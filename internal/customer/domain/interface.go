package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_customer_repository.go -package=mocks github.com/itsaryankaushik/Shipsy-sub001/internal/customer/domain CustomerRepository

// CustomerRepository scopes every operation to an owner. Lookups return
// (nil, nil) when no row matches; Delete reports whether a row was removed.
type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	GetByID(ctx context.Context, ownerID, id string) (*Customer, error)
	List(ctx context.Context, ownerID string, q ListQuery) ([]Customer, int, error)
	Update(ctx context.Context, customer *Customer) (*Customer, error)
	Delete(ctx context.Context, ownerID, id string) (bool, error)
}
