package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_shipment_repository.go -package=mocks github.com/itsaryankaushik/Shipsy-sub001/internal/shipment/domain ShipmentRepository

// ShipmentRepository scopes every operation to an owner. Lookups return
// (nil, nil) when no row matches; Delete reports whether a row was removed.
type ShipmentRepository interface {
	Create(ctx context.Context, shipment *Shipment) error
	GetByID(ctx context.Context, ownerID, id string) (*Shipment, error)
	List(ctx context.Context, ownerID string, f Filter) ([]Shipment, int, error)
	Update(ctx context.Context, shipment *Shipment) (*Shipment, error)
	Delete(ctx context.Context, ownerID, id string) (bool, error)
	Stats(ctx context.Context, ownerID string) (*Stats, error)
}
