package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	customerdomain "github.com/itsaryankaushik/Shipsy-sub001/internal/customer/domain"
	apperrors "github.com/itsaryankaushik/Shipsy-sub001/internal/errors"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/shipment/domain"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/shipment/dto"
)

type ShipmentService struct {
	repo      domain.ShipmentRepository
	customers customerdomain.CustomerRepository
}

func NewShipmentService(repo domain.ShipmentRepository, customers customerdomain.CustomerRepository) *ShipmentService {
	return &ShipmentService{repo: repo, customers: customers}
}

// Create validates that the customer exists and belongs to the owner before
// persisting the shipment.
func (s *ShipmentService) Create(ctx context.Context, ownerID string, input dto.CreateShipmentInput) (*domain.Shipment, error) {
	customer, err := s.customers.GetByID(ctx, ownerID, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperrors.NewValidationError("customerId", "customer does not exist")
	}

	if input.EstimatedDeliveryDate.Before(input.StartDate) {
		return nil, apperrors.NewValidationError("estimatedDeliveryDate", "must not be before startDate")
	}

	now := time.Now()
	shipment := &domain.Shipment{
		ID:                    uuid.NewString(),
		OwnerID:               ownerID,
		CustomerID:            input.CustomerID,
		Type:                  domain.ShipmentType(input.Type),
		Mode:                  domain.ShipmentMode(input.Mode),
		Cost:                  input.Cost,
		StartDate:             input.StartDate,
		EstimatedDeliveryDate: input.EstimatedDeliveryDate,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := s.repo.Create(ctx, shipment); err != nil {
		return nil, err
	}

	return shipment, nil
}

func (s *ShipmentService) Get(ctx context.Context, ownerID, id string) (*domain.Shipment, error) {
	shipment, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, apperrors.ErrShipmentNotFound
	}

	return shipment, nil
}

func (s *ShipmentService) List(ctx context.Context, ownerID string, f domain.Filter) ([]domain.Shipment, int, error) {
	return s.repo.List(ctx, ownerID, f.Clamp())
}

func (s *ShipmentService) Update(ctx context.Context, ownerID, id string, input dto.UpdateShipmentInput) (*domain.Shipment, error) {
	shipment, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		shipment.Type = domain.ShipmentType(*input.Type)
	}
	if input.Mode != nil {
		shipment.Mode = domain.ShipmentMode(*input.Mode)
	}
	if input.Cost != nil {
		shipment.Cost = *input.Cost
	}
	if input.EstimatedDeliveryDate != nil {
		if input.EstimatedDeliveryDate.Before(shipment.StartDate) {
			return nil, apperrors.NewValidationError("estimatedDeliveryDate", "must not be before startDate")
		}
		shipment.EstimatedDeliveryDate = *input.EstimatedDeliveryDate
	}

	updated, err := s.repo.Update(ctx, shipment)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.ErrShipmentNotFound
	}

	return updated, nil
}

// MarkDelivered stamps the delivery date. Re-delivering an already delivered
// shipment is a no-op on the flag but refreshes nothing.
func (s *ShipmentService) MarkDelivered(ctx context.Context, ownerID, id string) (*domain.Shipment, error) {
	shipment, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if shipment.IsDelivered {
		return shipment, nil
	}

	now := time.Now()
	shipment.IsDelivered = true
	shipment.DeliveryDate = &now

	updated, err := s.repo.Update(ctx, shipment)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.ErrShipmentNotFound
	}

	return updated, nil
}

func (s *ShipmentService) Delete(ctx context.Context, ownerID, id string) error {
	deleted, err := s.repo.Delete(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrShipmentNotFound
	}

	return nil
}

func (s *ShipmentService) Stats(ctx context.Context, ownerID string) (*domain.Stats, error) {
	return s.repo.Stats(ctx, ownerID)
}
