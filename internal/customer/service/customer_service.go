package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/itsaryankaushik/Shipsy-sub001/internal/customer/domain"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/customer/dto"
	apperrors "github.com/itsaryankaushik/Shipsy-sub001/internal/errors"
)

type CustomerService struct {
	repo domain.CustomerRepository
}

func NewCustomerService(repo domain.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) Create(ctx context.Context, ownerID string, input dto.CreateCustomerInput) (*domain.Customer, error) {
	now := time.Now()
	customer := &domain.Customer{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

func (s *CustomerService) Get(ctx context.Context, ownerID, id string) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperrors.ErrCustomerNotFound
	}

	return customer, nil
}

func (s *CustomerService) List(ctx context.Context, ownerID string, q domain.ListQuery) ([]domain.Customer, int, error) {
	return s.repo.List(ctx, ownerID, q.Clamp())
}

func (s *CustomerService) Update(ctx context.Context, ownerID, id string, input dto.UpdateCustomerInput) (*domain.Customer, error) {
	customer, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}

	updated, err := s.repo.Update(ctx, customer)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.ErrCustomerNotFound
	}

	return updated, nil
}

func (s *CustomerService) Delete(ctx context.Context, ownerID, id string) error {
	deleted, err := s.repo.Delete(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrCustomerNotFound
	}

	return nil
}
