package service

import (
	"context"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(ctx context.Context, customer *domain.CustomerData) error {
	if customer.FirstName == "" {
		return domain.NewValidationError("first_name", "is required")
	}
	if customer.LastName == "" {
		return domain.NewValidationError("last_name", "is required")
	}
	if customer.IDNumber == "" {
		return domain.NewValidationError("id_number", "is required")
	}
	return s.customerRepo.Create(ctx, customer)
}

func (s *customerService) GetCustomer(ctx context.Context, id int32) (*domain.CustomerData, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context, page, pageSize int32) ([]domain.CustomerData, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.customerRepo.List(ctx, page, pageSize)
}

func (s *customerService) UpdateCustomer(ctx context.Context, customer *domain.CustomerData) error {
	if _, err := s.customerRepo.GetByID(ctx, customer.ID); err != nil {
		return err
	}
	return s.customerRepo.Update(ctx, customer)
}
