package service

import (
	"context"
	"fmt"

	"alugacar-backend/internal/domain"
	"alugacar-backend/internal/logger"
	"alugacar-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) Register(ctx context.Context, input CustomerInput) (*domain.Customer, error) {
	customer, err := domain.NewCustomer(input.Name, input.TaxID, input.DriverLicenseID, input.Email)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, &customer); err != nil {
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}
	logger.Info("customer registered", "tax_id", customer.TaxID)
	return &customer, nil
}

func (s *customerService) GetByTaxID(ctx context.Context, taxID string) (*domain.Customer, error) {
	return s.customerRepo.GetByTaxID(ctx, taxID)
}
