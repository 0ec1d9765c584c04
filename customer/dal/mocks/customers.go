package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nordbill/backoffice/customer/domain"
)

type Customers struct {
	mock.Mock
}

func (m *Customers) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)

	var customer *domain.Customer
	if args.Get(0) != nil {
		customer = args.Get(0).(*domain.Customer)
	}

	return customer, args.Error(1)
}

func (m *Customers) GetCustomersWithActiveAgreement(ctx context.Context) ([]*domain.Customer, error) {
	args := m.Called(ctx)

	var customers []*domain.Customer
	if args.Get(0) != nil {
		customers = args.Get(0).([]*domain.Customer)
	}

	return customers, args.Error(1)
}
