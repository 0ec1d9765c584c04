package dal

import (
	"context"

	"github.com/nordbill/backoffice/customer/domain"
)

//go:generate mockery --name Customers --output ./mocks
type Customers interface {
	GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error)
	GetCustomersWithActiveAgreement(ctx context.Context) ([]*domain.Customer, error)
}
