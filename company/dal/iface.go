package dal

import (
	"context"

	"github.com/nordbill/backoffice/company/domain"
)

//go:generate mockery --name Company --output ./mocks
type Company interface {
	GetProfile(ctx context.Context) (*domain.Profile, error)
}
