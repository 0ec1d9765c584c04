package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nordbill/backoffice/company/domain"
)

type Company struct {
	mock.Mock
}

func (m *Company) GetProfile(ctx context.Context) (*domain.Profile, error) {
	args := m.Called(ctx)

	var profile *domain.Profile
	if args.Get(0) != nil {
		profile = args.Get(0).(*domain.Profile)
	}

	return profile, args.Error(1)
}
