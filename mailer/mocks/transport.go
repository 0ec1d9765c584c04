package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nordbill/backoffice/mailer"
)

type Transport struct {
	mock.Mock
}

func (m *Transport) Send(ctx context.Context, msg *mailer.Message) error {
	args := m.Called(ctx, msg)

	return args.Error(0)
}
