package invoicing

import (
	"github.com/pkg/errors"
	"github.com/qmuntal/stateless"

	"github.com/nordbill/backoffice/invoicing/domain"
)

// nextStatus runs the invoice lifecycle state machine for a single move.
// pending → sent → paid, with cancellation allowed while not terminal.
// markPaid is also permitted straight from pending, for payments recorded
// manually out of band before the invoice was ever emailed.
func nextStatus(current domain.Status, action domain.Action) (domain.Status, error) {
	machine := stateless.NewStateMachine(current)

	machine.Configure(domain.StatusPending).
		Permit(domain.ActionMarkSent, domain.StatusSent).
		Permit(domain.ActionMarkPaid, domain.StatusPaid).
		Permit(domain.ActionCancel, domain.StatusCancelled)

	machine.Configure(domain.StatusSent).
		Permit(domain.ActionMarkPaid, domain.StatusPaid).
		Permit(domain.ActionCancel, domain.StatusCancelled)

	// paid and cancelled are terminal: no triggers configured

	if err := machine.Fire(action); err != nil {
		return "", errors.Wrapf(ErrIllegalTransition, "cannot %s a %s invoice", action, current)
	}

	next, ok := machine.MustState().(domain.Status)
	if !ok {
		return "", errors.Errorf("unexpected state machine state %v", machine.MustState())
	}

	return next, nil
}
