package quote

import (
	"github.com/pkg/errors"
	"github.com/qmuntal/stateless"

	"github.com/nordbill/backoffice/quote/domain"
)

// nextStatus runs the quote lifecycle state machine for a single move.
// draft → sent → accepted or declined. Accepted and declined are terminal.
func nextStatus(current domain.Status, action domain.Action) (domain.Status, error) {
	machine := stateless.NewStateMachine(current)

	machine.Configure(domain.StatusDraft).
		Permit(domain.ActionMarkSent, domain.StatusSent)

	machine.Configure(domain.StatusSent).
		Permit(domain.ActionAccept, domain.StatusAccepted).
		Permit(domain.ActionDecline, domain.StatusDeclined)

	if err := machine.Fire(action); err != nil {
		return "", errors.Wrapf(ErrIllegalTransition, "cannot %s a %s quote", action, current)
	}

	next, ok := machine.MustState().(domain.Status)
	if !ok {
		return "", errors.Errorf("unexpected state machine state %v", machine.MustState())
	}

	return next, nil
}
