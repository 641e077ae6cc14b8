// Package lifecycle owns the order status machine. Driver and admin
// handlers go through Apply instead of comparing status strings themselves,
// so the legal transitions live in exactly one place.
package lifecycle

import (
	"fmt"
	"time"

	"github.com/MRsugoii/skycar-system-sub001/internal/models"
)

// Action names a lifecycle transition trigger.
type Action string

const (
	ActionAssignDriver  Action = "assign_driver"
	ActionStartTrip     Action = "start_trip"
	ActionPickUp        Action = "pick_up"
	ActionComplete      Action = "complete"
	ActionCancel        Action = "cancel"
	ActionRequestRefund Action = "request_refund"
)

// transitions maps source status × action to target status. An absent
// entry means the action is rejected from that status; nothing is written.
var transitions = map[string]map[Action]string{
	models.OrderStatusPending: {
		ActionAssignDriver:  models.OrderStatusConfirmed,
		ActionCancel:        models.OrderStatusCancelled,
		ActionRequestRefund: models.OrderStatusRefundPending,
	},
	models.OrderStatusConfirmed: {
		ActionStartTrip:     models.OrderStatusEnRoute,
		ActionCancel:        models.OrderStatusCancelled,
		ActionRequestRefund: models.OrderStatusRefundPending,
	},
	models.OrderStatusEnRoute: {
		ActionPickUp:        models.OrderStatusPickedUp,
		ActionRequestRefund: models.OrderStatusRefundPending,
	},
	models.OrderStatusPickedUp: {
		ActionComplete:      models.OrderStatusCompleted,
		ActionRequestRefund: models.OrderStatusRefundPending,
	},
	// completed and cancelled are terminal for trip flow; refund_pending
	// waits for an external admin process that is not modeled here.
}

// TransitionError reports an action attempted from a status that does not
// allow it.
type TransitionError struct {
	From   string
	Action Action
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s an order in status %q", e.Action, e.From)
}

// CanApply reports whether the action is legal from the given status.
func CanApply(status string, action Action) bool {
	_, ok := transitions[status][action]
	return ok
}

// Target returns the status the action leads to from the given status.
func Target(status string, action Action) (string, bool) {
	next, ok := transitions[status][action]
	return next, ok
}

// Apply runs the action against the order in place: it moves the status and
// stamps the matching audit timestamp. A rejected action leaves the order
// untouched and returns a TransitionError.
func Apply(order *models.Order, action Action, now time.Time) error {
	next, ok := transitions[order.Status][action]
	if !ok {
		return &TransitionError{From: order.Status, Action: action}
	}

	order.Status = next
	switch next {
	case models.OrderStatusConfirmed:
		order.ConfirmedAt = &now
	case models.OrderStatusEnRoute:
		order.EnRouteAt = &now
	case models.OrderStatusPickedUp:
		order.PickedAt = &now
	case models.OrderStatusCompleted:
		order.CompletedAt = &now
	case models.OrderStatusCancelled:
		order.CancelledAt = &now
	case models.OrderStatusRefundPending:
		order.RefundRequestedAt = &now
	}
	return nil
}

// IsTerminal reports whether no trip-flow action can move the order further.
func IsTerminal(status string) bool {
	return len(transitions[status]) == 0
}
