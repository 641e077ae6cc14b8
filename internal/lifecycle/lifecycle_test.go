package lifecycle

import (
	"testing"
	"time"

	"github.com/MRsugoii/skycar-system-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingOrder() *models.Order {
	return &models.Order{
		OrderNo: "SC-20260828-0001",
		Status:  models.OrderStatusPending,
	}
}

func TestApplyFullTripChain(t *testing.T) {
	order := pendingOrder()
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	require.NoError(t, Apply(order, ActionAssignDriver, now))
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	require.NotNil(t, order.ConfirmedAt)
	assert.Equal(t, now, *order.ConfirmedAt)

	require.NoError(t, Apply(order, ActionStartTrip, now.Add(time.Hour)))
	assert.Equal(t, models.OrderStatusEnRoute, order.Status)
	require.NotNil(t, order.EnRouteAt)

	require.NoError(t, Apply(order, ActionPickUp, now.Add(2*time.Hour)))
	assert.Equal(t, models.OrderStatusPickedUp, order.Status)
	require.NotNil(t, order.PickedAt)

	require.NoError(t, Apply(order, ActionComplete, now.Add(3*time.Hour)))
	assert.Equal(t, models.OrderStatusCompleted, order.Status)
	require.NotNil(t, order.CompletedAt)
	assert.True(t, IsTerminal(order.Status))
}

func TestApplyRepeatedStartTripIsRejected(t *testing.T) {
	order := pendingOrder()
	now := time.Now()

	require.NoError(t, Apply(order, ActionAssignDriver, now))
	require.NoError(t, Apply(order, ActionStartTrip, now))
	firstStamp := order.EnRouteAt

	err := Apply(order, ActionStartTrip, now.Add(time.Minute))

	var trErr *TransitionError
	require.ErrorAs(t, err, &trErr)
	assert.Equal(t, models.OrderStatusEnRoute, trErr.From)
	assert.Equal(t, models.OrderStatusEnRoute, order.Status)
	assert.Equal(t, firstStamp, order.EnRouteAt)
}

func TestApplyCannotSkipSteps(t *testing.T) {
	order := pendingOrder()
	now := time.Now()
	require.NoError(t, Apply(order, ActionAssignDriver, now))

	// picked_up requires en_route first
	err := Apply(order, ActionPickUp, now)
	var trErr *TransitionError
	require.ErrorAs(t, err, &trErr)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	assert.Nil(t, order.PickedAt)

	// completing straight from confirmed is also out
	err = Apply(order, ActionComplete, now)
	require.ErrorAs(t, err, &trErr)
	assert.Nil(t, order.CompletedAt)
}

func TestApplyCancelOnlyBeforeTripStarts(t *testing.T) {
	order := pendingOrder()
	now := time.Now()

	require.NoError(t, Apply(order, ActionCancel, now))
	assert.Equal(t, models.OrderStatusCancelled, order.Status)
	require.NotNil(t, order.CancelledAt)
	assert.True(t, IsTerminal(order.Status))

	// en_route orders can no longer be cancelled
	order = pendingOrder()
	require.NoError(t, Apply(order, ActionAssignDriver, now))
	require.NoError(t, Apply(order, ActionStartTrip, now))

	err := Apply(order, ActionCancel, now)
	var trErr *TransitionError
	require.ErrorAs(t, err, &trErr)
	assert.Equal(t, models.OrderStatusEnRoute, order.Status)
}

func TestApplyRefundBlocksCompletion(t *testing.T) {
	order := pendingOrder()
	now := time.Now()

	require.NoError(t, Apply(order, ActionAssignDriver, now))
	require.NoError(t, Apply(order, ActionStartTrip, now))
	require.NoError(t, Apply(order, ActionPickUp, now))

	require.NoError(t, Apply(order, ActionRequestRefund, now))
	assert.Equal(t, models.OrderStatusRefundPending, order.Status)
	require.NotNil(t, order.RefundRequestedAt)

	// the driver's complete action no longer applies
	err := Apply(order, ActionComplete, now)
	var trErr *TransitionError
	require.ErrorAs(t, err, &trErr)
	assert.Equal(t, models.OrderStatusRefundPending, order.Status)
	assert.Nil(t, order.CompletedAt)
}

func TestApplyRefundAllowedFromAnyPreCompletionState(t *testing.T) {
	for _, status := range []string{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusEnRoute,
		models.OrderStatusPickedUp,
	} {
		order := &models.Order{Status: status}
		require.NoError(t, Apply(order, ActionRequestRefund, time.Now()), "from %s", status)
		assert.Equal(t, models.OrderStatusRefundPending, order.Status)
	}

	order := &models.Order{Status: models.OrderStatusCompleted}
	err := Apply(order, ActionRequestRefund, time.Now())
	var trErr *TransitionError
	require.ErrorAs(t, err, &trErr)
}

func TestCanApplyMatchesTable(t *testing.T) {
	assert.True(t, CanApply(models.OrderStatusPending, ActionAssignDriver))
	assert.True(t, CanApply(models.OrderStatusConfirmed, ActionStartTrip))
	assert.False(t, CanApply(models.OrderStatusPending, ActionStartTrip))
	assert.False(t, CanApply(models.OrderStatusCompleted, ActionComplete))
	assert.False(t, CanApply(models.OrderStatusCancelled, ActionAssignDriver))
	assert.False(t, CanApply(models.OrderStatusRefundPending, ActionComplete))
}

func TestTarget(t *testing.T) {
	next, ok := Target(models.OrderStatusEnRoute, ActionPickUp)
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusPickedUp, next)

	_, ok = Target(models.OrderStatusEnRoute, ActionCancel)
	assert.False(t, ok)
}
