package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alamintokder/bazar-sodai/internal/notify"
	"github.com/alamintokder/bazar-sodai/internal/order"
)

func testSummary() *order.Summary {
	return &order.Summary{
		Name:       "Rahim Uddin",
		Subject:    "New Order from Bazar-Sodai",
		Body:       "New Order Received!",
		TotalPrice: 190,
	}
}

func TestDispatch_Sent(t *testing.T) {
	mock := notify.NewMockNotifier()
	d := NewDispatcher(mock)

	result, err := d.Dispatch(context.Background(), testSummary())
	require.NoError(t, err)
	assert.Equal(t, ResultSent, result)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "New Order from Bazar-Sodai", calls[0].Subject)
	assert.Equal(t, "New Order Received!", calls[0].Body)
}

func TestDispatch_NilNotifierMisconfigured(t *testing.T) {
	d := NewDispatcher(nil)

	result, err := d.Dispatch(context.Background(), testSummary())
	assert.Equal(t, ResultMisconfigured, result)
	assert.ErrorIs(t, err, ErrMisconfigured)
}

func TestDispatch_NotConfiguredSend(t *testing.T) {
	mock := notify.NewMockNotifier()
	mock.Fail(notify.ErrNotConfigured)
	d := NewDispatcher(mock)

	result, err := d.Dispatch(context.Background(), testSummary())
	assert.Equal(t, ResultMisconfigured, result)
	assert.ErrorIs(t, err, ErrMisconfigured)
}

// A failing notifier yields DeliveryFailed with the cause attached, and the
// dispatcher attempts delivery exactly once.
func TestDispatch_DeliveryFailedNoRetry(t *testing.T) {
	cause := errors.New("connection refused")
	mock := notify.NewMockNotifier()
	mock.Fail(cause)
	d := NewDispatcher(mock)

	result, err := d.Dispatch(context.Background(), testSummary())
	assert.Equal(t, ResultDeliveryFailed, result)
	assert.ErrorIs(t, err, ErrDeliveryFailed)
	assert.ErrorIs(t, err, cause)

	assert.Len(t, mock.Calls(), 1)
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "sent", ResultSent.String())
	assert.Equal(t, "misconfigured", ResultMisconfigured.String())
	assert.Equal(t, "delivery_failed", ResultDeliveryFailed.String())
}
