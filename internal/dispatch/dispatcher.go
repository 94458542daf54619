package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/alamintokder/bazar-sodai/internal/notify"
	"github.com/alamintokder/bazar-sodai/internal/order"
)

var (
	// ErrMisconfigured means delivery cannot work until the operator fixes the
	// notifier setup. No delivery is attempted.
	ErrMisconfigured = errors.New("order delivery is not configured")

	// ErrDeliveryFailed wraps a transport failure during the single delivery
	// attempt. The cause is carried for logging, never shown to the customer.
	ErrDeliveryFailed = errors.New("order delivery failed")
)

// Result is the terminal state of one dispatch attempt.
type Result int

const (
	ResultSent Result = iota
	ResultMisconfigured
	ResultDeliveryFailed
)

func (r Result) String() string {
	switch r {
	case ResultSent:
		return "sent"
	case ResultMisconfigured:
		return "misconfigured"
	case ResultDeliveryFailed:
		return "delivery_failed"
	default:
		return "unknown"
	}
}

// Dispatcher hands rendered order summaries to the injected notifier. It
// performs exactly one delivery attempt per call and never retries; queueing
// and retry, where wanted, belong to the caller.
type Dispatcher struct {
	notifier notify.Notifier
}

// NewDispatcher creates a dispatcher around the given notifier. A nil
// notifier is allowed and makes every dispatch fail as misconfigured, so the
// storefront can keep serving the catalog while delivery setup is broken.
func NewDispatcher(notifier notify.Notifier) *Dispatcher {
	return &Dispatcher{notifier: notifier}
}

// Dispatch attempts delivery of the summary once. The summary's rendered body
// and subject are passed through untouched. The call blocks for as long as
// the transport does; wrap ctx with a timeout to bound it.
func (d *Dispatcher) Dispatch(ctx context.Context, summary *order.Summary) (Result, error) {
	if d.notifier == nil {
		return ResultMisconfigured, ErrMisconfigured
	}

	if err := d.notifier.Send(ctx, summary.Subject, summary.Body); err != nil {
		if errors.Is(err, notify.ErrNotConfigured) {
			return ResultMisconfigured, fmt.Errorf("%w: %w", ErrMisconfigured, err)
		}
		return ResultDeliveryFailed, fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	return ResultSent, nil
}
