package notify

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by a notifier that cannot deliver because a
// required credential or destination is missing. No delivery is attempted
// when this is returned.
var ErrNotConfigured = errors.New("notifier is not configured")

// Notifier delivers a rendered order notification to its destination. The
// destination is part of the notifier's own configuration; callers only
// supply the content.
type Notifier interface {
	Send(ctx context.Context, subject, body string) error
	Name() string
}
