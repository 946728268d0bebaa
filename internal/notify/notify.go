package notify

import (
	"context"
	"errors"

	"github.com/jokistudio/portal/internal/domain/model"
)

// Dispatcher delivers a lifecycle event to the admins. Delivery is
// best-effort: callers log a failed dispatch and move on, the order
// mutation itself has already committed.
type Dispatcher interface {
	Notify(ctx context.Context, event model.Event) error
}

// Multi fans an event out to every configured dispatcher and reports
// the collected failures.
type Multi []Dispatcher

func (m Multi) Notify(ctx context.Context, event model.Event) error {
	var errs []error
	for _, d := range m {
		if err := d.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
