package errutil

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dataprep/pkg/utils/logging"
)

// HandleError logs err with the context logger and, when a Sentry client is
// bound, reports it with goerr values as extras and the run ID as a tag. A
// nil err is ignored.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if runID, ok := logging.RunIDFrom(ctx); ok {
			scope.SetTag("run_id", runID.String())
		}
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})

	attrs := []any{"error", err}
	if hub.Client() != nil {
		if evID := hub.CaptureException(err); evID != nil {
			attrs = append(attrs, "sentry.EventID", *evID)
		}
	}

	logging.From(ctx).Error(msg, attrs...)
}
