package service

import (
	"context"
	"runtime/debug"
	"time"

	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/metrics"
	"github.com/staffdesk/staffdesk/internal/types"
)

// run executes fn at the service boundary and wraps its result in the
// envelope. Reported errors keep their message. Anything else, panics
// included, is logged, sent to Sentry and replaced by fallback.
func run[T any](
	ctx context.Context,
	p ServiceParams,
	operation, fallback string,
	fn func(ctx context.Context) (T, error),
) types.Response[T] {
	return runCounted(ctx, p, operation, fallback, func(ctx context.Context) (T, *int, error) {
		data, err := fn(ctx)
		return data, nil, err
	})
}

// runCounted is run for verbs that may also report a total row count
func runCounted[T any](
	ctx context.Context,
	p ServiceParams,
	operation, fallback string,
	fn func(ctx context.Context) (T, *int, error),
) (resp types.Response[T]) {
	start := time.Now()
	span, ctx := p.Sentry.StartServiceSpan(ctx, operation)

	defer func() {
		if r := recover(); r != nil {
			err := ierr.NewErrorf("panic in %s: %v", operation, r).
				WithReportableDetails(map[string]any{"stack": string(debug.Stack())}).
				Mark(ierr.ErrSystem)
			resp = internalFailure[T](ctx, p, operation, fallback, err)
		}

		p.Metrics.Observe(operation, outcome(resp), time.Since(start))
		if span != nil {
			span.Finish()
		}
	}()

	data, count, err := fn(ctx)
	if err != nil {
		if ierr.IsReported(err) {
			p.Logger.Debugw("service call failed",
				"operation", operation,
				"request_id", types.GetRequestID(ctx),
				"error", err,
			)
			return types.Fail[T](err, err.Error())
		}
		return internalFailure[T](ctx, p, operation, fallback, err)
	}

	if count != nil {
		return types.OKWithCount(data, *count)
	}
	return types.OK(data)
}

func internalFailure[T any](ctx context.Context, p ServiceParams, operation, fallback string, err error) types.Response[T] {
	p.Logger.Errorw("service call failed with an internal error",
		"operation", operation,
		"request_id", types.GetRequestID(ctx),
		"user_id", types.GetUserID(ctx),
		"error", err,
	)
	p.Sentry.CaptureServiceError(ctx, operation, err)
	return types.Fail[T](err, fallback)
}

func outcome[T any](resp types.Response[T]) string {
	switch {
	case resp.Success:
		return metrics.OutcomeSuccess
	case ierr.IsReported(resp.Cause()):
		return metrics.OutcomeFailure
	default:
		return metrics.OutcomeInternal
	}
}
