package types

import (
	"context"
)

type contextKey string

const (
	ctxRequestID contextKey = "request_id"
	ctxUserID    contextKey = "user_id"
)

// GetUserID returns the authenticated caller, empty for anonymous calls
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(ctxUserID).(string)
	return userID
}

func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxUserID, userID)
}

// GetRequestID returns the id the HTTP layer stamped on the call. Service
// logs and Sentry reports carry it.
func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(ctxRequestID).(string)
	return requestID
}

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxRequestID, requestID)
}
