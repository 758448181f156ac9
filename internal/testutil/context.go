package testutil

import (
	"context"

	"github.com/staffdesk/staffdesk/internal/types"
)

const DefaultUserID = "user_test"

func SetupContext() context.Context {
	ctx := context.Background()
	ctx = types.SetUserID(ctx, DefaultUserID)
	ctx = types.SetRequestID(ctx, types.GenerateUUID())
	return ctx
}
