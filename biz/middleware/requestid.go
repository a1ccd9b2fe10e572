package middleware

import (
	"context"

	"github.com/atarrias/envault/pkg/common"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// RequestID returns a middleware that tags every request with a
// correlation ID. An inbound X-Request-Id is honored, otherwise a fresh
// UUID is generated; the ID is stored in context and echoed on the
// response.
func RequestID() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		id := string(c.GetHeader(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}

		ctx = common.ContextWithRequestID(ctx, id)
		c.Response.Header.Set(requestIDHeader, id)

		c.Next(ctx)
	}
}
