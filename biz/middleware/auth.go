package middleware

import (
	"context"
	"strconv"

	"github.com/atarrias/envault/pkg/common"
	"github.com/cloudwego/hertz/pkg/app"
)

// Auth returns a middleware that extracts caller identity from request
// headers and adds it to the context. It does NOT enforce authentication;
// no endpoint requires credentials. The identity, when present, only
// enriches context for logging and auditing by downstream consumers.
func Auth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if userHeader := c.GetHeader("X-User-Id"); len(userHeader) > 0 {
			if id, err := strconv.Atoi(string(userHeader)); err == nil && id > 0 {
				ctx = common.ContextWithUserID(ctx, id)
			}
		}

		c.Next(ctx)
	}
}
