package middleware

import (
	"context"
	"runtime/debug"

	"github.com/atarrias/envault/pkg/common"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Recovery returns a middleware that recovers from panics. The stack trace
// stays in the server log; the client only ever sees a generic 500 body.
func Recovery() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				stack := debug.Stack()
				hlog.CtxErrorf(ctx, "panic recovered: %v request_id=%s\n%s",
					err, common.GetRequestID(ctx), string(stack))

				c.JSON(consts.StatusInternalServerError, common.ErrorResponse{
					Error:   "internal_error",
					Message: "internal server error",
				})
				c.Abort()
			}
		}()

		c.Next(ctx)
	}
}
