package middleware

import (
	"context"
	"time"

	"github.com/atarrias/envault/pkg/common"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Logging returns a middleware that logs request and response information.
func Logging() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()

		c.Next(ctx)

		latency := time.Since(start)
		method := string(c.Request.Method())
		path := string(c.Request.URI().Path())
		statusCode := c.Response.StatusCode()
		clientIP := c.ClientIP()

		if userID, ok := common.GetUserID(ctx); ok {
			hlog.CtxInfof(ctx, "[%s] %s %s %d %v request_id=%s user_id=%d",
				clientIP,
				method,
				path,
				statusCode,
				latency,
				common.GetRequestID(ctx),
				userID,
			)
			return
		}

		hlog.CtxInfof(ctx, "[%s] %s %s %d %v request_id=%s",
			clientIP,
			method,
			path,
			statusCode,
			latency,
			common.GetRequestID(ctx),
		)
	}
}
