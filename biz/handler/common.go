package handler

import (
	"context"

	"github.com/atarrias/envault/biz/service"
	"github.com/atarrias/envault/pkg/common"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Handler exposes the environment and variable endpoints.
type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// writeError is the single mapping from the service error taxonomy to HTTP
// responses. Not-found sentinels become 404, validation failures 400 with
// the failing constraint's message, everything else a generic 500 whose
// detail is logged server-side only.
func writeError(ctx context.Context, c *app.RequestContext, err error) {
	switch {
	case service.IsNotFound(err):
		c.JSON(consts.StatusNotFound, common.ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case service.IsValidation(err):
		c.JSON(consts.StatusBadRequest, common.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
	default:
		hlog.CtxErrorf(ctx, "request failed: %v (request_id=%s)", err, common.GetRequestID(ctx))
		c.JSON(consts.StatusInternalServerError, common.ErrorResponse{
			Error:   "internal_error",
			Message: "internal server error",
		})
	}
}

func writeBadRequest(c *app.RequestContext, err error) {
	msg := "invalid request body"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(consts.StatusBadRequest, common.ErrorResponse{
		Error:   "validation_error",
		Message: msg,
	})
}
