package handler

import (
	"context"

	"github.com/atarrias/envault/biz/service"
	"github.com/atarrias/envault/pkg/common"
	"github.com/atarrias/envault/pkg/validator"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// ListEnvironments handles GET /environments/.
func (h *Handler) ListEnvironments(ctx context.Context, c *app.RequestContext) {
	params := common.ParsePageParams(c.Query("page"), c.Query("limit"))

	page, err := h.svc.ListEnvironments(ctx, params)
	if err != nil {
		writeError(ctx, c, err)
		return
	}
	c.JSON(consts.StatusOK, page)
}

// CreateEnvironment handles POST /environments/.
func (h *Handler) CreateEnvironment(ctx context.Context, c *app.RequestContext) {
	var req service.CreateEnvironmentRequest
	if err := c.BindAndValidate(&req); err != nil {
		writeBadRequest(c, err)
		return
	}

	env, err := h.svc.CreateEnvironment(ctx, req)
	if err != nil {
		writeError(ctx, c, err)
		return
	}
	c.JSON(consts.StatusCreated, common.MessageResponse{
		Message: "environment created",
		Data:    env,
	})
}

// GetEnvironment handles GET /environments/:env_name. The path parameter is
// ambiguous between a resource name and a file extension: a trailing
// ".json" selects the flattened dump of the environment instead of its
// detail representation.
func (h *Handler) GetEnvironment(ctx context.Context, c *app.RequestContext) {
	name, wantsDump := validator.StripJSONSuffix(c.Param("env_name"))

	if wantsDump {
		flat, err := h.svc.FlattenEnvironment(ctx, name)
		if err != nil {
			writeError(ctx, c, err)
			return
		}
		c.JSON(consts.StatusOK, flat)
		return
	}

	env, err := h.svc.GetEnvironment(ctx, name)
	if err != nil {
		writeError(ctx, c, err)
		return
	}
	c.JSON(consts.StatusOK, common.MessageResponse{
		Message: "environment found",
		Data:    env,
	})
}

// UpdateEnvironment handles PUT and PATCH /environments/:env_name. Both
// verbs share one operation: only the description is replaceable, and an
// omitted description keeps its current value.
func (h *Handler) UpdateEnvironment(ctx context.Context, c *app.RequestContext) {
	var req service.UpdateEnvironmentRequest
	if err := c.BindAndValidate(&req); err != nil {
		writeBadRequest(c, err)
		return
	}

	env, err := h.svc.UpdateEnvironment(ctx, c.Param("env_name"), req)
	if err != nil {
		writeError(ctx, c, err)
		return
	}
	c.JSON(consts.StatusOK, common.MessageResponse{
		Message: "environment updated",
		Data:    env,
	})
}

// DeleteEnvironment handles DELETE /environments/:env_name. Deletion
// cascades to every variable the environment owns.
func (h *Handler) DeleteEnvironment(ctx context.Context, c *app.RequestContext) {
	if err := h.svc.DeleteEnvironment(ctx, c.Param("env_name")); err != nil {
		writeError(ctx, c, err)
		return
	}
	c.SetStatusCode(consts.StatusNoContent)
}

// ExportEnvironment handles POST /environments/:env_name/export. It writes
// the flattened dump to the configured snapshot backend.
func (h *Handler) ExportEnvironment(ctx context.Context, c *app.RequestContext) {
	result, err := h.svc.ExportEnvironment(ctx, c.Param("env_name"))
	if err != nil {
		writeError(ctx, c, err)
		return
	}
	c.JSON(consts.StatusCreated, common.MessageResponse{
		Message: "environment exported",
		Data:    result,
	})
}
