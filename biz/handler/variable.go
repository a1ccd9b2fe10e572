package handler

import (
	"context"

	"github.com/atarrias/envault/biz/service"
	"github.com/atarrias/envault/pkg/common"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// ListVariables handles GET /environments/:env_name/variables.
func (h *Handler) ListVariables(ctx context.Context, c *app.RequestContext) {
	params := common.ParsePageParams(c.Query("page"), c.Query("limit"))

	page, err := h.svc.ListVariables(ctx, c.Param("env_name"), params)
	if err != nil {
		writeError(ctx, c, err)
		return
	}
	c.JSON(consts.StatusOK, page)
}

// CreateVariable handles POST /environments/:env_name/variables.
func (h *Handler) CreateVariable(ctx context.Context, c *app.RequestContext) {
	var req service.CreateVariableRequest
	if err := c.BindAndValidate(&req); err != nil {
		writeBadRequest(c, err)
		return
	}

	v, err := h.svc.CreateVariable(ctx, c.Param("env_name"), req)
	if err != nil {
		writeError(ctx, c, err)
		return
	}
	c.JSON(consts.StatusCreated, common.MessageResponse{
		Message: "variable created",
		Data:    v,
	})
}

// GetVariable handles GET /environments/:env_name/variables/:var_name.
func (h *Handler) GetVariable(ctx context.Context, c *app.RequestContext) {
	v, err := h.svc.GetVariable(ctx, c.Param("env_name"), c.Param("var_name"))
	if err != nil {
		writeError(ctx, c, err)
		return
	}
	c.JSON(consts.StatusOK, common.MessageResponse{
		Message: "variable found",
		Data:    v,
	})
}

// UpdateVariable handles PUT and PATCH on
// /environments/:env_name/variables/:var_name. Both verbs merge: fields
// absent from the body keep their stored values (PUT does not clear
// omitted fields), fields present are applied even when zero-valued.
func (h *Handler) UpdateVariable(ctx context.Context, c *app.RequestContext) {
	var req service.UpdateVariableRequest
	if err := c.BindAndValidate(&req); err != nil {
		writeBadRequest(c, err)
		return
	}

	v, err := h.svc.UpdateVariable(ctx, c.Param("env_name"), c.Param("var_name"), req)
	if err != nil {
		writeError(ctx, c, err)
		return
	}
	c.JSON(consts.StatusOK, common.MessageResponse{
		Message: "variable updated",
		Data:    v,
	})
}

// DeleteVariable handles DELETE /environments/:env_name/variables/:var_name.
func (h *Handler) DeleteVariable(ctx context.Context, c *app.RequestContext) {
	if err := h.svc.DeleteVariable(ctx, c.Param("env_name"), c.Param("var_name")); err != nil {
		writeError(ctx, c, err)
		return
	}
	c.SetStatusCode(consts.StatusNoContent)
}
