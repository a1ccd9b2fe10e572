package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Ping is the liveness probe behind GET /status/.
func Ping(ctx context.Context, c *app.RequestContext) {
	c.String(consts.StatusOK, "pong")
}

// apiDocs is a static schema document for the HTTP surface. It stands in
// for a generated OpenAPI document.
var apiDocs = map[string]any{
	"openapi": "3.0.0",
	"info": map[string]any{
		"title":       "envault",
		"description": "Configuration environments and variables over REST",
		"version":     "1.0.0",
	},
	"paths": map[string]any{
		"/status/": map[string]any{"get": "liveness probe"},
		"/environments/": map[string]any{
			"get":  "paginated environment list",
			"post": "create environment",
		},
		"/environments/{env_name}": map[string]any{
			"get":    "environment detail; a .json suffix returns the flattened dump",
			"put":    "update description",
			"patch":  "update description",
			"delete": "delete environment and owned variables",
		},
		"/environments/{env_name}/export": map[string]any{
			"post": "snapshot the flattened dump to configured storage",
		},
		"/environments/{env_name}/variables": map[string]any{
			"get":  "paginated variable list",
			"post": "create variable",
		},
		"/environments/{env_name}/variables/{var_name}": map[string]any{
			"get":    "variable detail",
			"put":    "merge update",
			"patch":  "merge update",
			"delete": "delete variable",
		},
	},
}

// APIDocs serves the schema document behind GET /api-docs.
func APIDocs(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, apiDocs)
}
