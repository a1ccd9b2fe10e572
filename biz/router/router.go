package router

import (
	"github.com/atarrias/envault/biz/handler"
	"github.com/cloudwego/hertz/pkg/app/server"
)

// Register configures all HTTP routes.
func Register(r *server.Hertz, h *handler.Handler) {
	if h == nil {
		return
	}

	r.GET("/status", handler.Ping)
	r.GET("/status/", handler.Ping)
	r.GET("/api-docs", handler.APIDocs)

	environments := r.Group("/environments")
	environments.GET("", h.ListEnvironments)
	environments.GET("/", h.ListEnvironments)
	environments.POST("", h.CreateEnvironment)
	environments.GET("/:env_name", h.GetEnvironment)
	environments.PUT("/:env_name", h.UpdateEnvironment)
	environments.PATCH("/:env_name", h.UpdateEnvironment)
	environments.DELETE("/:env_name", h.DeleteEnvironment)
	environments.POST("/:env_name/export", h.ExportEnvironment)

	variables := environments.Group("/:env_name/variables")
	variables.GET("", h.ListVariables)
	variables.POST("", h.CreateVariable)
	variables.GET("/:var_name", h.GetVariable)
	variables.PUT("/:var_name", h.UpdateVariable)
	variables.PATCH("/:var_name", h.UpdateVariable)
	variables.DELETE("/:var_name", h.DeleteVariable)
}
