package main

import (
	"context"
	"log"

	"github.com/atarrias/envault/biz/dal/model"
	"github.com/atarrias/envault/biz/handler"
	"github.com/atarrias/envault/biz/middleware"
	"github.com/atarrias/envault/biz/router"
	"github.com/atarrias/envault/biz/service"
	"github.com/atarrias/envault/pkg/config"
	"github.com/atarrias/envault/pkg/database"
	"github.com/atarrias/envault/pkg/storage"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(&model.Environment{}, &model.Variable{}); err != nil {
		log.Fatalf("migrate schema: %v", err)
	}

	store, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}

	svc := service.NewService(db, store)
	h := handler.NewHandler(svc)

	srv := server.New(server.WithHostPorts(cfg.Server.Address))
	// Auth runs before Logging so the access log can carry the caller's
	// identity alongside the request id.
	srv.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Auth(),
		middleware.Logging(),
		middleware.CORS(&cfg.CORS),
	)
	router.Register(srv, h)

	srv.OnShutdown = append(srv.OnShutdown, func(ctx context.Context) {
		if err := database.Close(db); err != nil {
			hlog.Errorf("close database: %v", err)
		}
	})

	hlog.Infof("listening on %s (database driver %s, storage %s)",
		cfg.Server.Address, cfg.Database.Driver, store.Type())
	srv.Spin()
}
