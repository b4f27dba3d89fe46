// Package main wires the HTTP server for the site editor API.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"site-editor-api/internal/identity/google"
	"site-editor-api/internal/pageformat"
	"site-editor-api/internal/transport/http/server/handlers-fiber"
	"site-editor-api/internal/usecase"

	"site-editor-api/config"
	"site-editor-api/internal/entities"
	api "site-editor-api/internal/oapi"
	"site-editor-api/internal/repository"
	"site-editor-api/internal/transport/http/middleware"
	"site-editor-api/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	pages, err := repository.NewPages("github", log, cfg)
	if err != nil {
		log.Errorw("page store initialization error", "error", err)
		return
	}

	verifier, err := google.New(ctx, log, cfg.Google)
	if err != nil {
		log.Errorw("identity verifier initialization error", "error", err)
		return
	}

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, repo, pages, verifier, pageformat.New(""), cfg.Google.ClientID, timeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	about := entities.PageSpec{
		Name:      "about",
		FilePath:  cfg.About.FilePath,
		Title:     cfg.About.Title,
		Permalink: cfg.About.Permalink,
		PRBody:    cfg.About.PRBody,
	}
	h := handlers_fiber.NewHandler(log, uc, about)
	api.RegisterHandlersWithOptions(serv, h, api.FiberServerOptions{
		Middlewares: []api.MiddlewareFunc{api.MiddlewareFunc(middleware.Auth(log, uc))},
	})

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
