package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mvieira/catalogfront/internal/api"
	"github.com/mvieira/catalogfront/internal/config"
	"github.com/mvieira/catalogfront/internal/httpserver"
	"github.com/mvieira/catalogfront/internal/intent"
	"github.com/mvieira/catalogfront/internal/logging"
	"github.com/mvieira/catalogfront/internal/view"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	client := api.NewClient(cfg.APIBaseURL)
	renderer := &view.Renderer{
		ImageURL:    client.UploadURL,
		Placeholder: cfg.PlaceholderImage,
	}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	for _, m := range httpserver.Common(logger) {
		e.Use(m)
	}

	httpserver.Register(e, &httpserver.Deps{
		API:           client,
		Registry:      intent.NewRegistry(client),
		Renderer:      renderer,
		RedirectDelay: cfg.RedirectDelay,
		Logger:        logger,
	})

	go func() {
		if err := e.Start(cfg.ListenAddr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
}
