// Package web serves the happiness dashboard over HTTP.
package web

import (
	"context"
	"embed"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/shriyae/ladderboard/internal/contract"
	"github.com/shriyae/ladderboard/internal/dataset"
)

//go:embed static/index.html
var staticFS embed.FS

const shutdownTimeout = 10 * time.Second

// NewServer builds the echo instance with all routes registered.
// This is exposed for handler testing.
func NewServer(store *dataset.Store, cfg *contract.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	h := NewHandler(store, cfg)
	h.RegisterRoutes(e)

	e.GET("/", func(c echo.Context) error {
		page, err := staticFS.ReadFile("static/index.html")
		if err != nil {
			return err
		}
		return c.HTMLBlob(http.StatusOK, page)
	})

	return e
}

// StartServer loads the dataset once and serves the dashboard until the
// context is canceled.
func StartServer(ctx context.Context, cfg *contract.Config) error {
	store, report, err := dataset.Open(cfg.DataPath)
	if err != nil {
		return err
	}
	for _, warning := range report.Warnings {
		contract.LogWarn("dataset row skipped", errors.New(warning))
	}

	e := NewServer(store, cfg)

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	}
}
