package app

import (
	"context"
	"net/http"
	"time"

	"booking-service/internal/config"
)

type App struct {
	httpServer *http.Server
	cleanup    func() error

	services      *Services
	sweepInterval time.Duration
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, err
	}

	services := newServices(cfg, infra.DB)

	router, err := setupRouter(cfg, services)
	if err != nil {
		infra.DB.Close()
		return nil, err
	}

	server := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		httpServer: server,
		cleanup: func() error {
			return infra.DB.Close()
		},
		services:      services,
		sweepInterval: cfg.SweepInterval(),
	}, nil
}

// Run serves HTTP until Shutdown is called. The session reaper, if
// configured, stops with ctx.
func (a *App) Run(ctx context.Context) error {
	go a.services.Sessions.RunReaper(ctx, a.sweepInterval)

	err := a.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	if err := a.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	if a.cleanup != nil {
		return a.cleanup()
	}
	return nil
}
