// Package server exposes the board over a small JSON API. One process hosts
// one board: the calendar engine is guarded by a mutex and the weather
// acquisition runs on its own event loop.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/julianstephens/infoboard/internal/calendar"
	"github.com/julianstephens/infoboard/internal/logger"
	"github.com/julianstephens/infoboard/internal/weather"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	Echo *echo.Echo

	mu     sync.Mutex
	engine *calendar.Engine
	runner *weather.Runner
	now    func() time.Time
}

// New wires the routes. The runner is not started until Start.
func New(engine *calendar.Engine, runner *weather.Runner) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	now := engine.Options().Now
	if now == nil {
		now = time.Now
	}

	s := &Server{Echo: e, engine: engine, runner: runner, now: now}
	e.Use(recovery())
	e.Use(requestLogger())
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/healthz", s.health)

	api := s.Echo.Group("/api")
	api.GET("/clock", s.getClock)

	cal := api.Group("/calendar")
	cal.GET("", s.getCalendar)
	cal.POST("/navigate", s.navigate)
	cal.POST("/jump", s.jump)
	cal.POST("/select", s.selectDay)
	cal.GET("/day", s.day)

	api.GET("/weather", s.getWeather)
	api.POST("/weather/retry", s.retryWeather)
}

// Start runs the weather loop and serves on addr until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		if err := s.runner.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("weather loop stopped", "error", err)
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		errCh <- s.Echo.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down server")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()
		return s.Echo.Shutdown(shutdownCtx)
	}
}
