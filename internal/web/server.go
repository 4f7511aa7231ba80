// Package web serves the employee list page, its export downloads and the employee list API.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/UnknownOlympus/athena/internal/metrics"
	"github.com/UnknownOlympus/athena/internal/repository"
	"github.com/UnknownOlympus/athena/internal/services/directory"
)

const shutdownTimeout = 5 * time.Second

// Server wires the page, export and API handlers into an echo instance.
type Server struct {
	echo    *echo.Echo
	log     *slog.Logger
	store   *directory.Store
	repo    repository.EmployeeRepoIface
	metrics *metrics.Metrics
}

func NewServer(
	log *slog.Logger,
	store *directory.Store,
	repo repository.EmployeeRepoIface,
	metrics *metrics.Metrics,
) *Server {
	srv := &Server{
		echo:    echo.New(),
		log:     log,
		store:   store,
		repo:    repo,
		metrics: metrics,
	}
	srv.echo.HideBanner = true
	srv.echo.HidePort = true

	srv.registerMiddlewares()
	srv.registerRoutes()

	return srv
}

func (s *Server) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "web"),
	)
}

func (s *Server) registerMiddlewares() {
	s.echo.Use(middleware.Recover())
	s.echo.Use(requestLogger(s.log))
}

func (s *Server) registerRoutes() {
	s.echo.GET("/", s.index)
	s.echo.GET("/api/employees/list", s.listEmployees)

	s.echo.GET("/page", s.page, s.requireSession)
	s.echo.POST("/filters/input", s.input, s.requireSession)
	s.echo.POST("/search", s.search, s.requireSession)
	s.echo.POST("/reset", s.reset, s.requireSession)

	s.echo.GET("/export/employees.xml", s.exportXML, s.requireSession)
	s.echo.GET("/export/employees.xlsx", s.exportXLSX, s.requireSession)
}

// ServeHTTP lets the server be mounted on any http.Server or tested with httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on address until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, address string) error {
	const opn = "Web.Start"
	log := s.initLogger(opn)

	errCh := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "Starting web server", "address", address)
		if err := s.echo.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start web server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.InfoContext(ctx, "Shutting down web server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down web server: %w", err)
	}

	log.InfoContext(ctx, "Web server stopped gracefully.")
	return nil
}
