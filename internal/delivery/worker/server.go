// Package worker receives tank change events pushed by Pub/Sub or the local publisher.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"tankwatch/config"
	"tankwatch/internal/delivery"
	"tankwatch/internal/delivery/worker/handler"
	"tankwatch/internal/domain/lifecycle"
	"tankwatch/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// PushPath receives push deliveries. The local publisher posts here too.
const PushPath = "/push"

// maxPushBodySize matches the Pub/Sub message size limit plus envelope.
const maxPushBodySize = "11M"

type workerServer struct {
	port   int
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the worker HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := delivery.NewEcho(params.Cfg, params.Logger)
	e.Use(echomiddleware.BodyLimit(maxPushBodySize))

	e.GET(delivery.HealthPath, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST(PushPath, params.PushHandler.HandlePush)

	srv := &workerServer{
		port:   params.Cfg.HTTP.WorkerPort,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting worker server", slog.String("host_port", hostPort))

	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down worker server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
