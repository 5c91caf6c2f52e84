// Package api serves the device callables and the token exchange endpoint.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"tankwatch/config"
	"tankwatch/internal/delivery"
	apimiddleware "tankwatch/internal/delivery/api/middleware"
	"tankwatch/internal/delivery/api/router"
	"tankwatch/internal/delivery/api/validator"
	"tankwatch/internal/domain/lifecycle"
	"tankwatch/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	port   int
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the API server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the API server. Callables are reached from browsers and
// apps, so CORS admits the Authorization header on GET and POST.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := delivery.NewEcho(params.Cfg, params.Logger)

	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderXRequestID},
	}))
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &apiServer{
		port:   params.Cfg.HTTP.Port,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting API server", slog.String("host_port", hostPort))

	h2Server := &http2.Server{IdleTimeout: s.server.Server.IdleTimeout}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
