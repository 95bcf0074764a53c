// Package worker serves the Pub/Sub push endpoint that exports shopping lists.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"dietplan/config"
	"dietplan/internal/delivery"
	"dietplan/internal/delivery/middleware"
	"dietplan/internal/delivery/worker/handler"
	"dietplan/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type workerServer struct {
	addr   string
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

// NewServer exposes GET /health and POST /push.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := middleware.NewEcho(params.Cfg, params.Logger)
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", params.PushHandler.HandlePush)

	srv := &workerServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		logger: params.Logger,
		server: e,
	}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

func (s *workerServer) Serve(context.Context) error {
	s.logger.Info("Starting shopping list worker", slog.String("host_port", s.addr))
	if err := s.server.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Stopping shopping list worker")

	return errors.WithStack(s.server.Shutdown(ctx))
}
