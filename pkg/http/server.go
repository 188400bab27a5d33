package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	http_router "github.com/gridnav/gridrouter/pkg/http/router"
	"github.com/gridnav/gridrouter/pkg/http/router/controllers"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger

	g *errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{
		Log: log,
		g:   new(errgroup.Group),
	}
}

func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	useRateLimit bool,
	navigationService controllers.NavigationService,

) (*Server, error) {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "1000s")

	config := http_router.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}

	server := http_router.NewAPI(log)

	s.g.Go(func() error {
		return server.Run(
			ctx, config, log,
			useRateLimit, navigationService,
		)
	})

	return s, nil
}

// Wait block until the API server goroutine exits. A failed startup (port
// already bound) surfaces here instead of dying silently.
func (s *Server) Wait() error {
	return s.g.Wait()
}

// ShutdownSignal channel delivering SIGINT/SIGTERM.
func ShutdownSignal() <-chan os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return quit
}
