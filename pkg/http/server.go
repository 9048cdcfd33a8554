package http

import (
	"context"

	"github.com/lintang-b-s/Pyramidx/pkg"
	http_router "github.com/lintang-b-s/Pyramidx/pkg/http/router"
	"github.com/lintang-b-s/Pyramidx/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/Pyramidx/pkg/http/server"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
	g   *errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use starts the API in the background. Wait returns once it stops.
func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	useRateLimit bool,
	solverService controllers.SolverService,
) (*Server, error) {
	config := http_server.Config{
		Port:    viper.GetInt(pkg.CONFIG_API_PORT),
		Timeout: viper.GetDuration(pkg.CONFIG_API_TIMEOUT),
	}

	server := http_router.NewAPI(log)

	g, gctx := errgroup.WithContext(ctx)
	s.g = g

	g.Go(func() error {
		return server.Run(
			gctx, config, log,
			useRateLimit, solverService,
		)
	})

	return s, nil
}

func (s *Server) Wait() error {
	if s.g == nil {
		return nil
	}
	return s.g.Wait()
}
