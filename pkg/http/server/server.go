package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lintang-b-s/Pyramidx/pkg"
	"github.com/spf13/viper"
)

type Config struct {
	Port    int
	Timeout time.Duration
}

func New(ctx context.Context, handler http.Handler, config Config) *http.Server {
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: http.TimeoutHandler(handler, config.Timeout, "request timed out"),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},

		ReadTimeout:       viper.GetDuration(pkg.CONFIG_HTTP_SERVER_READ_TIMEOUT),
		WriteTimeout:      config.Timeout + viper.GetDuration(pkg.CONFIG_HTTP_SERVER_WRITE_TIMEOUT),
		IdleTimeout:       viper.GetDuration(pkg.CONFIG_HTTP_SERVER_IDLE_TIMEOUT),
		ReadHeaderTimeout: viper.GetDuration(pkg.CONFIG_HTTP_SERVER_READ_HEADER_TIMEOUT),
	}
}

// GracefulShutdown blocks until SIGINT or SIGTERM.
func GracefulShutdown() os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return <-quit
}
