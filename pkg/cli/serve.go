package cli

import (
	"context"
	"os"

	"github.com/lintang-b-s/Pyramidx/pkg"
	"github.com/lintang-b-s/Pyramidx/pkg/http"
	http_server "github.com/lintang-b-s/Pyramidx/pkg/http/server"
	"github.com/lintang-b-s/Pyramidx/pkg/http/usecases"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		api := http.NewServer(log)
		solverService := usecases.NewSolverService(log, e)
		if _, err := api.Use(ctx, log, viper.GetBool(pkg.CONFIG_USE_RATE_LIMIT), solverService); err != nil {
			return err
		}

		done := make(chan error, 1)
		go func() {
			done <- api.Wait()
		}()

		select {
		case err := <-done:
			return err
		case sig := <-shutdownSignal():
			log.Info("Pyramidx Server Stopped", zap.String("signal", sig.String()))
			cancel()
			return <-done
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func shutdownSignal() <-chan os.Signal {
	ch := make(chan os.Signal, 1)
	go func() {
		ch <- http_server.GracefulShutdown()
	}()
	return ch
}
