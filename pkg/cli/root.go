package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/lintang-b-s/Pyramidx/pkg"
	"github.com/lintang-b-s/Pyramidx/pkg/engine"
	"github.com/lintang-b-s/Pyramidx/pkg/logger"
	"github.com/lintang-b-s/Pyramidx/pkg/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var errInvalidArguments = errors.New("invalid arguments")

var (
	configFile string
	strategy   string

	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pyramidx",
	Short: "Maximum parity-alternating path through a number triangle",
	Long: `pyramidx finds the path from the top of a number triangle to its bottom row with the
largest sum, moving down or diagonally down-right, where consecutive numbers alternate
between odd and even.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := util.ReadConfig(configFile); err != nil {
			return err
		}
		if strategy != "" {
			viper.Set(pkg.CONFIG_SOLVER_STRATEGY, strategy)
		}

		var err error
		log, err = logger.New()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./data/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&strategy, "strategy", "", "solver strategy: bottomup or memoized")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil && !errors.Is(err, errInfeasible) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return exitCode(err)
}

func newEngine() (*engine.Engine, error) {
	e, err := engine.NewEngine(engine.ConfigFromViper(), log)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidArguments, err)
	}
	return e, nil
}

// colorOutput is true only for a terminal stdout, color.NoColor already checks the tty.
func colorOutput(out io.Writer) bool {
	return out == io.Writer(os.Stdout) && !color.NoColor
}
