package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/lintang-b-s/Pyramidx/pkg"
	"github.com/lintang-b-s/Pyramidx/pkg/concurrent"
	"github.com/lintang-b-s/Pyramidx/pkg/engine"
	"github.com/lintang-b-s/Pyramidx/pkg/parser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var solveCmd = &cobra.Command{
	Use:   "solve [file...]",
	Short: "Solve triangle files, or the built-in triangle when no file is given",
	Long: `Solve reads each triangle file (plain text or .bz2) and prints the maximum sum and its
path. Blank lines are ignored. Files are solved concurrently, results are printed in argument
order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		return runSolve(cmd.Context(), cmd.OutOrStdout(), e, args, viper.GetInt(pkg.CONFIG_WORKERS))
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

type fileResult struct {
	res *engine.Result
	err error
}

func runSolve(ctx context.Context, out io.Writer, e *engine.Engine, paths []string, workers int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	printer := NewPrinter(out, colorOutput(out))

	if len(paths) == 0 {
		fmt.Fprintf(out, "Using input from constant string. If you want to use file, then enter its name as the "+
			"first argument. Constant value:\n%s\n", parser.DefaultTriangle)
		res, err := e.SolveDefault(ctx)
		if err != nil {
			printer.PrintError(err)
			return err
		}
		printer.PrintResult(res)
		if !res.Feasible {
			return errInfeasible
		}
		return nil
	}

	results := concurrent.Map(workers, paths, func(path string) fileResult {
		res, err := e.SolveFile(ctx, path)
		return fileResult{res: res, err: err}
	})

	var errs []error
	infeasible := false
	for i, fr := range results {
		if len(paths) > 1 {
			printer.PrintHeader(paths[i])
		} else {
			fmt.Fprintf(out, "Using input from file %s\n", paths[i])
		}
		if fr.err != nil {
			printer.PrintError(fr.err)
			errs = append(errs, fmt.Errorf("%s: %w", paths[i], fr.err))
			continue
		}
		printer.PrintResult(fr.res)
		if !fr.res.Feasible {
			infeasible = true
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if infeasible {
		return errInfeasible
	}
	return nil
}
