package cli

import (
	"fmt"

	"github.com/lintang-b-s/Pyramidx/pkg/generator"
	"github.com/spf13/cobra"
)

var (
	genRows        int
	genMaxValue    int32
	genSeed        uint64
	genAlternating bool
	genOut         string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random triangle",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			triangle [][]int32
			err      error
		)
		if genAlternating {
			triangle, err = generator.AlternatingTriangle(genRows, genMaxValue, genSeed)
		} else {
			triangle, err = generator.RandomTriangle(genRows, genMaxValue, genSeed)
		}
		if err != nil {
			return fmt.Errorf("%w: %v", errInvalidArguments, err)
		}

		if genOut == "" {
			return generator.Write(cmd.OutOrStdout(), triangle)
		}
		if err := generator.WriteFile(genOut, triangle); err != nil {
			return err
		}
		log.Sugar().Infof("wrote %d rows to %s", genRows, genOut)
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVar(&genRows, "rows", 15, "number of rows")
	generateCmd.Flags().Int32Var(&genMaxValue, "max", 999, "largest cell value")
	generateCmd.Flags().Uint64Var(&genSeed, "seed", 1, "random seed")
	generateCmd.Flags().BoolVar(&genAlternating, "alternating", false, "make every path parity-alternating")
	generateCmd.Flags().StringVar(&genOut, "out", "", "output file, .bz2 is compressed (default stdout)")
	rootCmd.AddCommand(generateCmd)
}
