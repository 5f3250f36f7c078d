package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/fretsvg/internal/ports/primary"
	"github.com/example/fretsvg/internal/wire"
)

var progressionCmd = &cobra.Command{
	Use:   "progression [start]",
	Short: "Suggest a chord progression from a starting chord",
	Long: `Suggest a chord progression by walking chord-to-chord transitions
learned from the catalog's example progressions.

Examples:
  fretsvg progression C
  fretsvg progression Am -n 8 --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		length, _ := cmd.Flags().GetInt("length")
		req := primary.SuggestRequest{Start: args[0], Length: length}
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetUint64("seed")
			req.Seed = &seed
		}

		_, err := wire.ProgressionAdapter().Suggest(context.Background(), req)
		return err
	},
}

func init() {
	progressionCmd.Flags().IntP("length", "n", 4, "Number of chords, including the start")
	progressionCmd.Flags().Uint64("seed", 0, "Seed for a reproducible suggestion")
}

// ProgressionCmd returns the progression command
func ProgressionCmd() *cobra.Command {
	return progressionCmd
}
