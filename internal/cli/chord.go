package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/fretsvg/internal/ports/primary"
	"github.com/example/fretsvg/internal/wire"
)

var chordCmd = &cobra.Command{
	Use:   "chord",
	Short: "List, inspect and render chord shapes",
}

var chordListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all chords",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.CatalogAdapter().ListChords(context.Background())
		return err
	},
}

var chordShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a chord shape",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.CatalogAdapter().ShowChord(context.Background(), args[0])
		return err
	},
}

var chordRenderCmd = &cobra.Command{
	Use:   "render [name]",
	Short: "Render a chord box as SVG or PNG",
	Long: `Render a chord box.

Without --output the diagram is written to stdout.

Examples:
  fretsvg chord render C > c.svg
  fretsvg chord render F --format png -o f.png`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		format, _ := cmd.Flags().GetString("format")

		return wire.DiagramAdapter().RenderChord(context.Background(), args[0], primary.Format(format), output)
	},
}

func init() {
	chordRenderCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
	chordRenderCmd.Flags().String("format", string(primary.FormatSVG), "Output format (svg or png)")

	chordCmd.AddCommand(chordListCmd)
	chordCmd.AddCommand(chordShowCmd)
	chordCmd.AddCommand(chordRenderCmd)
}

// ChordCmd returns the chord command
func ChordCmd() *cobra.Command {
	return chordCmd
}
