package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/fretsvg/internal/app"
	"github.com/example/fretsvg/internal/ports/primary"
	"github.com/example/fretsvg/internal/wire"
)

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "List scales, spell them and render fretboard maps",
}

var scaleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all scales",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.CatalogAdapter().ListScales(context.Background())
		return err
	},
}

var scaleNotesCmd = &cobra.Command{
	Use:   "notes [name]",
	Short: "Print the notes of a scale in a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("key")
		_, err := wire.DiagramAdapter().ScaleNotes(context.Background(), args[0], key)
		return err
	},
}

var scaleRenderCmd = &cobra.Command{
	Use:   "render [name]",
	Short: "Render a scale across the fretboard as SVG or PNG",
	Long: `Render a scale across frets 0-12, or across --frets LO-HI.
Spans wider than 12 frets make the board taller.

Examples:
  fretsvg scale render "minor pentatonic" --key A > am-pent.svg
  fretsvg scale render blues --key E --format png -o blues.png
  fretsvg scale render major --key G --frets 0-17 -o g-major.svg`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("key")
		output, _ := cmd.Flags().GetString("output")
		format, _ := cmd.Flags().GetString("format")
		frets, _ := cmd.Flags().GetString("frets")

		return wire.DiagramAdapter().RenderScale(context.Background(), args[0], key, frets, primary.Format(format), output)
	},
}

func init() {
	scaleNotesCmd.Flags().StringP("key", "k", app.DefaultKey, "Root key (e.g. A, F#, Bb)")
	scaleRenderCmd.Flags().StringP("key", "k", app.DefaultKey, "Root key (e.g. A, F#, Bb)")
	scaleRenderCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
	scaleRenderCmd.Flags().String("format", string(primary.FormatSVG), "Output format (svg or png)")
	scaleRenderCmd.Flags().String("frets", "", "Fret span LO-HI (default 0-12, max 24)")

	scaleCmd.AddCommand(scaleListCmd)
	scaleCmd.AddCommand(scaleNotesCmd)
	scaleCmd.AddCommand(scaleRenderCmd)
}

// ScaleCmd returns the scale command
func ScaleCmd() *cobra.Command {
	return scaleCmd
}
