package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/fretsvg/internal/wire"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the diagram HTTP service",
	Long: `Serve chord and scale diagrams over HTTP.

Endpoints:
  POST /api/chord-diagram   chord=NAME [format=svg|png]
  POST /api/scale-diagram   scale=NAME [key=E] [format=svg|png]
  GET  /api/chords          list chords
  POST /api/chords          register a chord (JSON)
  GET  /api/chords/{name}
  GET  /api/scales
  GET  /api/scales/{name}   [key=K]
  GET  /api/progression     start=NAME [length=4] [seed=N]
  GET  /healthz`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := wire.Config()
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}
		defer wire.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return wire.WebServer().ListenAndServe(ctx, cfg.Server.Addr, time.Duration(cfg.Server.ShutdownTimeout))
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
}

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	return serveCmd
}
