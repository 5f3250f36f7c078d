// Package wire provides dependency injection for the fretsvg application.
// It creates singleton services with lazy initialization.
package wire

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"

	cliadapter "github.com/example/fretsvg/internal/adapters/cli"
	"github.com/example/fretsvg/internal/adapters/raster"
	"github.com/example/fretsvg/internal/adapters/sqlite"
	"github.com/example/fretsvg/internal/adapters/svg"
	"github.com/example/fretsvg/internal/adapters/web"
	"github.com/example/fretsvg/internal/app"
	"github.com/example/fretsvg/internal/catalog"
	"github.com/example/fretsvg/internal/config"
	"github.com/example/fretsvg/internal/core/progression"
	"github.com/example/fretsvg/internal/db"
	"github.com/example/fretsvg/internal/ports/primary"
	"github.com/example/fretsvg/internal/ports/secondary"
)

var (
	cfg                *config.Config
	logger             *log.Logger
	database           *sql.DB
	pngEncoder         *raster.Encoder
	catalogService     primary.CatalogService
	diagramService     primary.DiagramService
	progressionService primary.ProgressionService
	once               sync.Once
)

// SetConfig installs the configuration. It must be called before any
// service is requested; later calls have no effect on built services.
func SetConfig(c *config.Config) {
	cfg = c
}

// Config returns the active configuration, defaults if none was set.
func Config() *config.Config {
	if cfg == nil {
		cfg = config.Default()
	}
	return cfg
}

// Logger returns the singleton logger.
func Logger() *log.Logger {
	once.Do(initServices)
	return logger
}

// CatalogService returns the singleton CatalogService instance.
func CatalogService() primary.CatalogService {
	once.Do(initServices)
	return catalogService
}

// DiagramService returns the singleton DiagramService instance.
func DiagramService() primary.DiagramService {
	once.Do(initServices)
	return diagramService
}

// ProgressionService returns the singleton ProgressionService instance.
func ProgressionService() primary.ProgressionService {
	once.Do(initServices)
	return progressionService
}

// WebServer returns a new HTTP server over the singleton services.
func WebServer() *web.Server {
	once.Do(initServices)
	return web.NewServer(catalogService, diagramService, progressionService, logger)
}

// Close releases the database and font resources.
func Close() error {
	var errs []error
	if pngEncoder != nil {
		errs = append(errs, pngEncoder.Close())
	}
	if database != nil {
		errs = append(errs, database.Close())
	}
	return errors.Join(errs...)
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	c := Config()

	var err error
	logger, err = NewLogger(os.Stderr, c.Log)
	if err != nil {
		log.Fatal("invalid log configuration", "error", err)
	}
	gg.SetLogger(slog.New(logger))

	snap, err := loadCatalog(c.Catalog.Path)
	if err != nil {
		logger.Fatal("failed to load catalog", "error", err)
	}

	database, err = db.Open(c.Store.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}

	// Create adapters (secondary ports)
	chordRepo := sqlite.NewChordRepository(database)
	pngEncoder = raster.NewEncoder()
	encoders := map[primary.Format]secondary.DiagramEncoder{
		primary.FormatSVG: svg.NewEncoder(),
		primary.FormatPNG: pngEncoder,
	}

	// Create services (primary ports implementation)
	catalogService = app.NewCatalogService(snap, chordRepo)
	diagramService = app.NewDiagramService(catalogService, encoders)
	progressionService = app.NewProgressionService(
		progression.NewModel(snap.Progressions),
		c.Progression.MaxLength,
		rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	)

	logger.Debug("services initialized",
		"chords", len(snap.Chords),
		"scales", len(snap.Scales),
		"store", c.Store.DSN,
	)
}

// NewLogger builds a logger from the log configuration.
func NewLogger(out io.Writer, lc config.LogConfig) (*log.Logger, error) {
	level, err := log.ParseLevel(strings.ToLower(lc.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", lc.Level, err)
	}

	l := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "fretsvg",
	})
	switch lc.Format {
	case "json":
		l.SetFormatter(log.JSONFormatter)
	case "", "text":
		l.SetFormatter(log.TextFormatter)
	default:
		return nil, fmt.Errorf("invalid log format %q", lc.Format)
	}
	return l, nil
}

func loadCatalog(path string) (*catalog.Snapshot, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

// CatalogAdapter returns a new CatalogAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func CatalogAdapter() *cliadapter.CatalogAdapter {
	return CatalogAdapterWithOutput(os.Stdout)
}

// CatalogAdapterWithOutput returns a new CatalogAdapter writing to the given output.
func CatalogAdapterWithOutput(out io.Writer) *cliadapter.CatalogAdapter {
	once.Do(initServices)
	return cliadapter.NewCatalogAdapter(catalogService, out)
}

// DiagramAdapter returns a new DiagramAdapter writing to stdout.
func DiagramAdapter() *cliadapter.DiagramAdapter {
	return DiagramAdapterWithOutput(os.Stdout)
}

// DiagramAdapterWithOutput returns a new DiagramAdapter writing to the given output.
func DiagramAdapterWithOutput(out io.Writer) *cliadapter.DiagramAdapter {
	once.Do(initServices)
	return cliadapter.NewDiagramAdapter(diagramService, out)
}

// ProgressionAdapter returns a new ProgressionAdapter writing to stdout.
func ProgressionAdapter() *cliadapter.ProgressionAdapter {
	return ProgressionAdapterWithOutput(os.Stdout)
}

// ProgressionAdapterWithOutput returns a new ProgressionAdapter writing to the given output.
func ProgressionAdapterWithOutput(out io.Writer) *cliadapter.ProgressionAdapter {
	once.Do(initServices)
	return cliadapter.NewProgressionAdapter(progressionService, out)
}
