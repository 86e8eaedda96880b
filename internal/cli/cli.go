// Package cli implements the whiteboard command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/whiteboard/internal/config"
	"github.com/matzehuels/whiteboard/pkg/buildinfo"
	"github.com/matzehuels/whiteboard/pkg/cache"
	"github.com/matzehuels/whiteboard/pkg/client"
	"github.com/matzehuels/whiteboard/pkg/export"
	"github.com/matzehuels/whiteboard/pkg/icon"
	"github.com/matzehuels/whiteboard/pkg/observability"
	"github.com/matzehuels/whiteboard/pkg/render/sink"
	"github.com/matzehuels/whiteboard/pkg/store"
)

const appName = "whiteboard"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	serverURL  string
	token      string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Whiteboard stores and renders infinite-canvas boards",
		Long:          `Whiteboard is a board store and renderer for infinite-canvas whiteboards. Boards can live on disk, in Redis or MongoDB, or on a remote whiteboard server.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", config.DefaultPath(), "config file")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&c.serverURL, "server", "", "use the boards of a remote whiteboard server")
	flags.StringVar(&c.token, "token", "", "bearer token for --server (default: saved login, then $"+config.TokenEnv+")")

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.boardsCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layersCommand())
	root.AddCommand(c.clipCommand())
	root.AddCommand(c.importCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.iconsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.loginCommand())
	root.AddCommand(c.logoutCommand())
	root.AddCommand(c.sessionsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file and attaches the logger to the command.
func (c *CLI) setup(cmd *cobra.Command) error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
		observability.SetAll(observability.NewLogHooks(c.Logger))
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	if c.token == "" && c.serverURL != "" {
		c.token = c.sessionToken(cmd.Context(), c.serverURL)
	}
	if c.token == "" {
		c.token = cfg.Server.Token
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	c.Logger.Debug("config loaded", "path", c.configPath, "store", cfg.Store.Backend, "cache", cfg.Cache.Backend)
	return nil
}

// =============================================================================
// Backends
// =============================================================================

// openStore returns the remote store when --server is set, otherwise the
// configured backend.
func (c *CLI) openStore(ctx context.Context) (store.Store, error) {
	if c.serverURL != "" {
		c.Logger.Debug("using remote store", "server", c.serverURL)
		return client.New(c.serverURL, c.token), nil
	}
	opts := c.Config.StoreOptions()
	c.Logger.Debug("opening store", "backend", opts.Describe())
	return store.Open(ctx, opts)
}

// openCache returns the configured cache and a keyer scoped to the
// configured prefix. Caches that cannot be opened degrade to no caching.
func (c *CLI) openCache(ctx context.Context) (cache.Cache, cache.Keyer) {
	keys := cache.NewScopedKeyer(nil, c.Config.Cache.Prefix)
	switch c.Config.Cache.Backend {
	case "memory":
		return cache.NewMemoryCache(), keys
	case "redis":
		rc, err := cache.DialRedis(ctx, cache.RedisOptions{
			Addr:     c.Config.Store.RedisAddr,
			Password: c.Config.Store.RedisPassword,
			DB:       c.Config.Store.RedisDB,
		})
		if err != nil {
			c.Logger.Warn("cache disabled", "err", err)
			return cache.NewNullCache(), keys
		}
		return rc, keys
	case "file":
		fc, err := cache.NewFileCache(c.Config.Cache.Dir)
		if err != nil {
			c.Logger.Warn("cache disabled", "err", err)
			return cache.NewNullCache(), keys
		}
		return fc, keys
	}
	return cache.NewNullCache(), keys
}

// newIcons returns an icon resolver backed by c.
func (c *CLI) newIcons(ch cache.Cache, keys cache.Keyer) *icon.CachedResolver {
	raster := icon.NewRasterizer(c.Config.Icons.Size)
	return icon.NewCachedResolver(raster, ch, keys).WithLogger(c.Logger)
}

// newExporter returns an exporter using the [render] settings.
func (c *CLI) newExporter(ch cache.Cache, keys cache.Keyer, icons *icon.CachedResolver) *export.Exporter {
	settings := export.Settings{
		Scale:      c.Config.Render.Scale,
		Padding:    c.Config.Render.Padding,
		Background: c.Config.Render.Background,
	}
	return export.New(settings,
		export.WithCache(ch, keys),
		export.WithIconResolver(icons),
		export.WithLogger(c.Logger))
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{sink.FormatSVG}
	}
	return strings.Split(s, ",")
}

// writeOutput writes data to path, or to w when path is empty or "-".
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
