package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordchain/pkg/buildinfo"
	"github.com/matzehuels/wordchain/pkg/cache"
	"github.com/matzehuels/wordchain/pkg/config"
	"github.com/matzehuels/wordchain/pkg/observability"
	"github.com/matzehuels/wordchain/pkg/pipeline"
)

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
	out        io.Writer
}

// New creates a new CLI instance with a default logger and configuration.
// Command output is written to out.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		Config: config.Default(),
		out:    out,
	}
}

// SetLogLevel updates the logger's level. At debug level the pipeline hooks
// log chain and cache events.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		hooks := &logHooks{logger: c.Logger}
		observability.SetChainHooks(hooks)
		observability.SetCacheHooks(hooks)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "wordchain",
		Short: "Wordchain arranges words so each starts with the last letter of the previous one",
		Long: `Wordchain reads a list of words and orders them into a chain where every word
starts with the last letter of the word before it, using each word exactly once.

In circuit mode the chain must also close: the last word ends with the first
letter of the first word.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return c.loadConfig()
		},
	}

	var list bool
	root.Flags().BoolVarP(&list, "list", "l", false, "list the chaining modes (same as 'wordchain modes')")
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if list {
			fmt.Fprintln(c.out, renderModes(c.defaultMode()))
			return nil
		}
		return cmd.Help()
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.out)
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/wordchain/config.toml)")

	root.AddCommand(c.chainCommand())
	root.AddCommand(c.modesCommand())
	root.AddCommand(c.verifyCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the file cache.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	ch, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(ch, nil, c.Logger), nil
}

func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache || c.Config.Cache.Disabled {
		return cache.NewNullCache(), nil
	}
	dir, err := c.Config.ResolvedCacheDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheTTL returns the configured cache lifetime, zero for the default.
func (c *CLI) cacheTTL() time.Duration {
	ttl, _ := c.Config.CacheTTL()
	return ttl
}

// defaultMode returns the configured mode.
func (c *CLI) defaultMode() string {
	if c.Config.Mode != "" {
		return c.Config.Mode
	}
	return config.Default().Mode
}

// =============================================================================
// Debug Hooks
// =============================================================================

// logHooks reports pipeline events at debug level.
type logHooks struct {
	observability.NoopChainHooks
	observability.NoopCacheHooks
	logger *log.Logger
}

func (h *logHooks) OnChainStart(_ context.Context, mode string, wordCount int) {
	h.logger.Debug("chaining", "mode", mode, "words", wordCount)
}

func (h *logHooks) OnChainComplete(_ context.Context, mode string, _ int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("chaining failed", "mode", mode, "error", err, "duration", d)
		return
	}
	h.logger.Debug("chaining done", "mode", mode, "duration", d)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}
