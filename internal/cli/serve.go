package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordchain/pkg/cache"
	"github.com/matzehuels/wordchain/pkg/config"
	"github.com/matzehuels/wordchain/pkg/history"
	"github.com/matzehuels/wordchain/pkg/pipeline"
	"github.com/matzehuels/wordchain/pkg/server"
)

// serveCommand creates the command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chaining API over HTTP",
		Long: `Serve the chaining API over HTTP.

Results are cached in Redis when cache.redis_addr is configured and in the
local cache directory otherwise. Runs are recorded in MongoDB when
history.mongo_uri is configured and in memory otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	ch, err := c.serverCache(ctx, noCache)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(ch, nil, c.Logger)
	defer runner.Close()

	store, err := c.historyStore(ctx)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			c.Logger.Warn("close history", "error", err)
		}
	}()

	srv := server.New(runner, store, server.WithLogger(c.Logger))
	return srv.ListenAndServe(ctx, addr)
}

// serverCache prefers the shared Redis cache when one is configured.
func (c *CLI) serverCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache || c.Config.Cache.Disabled || c.Config.Cache.RedisAddr == "" {
		return c.newCache(noCache)
	}
	rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
		Addr:   c.Config.Cache.RedisAddr,
		Prefix: config.AppName + ":",
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Info("using redis cache", "addr", c.Config.Cache.RedisAddr)
	return rc, nil
}

func (c *CLI) historyStore(ctx context.Context) (history.Store, error) {
	h := c.Config.History
	if h.MongoURI == "" {
		return history.NewMemoryStore(history.DefaultCapacity), nil
	}
	ms, err := history.NewMongoStore(ctx, history.MongoConfig{
		URI:        h.MongoURI,
		Database:   h.Database,
		Collection: h.Collection,
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Info("recording runs in mongodb", "database", h.Database, "collection", h.Collection)
	return ms, nil
}
