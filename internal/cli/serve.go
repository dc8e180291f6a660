package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/internal/server"
	"github.com/matzehuels/tagcloud/pkg/cache"
	"github.com/matzehuels/tagcloud/pkg/observability"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
	"github.com/matzehuels/tagcloud/pkg/store"
)

const (
	defaultAddr    = ":8080"
	defaultMongoDB = "tagcloud"

	// connectTimeout bounds backend connection checks at startup.
	connectTimeout = 15 * time.Second
)

// serveOpts holds the flags of the serve command.
type serveOpts struct {
	addr     string
	redisURL string
	mongoURI string
	mongoDB  string
	noCache  bool
}

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: defaultAddr, mongoDB: defaultMongoDB}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout HTTP API",
		Long: `Serve the layout HTTP API.

Layouts are cached in Redis when --redis is given and in the local cache
directory otherwise. Computed layouts are stored in MongoDB when --mongo is
given and in memory otherwise (lost on restart).

Stop the server with Ctrl+C; in-flight requests are drained first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis", "", "Redis URL for the layout cache (redis://host:6379/0)")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo", "", "MongoDB URI for layout storage (mongodb://host:27017)")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", opts.mongoDB, "MongoDB database name")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe wires cache, store and hooks and blocks until ctx is canceled.
func (c *CLI) runServe(ctx context.Context, so serveOpts) error {
	defaults, err := c.loadOptions()
	if err != nil {
		return err
	}
	if err := defaults.ValidateAndSetDefaults(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.verbose {
		hooks := observability.NewLogHooks(c.Logger)
		observability.SetPipelineHooks(hooks)
		observability.SetCacheHooks(hooks)
		observability.SetHTTPHooks(hooks)
	}

	kv, err := c.serveCache(ctx, so)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(kv, newKeyer(), c.Logger)
	defer runner.Close()

	st, err := c.serveStore(ctx, so)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			c.Logger.Warn("close store", "error", err)
		}
	}()

	printSuccess("Serving on %s", StyleLink.Render(displayAddr(so.addr)))
	printDetail("Press Ctrl+C to stop")

	return server.New(runner, st, defaults, c.Logger).ListenAndServe(ctx, so.addr)
}

func (c *CLI) serveCache(ctx context.Context, so serveOpts) (cache.Cache, error) {
	if so.noCache || so.redisURL == "" {
		kv, err := newCache(so.noCache)
		if err != nil {
			return nil, err
		}
		if fc, ok := kv.(*cache.FileCache); ok {
			printKeyValue("cache", fc.Dir())
		} else {
			printKeyValue("cache", "disabled")
		}
		return kv, nil
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{URL: so.redisURL})
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	printKeyValue("cache", "redis")
	return rc, nil
}

func (c *CLI) serveStore(ctx context.Context, so serveOpts) (store.Store, error) {
	if so.mongoURI == "" {
		printKeyValue("store", "memory")
		printWarning("No --mongo given; layouts are lost on restart")
		return store.NewMemoryStore(), nil
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	ms, err := store.NewMongoStore(ctx, so.mongoURI, so.mongoDB)
	if err != nil {
		return nil, err
	}
	printKeyValue("store", "mongodb/"+so.mongoDB)
	return ms, nil
}

// displayAddr turns a listen address into a clickable URL.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
