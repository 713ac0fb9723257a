package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/kdmsoft/nodegrid/internal/api"
	"github.com/kdmsoft/nodegrid/pkg/cache"
	"github.com/kdmsoft/nodegrid/pkg/scene"
	"github.com/kdmsoft/nodegrid/pkg/snap"
	"github.com/kdmsoft/nodegrid/pkg/store"
)

// shutdownTimeout bounds graceful HTTP shutdown after a signal.
const shutdownTimeout = 5 * time.Second

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address; empty uses the config value
	sceneFile string // scene JSON file to load at startup
	sceneName string // named scene to load from the store at startup
}

// serveCommand creates the serve command. It exposes the engine over HTTP
// so an out-of-process GUI host can commit node moves and read membership
// summaries. Backends come from the config file: Redis for the summary
// cache and Mongo for the scene store, with file-based fallbacks.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout engine over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.sceneFile != "" && opts.sceneName != "" {
				return errors.New("--scene and --name are mutually exclusive")
			}
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config)")
	cmd.Flags().StringVar(&opts.sceneFile, "scene", "", "scene JSON file to serve")
	cmd.Flags().StringVar(&opts.sceneName, "name", "", "named scene to load from the store")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	addr := opts.addr
	if addr == "" {
		addr = c.Config.Serve.Addr
	}

	byteCache, err := c.newServeCache(ctx)
	if err != nil {
		return err
	}
	defer byteCache.Close()

	st, err := c.newStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	sc, err := c.loadServeScene(ctx, st, opts)
	if err != nil {
		return err
	}
	c.Config.Layout.Apply(sc)

	engine := snap.New(c.Logger)
	engine.LayoutAll(sc)

	handler := api.NewServer(c.Logger, engine, sc, byteCache)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if opts.sceneName != "" {
		// Save the scene the handler owns, not the one loaded at startup;
		// PUT /scene replaces the instance.
		if err := st.Save(shutdownCtx, opts.sceneName, handler.Scene()); err != nil {
			return err
		}
		c.Logger.Info("scene saved", "name", opts.sceneName)
	}
	return nil
}

// newServeCache selects the summary cache backend: Redis when configured,
// otherwise no caching.
func (c *CLI) newServeCache(ctx context.Context) (cache.Cache, error) {
	if addr := c.Config.Serve.RedisAddr; addr != "" {
		c.Logger.Debug("using redis cache", "addr", addr)
		return cache.NewRedisCache(ctx, addr)
	}
	return cache.NewNullCache(), nil
}

// newStore selects the scene store backend: Mongo when configured,
// otherwise JSON files in the default directory.
func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	if uri := c.Config.Serve.MongoURI; uri != "" {
		c.Logger.Debug("using mongo store", "database", c.Config.Serve.MongoDatabase)
		return store.NewMongoStore(ctx, uri, c.Config.Serve.MongoDatabase)
	}
	return store.NewFileStore("")
}

// loadServeScene resolves the initial scene: an explicit file, a named
// scene from the store, or an empty scene.
func (c *CLI) loadServeScene(ctx context.Context, st store.Store, opts *serveOpts) (*scene.Scene, error) {
	switch {
	case opts.sceneFile != "":
		return scene.ReadFile(opts.sceneFile)
	case opts.sceneName != "":
		sc, err := st.Load(ctx, opts.sceneName)
		if errors.Is(err, store.ErrNotFound) {
			c.Logger.Info("scene not found, starting empty", "name", opts.sceneName)
			return scene.New(), nil
		}
		return sc, err
	default:
		return scene.New(), nil
	}
}
