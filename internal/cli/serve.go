package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/MasoudKargar/HAG/pkg/cache"
	"github.com/MasoudKargar/HAG/pkg/pipeline"
)

// serveCommand creates the serve command that exposes a graph over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve a graph over HTTP",
		Long: `Serve a graph over HTTP.

The input file is re-read on every request, so edits to the manifest
show up on reload. Routes:

  GET /            interactive HTML view
  GET /svg         static SVG
  GET /dot         Graphviz DOT source
  GET /graph.json  JSON snapshot

All routes accept ?collapse=<name> (repeatable) to fold hyper-vertices
before rendering.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newServeRunner(cmd.Context(), redisAddr, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			srv := &http.Server{
				Addr:              addr,
				Handler:           c.newRouter(runner, args[0]),
				ReadHeaderTimeout: 5 * time.Second,
			}

			// Shut down when the command context is cancelled (SIGINT).
			go func() {
				<-cmd.Context().Done()
				_ = srv.Close()
			}()

			c.Logger.Info("serving graph", "file", args[0], "addr", addr)
			printInfo("Serving %s on http://localhost%s", args[0], addr)

			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "share the render cache via Redis at this address (host:port)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable render caching")

	return cmd
}

// newServeRunner builds the pipeline runner for the server. With --redis
// the artifact cache is shared across instances; otherwise the local file
// cache is used.
func (c *CLI) newServeRunner(ctx context.Context, redisAddr string, noCache bool) (*pipeline.Runner, error) {
	if redisAddr == "" {
		return c.newRunner(noCache)
	}
	rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(rc, c.Logger), nil
}

// newRouter builds the chi router serving the graph at input.
func (c *CLI) newRouter(runner *pipeline.Runner, input string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(c.logRequests)

	r.Get("/", c.artifactHandler(runner, input, pipeline.FormatHTML, "text/html; charset=utf-8"))
	r.Get("/svg", c.artifactHandler(runner, input, pipeline.FormatSVG, "image/svg+xml"))
	r.Get("/dot", c.artifactHandler(runner, input, pipeline.FormatDOT, "text/plain; charset=utf-8"))
	r.Get("/graph.json", c.artifactHandler(runner, input, pipeline.FormatJSON, "application/json"))

	return r
}

// artifactHandler renders the requested format through the pipeline on
// every request. Unchanged graphs are cache hits, so reloads are cheap.
func (c *CLI) artifactHandler(runner *pipeline.Runner, input, format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := pipeline.Options{
			Input:    input,
			Formats:  []string{format},
			Collapse: r.URL.Query()["collapse"],
			Title:    input,
			Logger:   c.Logger,
		}

		result, err := runner.Execute(r.Context(), opts)
		if err != nil {
			c.Logger.Error("render failed", "format", format, "err", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(result.Artifacts[format])
	}
}

// logRequests logs each request with its duration.
func (c *CLI) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		c.Logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond))
	})
}
