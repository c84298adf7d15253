package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/MasoudKargar/HAG/pkg/cache"
	"github.com/MasoudKargar/HAG/pkg/errors"
	"github.com/MasoudKargar/HAG/pkg/graph"
	"github.com/MasoudKargar/HAG/pkg/hag"
	"github.com/MasoudKargar/HAG/pkg/manifest"
	"github.com/MasoudKargar/HAG/pkg/render/interactive"
	"github.com/MasoudKargar/HAG/pkg/render/nodelink"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete load → collapse → render pipeline with caching.
// Each run gets a unique ID attached to its log lines so concurrent runs
// (e.g. behind the HTTP server) stay distinguishable.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	base := r.Logger
	if opts.Logger != nil {
		base = opts.Logger
	}
	logger := base.With("run", uuid.NewString())

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	g, err := Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Stats.LoadTime = time.Since(loadStart)

	// Stage 2: Collapse
	for _, name := range opts.Collapse {
		if _, ok := g.HyperVertex(hag.ID(name)); !ok {
			logger.Warn("hyper-vertex not defined, skipping collapse", "name", name)
			continue
		}
		g.CollapseHyperVertex(hag.ID(name))
		logger.Debug("collapsed hyper-vertex", "name", name)
	}

	result.Graph = g
	result.Stats.VertexCount = g.VertexCount()
	result.Stats.EdgeCount = g.EdgeCount()
	result.Stats.HyperCount = g.HyperVertexCount()

	data, err := graph.MarshalGraph(g)
	if err != nil {
		return nil, fmt.Errorf("serialize graph: %w", err)
	}
	result.GraphHash = cache.Hash(data)

	logger.Info("loaded graph",
		"vertices", result.Stats.VertexCount,
		"edges", result.Stats.EdgeCount,
		"hyper", result.Stats.HyperCount,
		"duration", result.Stats.LoadTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, hit, err := r.renderAll(ctx, g, data, result.GraphHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheHit = hit
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderAll produces every requested format, serving from the cache when
// possible. The second return reports whether all artifacts were cached.
func (r *Runner) renderAll(ctx context.Context, g *hag.Graph, graphJSON []byte, graphHash string, opts Options) (map[string][]byte, bool, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	// Try cache first (unless refresh requested).
	if !opts.Refresh {
		allCached := true
		for _, format := range opts.Formats {
			key := cache.ArtifactKey(graphHash, format, renderKeyOpts(opts))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				allCached = false
				break
			}
			artifacts[format] = data
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
		clear(artifacts)
	}

	for _, format := range opts.Formats {
		data, err := renderFormat(g, graphJSON, format, opts)
		if err != nil {
			return nil, false, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
		key := cache.ArtifactKey(graphHash, format, renderKeyOpts(opts))
		_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
	}

	return artifacts, false, nil
}

// renderFormat produces a single artifact.
func renderFormat(g *hag.Graph, graphJSON []byte, format string, opts Options) ([]byte, error) {
	dotOpts := nodelink.Options{Detailed: opts.Detailed}
	switch format {
	case FormatJSON:
		return graphJSON, nil
	case FormatDOT:
		return []byte(nodelink.ToDOT(g, dotOpts)), nil
	case FormatSVG:
		return nodelink.RenderSVG(nodelink.ToDOT(g, dotOpts))
	case FormatPNG:
		return nodelink.RenderPNG(nodelink.ToDOT(g, dotOpts), opts.Scale)
	case FormatPDF:
		return nodelink.RenderPDF(nodelink.ToDOT(g, dotOpts))
	case FormatHTML:
		return interactive.Render(g, interactive.Options{Title: opts.Title})
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format %q", format)
	}
}

// renderKeyOpts returns the option set that influences rendered bytes,
// for inclusion in artifact cache keys.
func renderKeyOpts(opts Options) map[string]any {
	return map[string]any{
		"detailed": opts.Detailed,
		"title":    opts.Title,
		"scale":    opts.Scale,
	}
}

// Load reads a graph from a manifest (.toml) or snapshot (.json) file.
func Load(path string) (*hag.Graph, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return manifest.Load(path)
	case ".json":
		return graph.ReadGraphFile(path)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported input %q: expected a .toml manifest or .json snapshot", path)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
