// Package app wires the manifest loader, navigation validator, path
// resolver, and report cache into the audit pipeline the CLI runs.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mintkit/mintlint/internal/cache"
	"github.com/mintkit/mintlint/internal/config"
	"github.com/mintkit/mintlint/internal/domain"
	"github.com/mintkit/mintlint/internal/manifest"
	"github.com/mintkit/mintlint/internal/navigation"
	"github.com/mintkit/mintlint/internal/output"
	"github.com/mintkit/mintlint/internal/resolver"
	"github.com/mintkit/mintlint/internal/utils"
)

// Auditor coordinates manifest loading, validation, and path resolution
type Auditor struct {
	config   *config.Config
	resolver domain.Resolver
	cache    domain.Cache
	logger   *utils.Logger
	progress bool
}

// Options contains options for creating an auditor
type Options struct {
	Config  *config.Config
	Verbose bool

	// Resolver overrides the filesystem resolver built from Config.Docs.Dir
	Resolver domain.Resolver

	// Cache overrides the badger cache built from Config.Cache
	Cache domain.Cache

	// Logger overrides the logger built from Config.Logging
	Logger *utils.Logger

	// Progress enables a progress bar while resolving paths
	Progress bool
}

// New creates a new auditor with the given configuration
func New(opts Options) (*Auditor, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logLevel := cfg.Logging.Level
		if opts.Verbose {
			logLevel = "debug"
		}
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:   logLevel,
			Format:  cfg.Logging.Format,
			Verbose: opts.Verbose,
		})
	}
	logger = logger.WithComponent("auditor")

	res := opts.Resolver
	if res == nil {
		res = resolver.New(utils.ExpandPath(cfg.Docs.Dir))
	}

	c := opts.Cache
	if c == nil && cfg.Cache.Enabled {
		bc, err := cache.NewBadgerCache(cache.Options{
			Directory: utils.ExpandPath(cfg.Cache.Directory),
		})
		if err != nil {
			// A locked or unwritable cache dir shouldn't block validation
			logger.Warn().Err(err).Msg("report cache unavailable, continuing without it")
		} else {
			c = bc
		}
	}

	return &Auditor{
		config:   cfg,
		resolver: res,
		cache:    c,
		logger:   logger,
		progress: opts.Progress,
	}, nil
}

// Close releases auditor resources
func (a *Auditor) Close() error {
	if a.cache != nil {
		return a.cache.Close()
	}
	return nil
}

// Validate loads the manifest file and validates its navigation tree.
// The returned report carries the leaf paths in sidebar order; no path
// resolution is performed.
func (a *Auditor) Validate(ctx context.Context, path string) (*output.Report, error) {
	data, err := manifest.ReadFile(path)
	if err != nil {
		return nil, err
	}

	_, report, err := a.validateBytes(data)
	return report, err
}

// Audit validates the manifest and resolves every leaf path against the
// document resolver. The report cache is consulted first, keyed by a
// content hash of the manifest bytes.
func (a *Auditor) Audit(ctx context.Context, path string) (*output.Report, error) {
	log := a.logger.WithManifest(path)

	data, err := manifest.ReadFile(path)
	if err != nil {
		return nil, err
	}

	key := cache.ReportKey(data)
	if cached := a.cachedReport(ctx, key); cached != nil {
		log.Debug().Msg("report cache hit")
		return cached, nil
	}

	_, report, err := a.validateBytes(data)
	if err != nil {
		return nil, err
	}

	exists := a.resolver.Exists
	if a.progress {
		bar := utils.NewProgressBar(len(report.Pages), utils.DescResolving)
		defer func() { _ = bar.Finish() }()
		exists = func(p string) bool {
			defer func() { _ = bar.Add(1) }()
			return a.resolver.Exists(p)
		}
	}
	report.Missing = navigation.ResolvePaths(report.Pages, exists)

	log.Info().
		Int("pages", report.PageCount()).
		Int("missing", len(report.Missing)).
		Msg("audit complete")

	a.storeReport(ctx, key, data, report, log)
	return report, nil
}

func (a *Auditor) validateBytes(data []byte) (*manifest.Manifest, *output.Report, error) {
	m, err := manifest.Load(data)
	if err != nil {
		return nil, nil, err
	}

	paths, err := navigation.Validate(m.Navigation)
	if err != nil {
		return nil, nil, err
	}

	report := &output.Report{
		Manifest: m.Name,
		Groups:   countGroups(m.Navigation),
		Anchors:  len(m.Anchors),
		Pages:    paths,
		Valid:    true,
	}
	return m, report, nil
}

func (a *Auditor) cachedReport(ctx context.Context, key string) *output.Report {
	if a.cache == nil {
		return nil
	}

	blob, err := a.cache.Get(ctx, key)
	if err != nil {
		return nil
	}

	var entry cache.Entry
	if err := json.Unmarshal(blob, &entry); err != nil || entry.IsExpired() {
		return nil
	}

	var report output.Report
	if err := json.Unmarshal(entry.Report, &report); err != nil {
		return nil
	}
	return &report
}

func (a *Auditor) storeReport(ctx context.Context, key string, data []byte, report *output.Report, log *utils.Logger) {
	if a.cache == nil {
		return
	}

	blob, err := json.Marshal(report)
	if err != nil {
		return
	}

	now := time.Now()
	entry := cache.Entry{
		Hash:      cache.ContentHash(data),
		Report:    blob,
		CreatedAt: now,
		ExpiresAt: now.Add(a.config.Cache.TTL),
	}

	raw, err := json.Marshal(&entry)
	if err != nil {
		return
	}

	if err := a.cache.Set(ctx, key, raw, a.config.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to cache report")
	}
}

func countGroups(groups []manifest.Group) int {
	n := 0
	for _, g := range groups {
		n++
		for _, p := range g.Pages {
			if !p.IsLeaf() {
				n += countGroups([]manifest.Group{*p.Group})
			}
		}
	}
	return n
}
