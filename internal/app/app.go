package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/five82/reel/internal/catalog"
	"github.com/five82/reel/internal/config"
	"github.com/five82/reel/internal/i18n"
	"github.com/five82/reel/internal/inbox"
	"github.com/five82/reel/internal/logging"
	"github.com/five82/reel/internal/prefs"
	"github.com/five82/reel/internal/ui"
)

// Options configure the reel application. Non-empty fields override the
// config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/reel/prefs.toml
	Catalog    string // path or http(s) URL
	DataDir    string
	Lang       string
	LogFile    string
	NoSearch   bool
	Debug      bool
}

// Run boots the reel TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	closer, err := logging.Setup(logging.Options{Path: cfg.LogFile, Debug: opts.Debug})
	if err != nil {
		// Logging is best effort; the UI still works without it.
		logging.Warnf("logging disabled: %v", err)
	}
	defer closer.Close()

	i18n.Init(cfg.Language)
	userPrefs := prefs.Load(opts.PrefsPath)

	cat, err := catalog.Open(ctx, cfg.Catalog)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	logging.Infof("catalog %s: %d titles", cfg.Catalog, cat.Len())

	uiOpts := ui.Options{
		Catalog:    cat,
		Inbox:      inbox.New(cfg.DataDir),
		ShowSearch: cfg.UI.ShowSearch,
		Latest:     cfg.UI.Latest,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
	}
	return ui.Run(ctx, uiOpts)
}

// resolveConfig loads the config file and applies the option overrides.
func resolveConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	if dir := strings.TrimSpace(opts.DataDir); dir != "" {
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return config.Config{}, fmt.Errorf("data dir: %w", err)
		}
		if cfg.Catalog == config.DefaultCatalog(cfg.DataDir) {
			cfg.Catalog = config.DefaultCatalog(expanded)
		}
		cfg.DataDir = expanded
	}
	if source := strings.TrimSpace(opts.Catalog); source != "" {
		cfg.Catalog = config.ResolveCatalog(source)
	}
	if lang := strings.TrimSpace(opts.Lang); lang != "" {
		cfg.Language = lang
	}
	if logFile := strings.TrimSpace(opts.LogFile); logFile != "" {
		expanded, err := config.ExpandPath(logFile)
		if err != nil {
			return config.Config{}, fmt.Errorf("log file: %w", err)
		}
		cfg.LogFile = expanded
	}
	if opts.NoSearch {
		cfg.UI.ShowSearch = false
	}
	return cfg, nil
}
