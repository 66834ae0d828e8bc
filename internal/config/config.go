package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures reel's runtime settings.
type Config struct {
	Catalog  string // filesystem path or http(s) URL
	DataDir  string
	Language string
	LogFile  string
	UI       UI
}

// UI holds presentation settings.
type UI struct {
	ShowSearch bool
	Latest     int
}

const (
	defaultConfigPath = "~/.config/reel/config.toml"
	defaultDataDir    = "~/.local/share/reel"
	defaultLogFile    = "~/.local/state/reel/reel.log"
	defaultLanguage   = "en"
	defaultLatest     = 5
	catalogFileName   = "animes.json"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	dataDir := mustExpand(defaultDataDir)
	return Config{
		Catalog:  DefaultCatalog(dataDir),
		DataDir:  dataDir,
		Language: defaultLanguage,
		LogFile:  mustExpand(defaultLogFile),
		UI: UI{
			ShowSearch: true,
			Latest:     defaultLatest,
		},
	}
}

// Load locates and parses the reel config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Catalog  string `toml:"catalog"`
		DataDir  string `toml:"data_dir"`
		Language string `toml:"language"`
		LogFile  string `toml:"log_file"`
		UI       struct {
			ShowSearch *bool `toml:"show_search"`
			Latest     *int  `toml:"latest"`
		} `toml:"ui"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.DataDir); dir != "" {
		cfg.DataDir = mustExpand(dir)
		cfg.Catalog = DefaultCatalog(cfg.DataDir)
	}
	if catalog := strings.TrimSpace(raw.Catalog); catalog != "" {
		cfg.Catalog = catalog
	}
	cfg.Catalog = ResolveCatalog(cfg.Catalog)

	if lang := strings.TrimSpace(raw.Language); lang != "" {
		cfg.Language = lang
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if raw.UI.ShowSearch != nil {
		cfg.UI.ShowSearch = *raw.UI.ShowSearch
	}
	if raw.UI.Latest != nil && *raw.UI.Latest >= 0 {
		cfg.UI.Latest = *raw.UI.Latest
	}

	return cfg, nil
}

// DefaultCatalog returns the catalog path inside dataDir.
func DefaultCatalog(dataDir string) string {
	return filepath.Join(dataDir, catalogFileName)
}

// ResolveCatalog expands local catalog paths and leaves URLs untouched.
func ResolveCatalog(source string) string {
	trimmed := strings.TrimSpace(source)
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return trimmed
	}
	return mustExpand(trimmed)
}

// ExpandPath expands a leading tilde and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
