package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tailscale/hujson"
)

// Load reads a catalog document from path. A missing file yields an empty
// catalog. Comments and trailing commas are accepted.
func Load(path string) (Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return Catalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a catalog document from memory.
func Parse(data []byte) (Catalog, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return New(), nil
	}
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	return decode(standardized)
}

// IsRemote reports whether source should be fetched over HTTP.
func IsRemote(source string) bool {
	s := strings.ToLower(strings.TrimSpace(source))
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Open loads the catalog from a local path or an http(s) URL.
func Open(ctx context.Context, source string) (Catalog, error) {
	if !IsRemote(source) {
		return Load(source)
	}
	client, err := NewClient(source)
	if err != nil {
		return Catalog{}, err
	}
	return client.Fetch(ctx)
}
