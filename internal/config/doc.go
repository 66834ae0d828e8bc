// Package config loads reel's TOML configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/reel/config.toml
//  3. If the file doesn't exist, use defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// # TOML Format
//
//	catalog  = "~/.local/share/reel/animes.json"  # path or http(s) URL
//	data_dir = "~/.local/share/reel"
//	language = "en"
//	log_file = "~/.local/state/reel/reel.log"
//
//	[ui]
//	show_search = true
//	latest      = 5
//
// When only data_dir is set, the catalog defaults to <data_dir>/animes.json.
// Local paths get tilde expansion and are made absolute; catalog URLs are
// kept verbatim.
//
// # Error Handling
//
// Missing config files are not an error. Load returns errors for path
// expansion failures, unreadable files and TOML syntax errors.
package config
