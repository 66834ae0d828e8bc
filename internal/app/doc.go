// Package app is the composition root for reel.
//
// Run loads the config file and applies command-line overrides, points the
// logger at the log file, selects the UI language, loads preferences, opens
// the catalog from disk or over HTTP and starts the TUI. Only startup errors
// (config, catalog) are returned; failures while the UI runs are logged and
// shown in the UI.
package app
