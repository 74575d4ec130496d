// Package config handles loading and parsing tabula configuration files.
//
// # Overview
//
// This package reads tabula's TOML configuration: where the JSONPlaceholder
// API lives, how long to wait for it, the initial page size and where logs go.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/tabula/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/tabula/config.toml
//   - API base: https://jsonplaceholder.typicode.com
//   - Timeout: 10s
//   - Page size: 10
//   - Log file: ~/.local/state/tabula/tabula.log
//   - Log level: info
//   - Seq URL: unset (Seq logging disabled)
//
// # TOML Format
//
//	api_base = "https://jsonplaceholder.typicode.com"
//	timeout = "10s"
//	page_size = 10
//	log_file = "~/.local/state/tabula/tabula.log"
//	log_level = "info"
//	seq_url = "http://localhost:5341/ingest/clef"
//
// Every field is optional. Strings are trimmed and tilde expansion is applied
// to log_file. Timeouts use Go duration syntax and must be positive.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors and unusable timeouts ("parse config: ...")
//
// Missing config files are NOT an error. tabula works against the public API
// without any configuration.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//		return fmt.Errorf("load config: %w", err)
//	}
//	client, err := placeholder.NewClient(cfg.APIBase, cfg.Timeout)
package config
