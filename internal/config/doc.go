// Package config loads the sheetfeed inspector configuration.
//
// # Overview
//
// The inspector reads a small TOML file to learn where the feed lives, which
// wire format to request and which credential to attach. Everything is
// optional; with no file at all the inspector reads public spreadsheets from
// the default feed root in JSON.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/sheetfeed/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//  5. SHEETFEED_AUTH_TOKEN and SHEETFEED_ACCESS_TOKEN override the file
//
// # Default Values
//
//   - Config file: ~/.config/sheetfeed/config.toml
//   - Feed root: https://spreadsheets.google.com/feeds/
//   - Format: json
//   - Timeout: 30 seconds
//
// # TOML Format
//
// Example config.toml:
//
//	feed_url = "https://spreadsheets.google.com/feeds/"
//	format = "xml"
//	timeout_seconds = 10
//	user_agent = "my-inspector/1.0"
//	auth_token = "DQAAAH..."
//	access_token = "ya29...."
//
// access_token takes precedence over auth_token when both are present; the
// caller decides how each is turned into a credential.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors, unknown formats and negative timeouts
//
// Missing config files are NOT an error - defaults are used instead.
package config
