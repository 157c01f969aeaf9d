// Package app provides the orchestration layer for the sheetfeed inspector.
//
// # Overview
//
// This package wires together configuration, preferences, the feed client
// and the UI. It is the composition root: every command of the inspector
// starts from Setup and receives an Env with a ready client and credential.
//
// # Architecture
//
//  1. Load inspector configuration from ~/.config/sheetfeed/config.toml
//  2. Load preferences (theme, last and recent keys) from prefs.toml
//  3. Build the sheetfeed.Client with the configured feed root, format and timeout
//  4. Pick the credential: access_token, then auth_token, then none
//  5. For browse, start the TUI and block until the user exits or ctx cancels
//
// # Data Flow
//
//	┌──────────────┐
//	│   Setup()    │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read inspector config
//	       ├─────> prefs.Load()         Theme and last key
//	       ├─────> NewClient()          Feed client
//	       └─────> CredentialFor()      OAuth2 delegate, static token or none
//
//	Env.Browse(ctx, key)
//	       └─────> ui.Run()             Start TUI (blocks)
//
// # Error Handling
//
// Setup fails on unreadable or invalid configuration and on an unusable feed
// URL. Preferences never fail: unreadable files fall back to defaults.
// Feed errors are returned to the caller as the typed errors of package
// sheetfeed so commands can report them verbatim.
package app
