package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	"github.com/five82/sheetfeed/internal/config"
	"github.com/five82/sheetfeed/internal/prefs"
	"github.com/five82/sheetfeed/internal/ui"
	"github.com/five82/sheetfeed/pkg/sheetfeed"
)

// Options configure the inspector.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/sheetfeed/prefs.toml
	XML        bool   // request the legacy XML feed regardless of config
	Logger     *slog.Logger
}

// Env holds everything a command needs to talk to the feed.
type Env struct {
	Config     config.Config
	Prefs      prefs.Prefs
	PrefsPath  string
	Client     *sheetfeed.Client
	Credential sheetfeed.Credential
}

// Setup loads configuration and preferences and builds the feed client.
func Setup(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.XML {
		cfg.Format = sheetfeed.FormatXML
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := NewClient(cfg, opts.Logger)
	if err != nil {
		return nil, fmt.Errorf("init feed client: %w", err)
	}

	return &Env{
		Config:     cfg,
		Prefs:      userPrefs,
		PrefsPath:  opts.PrefsPath,
		Client:     client,
		Credential: CredentialFor(cfg),
	}, nil
}

// NewClient builds a feed client from cfg.
func NewClient(cfg config.Config, logger *slog.Logger) (*sheetfeed.Client, error) {
	return sheetfeed.NewClient(sheetfeed.ClientOptions{
		FeedURL:   cfg.FeedURL,
		Format:    cfg.Format,
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
		Logger:    logger,
	})
}

// CredentialFor picks the credential configured in cfg. An OAuth2 access
// token wins over a legacy auth token; with neither the public feed is used.
func CredentialFor(cfg config.Config) sheetfeed.Credential {
	if token := strings.TrimSpace(cfg.AccessToken); token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
		return sheetfeed.OAuth2WithClient(src, &http.Client{Timeout: cfg.Timeout})
	}
	if token := strings.TrimSpace(cfg.AuthToken); token != "" {
		return sheetfeed.StaticToken(token)
	}
	return nil
}

// ResolveKey returns the key to open: the argument when given, otherwise the
// last key remembered in preferences.
func (e *Env) ResolveKey(arg string) string {
	if key := strings.TrimSpace(arg); key != "" {
		return key
	}
	return e.Prefs.LastKey
}

// Browse runs the terminal browser until the user quits or ctx is cancelled.
func (e *Env) Browse(ctx context.Context, key string) error {
	return ui.Run(ui.Options{
		Context:    ctx,
		Fetcher:    e.Client,
		Key:        e.ResolveKey(key),
		Credential: e.Credential,
		ThemeName:  e.Prefs.Theme,
		PrefsPath:  e.PrefsPath,
	})
}
