package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/sheetfeed/pkg/sheetfeed"
)

// Config captures the settings the inspector needs to reach the feed.
type Config struct {
	FeedURL     string
	Format      sheetfeed.Format
	Timeout     time.Duration
	UserAgent   string
	AuthToken   string
	AccessToken string
}

const (
	defaultConfigPath = "~/.config/sheetfeed/config.toml"
	defaultTimeout    = 30 * time.Second

	envAuthToken   = "SHEETFEED_AUTH_TOKEN"
	envAccessToken = "SHEETFEED_ACCESS_TOKEN"
)

// Load locates and parses the inspector config, falling back to defaults when missing.
// Credentials from the environment override the file.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{FeedURL: sheetfeed.DefaultFeedURL, Format: sheetfeed.FormatJSON, Timeout: defaultTimeout}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.applyEnv()
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
		FeedURL        string `toml:"feed_url"`
		Format         string `toml:"format"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
		UserAgent      string `toml:"user_agent"`
		AuthToken      string `toml:"auth_token"`
		AccessToken    string `toml:"access_token"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if feedURL := strings.TrimSpace(raw.FeedURL); feedURL != "" {
		cfg.FeedURL = feedURL
	}

	cfg.Format, err = sheetfeed.ParseFormat(raw.Format)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.TimeoutSeconds < 0 {
		return Config{}, fmt.Errorf("parse config: timeout_seconds must not be negative")
	}
	if raw.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}

	cfg.UserAgent = strings.TrimSpace(raw.UserAgent)
	cfg.AuthToken = strings.TrimSpace(raw.AuthToken)
	cfg.AccessToken = strings.TrimSpace(raw.AccessToken)
	cfg.applyEnv()

	return cfg, nil
}

// DefaultPath returns the expanded default config location.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(envAuthToken)); v != "" {
		c.AuthToken = v
	}
	if v := strings.TrimSpace(os.Getenv(envAccessToken)); v != "" {
		c.AccessToken = v
	}
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
