// Package prefs persists inspector preferences: the colour theme and the
// spreadsheets opened most recently. The file lives at
// ~/.config/sheetfeed/prefs.toml unless a path is given.
//
// Preferences are a convenience. Load never fails; a missing, unreadable or
// malformed file yields defaults.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultPrefsPath = "~/.config/sheetfeed/prefs.toml"
	defaultTheme     = "Nightfox"

	// maxRecent caps the recent-spreadsheet history.
	maxRecent = 8
)

// Prefs holds user preferences for the inspector.
type Prefs struct {
	Theme   string   `toml:"theme"`
	LastKey string   `toml:"last_key,omitempty"`
	Recent  []string `toml:"recent,omitempty"`
}

// Default returns the preferences used when nothing is stored.
func Default() Prefs {
	return Prefs{Theme: defaultTheme}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Remember records key as the most recently opened spreadsheet. The key
// moves to the front of Recent and becomes LastKey.
func (p *Prefs) Remember(key string) {
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	p.LastKey = key
	p.Recent = dedupe(append([]string{key}, p.Recent...))
}

func (p *Prefs) normalize() {
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	p.LastKey = strings.TrimSpace(p.LastKey)
	p.Recent = dedupe(p.Recent)
}

// dedupe trims keys, drops blanks and repeats, and keeps at most maxRecent.
func dedupe(keys []string) []string {
	var out []string
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
		if len(out) == maxRecent {
			break
		}
	}
	return out
}

// Load reads preferences from path, or the default location when path is
// empty. The error is always nil; it is kept so callers read like config.Load.
func Load(path string) (Prefs, error) {
	p := Default()

	resolved, err := resolvePath(path)
	if err != nil {
		return p, nil
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return p, nil
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	p.normalize()
	return p, nil
}

// Save writes p to path, creating directories as needed. The file is
// replaced atomically.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve prefs path: %w", err)
	}

	p.normalize()
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

// Update loads the preferences at path, applies fn and saves the result.
// Fields fn leaves alone keep their stored values.
func Update(path string, fn func(*Prefs)) error {
	p, _ := Load(path)
	fn(&p)
	return Save(path, p)
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = defaultPrefsPath
	}
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, rest)
	}
	return filepath.Abs(path)
}
