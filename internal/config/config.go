package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

var ErrNotConfigured = errors.New("jira credentials not configured")

// Settings holds the connection details for the Jira instance. Environment
// variables override the optional config file.
type Settings struct {
	BaseURL string
	Token   string
}

type fileConfig struct {
	BaseURL string `toml:"base_url"`
	PAT     string `toml:"pat"`
}

// Load resolves settings from ~/.ticketflow/config.toml, then applies the
// JIRA_BASE_URL and JIRA_PAT environment variables on top. A missing config
// file is not an error; completeness is checked separately so dry runs and
// schema listing work unconfigured.
func Load() (*Settings, error) {
	settings := &Settings{}

	path, err := ConfigPath()
	if err == nil {
		var fc fileConfig
		if _, err := toml.DecodeFile(path, &fc); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else {
			settings.BaseURL = fc.BaseURL
			settings.Token = fc.PAT
		}
	}

	if v := os.Getenv("JIRA_BASE_URL"); v != "" {
		settings.BaseURL = v
	}
	if v := os.Getenv("JIRA_PAT"); v != "" {
		settings.Token = v
	}

	settings.BaseURL = strings.TrimSpace(settings.BaseURL)
	settings.Token = strings.TrimSpace(settings.Token)

	return settings, nil
}

// CheckReady verifies both values needed for a real submission are present.
func (s *Settings) CheckReady() error {
	if s.BaseURL == "" {
		return fmt.Errorf("%w: set JIRA_BASE_URL (or base_url in the config file)", ErrNotConfigured)
	}
	if s.Token == "" {
		return fmt.Errorf("%w: set JIRA_PAT (or pat in the config file)", ErrNotConfigured)
	}
	return nil
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".ticketflow"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func MaskToken(token string) string {
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	head := token[:4]
	tail := token[len(token)-4:]
	return fmt.Sprintf("%s***%s", head, tail)
}
