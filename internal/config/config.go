package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/adimsa/sinyal/internal/pathutil"
)

// Config captures the fields sinyal needs to reach the account gateway.
type Config struct {
	APIBaseURL string
	SubsType   string
}

const (
	defaultConfigPath = "~/.config/sinyal/config.toml"
	defaultBaseURL    = "http://localhost:8000"
	defaultSubsType   = "PREPAID"
)

// Load locates and parses the sinyal config, falling back to defaults when
// missing.
func Load(path string) (Config, error) {
	resolved, err := pathutil.Resolve(path, defaultConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{APIBaseURL: defaultBaseURL, SubsType: defaultSubsType}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
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
		APIBaseURL string `toml:"api_base_url"`
		SubsType   string `toml:"subs_type"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.APIBaseURL = strings.TrimSpace(raw.APIBaseURL)
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultBaseURL
	}

	cfg.SubsType = strings.TrimSpace(raw.SubsType)
	if cfg.SubsType == "" {
		cfg.SubsType = defaultSubsType
	}

	return cfg, nil
}
