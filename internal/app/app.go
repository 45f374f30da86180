package app

import (
	"context"
	"fmt"

	"github.com/adimsa/sinyal/internal/config"
	"github.com/adimsa/sinyal/internal/gateway"
	"github.com/adimsa/sinyal/internal/prefs"
	"github.com/adimsa/sinyal/internal/state"
	"github.com/adimsa/sinyal/internal/ui"
)

// Options configure the sinyal application.
type Options struct {
	ConfigPath    string
	PrefsPath     string // empty uses default ~/.config/sinyal/prefs.toml
	ReadStatePath string // empty uses default ~/.local/state/sinyal/read.toml
}

// Run boots the sinyal TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := gateway.NewClient(cfg.APIBaseURL)
	if err != nil {
		return fmt.Errorf("init gateway client: %w", err)
	}

	store := &state.Store{}

	uiOpts := ui.Options{
		Context:       ctx,
		Client:        client,
		Store:         store,
		Config:        &cfg,
		ThemeName:     userPrefs.Theme,
		PrefsPath:     opts.PrefsPath,
		ReadStatePath: opts.ReadStatePath,
		Refresh: func(ctx context.Context) error {
			return RefreshOverview(ctx, client, cfg.SubsType, store)
		},
	}
	return ui.Run(uiOpts)
}
