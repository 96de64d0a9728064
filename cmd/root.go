package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/misterclayt0n/dugout/internal/app"
	"github.com/misterclayt0n/dugout/internal/config"
	"github.com/misterclayt0n/dugout/internal/render"
	"github.com/misterclayt0n/dugout/internal/storage"
	"github.com/spf13/cobra"
)

var (
	apiURL string
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "dugout",
	Short:         "Training management for baseball coaches",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if apiURL != "" {
			loaded.API.BaseURL = apiURL
		}
		cfg = loaded
		slog.SetDefault(newLogger(cfg.Log))
		return nil
	},
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend base URL (overrides config and DUGOUT_API_URL)")
}

func newLogger(c config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(c.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// openApp builds an App over the configured session store, drawing to the
// terminal. The returned func closes both.
func openApp() (*app.App, func(), error) {
	kv, closeStore, err := storage.Open(cfg.Storage.ConnectionString)
	if err != nil {
		return nil, nil, fmt.Errorf("Failed to open session store: %w", err)
	}

	term := render.NewTerminal(os.Stdout, os.Stderr)
	a := app.New(app.Options{
		BaseURL:  cfg.API.BaseURL,
		Store:    storage.NewSessionStore(kv, slog.Default()),
		Renderer: term,
		Display:  term,
		Logger:   slog.Default(),
	})

	return a, func() {
		a.Close()
		if err := closeStore(); err != nil {
			slog.Warn("store_close_failed", "error", err)
		}
	}, nil
}
