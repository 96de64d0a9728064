package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/misterclayt0n/dugout/internal/config"
	"github.com/misterclayt0n/dugout/internal/render"
	"github.com/misterclayt0n/dugout/internal/storage"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session and configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		kv, closeStore, err := storage.Open(cfg.Storage.ConnectionString)
		if err != nil {
			return fmt.Errorf("Failed to open session store: %w", err)
		}
		defer closeStore()

		out := os.Stdout
		render.BoxedHeader(out, "STATUS")

		session, ok := storage.NewSessionStore(kv, slog.Default()).Load()
		if ok {
			render.Metric(out, "Logged in as", fmt.Sprintf("%s (%s)", session.User.FullName(), session.User.Username))
			render.Metric(out, "Account type", session.User.UserType)
			render.Metric(out, "Email", session.User.Email)
		} else {
			render.Metric(out, "Logged in as", color.New(color.Faint).Sprint("nobody"))
		}
		fmt.Fprintln(out)

		header := color.New(color.FgGreen, color.Bold).Sprintf("Configuration:")
		fmt.Fprintln(out, header)
		if path, err := config.GetConfigPath(); err == nil {
			render.Metric(out, "Config file", path)
		}
		render.Metric(out, "API", cfg.API.BaseURL)
		render.Metric(out, "Session store", storeDescription(kv))
		render.Metric(out, "Log level", cfg.Log.Level)
		return nil
	},
}

func storeDescription(kv storage.KV) string {
	if f, ok := kv.(*storage.FileKV); ok {
		return f.Path()
	}
	return cfg.Storage.ConnectionString
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
