package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/misterclayt0n/dugout/internal/config"
	"github.com/misterclayt0n/dugout/internal/storage"
	"github.com/spf13/cobra"
)

var forceInit bool

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file and prepare the session database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("Failed to locate config: %w", err)
		}

		written, err := writeConfigFile(path, forceInit)
		if err != nil {
			return err
		}
		if written {
			fmt.Printf("✅ Config written to %s\n", path)
		} else {
			fmt.Printf("Config already exists at %s (use --force to overwrite)\n", path)
		}

		if cfg.Storage.ConnectionString == "" {
			return nil
		}

		st, err := storage.NewStorage(cfg.Storage.ConnectionString)
		if err != nil {
			return fmt.Errorf("Failed to initialize database: %w", err)
		}
		defer st.Close()

		fmt.Printf("✅ Database initialized at %s\n", cfg.Storage.ConnectionString)
		return nil
	},
}

// writeConfigFile stores the file's own settings, or the defaults when there
// is no file yet. Environment and flag overrides are never written.
func writeConfigFile(path string, force bool) (bool, error) {
	_, statErr := os.Stat(path)
	switch {
	case statErr == nil && !force:
		return false, nil
	case statErr != nil && !errors.Is(statErr, fs.ErrNotExist):
		return false, fmt.Errorf("Failed to check config: %w", statErr)
	}

	fileCfg, err := config.ReadFile(path)
	if err != nil {
		return false, err
	}
	if err := config.Write(path, fileCfg); err != nil {
		return false, fmt.Errorf("Failed to write config: %w", err)
	}
	return true, nil
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
	initSetupCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
}
