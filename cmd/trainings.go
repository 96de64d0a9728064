package cmd

import (
	"github.com/spf13/cobra"
)

var trainingsCmd = &cobra.Command{
	Use:   "trainings",
	Short: "List the training library",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closeApp, err := openApp()
		if err != nil {
			return err
		}
		defer closeApp()

		if err := a.Resume(); err != nil {
			return err
		}
		return a.LoadTrainings(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(trainingsCmd)
}
