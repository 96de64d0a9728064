package cmd

import (
	"strings"

	"github.com/misterclayt0n/dugout/internal/app"
	"github.com/spf13/cobra"
)

var tipsCategory string

var tipsCmd = &cobra.Command{
	Use:   "tips <id-or-username>",
	Short: "Ask the AI coach for workout tips tailored to a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closeApp, err := openApp()
		if err != nil {
			return err
		}
		defer closeApp()

		if err := a.Resume(); err != nil {
			return err
		}
		p, err := a.FindPlayer(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		a.ShowPlayerDetail(p)
		return a.GetPlayerTips(cmd.Context(), tipsCategory)
	},
}

func init() {
	rootCmd.AddCommand(tipsCmd)
	tipsCmd.Flags().StringVarP(&tipsCategory, "category", "c", app.TipCategories[0],
		"Tip category ("+strings.Join(app.TipCategories, ", ")+")")
}
