package cmd

import (
	"fmt"

	"github.com/misterclayt0n/dugout/internal/app"
	"github.com/misterclayt0n/dugout/internal/models"
	"github.com/misterclayt0n/dugout/internal/view"
	"github.com/spf13/cobra"
)

var (
	playerForm app.PlayerForm
	detailTab  string
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List your players",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closeApp, err := openApp()
		if err != nil {
			return err
		}
		defer closeApp()

		if err := a.Resume(); err != nil {
			return err
		}
		return a.ShowPlayers(cmd.Context())
	},
}

var addPlayerCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new player under your account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if playerForm.Position != "" && !models.Position(playerForm.Position).Valid() {
			return fmt.Errorf("Unknown position %q, use one of: %s", playerForm.Position, models.PositionNames())
		}

		a, closeApp, err := openApp()
		if err != nil {
			return err
		}
		defer closeApp()

		if err := a.Resume(); err != nil {
			return err
		}
		a.ShowAddPlayer()
		return a.AddPlayer(cmd.Context(), &playerForm)
	},
}

var showPlayerCmd = &cobra.Command{
	Use:   "show <id-or-username>",
	Short: "Show a player's profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tab, err := view.ParseTab(detailTab)
		if err != nil {
			return err
		}

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
		if tab == view.Overview {
			return nil
		}
		return a.SelectTab(cmd.Context(), tab)
	},
}

func init() {
	rootCmd.AddCommand(playersCmd)
	playersCmd.AddCommand(addPlayerCmd)
	playersCmd.AddCommand(showPlayerCmd)

	f := addPlayerCmd.Flags()
	f.StringVar(&playerForm.FirstName, "first-name", "", "First name")
	f.StringVar(&playerForm.LastName, "last-name", "", "Last name")
	f.StringVarP(&playerForm.Username, "username", "u", "", "Username the player logs in with")
	f.StringVarP(&playerForm.Email, "email", "e", "", "Email")
	f.StringVarP(&playerForm.Password, "password", "p", "", "Initial password")
	f.StringVar(&playerForm.Position, "position", "", "Field position ("+models.PositionNames()+")")
	f.StringVar(&playerForm.Team, "team", "", "Team")
	f.StringVar(&playerForm.Height, "height", "", "Height in meters")
	f.StringVar(&playerForm.Weight, "weight", "", "Weight in kg")
	f.StringVar(&playerForm.Strengths, "strengths", "", "Strengths")
	f.StringVar(&playerForm.Weaknesses, "weaknesses", "", "Areas to improve")
	for _, name := range []string{"first-name", "last-name", "username", "email", "password"} {
		addPlayerCmd.MarkFlagRequired(name)
	}

	showPlayerCmd.Flags().StringVarP(&detailTab, "tab", "t", "overview", "Tab to open (overview, trainings, analytics)")
}
