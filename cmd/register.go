package cmd

import (
	"github.com/misterclayt0n/dugout/internal/app"
	"github.com/spf13/cobra"
)

var registerForm app.RegisterForm

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a trainer account and log in with it",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closeApp, err := openApp()
		if err != nil {
			return err
		}
		defer closeApp()

		a.ShowRegister()
		if err := a.Register(cmd.Context(), registerForm); err != nil {
			return err
		}

		// Stay around for the automatic login.
		if task := a.AutoLogin(); task != nil {
			select {
			case <-task.Done():
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)

	f := registerCmd.Flags()
	f.StringVar(&registerForm.FirstName, "first-name", "", "First name")
	f.StringVar(&registerForm.LastName, "last-name", "", "Last name")
	f.StringVarP(&registerForm.Username, "username", "u", "", "Username")
	f.StringVarP(&registerForm.Email, "email", "e", "", "Email")
	f.StringVarP(&registerForm.Password, "password", "p", "", "Password")
	f.StringVar(&registerForm.ConfirmPassword, "confirm-password", "", "Password again")

	for _, name := range []string{"first-name", "last-name", "username", "email", "password", "confirm-password"} {
		registerCmd.MarkFlagRequired(name)
	}
}
