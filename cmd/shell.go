package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/dugout/internal/api"
	"github.com/misterclayt0n/dugout/internal/app"
	"github.com/misterclayt0n/dugout/internal/models"
	"github.com/misterclayt0n/dugout/internal/view"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive session over a single client",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closeApp, err := openApp()
		if err != nil {
			return err
		}
		defer closeApp()

		return newShell(a, os.Stdin, os.Stdout).run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

const shellHelp = `Commands:
  login <username> <password>
  register                 prompts for the account fields
  logout
  players                  list your players
  add                      prompts for a new player
  show <id-or-username>    open a player's profile
  tab <overview|trainings|analytics>
  tips [category]          AI workout tips for the open player
  trainings                list the training library
  edit | assign            player actions
  home                     back to the landing page
  go <view>                landing, login, register, players, add-player, player-detail
  help
  quit`

type shell struct {
	app *app.App
	in  *bufio.Scanner
	out io.Writer
}

func newShell(a *app.App, in io.Reader, out io.Writer) *shell {
	return &shell{app: a, in: bufio.NewScanner(in), out: out}
}

func (s *shell) run(ctx context.Context) error {
	// Boot failures are already on screen.
	s.app.Boot(ctx)

	prompt := color.New(color.FgCyan, color.Bold).Sprint("dugout> ")
	for {
		fmt.Fprint(s.out, prompt)
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}

		quit, err := s.exec(ctx, s.in.Text())
		if quit {
			return nil
		}
		if err != nil && !reported(err) {
			fmt.Fprintln(s.out, color.RedString(err.Error()))
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// reported tells whether the App already notified the user about err.
func reported(err error) bool {
	var reqErr *app.RequestError
	return errors.As(err, &reqErr) ||
		errors.Is(err, api.ErrConnection) ||
		errors.Is(err, app.ErrPasswordMismatch) ||
		errors.Is(err, app.ErrNoPlayerSelected) ||
		errors.Is(err, app.ErrUnsupportedRole) ||
		errors.Is(err, app.ErrPlayerNotFound) ||
		errors.Is(err, app.ErrNotLoggedIn)
}

func (s *shell) exec(ctx context.Context, line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprintln(s.out, shellHelp)
	case "home":
		s.app.ShowLanding()
	case "go":
		if len(args) != 1 {
			return false, errors.New("usage: go <view>")
		}
		v, err := view.ParseView(args[0])
		if err != nil {
			return false, err
		}
		return false, s.app.Navigate(ctx, v)
	case "login":
		if len(args) != 2 {
			s.app.ShowLogin()
			return false, errors.New("usage: login <username> <password>")
		}
		return false, s.app.Login(ctx, args[0], args[1])
	case "register":
		s.app.ShowRegister()
		form := app.RegisterForm{
			FirstName:       s.ask("First name"),
			LastName:        s.ask("Last name"),
			Username:        s.ask("Username"),
			Email:           s.ask("Email"),
			Password:        s.ask("Password"),
			ConfirmPassword: s.ask("Confirm password"),
		}
		return false, s.app.Register(ctx, form)
	case "logout":
		s.app.Logout()
	case "players":
		return false, s.app.ShowPlayers(ctx)
	case "add":
		s.app.ShowAddPlayer()
		form := app.PlayerForm{
			FirstName:  s.ask("First name"),
			LastName:   s.ask("Last name"),
			Username:   s.ask("Username"),
			Email:      s.ask("Email"),
			Password:   s.ask("Password"),
			Position:   s.ask("Position"),
			Team:       s.ask("Team (optional)"),
			Height:     s.ask("Height in m (optional)"),
			Weight:     s.ask("Weight in kg (optional)"),
			Strengths:  s.ask("Strengths (optional)"),
			Weaknesses: s.ask("Areas to improve (optional)"),
		}
		if form.Position != "" && !models.Position(form.Position).Valid() {
			return false, fmt.Errorf("unknown position %q, use one of: %s", form.Position, models.PositionNames())
		}
		return false, s.app.AddPlayer(ctx, &form)
	case "show":
		if len(args) != 1 {
			return false, errors.New("usage: show <id-or-username>")
		}
		p, err := s.app.FindPlayer(ctx, args[0])
		if err != nil {
			return false, err
		}
		s.app.ShowPlayerDetail(p)
	case "tab":
		if len(args) != 1 {
			return false, errors.New("usage: tab <overview|trainings|analytics>")
		}
		tab, err := view.ParseTab(args[0])
		if err != nil {
			return false, err
		}
		return false, s.app.SelectTab(ctx, tab)
	case "tips":
		category := app.TipCategories[0]
		if len(args) > 0 {
			category = args[0]
		}
		return false, s.app.GetPlayerTips(ctx, category)
	case "trainings":
		return false, s.app.LoadTrainings(ctx)
	case "edit":
		p, ok := s.app.State().Selected()
		if !ok {
			return false, errors.New("open a player first")
		}
		s.app.EditPlayer(p.ID)
	case "assign":
		s.app.AssignTraining()
	default:
		return false, fmt.Errorf("unknown command %q, try help", name)
	}
	return false, nil
}

func (s *shell) ask(label string) string {
	fmt.Fprintf(s.out, "%s: ", label)
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}
