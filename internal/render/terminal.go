// Package render draws the client's screens on a terminal.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/dugout/internal/app"
	"github.com/misterclayt0n/dugout/internal/models"
	"github.com/misterclayt0n/dugout/internal/notify"
	"github.com/misterclayt0n/dugout/internal/view"
)

var (
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	faint  = color.New(color.Faint).SprintFunc()
)

// Terminal draws screens to out and notifications to notices.
type Terminal struct {
	out     io.Writer
	notices io.Writer
}

var (
	_ app.Renderer   = (*Terminal)(nil)
	_ notify.Display = (*Terminal)(nil)
)

func NewTerminal(out, notices io.Writer) *Terminal {
	return &Terminal{out: out, notices: notices}
}

// navLinks are the sections reachable from the navigation bar.
var navLinks = []view.View{view.PlayersList, view.AddPlayer}

func (t *Terminal) Section(v view.View, user *models.User) {
	if v.ShowsNav() {
		t.nav(v, user)
	}

	switch v {
	case view.Landing:
		BoxedHeader(t.out, "DUGOUT")
		fmt.Fprintln(t.out, "Training management for baseball coaches.")
		fmt.Fprintln(t.out, "Log in or create a trainer account to get started.")
	case view.AuthLogin:
		BoxedHeader(t.out, "LOGIN")
	case view.AuthRegister:
		BoxedHeader(t.out, "CREATE TRAINER ACCOUNT")
	case view.PlayersList:
		BoxedHeader(t.out, "PLAYERS")
		if user != nil {
			Metric(t.out, "Trainer", user.FullName())
		}
	case view.AddPlayer:
		BoxedHeader(t.out, "ADD PLAYER")
		fmt.Fprintf(t.out, "%s %s\n", cyan("Positions:"), models.PositionNames())
	case view.PlayerDetail:
		// The detail itself carries the header.
	}
}

func (t *Terminal) nav(current view.View, user *models.User) {
	var parts []string
	for _, link := range navLinks {
		if link == current {
			parts = append(parts, green("["+link.String()+"]"))
			continue
		}
		parts = append(parts, faint(link.String()))
	}
	parts = append(parts, faint("logout"))

	line := strings.Join(parts, "  ")
	if user != nil {
		line = cyan(user.FullName()) + " │ " + line
	}
	fmt.Fprintln(t.out, line)
}

func (t *Terminal) Players(players []models.Player) {
	if len(players) == 0 {
		fmt.Fprintln(t.out, yellow("No players yet."))
		fmt.Fprintln(t.out, "Add your first player to start managing their training.")
		return
	}

	for i, p := range players {
		fmt.Fprintf(t.out, "%s %s %s\n", cyan(fmt.Sprintf("%d.", i+1)), yellow(p.FullName()), faint(fmt.Sprintf("#%d", p.ID)))

		meta := []string{p.Position.Label()}
		if p.Team != nil && *p.Team != "" {
			meta = append(meta, *p.Team)
		}
		fmt.Fprintf(t.out, "   %s\n", strings.Join(meta, " · "))
		fmt.Fprintf(t.out, "   %s %s  %s %s\n", cyan("Email:"), p.Email, cyan("Username:"), p.Username)

		var body []string
		if p.Height != nil && *p.Height != 0 {
			body = append(body, fmt.Sprintf("%s %sm", cyan("Height:"), number(*p.Height)))
		}
		if p.Weight != nil && *p.Weight != 0 {
			body = append(body, fmt.Sprintf("%s %skg", cyan("Weight:"), number(*p.Weight)))
		}
		if len(body) > 0 {
			fmt.Fprintf(t.out, "   %s\n", strings.Join(body, "  "))
		}
	}
}

// PlayerDetail draws only the sections whose fields are present.
func (t *Terminal) PlayerDetail(p models.Player) {
	BoxedHeader(t.out, p.FullName())
	fmt.Fprintf(t.out, "%s\n", green(p.Position.Label()))
	if p.Team != nil && *p.Team != "" {
		fmt.Fprintf(t.out, "%s %s\n", cyan("Team:"), *p.Team)
	}

	fmt.Fprintf(t.out, "\n%s\n", yellow("Personal information"))
	Metric(t.out, "Email", p.Email)
	Metric(t.out, "Username", p.Username)

	hasHeight := p.Height != nil && *p.Height != 0
	hasWeight := p.Weight != nil && *p.Weight != 0
	if hasHeight || hasWeight {
		fmt.Fprintf(t.out, "\n%s\n", yellow("Physical profile"))
		if hasHeight {
			Metric(t.out, "Height", number(*p.Height)+"m")
		}
		if hasWeight {
			Metric(t.out, "Weight", number(*p.Weight)+"kg")
		}
	}

	hasStrengths := p.Strengths != nil && *p.Strengths != ""
	hasWeaknesses := p.Weaknesses != nil && *p.Weaknesses != ""
	if hasStrengths || hasWeaknesses {
		fmt.Fprintf(t.out, "\n%s\n", yellow("Technical assessment"))
		if hasStrengths {
			Metric(t.out, "Strengths", *p.Strengths)
		}
		if hasWeaknesses {
			Metric(t.out, "Areas to improve", *p.Weaknesses)
		}
	}
}

func (t *Terminal) Tab(active view.Tab) {
	var parts []string
	for _, tab := range view.Tabs {
		if tab == active {
			parts = append(parts, green("["+tab.String()+"]"))
			continue
		}
		parts = append(parts, faint(tab.String()))
	}
	fmt.Fprintf(t.out, "\n%s\n", strings.Join(parts, "  "))
}

func (t *Terminal) Trainings(trainings []models.Training) {
	if len(trainings) == 0 {
		fmt.Fprintln(t.out, "No trainings found.")
		return
	}

	for _, tr := range trainings {
		fmt.Fprintf(t.out, "\n%s\n", green(tr.Title))
		fmt.Fprintf(t.out, "   %s · %s · %d min\n", tr.Category, tr.Difficulty, tr.Duration)

		desc := "No description"
		if tr.Description != nil && *tr.Description != "" {
			desc = *tr.Description
		}
		fmt.Fprintf(t.out, "   %s\n", desc)

		if len(tr.Exercises) == 0 {
			continue
		}
		fmt.Fprintf(t.out, "   %s\n", cyan("Exercises:"))
		for _, ex := range tr.Exercises {
			load := ex.Weight.String()
			if ex.Weight.Blank() {
				load = "Bodyweight"
			}
			fmt.Fprintf(t.out, "     • %-24s %dx%s - %s\n", ex.Name, ex.Sets, ex.Reps, load)
		}
	}
}

func (t *Terminal) Tips(panel app.TipsPanel) {
	switch panel.State {
	case app.TipsLoading:
		fmt.Fprintln(t.out, faint(panel.Text))
	case app.TipsFailed:
		fmt.Fprintln(t.out, red(panel.Text))
	default:
		fmt.Fprintf(t.out, "\n%s\n", Markdown(panel.Text))
	}
}

func (t *Terminal) Show(n notify.Notification) {
	if n.IsError {
		fmt.Fprintf(t.notices, "%s\n", red("❌ "+n.Message))
		return
	}
	fmt.Fprintf(t.notices, "%s\n", green("✅ "+n.Message))
}

// Hide is a no-op: printed notifications scroll away on their own.
func (t *Terminal) Hide() {}

func number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
