package app

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/misterclayt0n/dugout/internal/models"
	"github.com/misterclayt0n/dugout/internal/view"
)

// PlayerForm is the raw add-player input. Numeric fields stay strings until
// the payload is built.
type PlayerForm struct {
	FirstName  string
	LastName   string
	Username   string
	Email      string
	Password   string
	Position   string
	Team       string
	Height     string
	Weight     string
	Strengths  string
	Weaknesses string
}

func (f *PlayerForm) Reset() {
	*f = PlayerForm{}
}

// Payload builds the request body. Empty optional text becomes null, and so
// does a measurement that does not start with a number or parses as zero.
// Negative numbers are sent as typed.
func (f PlayerForm) Payload() models.NewPlayer {
	return models.NewPlayer{
		FirstName:  f.FirstName,
		LastName:   f.LastName,
		Username:   f.Username,
		Email:      f.Email,
		Password:   f.Password,
		Position:   models.Position(f.Position),
		Team:       optionalText(f.Team),
		Height:     parseMeasurement(f.Height),
		Weight:     parseMeasurement(f.Weight),
		Strengths:  optionalText(f.Strengths),
		Weaknesses: optionalText(f.Weaknesses),
	}
}

func optionalText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// parseMeasurement reads the leading decimal number of s ("1.85", "1.85m",
// " 90 kg"). Zero, garbage and empty input give nil.
func parseMeasurement(s string) *float64 {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return nil
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || v == 0 {
		return nil
	}
	return &v
}

type playersResponse struct {
	Players []models.Player `json:"players"`
}

// ShowPlayers goes to the player list and refreshes it.
func (a *App) ShowPlayers(ctx context.Context) error {
	a.show(view.PlayersList)
	return a.LoadPlayers(ctx)
}

// LoadPlayers fetches the trainer's players and draws them. Any failure
// draws the empty state.
func (a *App) LoadPlayers(ctx context.Context) error {
	players, err := a.fetchPlayers(ctx)
	a.render(func() { a.ui.Players(players) })
	return err
}

func (a *App) fetchPlayers(ctx context.Context) ([]models.Player, error) {
	resp, err := a.client.Get(ctx, "/trainer/players")
	if err != nil {
		return nil, a.connectionFailed("load_players", err)
	}
	if !resp.OK() {
		a.notify.Error(msgLoadPlayersFailed)
		return nil, &RequestError{Op: "load_players", StatusCode: resp.StatusCode, Message: resp.Message(msgLoadPlayersFailed)}
	}

	var payload playersResponse
	if err := resp.Decode(&payload); err != nil {
		a.notify.Error(msgLoadPlayersFailed)
		return nil, fmt.Errorf("load_players: %w", err)
	}
	return payload.Players, nil
}

// FindPlayer fetches the player list and returns the player whose id or
// username is ref.
func (a *App) FindPlayer(ctx context.Context, ref string) (models.Player, error) {
	players, err := a.fetchPlayers(ctx)
	if err != nil {
		return models.Player{}, err
	}

	id, idErr := strconv.Atoi(ref)
	for _, p := range players {
		if (idErr == nil && p.ID == id) || strings.EqualFold(p.Username, ref) {
			return p, nil
		}
	}

	a.notify.Error(msgPlayerNotFound)
	return models.Player{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, ref)
}

// ShowPlayerDetail selects p and draws it from the snapshot. Nothing is
// fetched.
func (a *App) ShowPlayerDetail(p models.Player) {
	a.state.Select(p)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.router.Show(view.PlayerDetail)
	a.ui.Section(view.PlayerDetail, a.currentUser())
	a.ui.PlayerDetail(p)
	a.ui.Tab(a.router.Tab())
}

// SelectTab switches the detail tab. The trainings tab loads the training
// library.
func (a *App) SelectTab(ctx context.Context, tab view.Tab) error {
	a.mu.Lock()
	if err := a.router.SelectTab(tab); err != nil {
		a.mu.Unlock()
		return err
	}
	a.ui.Tab(tab)
	if tab == view.Overview {
		if p, ok := a.state.Selected(); ok {
			a.ui.PlayerDetail(p)
		}
	}
	a.mu.Unlock()

	if tab == view.Trainings {
		return a.LoadTrainings(ctx)
	}
	return nil
}

func (a *App) ShowAddPlayer() {
	a.show(view.AddPlayer)
}

// AddPlayer registers a player under the current trainer. On success the
// form is cleared and the player list is shown again, which refetches it.
func (a *App) AddPlayer(ctx context.Context, form *PlayerForm) error {
	resp, err := a.client.Post(ctx, "/trainer/players", form.Payload())
	if err != nil {
		return a.connectionFailed("add_player", err)
	}
	if !resp.OK() {
		return a.requestFailed("add_player", resp, msgAddPlayerFailed)
	}

	a.notify.Success(msgAddPlayerSuccess)
	a.log.Info("player_event", "event", "player_added", "username", form.Username)
	form.Reset()

	a.ShowPlayers(ctx)
	return nil
}

// EditPlayer is not supported by the backend flow yet.
func (a *App) EditPlayer(id int) {
	a.log.Debug("player_event", "event", "edit_requested", "player_id", id)
	a.notify.Success(msgEditUnavailable)
}

func (a *App) AssignTraining() {
	a.notify.Success(msgAssignUnavailable)
}
