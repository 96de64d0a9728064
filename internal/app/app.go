// Package app wires the session store, API client, router and notification
// center into the trainer workflows: authentication, the player catalog,
// the training catalog and AI workout tips.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/misterclayt0n/dugout/internal/api"
	"github.com/misterclayt0n/dugout/internal/models"
	"github.com/misterclayt0n/dugout/internal/notify"
	"github.com/misterclayt0n/dugout/internal/schedule"
	"github.com/misterclayt0n/dugout/internal/view"
)

// SessionStore persists the session across runs.
type SessionStore interface {
	Load() (*models.Session, bool)
	Save(models.Session) error
	Clear() error
}

type Options struct {
	BaseURL    string
	HTTPClient *http.Client // Optional.
	Store      SessionStore
	Renderer   Renderer
	Display    notify.Display
	Clock      schedule.Clock // Optional, defaults to the wall clock.
	Logger     *slog.Logger   // Optional.
}

type App struct {
	store  SessionStore
	client *api.Client
	router *view.Router
	state  *view.State
	notify *notify.Center
	sched  *schedule.Scheduler
	ui     Renderer
	log    *slog.Logger

	// mu serializes transitions and rendering. It is never held across a
	// request.
	mu        sync.Mutex
	autoLogin *schedule.Task
}

func New(opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	a := &App{
		store:  opts.Store,
		router: view.NewRouter(view.Landing),
		state:  &view.State{},
		sched:  schedule.New(opts.Clock),
		ui:     opts.Renderer,
		log:    log,
	}
	a.notify = notify.NewCenter(opts.Display, a.sched)

	clientOpts := []api.Option{
		api.WithTokenSource(a.state.Token),
		api.WithLogger(log),
	}
	if opts.HTTPClient != nil {
		clientOpts = append(clientOpts, api.WithHTTPClient(opts.HTTPClient))
	}
	a.client = api.New(opts.BaseURL, clientOpts...)

	return a
}

// Restore loads a persisted trainer session into memory without navigating.
func (a *App) Restore() bool {
	s, ok := a.store.Load()
	if !ok || !s.User.IsTrainer() {
		return false
	}
	a.state.SetSession(*s)
	return true
}

// Resume restores the persisted trainer session, failing with
// ErrNotLoggedIn when there is none.
func (a *App) Resume() error {
	if !a.Restore() {
		a.notify.Error(msgNotLoggedIn)
		return ErrNotLoggedIn
	}
	return nil
}

// Boot picks the initial screen: the player list for a persisted trainer
// session, the landing page otherwise.
func (a *App) Boot(ctx context.Context) error {
	if a.Restore() {
		return a.ShowPlayers(ctx)
	}
	a.show(view.Landing)
	return nil
}

// Close cancels every scheduled task and waits for a task that is already
// running, such as an auto-login, so the store outlives it.
func (a *App) Close() {
	a.sched.Close()
	a.sched.Wait()
}

func (a *App) Router() *view.Router {
	return a.router
}

func (a *App) State() *view.State {
	return a.state
}

// AutoLogin returns the login scheduled by the last successful Register,
// or nil.
func (a *App) AutoLogin() *schedule.Task {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.autoLogin
}

func (a *App) ShowLanding() {
	a.show(view.Landing)
}

func (a *App) ShowLogin() {
	a.show(view.AuthLogin)
}

func (a *App) ShowRegister() {
	a.show(view.AuthRegister)
}

// Navigate shows v. The player list is refetched and the detail view needs
// a selected player.
func (a *App) Navigate(ctx context.Context, v view.View) error {
	switch v {
	case view.PlayersList:
		return a.ShowPlayers(ctx)
	case view.PlayerDetail:
		p, ok := a.state.Selected()
		if !ok {
			a.notify.Error(msgNoPlayerSelected)
			return ErrNoPlayerSelected
		}
		a.ShowPlayerDetail(p)
		return nil
	default:
		a.show(v)
		return nil
	}
}

func (a *App) show(v view.View) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.router.Show(v)
	a.ui.Section(v, a.currentUser())
}

func (a *App) render(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fn()
}

func (a *App) currentUser() *models.User {
	s, ok := a.state.Session()
	if !ok {
		return nil
	}
	return &s.User
}

// connectionFailed reports a request that never got a response.
func (a *App) connectionFailed(op string, err error) error {
	a.log.Error("connection_error", "op", op, "error", err)
	a.notify.Error(msgConnectionError)
	return fmt.Errorf("%s: %w", op, err)
}

func (a *App) requestFailed(op string, resp *api.Response, fallback string) error {
	msg := resp.Message(fallback)
	a.notify.Error(msg)
	return &RequestError{Op: op, StatusCode: resp.StatusCode, Message: msg}
}
