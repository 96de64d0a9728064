package app

import (
	"context"
	"fmt"
	"time"

	"github.com/misterclayt0n/dugout/internal/models"
	"github.com/misterclayt0n/dugout/internal/view"
)

// AutoLoginDelay separates a successful registration from the automatic
// login that follows it.
const AutoLoginDelay = 1000 * time.Millisecond

type loginRequest struct {
	Username string          `json:"username"`
	Password string          `json:"password"`
	UserType models.UserType `json:"user_type"`
}

type loginResponse struct {
	Token       string      `json:"token"`
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

func (r loginResponse) token() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}

type RegisterForm struct {
	FirstName       string
	LastName        string
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

type registerRequest struct {
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Password  string          `json:"password"`
	UserType  models.UserType `json:"user_type"`
}

// Login authenticates and persists the session. Only trainers may stay
// logged in: any other account is logged out again right away.
func (a *App) Login(ctx context.Context, username, password string) error {
	resp, err := a.client.Post(ctx, "/auth/login", loginRequest{
		Username: username,
		Password: password,
		UserType: models.UserTypeTrainer,
	})
	if err != nil {
		return a.connectionFailed("login", err)
	}
	if !resp.OK() {
		return a.requestFailed("login", resp, msgLoginFailed)
	}

	var payload loginResponse
	if err := resp.Decode(&payload); err != nil {
		a.notify.Error(msgLoginFailed)
		return fmt.Errorf("login: %w", err)
	}

	session := models.Session{Token: payload.token(), User: payload.User}
	a.state.SetSession(session)
	if err := a.store.Save(session); err != nil {
		a.log.Warn("session_save_failed", "error", err)
	}
	a.notify.Success(msgLoginSuccess)
	a.log.Info("auth_event", "event", "login", "username", session.User.Username, "user_type", session.User.UserType)

	if !session.User.IsTrainer() {
		a.notify.Error(msgPlayerLoginUnavailable)
		a.Logout()
		return ErrUnsupportedRole
	}

	// The login itself succeeded; a failed player fetch is already reported.
	a.ShowPlayers(ctx)
	return nil
}

// Register creates a trainer account and logs in with the same credentials
// AutoLoginDelay later. Only the latest registration's login stays pending.
func (a *App) Register(ctx context.Context, form RegisterForm) error {
	if form.Password != form.ConfirmPassword {
		a.notify.Error(msgPasswordMismatch)
		return ErrPasswordMismatch
	}

	resp, err := a.client.Post(ctx, "/auth/register", registerRequest{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Username:  form.Username,
		Email:     form.Email,
		Password:  form.Password,
		UserType:  models.UserTypeTrainer,
	})
	if err != nil {
		return a.connectionFailed("register", err)
	}
	if !resp.OK() {
		return a.requestFailed("register", resp, msgRegisterFailed)
	}

	a.notify.Success(msgRegisterSuccess)
	a.log.Info("auth_event", "event", "register", "username", form.Username)

	username, password := form.Username, form.Password
	a.mu.Lock()
	if a.autoLogin != nil {
		a.autoLogin.Cancel()
	}
	a.autoLogin = a.sched.After(AutoLoginDelay, func(ctx context.Context) {
		if err := a.Login(ctx, username, password); err != nil {
			a.log.Debug("auto_login_failed", "username", username, "error", err)
		}
	})
	a.mu.Unlock()
	return nil
}

// Logout drops the session everywhere and returns to the landing page. It
// always succeeds; a store that cannot be cleared is only logged.
func (a *App) Logout() {
	a.mu.Lock()
	pending := a.autoLogin
	a.autoLogin = nil
	a.mu.Unlock()
	if pending != nil {
		pending.Cancel()
	}

	a.state.ClearSession()
	if err := a.store.Clear(); err != nil {
		a.log.Warn("session_clear_failed", "error", err)
	}
	a.state.ClearSelection()

	a.show(view.Landing)
	a.notify.Success(msgLogoutSuccess)
}
