// Package view holds the client's screen state machine and the state shared
// between screens.
package view

import (
	"fmt"
	"strings"
	"sync"
)

type View int

const (
	Landing View = iota
	AuthLogin
	AuthRegister
	PlayersList
	AddPlayer
	PlayerDetail
)

// Views lists every top-level section.
var Views = []View{Landing, AuthLogin, AuthRegister, PlayersList, AddPlayer, PlayerDetail}

var viewNames = map[View]string{
	Landing:      "landing",
	AuthLogin:    "login",
	AuthRegister: "register",
	PlayersList:  "players",
	AddPlayer:    "add-player",
	PlayerDetail: "player-detail",
}

func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return fmt.Sprintf("view(%d)", int(v))
}

// ShowsNav reports whether the navigation bar is visible on v.
func (v View) ShowsNav() bool {
	switch v {
	case PlayersList, AddPlayer, PlayerDetail:
		return true
	}
	return false
}

func ParseView(s string) (View, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for v, name := range viewNames {
		if name == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown view %q", s)
}

type Tab int

const (
	Overview Tab = iota
	Trainings
	Analytics
)

var Tabs = []Tab{Overview, Trainings, Analytics}

var tabNames = map[Tab]string{
	Overview:  "overview",
	Trainings: "trainings",
	Analytics: "analytics",
}

func (t Tab) String() string {
	if name, ok := tabNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tab(%d)", int(t))
}

func ParseTab(s string) (Tab, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range tabNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown tab %q", s)
}

// Router keeps exactly one section visible. There is no history: every
// section is reached by an explicit Show.
type Router struct {
	mu       sync.Mutex
	sections map[View]bool
	current  View
	tab      Tab
}

// NewRouter starts on initial with every other section hidden.
func NewRouter(initial View) *Router {
	r := &Router{sections: make(map[View]bool, len(Views))}
	r.show(initial)
	return r
}

// Show hides every section, then shows v. Entering PlayerDetail resets the
// detail tabs to Overview.
func (r *Router) Show(v View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.show(v)
}

func (r *Router) show(v View) {
	for _, s := range Views {
		r.sections[s] = false
	}
	r.sections[v] = true
	r.current = v
	if v == PlayerDetail {
		r.tab = Overview
	}
}

func (r *Router) Current() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Visible returns every section currently shown.
func (r *Router) Visible() []View {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []View
	for _, v := range Views {
		if r.sections[v] {
			out = append(out, v)
		}
	}
	return out
}

// SelectTab switches the detail tab. Tabs only exist on PlayerDetail.
func (r *Router) SelectTab(t Tab) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current != PlayerDetail {
		return fmt.Errorf("tab %s is only available on %s, current view is %s", t, PlayerDetail, r.current)
	}
	if _, ok := tabNames[t]; !ok {
		return fmt.Errorf("unknown tab %d", int(t))
	}
	r.tab = t
	return nil
}

func (r *Router) Tab() Tab {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tab
}
