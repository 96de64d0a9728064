package app

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/misterclayt0n/dugout/internal/models"
	"github.com/misterclayt0n/dugout/internal/notify"
	"github.com/misterclayt0n/dugout/internal/schedule"
	"github.com/misterclayt0n/dugout/internal/view"
)

// memoryStore is a SessionStore kept in memory.
type memoryStore struct {
	session *models.Session
	saves   int
	clears  int
}

func (m *memoryStore) Load() (*models.Session, bool) {
	if m.session == nil {
		return nil, false
	}
	s := *m.session
	return &s, true
}

func (m *memoryStore) Save(s models.Session) error {
	m.session = &s
	m.saves++
	return nil
}

func (m *memoryStore) Clear() error {
	m.session = nil
	m.clears++
	return nil
}

type recordingRenderer struct {
	sections  []view.View
	players   [][]models.Player
	emptyHits int
	details   []models.Player
	tabs      []view.Tab
	trainings [][]models.Training
	tips      []TipsPanel
}

func (r *recordingRenderer) Section(v view.View, user *models.User) {
	r.sections = append(r.sections, v)
}

func (r *recordingRenderer) Players(players []models.Player) {
	if len(players) == 0 {
		r.emptyHits++
	}
	r.players = append(r.players, players)
}

func (r *recordingRenderer) PlayerDetail(p models.Player) {
	r.details = append(r.details, p)
}

func (r *recordingRenderer) Tab(t view.Tab) {
	r.tabs = append(r.tabs, t)
}

func (r *recordingRenderer) Trainings(trainings []models.Training) {
	r.trainings = append(r.trainings, trainings)
}

func (r *recordingRenderer) Tips(panel TipsPanel) {
	r.tips = append(r.tips, panel)
}

type recordingDisplay struct {
	shown []notify.Notification
}

func (d *recordingDisplay) Show(n notify.Notification) { d.shown = append(d.shown, n) }
func (d *recordingDisplay) Hide()                      {}

// recordedRequest is one call the fake backend received.
type recordedRequest struct {
	Method string
	Path   string
	Auth   string
	Body   map[string]any
}

// fakeBackend serves canned JSON per "METHOD /path" and records calls.
type fakeBackend struct {
	server   *httptest.Server
	mu       sync.Mutex
	requests []recordedRequest
	routes   map[string]func(body map[string]any) (int, any)
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{routes: map[string]func(map[string]any) (int, any){}}
	b.server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.server.Close)
	return b
}

func (b *fakeBackend) handle(route string, fn func(body map[string]any) (int, any)) {
	b.routes[route] = fn
}

func (b *fakeBackend) reply(route string, status int, payload any) {
	b.handle(route, func(map[string]any) (int, any) { return status, payload })
}

func (b *fakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	var body map[string]any
	json.Unmarshal(data, &body)

	b.mu.Lock()
	b.requests = append(b.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Auth:   r.Header.Get("Authorization"),
		Body:   body,
	})
	fn, ok := b.routes[r.Method+" "+r.URL.Path]
	b.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`))
		return
	}
	status, payload := fn(body)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (b *fakeBackend) count(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, r := range b.requests {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

func (b *fakeBackend) calls() []recordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]recordedRequest(nil), b.requests...)
}

type harness struct {
	app     *App
	backend *fakeBackend
	store   *memoryStore
	ui      *recordingRenderer
	display *recordingDisplay
	clock   *schedule.ManualClock
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		backend: newFakeBackend(t),
		store:   &memoryStore{},
		ui:      &recordingRenderer{},
		display: &recordingDisplay{},
		clock:   schedule.NewManualClock(),
	}
	h.app = New(Options{
		BaseURL:    h.backend.server.URL,
		HTTPClient: h.backend.server.Client(),
		Store:      h.store,
		Renderer:   h.ui,
		Display:    h.display,
		Clock:      h.clock,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	t.Cleanup(h.app.Close)
	return h
}

func (h *harness) lastNotification(t *testing.T) notify.Notification {
	t.Helper()
	if len(h.display.shown) == 0 {
		t.Fatal("no notification shown")
	}
	return h.display.shown[len(h.display.shown)-1]
}

func trainer() models.User {
	return models.User{
		ID:        1,
		FirstName: "Ana",
		LastName:  "Souza",
		Username:  "coach1",
		Email:     "ana@example.com",
		UserType:  models.UserTypeTrainer,
	}
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
