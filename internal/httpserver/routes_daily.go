// apps/go-server/internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start the daily run (creates or reuses session)
//   - POST /daily/press       → submit a signal press for today's run
//   - GET  /daily/leaderboard → fetch top 20 results for today (or a given date)
//
// Each user can play once per day (enforced by DB + in-memory session).
// Sessions are held in memory for active play and persisted to DB when
// the run ends (win or loss). The target sequence is deterministic per
// date: HMAC(salt, date|step) drives the generator, so every player
// faces the same sequence.

package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/simon/apps/go-server/internal/daily"
	"github.com/robalobadob/simon/apps/go-server/internal/game"
	"github.com/robalobadob/simon/apps/go-server/internal/sched"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	salt     string
	level    int
	sessions map[string]*dailySession // active sessions keyed by userID|date
	mu       sync.Mutex               // guards sessions
}

// dailySession holds transient in-memory state for an in-progress daily run.
type dailySession struct {
	Game     *game.Session
	UserID   string
	Date     string
	Start    time.Time
	Finished bool
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		salt:     getEnv("DAILY_SALT", "local_dev_salt"),
		level:    envInt("DAILY_LEVEL", 2),
		sessions: make(map[string]*dailySession),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/press", dd.handlePress)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// userIDWithAnon returns the authenticated user ID if logged in,
// otherwise ensures an anonymous ID via Server.ensureAnonID.
func (d *dailyServer) userIDWithAnon(w http.ResponseWriter, r *http.Request) (string, bool) {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID, true
	}
	return d.srv.ensureAnonID(w, r), true
}

// -----------------------------------------------------------------------------
// /daily/new

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	GameID    string       `json:"gameId"`
	Date      string       `json:"date"`
	Played    bool         `json:"played"`
	MaxRounds int          `json:"maxRounds,omitempty"`
	Round     int          `json:"round,omitempty"`
	Effects   []effectJSON `json:"effects,omitempty"`
}

// handleNew creates or reuses a daily session for the current date.
// - If user already has a DB row for today → return Played=true.
// - Otherwise create/reuse an in-memory session and return its
//   first-round playback.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid, ok := d.userIDWithAnon(w, r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	date := daily.DateKey(time.Now())

	// Check if already played (persisted in DB).
	if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(dailyNewRes{GameID: "", Date: date, Played: true})
		return
	}

	// Reuse or create session in memory.
	key := uid + "|" + date
	d.mu.Lock()
	if sess, ok := d.sessions[key]; ok {
		d.mu.Unlock()
		_ = json.NewEncoder(w).Encode(dailyNewRes{
			GameID:    sess.Game.ID,
			Date:      date,
			Played:    false,
			MaxRounds: sess.Game.MaxRounds,
			Round:     sess.Game.Round,
		})
		return
	}
	d.mu.Unlock()

	g, effects, err := game.New(d.level, alphabet(), daily.SequencePicker(date, d.salt))
	if err != nil {
		http.Error(w, `{"error":"daily level misconfigured"}`, http.StatusInternalServerError)
		return
	}

	d.mu.Lock()
	d.sessions[key] = &dailySession{
		Game:   g,
		UserID: uid,
		Date:   date,
		Start:  time.Now(),
	}
	d.mu.Unlock()

	_ = json.NewEncoder(w).Encode(dailyNewRes{
		GameID:    g.ID,
		Date:      date,
		Played:    false,
		MaxRounds: g.MaxRounds,
		Round:     g.Round,
		Effects:   toWire(effects),
	})
}

// -----------------------------------------------------------------------------
// /daily/press

// dailyPressReq is the request payload for /daily/press.
type dailyPressReq struct {
	GameID string `json:"gameId"`
	Signal string `json:"signal"`
}

// dailyPressRes is the response payload for /daily/press.
type dailyPressRes struct {
	Verdict     string       `json:"verdict"`
	State       string       `json:"state"` // in_progress | won | lost | locked
	Round       int          `json:"round"`
	PressesLeft int          `json:"pressesLeft"`
	Effects     []effectJSON `json:"effects"`
	PlaybackMs  int64        `json:"playbackMs"`
}

// handlePress applies a signal press to today's daily session.
// - Ensures a valid GameID for the caller's session.
// - Rejects if no session or session finished.
// - Forwards the press into the engine; unknown signals are no-ops.
// - Persists the result to DB when the run ends (win or loss).
func (d *dailyServer) handlePress(w http.ResponseWriter, r *http.Request) {
	uid, ok := d.userIDWithAnon(w, r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var p dailyPressReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if p.GameID == "" {
		http.Error(w, "invalid", http.StatusBadRequest)
		return
	}

	date := daily.DateKey(time.Now())

	// Find session.
	key := uid + "|" + date
	d.mu.Lock()
	sess, ok := d.sessions[key]
	d.mu.Unlock()
	if !ok || sess.Game.ID != p.GameID {
		http.Error(w, "no session", http.StatusConflict)
		return
	}
	if sess.Finished {
		_ = json.NewEncoder(w).Encode(dailyPressRes{State: "locked"})
		return
	}

	verdict, effects := sess.Game.Press(game.ParseSignal(p.Signal))

	state := "in_progress"
	switch sess.Game.State() {
	case "won":
		state = "won"
	case "lost":
		state = "lost"
	}

	// Persist when the run ends.
	if state == "won" || state == "lost" {
		d.mu.Lock()
		sess.Finished = true
		d.mu.Unlock()
		elapsed := int(time.Since(sess.Start).Milliseconds())
		_ = d.store.InsertResult(r.Context(), daily.Result{
			UserID:        uid,
			Date:          date,
			RoundsCleared: sess.Game.RoundsCleared(),
			Won:           state == "won",
			ElapsedMs:     elapsed,
		})
	}

	_ = json.NewEncoder(w).Encode(dailyPressRes{
		Verdict:     string(verdict),
		State:       state,
		Round:       sess.Game.Round,
		PressesLeft: sess.Game.PressesLeft(),
		Effects:     toWire(effects),
		PlaybackMs:  sched.Duration(effects).Milliseconds(),
	})
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(time.Now())
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
