// apps/go-server/internal/httpserver/ws.go
//
// WebSocket playback streaming for spectators and thin clients.
// GET /game/watch?gameId=... upgrades and receives every presentation
// effect for that game as a JSON frame, paced by the scheduler (a
// playback step with a 1.2s delay arrives ~1.2s after the round
// started). Clients only render; they never compute timing.
//
// Error policy: any write or playback-device style failure on a
// watcher connection drops that connection silently. Presentation
// failures must never propagate into the turn state machine.

package httpserver

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/simon/apps/go-server/internal/game"
	"github.com/robalobadob/simon/apps/go-server/internal/sched"
)

var wsUpgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// watcher is one subscribed connection. Writes are serialized with a
// mutex because delayed effects fire from independent timer goroutines.
type watcher struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (w *watcher) send(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteJSON(v)
}

// hub tracks watchers per game ID.
type hub struct {
	mu       sync.Mutex
	watchers map[string]map[*watcher]bool // gameID -> set
}

func newHub() *hub {
	return &hub{watchers: make(map[string]map[*watcher]bool)}
}

// add registers a watcher for a game.
func (h *hub) add(gameID string, w *watcher) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.watchers[gameID] == nil {
		h.watchers[gameID] = make(map[*watcher]bool)
	}
	h.watchers[gameID][w] = true
}

// remove drops a watcher and cleans up empty sets.
func (h *hub) remove(gameID string, w *watcher) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.watchers[gameID], w)
	if len(h.watchers[gameID]) == 0 {
		delete(h.watchers, gameID)
	}
}

// snapshot copies the current watcher set for a game so frames can be
// written without holding the hub lock.
func (h *hub) snapshot(gameID string) []*watcher {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.watchers[gameID]
	out := make([]*watcher, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	return out
}

// broadcast schedules a batch of effects for delivery to all current
// watchers of gameID. Timed effects fire later from timer callbacks;
// if the game has reset by then the frames are stale but harmless
// (watchers apply them idempotently).
func (h *hub) broadcast(sc *sched.Scheduler, gameID string, effects []game.Effect) {
	if len(effects) == 0 {
		return
	}
	sc.Run(effects, func(e game.Effect) {
		frame := effectJSON{
			Kind:    string(e.Kind),
			Signal:  string(e.Signal),
			Target:  e.Target,
			Text:    e.Text,
			DelayMs: e.Delay.Milliseconds(),
		}
		for _, w := range h.snapshot(gameID) {
			if err := w.send(frame); err != nil {
				_ = w.conn.Close()
				h.remove(gameID, w)
			}
		}
	})
}

// handleWatch upgrades the request and keeps the connection subscribed
// until the client goes away. Incoming frames are discarded; the
// read loop exists only to detect closure.
func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("gameId")
	if gameID == "" {
		http.Error(w, `{"error":"missing_game_id"}`, http.StatusBadRequest)
		return
	}
	if _, err := s.store.Get(r.Context(), gameID); err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("ws upgrade")
		return
	}
	wt := &watcher{conn: conn}
	s.hub.add(gameID, wt)

	go func() {
		defer func() {
			s.hub.remove(gameID, wt)
			_ = conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
