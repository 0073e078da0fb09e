package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestWatchStreamsPlaybackFrames(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s.Router())
	defer ts.Close()

	jar, _ := cookiejar.New(nil)
	client := &http.Client{Jar: jar}

	// Start a game over real HTTP so the anon cookie sticks.
	body, _ := json.Marshal(newGameReq{Level: 1})
	resp, err := client.Post(ts.URL+"/game/new", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	var created newGameRes
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	_ = resp.Body.Close()
	steps := playSignals(created.Effects)
	if len(steps) != 1 {
		t.Fatalf("expected 1 playback step, got %d", len(steps))
	}

	// Subscribe to the playback stream.
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/game/watch?gameId=" + created.GameID
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Complete the round; its effects should stream to the watcher.
	body, _ = json.Marshal(pressReq{GameID: created.GameID, Signal: steps[0]})
	resp, err = client.Post(ts.URL+"/game/press", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("press: %v", err)
	}
	_ = resp.Body.Close()

	// Expect at least the input gate and one timed playback step.
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var sawGate, sawPlay bool
	for !sawGate || !sawPlay {
		var frame effectJSON
		if err := conn.ReadJSON(&frame); err != nil {
			t.Fatalf("read frame (gate=%v play=%v): %v", sawGate, sawPlay, err)
		}
		switch frame.Kind {
		case "disable_input":
			sawGate = true
		case "play_signal":
			sawPlay = true
		}
	}
}

func TestWatchRejectsUnknownGame(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/game/watch?gameId=missing", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestWatchRequiresGameID(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/game/watch", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
