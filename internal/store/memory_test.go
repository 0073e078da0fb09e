package store

import (
	"context"
	"testing"

	"github.com/robalobadob/simon/apps/go-server/internal/game"
)

func TestSaveAndGet(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	s := &game.Session{ID: "abc123", Level: 1, Phase: game.PhasePlayer}
	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := st.Get(ctx, "abc123")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != s {
		t.Fatalf("expected the stored session pointer back")
	}
}

func TestGetMissing(t *testing.T) {
	st := NewMemoryStore()
	if _, err := st.Get(context.Background(), "nope"); err == nil {
		t.Fatalf("expected error for missing session")
	}
}
