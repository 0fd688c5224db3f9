package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/warp/growth-engine/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLite_SaveGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	payload := []byte(`{"config":{"initial_capital":30000,"duration_years":15}}`)
	if err := s.Save(ctx, store.Scenario{ID: "s1", Name: "Retirement", Payload: payload}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Retirement" || string(got.Payload) != string(payload) {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestSQLite_GetUnknown(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Get(context.Background(), "missing"); !errors.Is(err, store.ErrScenarioNotFound) {
		t.Errorf("expected ErrScenarioNotFound, got %v", err)
	}
}

func TestSQLite_SaveReplacesByID(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Save(ctx, store.Scenario{ID: "s1", Name: "v1", Payload: []byte(`{"v":1}`)})
	if err := s.Save(ctx, store.Scenario{ID: "s1", Name: "v2", Payload: []byte(`{"v":2}`)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "v2" || string(got.Payload) != `{"v":2}` {
		t.Errorf("expected replaced scenario, got %+v", got)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected a single scenario after replace, got %d", len(list))
	}
}

func TestSQLite_CorruptTimestampSurfacesError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scenarios (id, name, payload_json, created_at, updated_at)
		VALUES ('bad', 'n', '{}', 'not-a-time', 'not-a-time')`)
	if err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	if _, err := s.Get(ctx, "bad"); err == nil {
		t.Error("expected error for unparsable timestamps, got nil")
	}
	if _, err := s.List(ctx); err == nil {
		t.Error("expected List to surface the corrupt row, got nil")
	}
}

func TestSQLite_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Save(ctx, store.Scenario{ID: "s1", Name: "n", Payload: []byte("{}")})
	if err := s.Delete(ctx, "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Delete(ctx, "s1"); err != nil {
		t.Errorf("second delete should not error, got %v", err)
	}
	if _, err := s.Get(ctx, "s1"); !errors.Is(err, store.ErrScenarioNotFound) {
		t.Errorf("expected ErrScenarioNotFound after delete, got %v", err)
	}
}
