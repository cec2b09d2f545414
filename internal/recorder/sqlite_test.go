package recorder

import (
	"path/filepath"
	"testing"

	"github.com/informaticalaredo/GrowthMaster/internal/model"
)

func countRows(t *testing.T, r *SQLiteRecorder, table string) int {
	t.Helper()
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestSQLiteRecorder_RoundTrip(t *testing.T) {
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "sim.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer r.Close()

	res := &model.RoundResult{
		Round:        1,
		Metrics:      model.FunnelMetrics{Sessions: 10200, Purchases: 84},
		Rates:        model.Rates{ViewRate: 0.702},
		Financials:   model.Financials{NetProfit: -3451},
		ActionsTaken: []string{"landing_page", "seo_opt"},
		Event:        &model.RandomEvent{ID: "server_outage"},
	}
	if err := r.RecordRound(&RoundSnapshot{GameID: "g1", Result: res, Budget: 19549}); err != nil {
		t.Fatalf("record round: %v", err)
	}
	if err := r.RecordGame(&GameEvent{GameID: "g1", Policy: "greedy", Rounds: 7}); err != nil {
		t.Fatalf("record game: %v", err)
	}
	if err := r.RecordBatch(&BatchEvent{RunID: "b1", Games: 10, Seed: 1}); err != nil {
		t.Fatalf("record batch: %v", err)
	}

	for _, table := range []string{"rounds", "games", "batches"} {
		if n := countRows(t, r, table); n != 1 {
			t.Errorf("%s: expected 1 row, got %d", table, n)
		}
	}

	var actions, eventID string
	var purchases int
	if err := r.db.QueryRow("SELECT actions, event_id, purchases FROM rounds WHERE game_id = ?", "g1").Scan(&actions, &eventID, &purchases); err != nil {
		t.Fatal(err)
	}
	if actions != "landing_page,seo_opt" || eventID != "server_outage" || purchases != 84 {
		t.Errorf("unexpected row: actions=%q event=%q purchases=%d", actions, eventID, purchases)
	}
}

func TestSQLiteRecorder_ReopenKeepsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.db")
	r, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.RecordGame(&GameEvent{GameID: "g1"}); err != nil {
		t.Fatal(err)
	}
	r.Close()

	r2, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r2.Close()
	if n := countRows(t, r2, "games"); n != 1 {
		t.Errorf("expected 1 game after reopen, got %d", n)
	}
}

func TestNoopRecorder(t *testing.T) {
	var rec Recorder = NewNoopRecorder()
	if err := rec.RecordRound(&RoundSnapshot{}); err != nil {
		t.Error(err)
	}
	if err := rec.Close(); err != nil {
		t.Error(err)
	}
}
