package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists simulation output to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL lets dashboards read while a batch run writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS rounds (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			game_id        TEXT NOT NULL,
			round          INTEGER NOT NULL,
			sessions       INTEGER,
			product_views  INTEGER,
			add_to_cart    INTEGER,
			checkout_start INTEGER,
			purchases      INTEGER,
			view_rate      REAL,
			atc_rate       REAL,
			checkout_rate  REAL,
			purchase_rate  REAL,
			cr_total       REAL,
			revenue        REAL,
			gross_profit   REAL,
			net_profit     REAL,
			cac            REAL,
			roi            REAL,
			total_costs    REAL,
			budget         REAL,
			actions        TEXT,
			event_id       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_game ON rounds(game_id, round)`,

		`CREATE TABLE IF NOT EXISTS games (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			game_id          TEXT NOT NULL,
			policy           TEXT,
			rounds           INTEGER,
			initial_budget   REAL,
			final_budget     REAL,
			total_net_profit REAL,
			final_cr         REAL,
			events           INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_games_ts ON games(timestamp)`,

		`CREATE TABLE IF NOT EXISTS batches (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			run_id      TEXT NOT NULL,
			policy      TEXT,
			games       INTEGER,
			seed        INTEGER,
			mean_budget REAL,
			p10_budget  REAL,
			p50_budget  REAL,
			p90_budget  REAL,
			mean_cr     REAL
		)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRound(snap *RoundSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := snap.Result
	m, rt, f := res.Metrics, res.Rates, res.Financials
	var eventID string
	if res.Event != nil {
		eventID = res.Event.ID
	}

	_, err := r.db.Exec(`INSERT INTO rounds
		(timestamp, game_id, round,
		 sessions, product_views, add_to_cart, checkout_start, purchases,
		 view_rate, atc_rate, checkout_rate, purchase_rate, cr_total,
		 revenue, gross_profit, net_profit, cac, roi, total_costs,
		 budget, actions, event_id)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.GameID, res.Round,
		m.Sessions, m.ProductViews, m.AddToCart, m.CheckoutStart, m.Purchases,
		rt.ViewRate, rt.ATCRate, rt.CheckoutRate, rt.PurchaseRate, rt.CRTotal,
		f.Revenue, f.GrossProfit, f.NetProfit, f.CAC, f.ROI, f.TotalCosts,
		snap.Budget, strings.Join(res.ActionsTaken, ","), eventID,
	)
	return err
}

func (r *SQLiteRecorder) RecordGame(evt *GameEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO games
		(timestamp, game_id, policy, rounds, initial_budget, final_budget, total_net_profit, final_cr, events)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.GameID, evt.Policy, evt.Rounds,
		evt.InitialBudget, evt.FinalBudget, evt.TotalNetProfit, evt.FinalCR, evt.Events,
	)
	return err
}

func (r *SQLiteRecorder) RecordBatch(evt *BatchEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO batches
		(timestamp, run_id, policy, games, seed, mean_budget, p10_budget, p50_budget, p90_budget, mean_cr)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.RunID, evt.Policy, evt.Games, int64(evt.Seed),
		evt.MeanBudget, evt.P10Budget, evt.P50Budget, evt.P90Budget, evt.MeanCR,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
