package game

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/informaticalaredo/GrowthMaster/internal/catalog"
	"github.com/informaticalaredo/GrowthMaster/internal/engine"
	"github.com/informaticalaredo/GrowthMaster/internal/model"
)

var (
	ErrNotPlaying     = errors.New("game is not in progress")
	ErrAlreadyStarted = errors.New("game already started")
	ErrSelectionLimit = errors.New("selection limit reached for this round")
	ErrUnknownAction  = errors.New("unknown action")
	ErrAlreadyActive  = errors.New("action already active")
)

// Config holds the game-level limits.
type Config struct {
	MaxRounds      int
	InitialBudget  float64
	SelectionLimit int
	Logger         *log.Logger // nil uses the standard logger
}

// DefaultConfig returns the standard 8-round game.
func DefaultConfig() Config {
	return Config{
		MaxRounds:      catalog.MaxRounds,
		InitialBudget:  catalog.InitialBudget,
		SelectionLimit: catalog.SelectionLimit,
	}
}

// Manager drives one game on top of the stateless engine, with concurrency safety.
type Manager struct {
	mu       sync.Mutex
	id       string
	cfg      Config
	engine   *engine.Engine
	status   model.GameStatus
	round    int
	budget   float64
	active   model.ActionSet
	selected model.ActionSet
	history  []model.RoundResult
	log      *log.Logger
}

// NewManager creates a game in the intro state.
func NewManager(cfg Config, eng *engine.Engine) *Manager {
	if eng == nil {
		eng = engine.Default()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		log:      logger,
		id:       uuid.NewString(),
		cfg:      cfg,
		engine:   eng,
		status:   model.StatusIntro,
		budget:   cfg.InitialBudget,
		active:   model.NewActionSet(),
		selected: model.NewActionSet(),
	}
}

// ID returns the game identifier.
func (m *Manager) ID() string { return m.id }

// Catalog returns the catalog actions are selected from.
func (m *Manager) Catalog() *catalog.Catalog { return m.engine.Catalog() }

// Start computes the round 0 baseline and moves the game to playing.
// The baseline does not touch the budget.
func (m *Manager) Start() (model.RoundResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != model.StatusIntro {
		return model.RoundResult{}, ErrAlreadyStarted
	}
	res := m.engine.CalculateRound(0, model.NewActionSet(), nil)
	m.history = []model.RoundResult{res}
	m.round = 1
	m.status = model.StatusPlaying
	m.log.Printf("[INFO] game %s started: %d rounds, budget %.0f", m.id, m.cfg.MaxRounds, m.budget)
	return res, nil
}

// Reset discards the game and returns to intro under a new id, ready for Start.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	old := m.id
	m.id = uuid.NewString()
	m.status = model.StatusIntro
	m.round = 0
	m.budget = m.cfg.InitialBudget
	m.active = model.NewActionSet()
	m.selected = model.NewActionSet()
	m.history = nil
	m.log.Printf("[INFO] game %s reset as %s", old, m.id)
}

// Toggle selects id for the next round, or deselects it if already selected.
// It returns whether id is selected afterwards.
func (m *Manager) Toggle(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.selected.Has(id) {
		m.selected.Remove(id)
		return false, nil
	}
	if err := m.selectLocked(id); err != nil {
		return false, err
	}
	return true, nil
}

// Select adds id to the pending selection. Selecting an already selected id is a no-op.
func (m *Manager) Select(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.selected.Has(id) {
		return nil
	}
	return m.selectLocked(id)
}

func (m *Manager) selectLocked(id string) error {
	if m.status != model.StatusPlaying {
		return ErrNotPlaying
	}
	if _, ok := m.engine.Catalog().Lookup(id); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, id)
	}
	if m.active.Has(id) {
		return fmt.Errorf("%w: %s", ErrAlreadyActive, id)
	}
	if len(m.selected) >= m.cfg.SelectionLimit {
		return fmt.Errorf("%w (%d)", ErrSelectionLimit, m.cfg.SelectionLimit)
	}
	m.selected.Add(id)
	return nil
}

// ClearSelection drops the pending selection.
func (m *Manager) ClearSelection() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selected = model.NewActionSet()
}

// Advance confirms the pending selection and simulates the current round.
// When the round budget is exhausted the game ends instead and ended is true.
func (m *Manager) Advance() (res *model.RoundResult, ended bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != model.StatusPlaying {
		return nil, false, ErrNotPlaying
	}
	if m.round >= m.cfg.MaxRounds {
		m.status = model.StatusEnded
		m.log.Printf("[INFO] game %s ended after round %d, budget %.0f", m.id, m.round-1, m.budget)
		return nil, true, nil
	}

	active := m.active.Clone()
	var roundCost float64
	for _, id := range m.selected.Sorted() {
		if a, ok := m.engine.Catalog().Lookup(id); ok {
			active.Add(id)
			roundCost += a.Cost
		}
	}

	prev := &m.history[len(m.history)-1]
	r := m.engine.CalculateRound(m.round, active, prev)

	m.history = append(m.history, r)
	m.round++
	m.active = active
	m.budget = m.budget - roundCost + r.Financials.NetProfit
	m.selected = model.NewActionSet()

	m.log.Printf("[INFO] game %s round %d: purchases=%d net=%.0f budget=%.0f", m.id, r.Round, r.Metrics.Purchases, r.Financials.NetProfit, m.budget)
	return &r, false, nil
}

// State returns a snapshot of the game.
func (m *Manager) State() model.GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	history := make([]model.RoundResult, len(m.history))
	copy(history, m.history)
	return model.GameState{
		ID:            m.id,
		Status:        m.status,
		CurrentRound:  m.round,
		MaxRounds:     m.cfg.MaxRounds,
		Budget:        m.budget,
		ActiveActions: m.active.Sorted(),
		Selected:      m.selected.Sorted(),
		History:       history,
	}
}

// Status returns the current game status.
func (m *Manager) Status() model.GameStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// InitialBudget returns the budget the game started with.
func (m *Manager) InitialBudget() float64 { return m.cfg.InitialBudget }

// SelectionLimit returns how many actions may be selected per round.
func (m *Manager) SelectionLimit() int { return m.cfg.SelectionLimit }
