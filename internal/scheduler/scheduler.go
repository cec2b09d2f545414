package scheduler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/informaticalaredo/GrowthMaster/internal/advisor"
	"github.com/informaticalaredo/GrowthMaster/internal/calculator"
	"github.com/informaticalaredo/GrowthMaster/internal/game"
	"github.com/informaticalaredo/GrowthMaster/internal/model"
	"github.com/informaticalaredo/GrowthMaster/internal/player"
	"github.com/informaticalaredo/GrowthMaster/internal/recorder"
	"github.com/informaticalaredo/GrowthMaster/internal/report"
)

// Scheduler wires a game to its player, advisor, recorder and output.
type Scheduler struct {
	Cron     *cron.Cron
	Game     *game.Manager
	Policy   player.Policy // nil for interactive play
	Advisor  advisor.Advisor
	Recorder recorder.Recorder
	Out      io.Writer
	Ctx      context.Context

	mu       sync.Mutex // guards done and doneOnce across restarts
	done     chan struct{}
	doneOnce *sync.Once
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, gm *game.Manager, pol player.Policy, adv advisor.Advisor, rec recorder.Recorder, out io.Writer) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		Game:     gm,
		Policy:   pol,
		Advisor:  adv,
		Recorder: rec,
		Out:      out,
		Ctx:      ctx,
		done:     make(chan struct{}),
		doneOnce: &sync.Once{},
	}
}

// RegisterAutoplay plays one round on every tick of spec.
func (s *Scheduler) RegisterAutoplay(spec string) error {
	if s.Policy == nil {
		return errors.New("autoplay needs a policy")
	}
	if _, err := s.Cron.AddFunc(spec, s.autoplayTick); err != nil {
		return fmt.Errorf("register autoplay task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running tick.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// Done is closed once the game has ended and been recorded.
func (s *Scheduler) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// StartGame computes the baseline round and prints it.
func (s *Scheduler) StartGame() error {
	res, err := s.Game.Start()
	if err != nil {
		return err
	}
	st := s.Game.State()
	s.recordRound(&res, st.Budget)
	s.write(report.FormatRound(&res, st.Budget))
	return nil
}

// Restart abandons or replays the current game and starts a fresh one.
func (s *Scheduler) Restart() error {
	s.mu.Lock()
	select {
	case <-s.done:
		s.done = make(chan struct{})
		s.doneOnce = &sync.Once{}
	default:
	}
	s.mu.Unlock()

	s.Game.Reset()
	return s.StartGame()
}

// RunToEnd plays rounds with the policy until the game ends.
func (s *Scheduler) RunToEnd() {
	for !s.PlayRound() {
		if s.Ctx.Err() != nil {
			return
		}
	}
}

// PlayRound lets the policy select, then advances. It reports whether the game is over.
func (s *Scheduler) PlayRound() bool {
	if s.Game.Status() != model.StatusPlaying {
		return true
	}
	if s.Policy != nil {
		st := s.Game.State()
		for _, id := range s.Policy.Choose(st, s.Game.Catalog(), s.Game.SelectionLimit()) {
			if err := s.Game.Select(id); err != nil {
				log.Printf("[WARN] policy %s selection %s rejected: %v", s.Policy.Name(), id, err)
			}
		}
	}
	return s.advance()
}

func (s *Scheduler) autoplayTick() {
	select {
	case <-s.Done():
		return
	default:
	}
	s.PlayRound()
}

func (s *Scheduler) advance() bool {
	res, ended, err := s.Game.Advance()
	if err != nil {
		log.Printf("[ERROR] advance round: %v", err)
		return true
	}
	if ended {
		s.finish()
		return true
	}
	st := s.Game.State()
	s.recordRound(res, st.Budget)
	s.write(report.FormatRound(res, st.Budget))
	return false
}

func (s *Scheduler) finish() {
	s.mu.Lock()
	once, done := s.doneOnce, s.done
	s.mu.Unlock()

	once.Do(func() {
		defer close(done)
		st := s.Game.State()
		sum, err := calculator.Summarize(st.History, s.Game.InitialBudget(), st.Budget)
		if err != nil {
			log.Printf("[ERROR] summarize game: %v", err)
			return
		}
		s.write(report.FormatSummary(sum))

		policy := "manual"
		if s.Policy != nil {
			policy = s.Policy.Name()
		}
		if err := s.Recorder.RecordGame(&recorder.GameEvent{
			GameID:         st.ID,
			Policy:         policy,
			Rounds:         sum.Rounds,
			InitialBudget:  sum.InitialBudget,
			FinalBudget:    sum.FinalBudget,
			TotalNetProfit: sum.TotalNetProfit,
			FinalCR:        sum.FinalCR,
			Events:         sum.Events,
		}); err != nil {
			log.Printf("[ERROR] record game: %v", err)
		}
	})
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}
	switch fields[0] {
	case "/start":
		if err := s.StartGame(); err != nil {
			if errors.Is(err, game.ErrAlreadyStarted) {
				return "game already started, use /restart for a new one"
			}
			return fmt.Sprintf("cannot start: %v", err)
		}
		return ""
	case "/restart":
		if err := s.Restart(); err != nil {
			return fmt.Sprintf("cannot restart: %v", err)
		}
		return ""
	case "/catalog":
		st := s.Game.State()
		return report.FormatCatalog(s.Game.Catalog(), st.ActiveActions, st.Selected)
	case "/pick":
		if len(fields) < 2 {
			return "usage: /pick <action_id> [...]"
		}
		var b strings.Builder
		for _, id := range fields[1:] {
			on, err := s.Game.Toggle(id)
			switch {
			case err != nil:
				b.WriteString(fmt.Sprintf("%s: %v\n", id, err))
			case on:
				b.WriteString(fmt.Sprintf("%s selected\n", id))
			default:
				b.WriteString(fmt.Sprintf("%s deselected\n", id))
			}
		}
		return strings.TrimRight(b.String(), "\n")
	case "/next":
		if s.Game.Status() != model.StatusPlaying {
			return "game is not in progress, use /start"
		}
		s.advance()
		return ""
	case "/status":
		return report.FormatStatus(s.Game.State())
	case "/advice":
		st := s.Game.State()
		latest := st.Latest()
		if latest == nil {
			return "no round played yet"
		}
		return advisor.AdviseOrFallback(s.Ctx, s.Advisor, advisor.SnapshotOf(latest))
	default:
		return "commands:\n  /start\n  /restart\n  /catalog\n  /pick <id> [...]\n  /next\n  /status\n  /advice\n  /quit"
	}
}

func (s *Scheduler) recordRound(res *model.RoundResult, budget float64) {
	if err := s.Recorder.RecordRound(&recorder.RoundSnapshot{
		GameID: s.Game.ID(),
		Result: res,
		Budget: budget,
	}); err != nil {
		log.Printf("[ERROR] record round: %v", err)
	}
}

func (s *Scheduler) write(text string) {
	if s.Out == nil {
		return
	}
	if _, err := io.WriteString(s.Out, text+"\n"); err != nil {
		log.Printf("[WARN] write output: %v", err)
	}
}
