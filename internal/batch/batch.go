package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"github.com/informaticalaredo/GrowthMaster/internal/calculator"
	"github.com/informaticalaredo/GrowthMaster/internal/catalog"
	"github.com/informaticalaredo/GrowthMaster/internal/engine"
	"github.com/informaticalaredo/GrowthMaster/internal/game"
	"github.com/informaticalaredo/GrowthMaster/internal/model"
	"github.com/informaticalaredo/GrowthMaster/internal/player"
)

// Options configure a batch of independent games.
type Options struct {
	Games     int
	Workers   int
	Seed      uint64 // game i uses Seed+i
	Economics model.Economics
	Catalog   *catalog.Catalog
	Game      game.Config
	NewPolicy func() player.Policy
	Progress  io.Writer // nil disables the progress bar
}

// GameOutcome is the end state of one game.
type GameOutcome struct {
	Index          int
	GameID         string
	FinalBudget    float64
	TotalNetProfit float64
	FinalCR        float64
	Events         int
	Actions        int
}

// Outcome aggregates a batch.
type Outcome struct {
	RunID        string
	Policy       string
	Games        int
	Seed         uint64
	MeanBudget   float64
	StdDevBudget float64
	P10Budget    float64
	P50Budget    float64
	P90Budget    float64
	MeanCR       float64
	MeanEvents   float64
	Bankrupt     int // games that finished with a negative budget
	Results      []GameOutcome
}

// Run plays opts.Games games concurrently. Each game owns its engine and
// seeded random source, so results only depend on the seed.
func Run(ctx context.Context, opts Options) (*Outcome, error) {
	if opts.Games < 1 {
		return nil, errors.New("games must be positive")
	}
	if opts.NewPolicy == nil {
		return nil, errors.New("a policy factory is required")
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Game.Logger == nil {
		opts.Game.Logger = log.New(io.Discard, "", 0)
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(opts.Games,
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("simulating"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	results := make([]GameOutcome, opts.Games)
	jobs := make(chan int)
	errCh := make(chan error, opts.Workers)

	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := playOne(opts, i)
				if err != nil {
					errCh <- fmt.Errorf("game %d: %w", i, err)
					return
				}
				results[i] = res
				if bar != nil {
					_ = bar.Add(1)
				}
			}
		}()
	}

	var runErr error
feed:
	for i := 0; i < opts.Games; i++ {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
			break feed
		case err := <-errCh:
			runErr = err
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	if runErr == nil {
		select {
		case runErr = <-errCh:
		default:
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	if runErr != nil {
		return nil, runErr
	}

	out, err := aggregate(results)
	if err != nil {
		return nil, err
	}
	out.RunID = uuid.NewString()
	out.Policy = opts.NewPolicy().Name()
	out.Seed = opts.Seed
	log.Printf("[INFO] batch %s finished: %d games, policy %s, mean budget %.0f", out.RunID, out.Games, out.Policy, out.MeanBudget)
	return out, nil
}

func playOne(opts Options, i int) (GameOutcome, error) {
	eng := engine.New(opts.Economics, opts.Catalog, engine.Seeded(opts.Seed+uint64(i)))
	gm := game.NewManager(opts.Game, eng)
	pol := opts.NewPolicy()

	if _, err := gm.Start(); err != nil {
		return GameOutcome{}, err
	}
	for {
		for _, id := range pol.Choose(gm.State(), opts.Catalog, gm.SelectionLimit()) {
			// Rejected picks only shrink the selection.
			_ = gm.Select(id)
		}
		_, ended, err := gm.Advance()
		if err != nil {
			return GameOutcome{}, err
		}
		if ended {
			break
		}
	}

	st := gm.State()
	sum, err := calculator.Summarize(st.History, gm.InitialBudget(), st.Budget)
	if err != nil {
		return GameOutcome{}, err
	}
	return GameOutcome{
		Index:          i,
		GameID:         st.ID,
		FinalBudget:    st.Budget,
		TotalNetProfit: sum.TotalNetProfit,
		FinalCR:        sum.FinalCR,
		Events:         sum.Events,
		Actions:        len(st.ActiveActions),
	}, nil
}

func aggregate(results []GameOutcome) (*Outcome, error) {
	budgets := make([]float64, len(results))
	crs := make([]float64, len(results))
	events := make([]float64, len(results))
	out := &Outcome{Games: len(results), Results: results}
	for i, r := range results {
		budgets[i] = r.FinalBudget
		crs[i] = r.FinalCR
		events[i] = float64(r.Events)
		if r.FinalBudget < 0 {
			out.Bankrupt++
		}
	}

	var err error
	if out.MeanBudget, err = calculator.Mean(budgets); err != nil {
		return nil, err
	}
	if out.StdDevBudget, err = calculator.StdDev(budgets); err != nil {
		return nil, err
	}
	if out.P10Budget, err = calculator.Percentile(budgets, 10); err != nil {
		return nil, err
	}
	if out.P50Budget, err = calculator.Percentile(budgets, 50); err != nil {
		return nil, err
	}
	if out.P90Budget, err = calculator.Percentile(budgets, 90); err != nil {
		return nil, err
	}
	if out.MeanCR, err = calculator.Mean(crs); err != nil {
		return nil, err
	}
	if out.MeanEvents, err = calculator.Mean(events); err != nil {
		return nil, err
	}
	return out, nil
}
