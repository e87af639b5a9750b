package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// frame is one rendered generation handed from the simulation to the display
type frame struct {
	generation     int
	livingCells    int
	density        float64
	status         string
	note           string
	lastRestartGen int
	stats          utils.Stats
	view           string
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*model.Board, *rand.Rand, error) {
	board, err := model.NewBoard(config.Width, config.Height)
	if err != nil {
		return nil, nil, errors.Wrap(err, "[initializeGame] failed to create board")
	}

	rng := model.NewRNG(config.Seed)
	seedBoard(board, rng, config)

	return board, rng, nil
}

// seedBoard randomizes the board and optionally adds the built-in patterns on top
func seedBoard(board *model.Board, rng *rand.Rand, config utils.Config) {
	board.RandomizeWith(rng)
	if config.WithPatterns {
		board.AddInterestingPatterns()
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, board *model.Board) {
	dims := board.Dimensions()
	fmt.Fprintf(out, "Grid: %dx%d | Initial living cells: %d | Auto restart: %v\n",
		dims.Width, dims.Height, board.Population(), config.AutoRestart)
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// updateGameState updates the game state and returns status information
func updateGameState(
	board *model.Board,
	history *model.History,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	livingCells := board.Population()
	density := float64(livingCells) / float64(board.Dimensions().Area()) * 100

	// Update performance stats
	stats.Update(generation, livingCells, time.Since(lastFrameTime))

	isStagnant := history.Observe(board)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, f frame) {
	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		f.generation, f.livingCells, f.density, f.status)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Peak: %d | Runtime: %.1fs\n",
		f.stats.GenerationsPerSecond, f.stats.AveragePopulation, f.stats.PeakPopulation,
		f.stats.Runtime().Seconds())

	// Show time since last restart
	if f.generation > f.lastRestartGen {
		fmt.Fprintf(out, "Generations since restart: %d\n", f.generation-f.lastRestartGen)
	}
	if f.note != "" {
		fmt.Fprintln(out, f.note)
	}
	fmt.Fprintln(out)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// shouldInject reports whether a stagnant, still populated board gets random cells before the next advance
func shouldInject(livingCells, stagnantCount int, config utils.Config) bool {
	if !config.AutoRestart || livingCells == 0 || config.InjectionCount == 0 {
		return false
	}
	return stagnantCount >= 2 && stagnantCount < config.StagnationThreshold
}

// simulate owns the board: it publishes a frame, waits one frame interval and advances, until ctx ends or MaxGenerations is reached
func simulate(
	ctx context.Context,
	config utils.Config,
	board *model.Board,
	rng *rand.Rand,
	stats *utils.Stats,
	frames chan<- frame,
) error {
	var (
		history        = model.NewHistory(model.DefaultHistorySize)
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
		note           string
	)

	for generation := 0; ; generation++ {
		frameStart := time.Now()
		livingCells, density, status, isStagnant := updateGameState(board, history, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		f := frame{
			generation:     generation,
			livingCells:    livingCells,
			density:        density,
			status:         status,
			note:           note,
			lastRestartGen: lastRestartGen,
			stats:          *stats,
			view:           board.Render(),
		}
		note = ""

		select {
		case <-ctx.Done():
			return nil
		case frames <- f:
		}

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			return nil
		}

		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, config)
		if shouldRestart && config.AutoRestart {
			seedBoard(board, rng, config)
			history.Reset()
			stats.Restarts++
			lastRestartGen = generation
			stagnantCount = 0
			note = fmt.Sprintf("Restarted due to %s, living cells: %d", restartReason, board.Population())
		} else {
			if shouldInject(livingCells, stagnantCount, config) {
				// Inject some life to try to break the stagnation
				board.InjectRandomLife(rng, config.InjectionCount)
			}
			board.Advance()
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(config.FrameRate):
		}
	}
}

// display clears the terminal and draws every frame it receives
func display(out io.Writer, frames <-chan frame) error {
	renderer := model.NewTerminalRenderer(out)
	for f := range frames {
		if err := renderer.Clear(); err != nil {
			return errors.Wrap(err, "[display] failed to clear")
		}
		displayGameStatus(out, f)
		if err := renderer.Display(f.view); err != nil {
			return errors.Wrapf(err, "[display] failed to draw generation %d", f.generation)
		}
	}
	return nil
}

// run plays the game until ctx is cancelled or the generation limit is reached
func run(ctx context.Context, config utils.Config, out io.Writer) (*utils.Stats, error) {
	board, rng, err := initializeGame(config)
	if err != nil {
		return nil, err
	}
	displayGameInfo(out, config, board)

	var (
		stats  = utils.NewStats()
		frames = make(chan frame)
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer close(frames)
		return simulate(ctx, config, board, rng, stats, frames)
	})
	eg.Go(func() error {
		return display(out, frames)
	})

	if err = eg.Wait(); err != nil {
		return stats, errors.Wrap(err, "[run] game loop failed")
	}
	return stats, nil
}
