package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.Width = 8
	config.Height = 6
	config.FrameRate = 0
	config.Seed = 11
	config.MaxGenerations = 3
	return config
}

func TestRunStopsAtMaxGenerations(t *testing.T) {
	var out bytes.Buffer
	stats, err := run(context.Background(), testConfig(), &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stats.TotalGenerations != 3 {
		t.Fatalf("total generations = %d, want 3", stats.TotalGenerations)
	}

	got := out.String()
	for gen := range 4 {
		if !strings.Contains(got, fmt.Sprintf("Gen: %d ", gen)) {
			t.Fatalf("output is missing generation %d:\n%s", gen, got)
		}
	}
	if strings.Contains(got, "Gen: 4 ") {
		t.Fatalf("output went past the generation limit:\n%s", got)
	}
}

func TestRunIsReproducibleWithSeed(t *testing.T) {
	frames := func() []string {
		config := testConfig()
		board, rng, err := initializeGame(config)
		if err != nil {
			t.Fatalf("initializeGame: %v", err)
		}
		ch := make(chan frame)
		go func() {
			defer close(ch)
			_ = simulate(context.Background(), config, board, rng, utils.NewStats(), ch)
		}()
		var views []string
		for f := range ch {
			views = append(views, f.view)
		}
		return views
	}

	a, b := frames(), frames()
	if len(a) != 4 || len(a) != len(b) {
		t.Fatalf("frame counts = %d and %d, want 4", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("frame %d differs between seeded runs", i)
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 0
	config.FrameRate = time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := run(ctx, config, &bytes.Buffer{})
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after cancellation")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRunReportsDisplayErrors(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 0

	if _, err := run(context.Background(), config, failingWriter{}); err == nil {
		t.Fatal("run ignored a failing writer")
	}
}

func TestRunRejectsBadDimensions(t *testing.T) {
	config := testConfig()
	config.Width = 0
	if _, err := run(context.Background(), config, &bytes.Buffer{}); err == nil {
		t.Fatal("run accepted a zero width board")
	}
}

func TestCheckRestartConditions(t *testing.T) {
	config := utils.DefaultConfig()
	cases := []struct {
		name          string
		livingCells   int
		stagnantCount int
		want          bool
		reason        string
	}{
		{"extinct", 0, 0, true, "extinction"},
		{"stagnant", 10, config.StagnationThreshold, true, "stagnation detected"},
		{"active", 10, 1, false, ""},
	}
	for _, tc := range cases {
		got, reason := checkRestartConditions(tc.livingCells, tc.stagnantCount, config)
		if got != tc.want || reason != tc.reason {
			t.Errorf("%s: got (%v, %q), want (%v, %q)", tc.name, got, reason, tc.want, tc.reason)
		}
	}
}

func TestSimulateRestartsExtinctBoard(t *testing.T) {
	config := testConfig()
	config.AutoRestart = true
	config.MaxGenerations = 2

	board, err := model.NewBoard(config.Width, config.Height)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	stats := utils.NewStats()
	ch := make(chan frame)
	go func() {
		defer close(ch)
		_ = simulate(context.Background(), config, board, model.NewRNG(5), stats, ch)
	}()

	var got []frame
	for f := range ch {
		got = append(got, f)
	}
	if len(got) != 3 {
		t.Fatalf("got %d frames, want 3", len(got))
	}
	if got[0].status != "Extinct" {
		t.Fatalf("first frame status = %q, want Extinct", got[0].status)
	}
	if !strings.Contains(got[1].note, "extinction") {
		t.Fatalf("second frame note = %q, want a restart note", got[1].note)
	}
	if got[1].livingCells == 0 {
		t.Fatal("restart did not reseed the board")
	}
	if stats.Restarts != 1 {
		t.Fatalf("restarts = %d, want 1", stats.Restarts)
	}
}

func TestSimulateLeavesExtinctBoardAlone(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width = 8
	config.Height = 6
	config.FrameRate = 0
	config.MaxGenerations = 8

	board, err := model.NewBoard(config.Width, config.Height)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	ch := make(chan frame)
	go func() {
		defer close(ch)
		_ = simulate(context.Background(), config, board, model.NewRNG(5), utils.NewStats(), ch)
	}()

	for f := range ch {
		if f.livingCells != 0 || f.status != "Extinct" {
			t.Fatalf("generation %d: living=%d status=%q, want an extinct board", f.generation, f.livingCells, f.status)
		}
	}
}

func TestShouldInject(t *testing.T) {
	config := utils.DefaultConfig()
	config.AutoRestart = true
	cases := []struct {
		name          string
		autoRestart   bool
		livingCells   int
		stagnantCount int
		want          bool
	}{
		{"stagnant board", true, 10, 2, true},
		{"not stagnant long enough", true, 10, 1, false},
		{"about to restart", true, 10, config.StagnationThreshold, false},
		{"empty board", true, 0, 2, false},
		{"auto restart off", false, 10, 2, false},
	}
	for _, tc := range cases {
		c := config
		c.AutoRestart = tc.autoRestart
		if got := shouldInject(tc.livingCells, tc.stagnantCount, c); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}
