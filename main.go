package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("config: %+v", err)
		}
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats, err := run(ctx, config, os.Stdout)
	if err != nil {
		log.Fatalf("game of life: %+v", err)
	}

	fmt.Println("\n🛑 Shutting down gracefully...")
	fmt.Printf("Final stats: %d generations in %.1f seconds, %d restarts\n",
		stats.TotalGenerations, stats.Runtime().Seconds(), stats.Restarts)
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population, %d peak population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.PeakPopulation)
}
