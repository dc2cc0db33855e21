// Command flockctl runs the flock without a window, ticking it at the
// configured rate and logging a summary every few seconds.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lao-tseu-is-alive/go-flock/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
)

func main() {
	configFile := flag.String("config", "", "JSON or TOML config file, defaults when empty")
	ticks := flag.Uint64("ticks", 0, "stop after this many ticks, 0 runs until interrupted")
	seed := flag.Uint64("seed", 0, "seed for the initial population, overrides the config")
	mode := flag.String("mode", "", "update mode: snapshot or sequential, overrides the config")
	every := flag.Duration("stats", 2*time.Second, "interval between summaries")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = simulation.LoadConfig(*configFile); err != nil {
			log.Fatal(err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	logger := cfg.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	system, err := actor.NewActorSystem("FlockWorld", actor.WithLogger(logger))
	if err != nil {
		log.Fatalf("failed to create actor system: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatalf("failed to start actor system: %v", err)
	}
	defer system.Stop(context.Background())

	client, err := simulation.SpawnFlock(ctx, system, "flock", cfg.NewWorld(logger), nil)
	if err != nil {
		log.Fatal(err)
	}
	driver := simulation.NewDriver(client, cfg.TicksPerSecond, logger)
	driver.SetMaxTicks(*ticks)
	if err := driver.Start(ctx); err != nil {
		log.Fatal(err)
	}
	defer driver.Stop()

	stats := time.NewTicker(*every)
	defer stats.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("interrupted")
			return
		case <-driver.Done():
			// with -ticks the driver stops after sending exactly that many
			snap, err := client.Snapshot(context.Background())
			if err != nil {
				logger.Warnf("no snapshot: %v", err)
				return
			}
			logger.Info(simulation.ComputeStats(snap).String())
			logger.Infof("reached %d ticks", snap.GetTick())
			return
		case <-stats.C:
			snap, err := client.Snapshot(ctx)
			if err != nil {
				logger.Warnf("no snapshot: %v", err)
				continue
			}
			logger.Info(simulation.ComputeStats(snap).String())
		}
	}
}
