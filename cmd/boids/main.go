package main

import (
	"context"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-flock/internal/game"
	"github.com/lao-tseu-is-alive/go-flock/pb"
	"github.com/lao-tseu-is-alive/go-flock/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
)

func main() {
	configFile := flag.String("config", "", "JSON or TOML config file, defaults when empty")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = simulation.LoadConfig(*configFile); err != nil {
			log.Fatal(err)
		}
	}
	logger := cfg.Logger()
	ctx := context.Background()

	system, err := actor.NewActorSystem("FlockWorld", actor.WithLogger(logger))
	if err != nil {
		log.Fatalf("failed to create actor system: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatalf("failed to start actor system: %v", err)
	}
	defer system.Stop(ctx)

	// Buffer to avoid blocking the actor while a frame is drawn
	snapshotCh := make(chan *pb.WorldSnapshot, 10)
	client, err := simulation.SpawnFlock(ctx, system, "flock", cfg.NewWorld(logger), snapshotCh)
	if err != nil {
		log.Fatal(err)
	}

	g := game.New(ctx, client, snapshotCh, cfg, logger)
	ebiten.SetWindowSize(int(cfg.WorldWidth)+game.PanelWidth, int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Boids")
	ebiten.SetTPS(cfg.TicksPerSecond)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
