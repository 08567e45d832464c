// Command sim runs a battle without a window and prints its statistics.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/bastion/assets"
	"github.com/automoto/bastion/battle"
	"github.com/automoto/bastion/config"
)

func main() {
	levelName := flag.String("level", config.Level.Default, "Level to run (\"default\" for the built-in layout)")
	ticks := flag.Int("ticks", 600, "Ticks to run (0 = until cleared or interrupted)")
	tickRate := flag.Int("tickrate", config.C.TPS, "Ticks per simulated second")
	realtime := flag.Bool("realtime", false, "Pace ticks with a wall-clock ticker")
	untilCleared := flag.Bool("until-cleared", false, "Stop once every target is destroyed")
	keepDead := flag.Bool("keep-dead", false, "Leave targets in play after their health reaches zero")
	verbose := flag.Bool("verbose", false, "Log ignored despawns and level warnings")
	flag.Parse()

	if *tickRate <= 0 {
		log.Fatalf("tickrate must be positive, got %d", *tickRate)
	}
	if *ticks <= 0 && !*realtime && !*untilCleared {
		log.Fatalf("-ticks 0 needs -realtime or -until-cleared")
	}

	config.Audio.Enabled = false
	config.Debug.Verbose = *verbose
	config.Combat.RemoveDeadTargets = !*keepDead

	level, err := battle.LoadLevel(assets.NewLevelLoader(), *levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	sim := battle.New(level)
	log.Printf("Running %s: %d towers, %d targets", level.Name, len(level.Towers), sim.Targets())

	var ran int
	if *realtime {
		opts := []battle.LoopOption{battle.WithMaxTicks(*ticks)}
		if *untilCleared {
			opts = append(opts, battle.WithStopWhenCleared())
		}
		loop := battle.NewLoop(sim, *tickRate, opts...)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			log.Println("Interrupted")
			loop.Stop()
		}()

		ran = loop.Run()
	} else {
		n := *ticks
		if n <= 0 {
			n = int(^uint(0) >> 1)
		}
		ran = battle.RunFixed(sim, n, 1/float64(*tickRate), *untilCleared)
	}

	clock := sim.Clock()
	stats := sim.Stats()
	fmt.Printf("level       %s\n", level.Name)
	fmt.Printf("ticks       %d (%.2fs)\n", ran, clock.Elapsed)
	fmt.Printf("shots       %d\n", stats.ShotsFired)
	fmt.Printf("hits        %d\n", stats.Hits)
	fmt.Printf("expired     %d\n", stats.Expired)
	fmt.Printf("damage      %.1f\n", stats.DamageDealt)
	fmt.Printf("targets     %d left\n", sim.Targets())
	fmt.Printf("destroyed   %d\n", stats.TargetsDestroyed)
}
