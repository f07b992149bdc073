// gesture-stress runs the engine headless under a synthetic player: a bot
// that pinch-drags letters into the tray as fast as the gesture pipeline
// allows. It reports frame-time and memory statistics for the full pipeline.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/pinchspell/game"
	"github.com/plus3/pinchspell/words"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	fps := flag.Int("fps", 60, "Simulated tracker frame rate.")
	difficulty := flag.String("difficulty", "medium", "Word difficulty for the bot to solve.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting gesture stress test...")

	cfg := game.DefaultConfig(1280, 720)
	cfg.Mirror = false
	// The bot should never lose a round to the clock.
	cfg.RoundSeconds = 3600
	cfg.ScrambleSeconds = 0
	switch *difficulty {
	case "easy":
		cfg.Difficulty = game.Easy
	case "medium":
		cfg.Difficulty = game.Medium
	case "hard":
		cfg.Difficulty = game.Hard
	default:
		log.Fatalf("unknown difficulty %q", *difficulty)
	}

	bot := NewBot(cfg)
	g, err := game.New(cfg, bot, &words.Provider{}, game.NopSink{}, nil, words.DefaultCategory)
	if err != nil {
		log.Fatalf("start game: %v", err)
	}
	bot.Attach(g.World())

	report := &Report{
		Duration:       *duration,
		FPS:            *fps,
		Difficulty:     *difficulty,
		GCPauseMetrics: *gcPauseMetrics,
		FrameTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	dt := 1.0 / float64(*fps)
	startTime := time.Now()
	var totalFrames int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			bot.Step(dt)

			frameStart := time.Now()
			if err := g.Update(dt); err != nil {
				log.Fatalf("update: %v", err)
			}
			frameDuration := time.Since(frameStart)

			report.FrameTime.Samples = append(report.FrameTime.Samples, frameDuration)
			totalFrames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = totalFrames
	report.WordsSolved = g.World().Session().WordsCompleted
	report.FinalScore = g.World().Session().Score
	report.FrameTime.Finalize()
	report.Systems = g.Pipeline().Stats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Gesture Stress Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
