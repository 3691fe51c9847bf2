// Headless simulator: plays autopilot matches back to back and reports how
// each side fares.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"discarena/internal/config"
	"discarena/internal/game"
	"discarena/internal/level"
	"discarena/internal/replay"
	"discarena/internal/store"

	"github.com/charmbracelet/log"
)

func main() {
	cfgPath := flag.String("config", "", "JSON tuning file (defaults when empty)")
	levelPath := flag.String("level", "", "level file (built-in arena when empty)")
	matches := flag.Int("n", 20, "number of matches")
	maxFrames := flag.Int("frames", 20000, "frame cap per match")
	saveReplays := flag.Bool("replays", false, "write a replay per match")
	verify := flag.Bool("verify", false, "play every match back and check it ends the same")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if err := config.LoadEnv(".env"); err != nil {
		log.Fatal("env", "err", err)
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal("config", "err", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		log.Fatal("config", "err", err)
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	// The AI delay only exists for people watching.
	cfg.AIDelayFrames = 0
	logger := cfg.NewLogger(os.Stderr)

	// Per-match chatter only shows up with -v.
	var sessionLog *log.Logger
	if *verbose {
		sessionLog = logger
	}

	lv := level.Default()
	if *levelPath != "" {
		if lv, err = level.Load(*levelPath); err != nil {
			logger.Fatal("level", "err", err)
		}
	}

	var db *store.DB
	if cfg.DBPath != "" {
		if db, err = store.Open(cfg.DBPath); err != nil {
			logger.Fatal("open store", "err", err)
		}
		defer db.Close()
	}
	if *saveReplays {
		if err := os.MkdirAll(cfg.ReplayDir, 0755); err != nil {
			logger.Fatal("replay dir", "err", err)
		}
	}

	start := time.Now()
	wins, finished := 0, 0
	for i := range *matches {
		mcfg := cfg
		mcfg.Seed = cfg.Seed + uint64(i)

		rec, s, err := play(lv, mcfg, *maxFrames, sessionLog)
		if err != nil {
			logger.Fatal("match", "seed", mcfg.Seed, "err", err)
		}
		over, won := s.Outcome()
		st := s.Stats()
		if over {
			finished++
			if won {
				wins++
			}
		}
		logger.Info("match", "seed", mcfg.Seed, "over", over, "won", won,
			"turns", st.Turns, "frames", st.Frames, "throws", st.Throws)

		if db != nil {
			if err := db.Record(rec.ID, lv.Name, s); err != nil {
				logger.Error("record match", "err", err)
			}
		}
		if *saveReplays {
			path := filepath.Join(cfg.ReplayDir, rec.ID+".replay")
			if err := replay.Save(path, rec); err != nil {
				logger.Error("save replay", "err", err)
			}
		}
		if *verify {
			again, err := replay.Play(rec, game.Options{Logger: sessionLog})
			if err == nil {
				err = replay.Verify(rec, again)
			}
			if err != nil {
				logger.Error("verify", "seed", mcfg.Seed, "err", err)
			}
		}
	}

	logger.Info("done", "matches", *matches, "finished", finished, "playerWins", wins,
		"elapsed", time.Since(start).Round(time.Millisecond))

	if db != nil {
		report(logger, db)
	}
}

func play(lv *level.Level, cfg config.Config, maxFrames int, logger *log.Logger) (*replay.Recording, *game.Session, error) {
	rec := replay.NewRecorder(lv, cfg, true)
	s, err := game.New(lv, cfg, game.Options{Logger: logger, Recorder: rec, Autopilot: true})
	if err != nil {
		return nil, nil, err
	}
	for s.FrameCount() < maxFrames {
		if over, _ := s.Outcome(); over {
			break
		}
		s.Frame()
	}
	return rec.Finish(s), s, nil
}

func report(logger *log.Logger, db *store.DB) {
	totals, err := db.KindTotals()
	if err != nil {
		logger.Error("kind totals", "err", err)
		return
	}
	for _, k := range totals {
		fmt.Printf("%-10s appearances=%-5d damage=%-6d kills=%-5d deaths=%d\n",
			k.Kind, k.Appearances, k.DamageDealt, k.Kills, k.Deaths)
	}
	if rate, n, err := db.WinRate(); err == nil && n > 0 {
		fmt.Printf("player win rate %.1f%% over %d finished matches\n", rate*100, n)
	}
}
