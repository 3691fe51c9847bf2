package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"discarena/internal/config"
	"discarena/internal/game"
	"discarena/internal/level"
	"discarena/internal/replay"
	"discarena/internal/store"
	"discarena/internal/viewer"

	"github.com/charmbracelet/log"
)

func main() {
	cfgPath := flag.String("config", "", "JSON tuning file (defaults when empty)")
	levelPath := flag.String("level", "", "level file (built-in arena when empty)")
	autopilot := flag.Bool("autopilot", false, "let the AI play the player side")
	font := flag.String("font", "", "TTF font for the HUD")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	// Run next to the binary for deployed builds, but not under "go run".
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

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
	logger := cfg.NewLogger(os.Stderr)

	lv := level.Default()
	if *levelPath != "" {
		if lv, err = level.Load(*levelPath); err != nil {
			logger.Fatal("level", "err", err)
		}
	}

	rec := replay.NewRecorder(lv, cfg, *autopilot)
	s, err := game.New(lv, cfg, game.Options{Logger: logger, Recorder: rec, Autopilot: *autopilot})
	if err != nil {
		logger.Fatal("start", "err", err)
	}
	logger.Info("match started", "id", rec.ID(), "level", lv.Name, "seed", cfg.Seed)

	opts := viewer.DefaultOptions()
	opts.Font = *font
	opts.Logger = logger
	viewer.New(s, lv, opts).Run()

	finish(logger, cfg, lv, rec, s)
}

// finish stores the match and its replay. Failures are only logged.
func finish(logger *log.Logger, cfg config.Config, lv *level.Level, rec *replay.Recorder, s *game.Session) {
	if cfg.ReplayDir != "" {
		if err := os.MkdirAll(cfg.ReplayDir, 0755); err != nil {
			logger.Error("replay dir", "err", err)
		} else {
			path := filepath.Join(cfg.ReplayDir, rec.ID()+".replay")
			if err := replay.Save(path, rec.Finish(s)); err != nil {
				logger.Error("save replay", "err", err)
			} else {
				logger.Info("replay saved", "path", path)
			}
		}
	}

	if cfg.DBPath == "" {
		return
	}
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		logger.Error("open store", "err", err)
		return
	}
	defer db.Close()
	if err := db.Record(rec.ID(), lv.Name, s); err != nil {
		logger.Error("record match", "err", err)
		return
	}
	if rate, n, err := db.WinRate(); err == nil && n > 0 {
		logger.Info("history", "matches", n, "winRate", rate)
	}
}
