// Package config loads game tuning from JSON and environment overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"discarena/internal/ai"
	"discarena/internal/physics"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvSeed     = "ARENA_SEED"
	EnvLogLevel = "ARENA_LOG_LEVEL"
	EnvDB       = "ARENA_DB"
	EnvAIDelay  = "ARENA_AI_DELAY"
)

// Config is the full tuning surface of a match.
type Config struct {
	Physics physics.Config `json:"physics"`
	AI      ai.Config      `json:"ai"`

	DragThreshold  float32 `json:"dragThreshold"`  // drags at or below this are ignored
	MinThrowSpeed  float32 `json:"minThrowSpeed"`  // floor for a legal throw
	RageMultiplier float32 `json:"rageMultiplier"` // power boost of an armed throw
	RageCap        int     `json:"rageCap"`
	SummonGap      float32 `json:"summonGap"` // clearance between a wizard and its orbs
	AIDelayFrames  int     `json:"aiDelayFrames"`

	Seed      uint64 `json:"seed"`
	LogLevel  string `json:"logLevel"`
	DBPath    string `json:"dbPath"`
	ReplayDir string `json:"replayDir"`
}

func Default() Config {
	return Config{
		Physics:        physics.DefaultConfig(),
		AI:             ai.DefaultConfig(),
		DragThreshold:  0.05,
		MinThrowSpeed:  0.05,
		RageMultiplier: 2.5,
		RageCap:        3,
		SummonGap:      0.5,
		AIDelayFrames:  45,
		Seed:           1,
		LogLevel:       "info",
		DBPath:         "arena.db",
		ReplayDir:      "replays",
	}
}

// Load reads a JSON file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Save writes cfg as indented JSON.
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// LoadEnv loads .env style files into the process environment. Missing files
// are skipped.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields from ARENA_* variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvDB); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(EnvAIDelay); v != "" {
		frames, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAIDelay, err)
		}
		c.AIDelayFrames = frames
	}
	return c.Validate()
}

var ErrInvalid = errors.New("invalid config")

// Validate rejects tuning the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Physics.Substeps < 1:
		return fmt.Errorf("%w: substeps must be at least 1", ErrInvalid)
	case c.Physics.Friction <= 0 || c.Physics.Friction > 1:
		return fmt.Errorf("%w: friction must be in (0, 1]", ErrInvalid)
	case c.Physics.StopEpsilon <= 0:
		return fmt.Errorf("%w: stopEpsilon must be positive", ErrInvalid)
	case c.Physics.MaxSpeed <= 0:
		return fmt.Errorf("%w: maxSpeed must be positive", ErrInvalid)
	case c.RageCap < 0:
		return fmt.Errorf("%w: rageCap must not be negative", ErrInvalid)
	case c.AIDelayFrames < 0:
		return fmt.Errorf("%w: aiDelayFrames must not be negative", ErrInvalid)
	case c.AI.MaxAttempts < 1:
		return fmt.Errorf("%w: ai.maxAttempts must be at least 1", ErrInvalid)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// NewLogger builds the root logger at the configured level.
func (c Config) NewLogger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}
