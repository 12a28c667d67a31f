package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds host settings. The deck itself is not configurable.
type Config struct {
	Title         string        `env:"SWIPE_TITLE"          envDefault:"Swipe Stack"`
	VideoDriver   string        `env:"SDL_VIDEODRIVER"`
	Fullscreen    bool          `env:"SWIPE_FULLSCREEN"     envDefault:"false"`
	Width         int32         `env:"SWIPE_WIDTH"          envDefault:"480"`
	Height        int32         `env:"SWIPE_HEIGHT"         envDefault:"800"`
	TargetFPS     int           `env:"SWIPE_TARGET_FPS"     envDefault:"60"`
	StatsInterval time.Duration `env:"SWIPE_STATS_INTERVAL" envDefault:"10s"`
	FontPath      string        `env:"SWIPE_FONT_PATH"`

	// Log file for the terminal host, which cannot log to its own screen
	TermLog string `env:"SWIPE_TERM_LOG"`
}

// Load reads .env (when present) into the process environment and parses
// the result
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("Warning: .env file not found: %v", err)
		} else {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	}
	return Parse()
}

// Parse builds a Config from the current environment only
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the frame loop cannot run with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.TargetFPS <= 0 {
		return fmt.Errorf("invalid SWIPE_TARGET_FPS %d", c.TargetFPS)
	}
	if c.StatsInterval < 0 {
		return fmt.Errorf("invalid SWIPE_STATS_INTERVAL %s", c.StatsInterval)
	}
	return nil
}

// FrameTime is the target duration of one frame
func (c Config) FrameTime() time.Duration {
	return time.Second / time.Duration(c.TargetFPS)
}
