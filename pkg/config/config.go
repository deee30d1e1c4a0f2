package config

import (
	"errors"
	"flag"
	"fmt"
	"math"

	"github.com/caarlos0/env/v11"
	"github.com/cbodonnell/shapesort/pkg/game"
	"github.com/cbodonnell/shapesort/pkg/game/constants"
	"github.com/cbodonnell/shapesort/pkg/log"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the session configuration. It is fixed once a session starts.
type Config struct {
	WinScore int `env:"SHAPESORT_WIN_SCORE" envDefault:"9"`
	// ForceWinScore replaces WinScore with ForcedWinScore
	ForceWinScore  bool `env:"SHAPESORT_FORCE_WIN_SCORE" envDefault:"false"`
	ForcedWinScore int  `env:"SHAPESORT_FORCED_WIN_SCORE" envDefault:"9"`

	// TimeLimit is the countdown in seconds
	TimeLimit float64 `env:"SHAPESORT_TIME_LIMIT" envDefault:"30"`
	// ForceTimeLimit replaces TimeLimit with ForcedTimeLimit, never below one second
	ForceTimeLimit  bool    `env:"SHAPESORT_FORCE_TIME_LIMIT" envDefault:"false"`
	ForcedTimeLimit float64 `env:"SHAPESORT_FORCED_TIME_LIMIT" envDefault:"30"`

	LockInputOnGameOver bool    `env:"SHAPESORT_LOCK_INPUT_ON_GAME_OVER" envDefault:"false"`
	MessageDuration     float64 `env:"SHAPESORT_MESSAGE_DURATION" envDefault:"2"`
	RespawnOnRestart    bool    `env:"SHAPESORT_RESPAWN_ON_RESTART" envDefault:"false"`

	LogLevel string `env:"SHAPESORT_LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// BindFlags registers command-line overrides for every field on fs.
// Values already in cfg are used as flag defaults.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.WinScore, "win-score", c.WinScore, "score that wins the session")
	fs.BoolVar(&c.ForceWinScore, "force-win-score", c.ForceWinScore, "use the forced win score")
	fs.IntVar(&c.ForcedWinScore, "forced-win-score", c.ForcedWinScore, "win score used when forced")
	fs.Float64Var(&c.TimeLimit, "time-limit", c.TimeLimit, "session countdown in seconds")
	fs.BoolVar(&c.ForceTimeLimit, "force-time-limit", c.ForceTimeLimit, "use the forced time limit")
	fs.Float64Var(&c.ForcedTimeLimit, "forced-time-limit", c.ForcedTimeLimit, "time limit used when forced")
	fs.BoolVar(&c.LockInputOnGameOver, "lock-input", c.LockInputOnGameOver, "ignore drag input once the session is over")
	fs.Float64Var(&c.MessageDuration, "message-duration", c.MessageDuration, "seconds a message stays on screen")
	fs.BoolVar(&c.RespawnOnRestart, "respawn", c.RespawnOnRestart, "spawn the shapes again on restart")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (error, warn, info, debug, trace)")
}

// Rules returns the session rules with the force policy applied.
func (c *Config) Rules() game.Rules {
	rules := game.Rules{
		WinThreshold:        c.WinScore,
		TimeLimit:           c.TimeLimit,
		LockInputOnGameOver: c.LockInputOnGameOver,
		MessageDuration:     c.MessageDuration,
		RespawnOnRestart:    c.RespawnOnRestart,
	}
	if c.ForceWinScore {
		rules.WinThreshold = c.ForcedWinScore
	}
	if c.ForceTimeLimit {
		rules.TimeLimit = math.Max(constants.MinForcedTimeLimit, c.ForcedTimeLimit)
	}
	return rules
}

// Level returns the parsed log level.
func (c *Config) Level() (log.LogLevel, error) {
	level, err := log.ParseLogLevel(c.LogLevel)
	if err != nil {
		return level, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return level, nil
}

func (c *Config) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}
