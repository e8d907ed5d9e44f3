package config

import (
	"errors"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"showdown-server/internal/util"
	"showdown-server/pkg/match"
	"showdown-server/pkg/room"
)

// EnvPrefix prefixes every environment variable, i.e., SHOWDOWN_MATCH_TARGET
const EnvPrefix = "showdown"

// Config provides configuration for the showdown server
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Match struct {
		Players       []string `yaml:"players" envconfig:"players"`
		TargetEnabled bool     `yaml:"targetEnabled" envconfig:"target_enabled"`
		Target        int      `yaml:"target" envconfig:"target"`
		// Seed for shuffling, 0 shuffles with crypto/rand
		Seed int64 `yaml:"seed" envconfig:"seed"`
	} `yaml:"match"`
	// Pacing delays are in milliseconds
	Pacing struct {
		Deal      int `yaml:"deal" envconfig:"deal"`
		Street    int `yaml:"street" envconfig:"street"`
		Showdown  int `yaml:"showdown" envconfig:"showdown"`
		NextRound int `yaml:"nextRound" envconfig:"next_round"`
	} `yaml:"pacing"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	var c Config
	c.Log.Level = "info"
	c.Match.Players = []string{"Player 1", "Player 2"}
	c.Match.TargetEnabled = true
	c.Match.Target = 10
	c.Pacing.Deal = 1500
	c.Pacing.Street = 1200
	c.Pacing.Showdown = 3000
	c.Pacing.NextRound = 1000

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The config file is optional, environment variables are applied on top of it.
func Load() error {
	c := DefaultConfig()

	configFile := util.Getenv("SHOWDOWN_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&c); err != nil {
			return err
		}
	}

	if err := envconfig.Process(EnvPrefix, &c); err != nil {
		return err
	}

	if err := c.MatchOptions().Validate(); err != nil {
		return err
	}

	c.loaded = true
	config = c
	return nil
}

// MatchOptions returns the options for a new match
func (c Config) MatchOptions() match.Options {
	return match.Options{
		TargetEnabled: c.Match.TargetEnabled,
		Target:        c.Match.Target,
	}
}

// DealerPacing returns the delays between dealer steps
func (c Config) DealerPacing() room.Pacing {
	return room.Pacing{
		Deal:      time.Duration(c.Pacing.Deal) * time.Millisecond,
		Street:    time.Duration(c.Pacing.Street) * time.Millisecond,
		Showdown:  time.Duration(c.Pacing.Showdown) * time.Millisecond,
		NextRound: time.Duration(c.Pacing.NextRound) * time.Millisecond,
	}
}
