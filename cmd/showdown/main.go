package main

import (
	"errors"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"showdown-server/internal/config"
	"showdown-server/internal/rng"
	"showdown-server/pkg/match"
	"showdown-server/pkg/texasholdem"
)

var (
	players  = flag.String("players", "", "comma separated player names (defaults to the configured players)")
	target   = flag.Int("target", 0, "points needed to win the match (defaults to the configured target)")
	noTarget = flag.Bool("no-target", false, "play without a target, stopping after -rounds")
	seed     = flag.Int64("seed", -1, "shuffle seed, 0 shuffles with crypto/rand (defaults to the configured seed)")
	rounds   = flag.Int("rounds", 100, "the most rounds to play")
	delay    = flag.Duration("delay", 0, "how long to wait between each street")
)

func main() {
	flag.Parse()

	cfg := config.Instance()
	setupLogger(cfg)

	names := cfg.Match.Players
	if *players != "" {
		names = strings.Split(*players, ",")
	}

	opts := cfg.MatchOptions()
	if *target > 0 {
		opts.Target = *target
	}
	if *noTarget {
		opts.TargetEnabled = false
	}

	s := cfg.Match.Seed
	if *seed >= 0 {
		s = *seed
	}

	m, err := match.NewMatch(logrus.StandardLogger(), names, opts, rng.Seeded(s))
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	if err := play(m, *rounds, *delay); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func play(m *match.Match, maxRounds int, wait time.Duration) error {
	r := newRenderer(m)
	r.title()

	for i := 0; i < maxRounds; i++ {
		round, err := m.StartRound()
		if errors.Is(err, match.ErrMatchOver) {
			return nil
		} else if err != nil {
			return err
		}

		r.roundStart(m.RoundNumber())
		r.events(round.Events())

		for round.Phase() != texasholdem.PhaseShowdown {
			time.Sleep(wait)
			if err := round.Advance(); err != nil {
				return err
			}

			r.events(round.Events())
		}

		result, err := round.ShowdownResult()
		if err != nil {
			return err
		}

		champion, err := m.ApplyScoring(result)
		if err != nil {
			return err
		}

		r.showdown(round, result)
		if err := r.scoreboard(result); err != nil {
			return err
		}

		if champion != nil {
			r.champion(champion)
			return nil
		}
	}

	pterm.Info.Printfln("Stopped after %d rounds without a champion", maxRounds)
	return nil
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
	if !isTerminal {
		pterm.DisableStyling()
	}

	if !isTerminal || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
