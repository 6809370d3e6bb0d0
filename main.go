package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessing-game/internal/config"
	"github.com/robalobadob/guessing-game/internal/console"
	"github.com/robalobadob/guessing-game/internal/game"
)

func main() {
	// stdout is reserved for the game dialogue.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := cfg.Level(); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	g := game.New(game.RandomSecret)
	c := console.New(g, os.Stdin, os.Stdout, console.Options{
		ClearScreen: cfg.ClearScreen,
		ParseHint:   cfg.ParseHint,
	})
	if err := c.Run(); err != nil {
		log.Fatal().Err(err).Str("session", g.ID).Msg("game aborted")
	}
}
