package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/shapesort/client/game"
	"github.com/cbodonnell/shapesort/pkg/config"
	"github.com/cbodonnell/shapesort/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	debug := flag.Bool("debug", false, "Show the debug overlay")
	autoplay := flag.Bool("autoplay", false, "Let a bot play the session")
	mistakeEvery := flag.Int("mistake-every", 0, "Send every nth shape the bot sorts to a wrong bin")
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid config: %v", err))
	}

	parsedLogLevel, err := cfg.Level()
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	g, err := game.NewGame(game.NewGameOptions{
		Debug:        *debug,
		Rules:        cfg.Rules(),
		Autoplay:     *autoplay,
		MistakeEvery: *mistakeEvery,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(game.DefaultScreenWidth, game.DefaultScreenHeight)
	ebiten.SetWindowTitle("Shape Sort")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
