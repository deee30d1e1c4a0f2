package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/cbodonnell/shapesort/pkg/autoplay"
	"github.com/cbodonnell/shapesort/pkg/config"
	"github.com/cbodonnell/shapesort/pkg/game"
	"github.com/cbodonnell/shapesort/pkg/log"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

// sim plays one session headlessly with the autoplay bot and reports the outcome.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	mistakeEvery := flag.Int("mistake-every", 0, "Send every nth shape to a wrong bin")
	tickInterval := flag.Duration("tick", game.DefaultTickInterval, "Interval between ticks")
	timeout := flag.Duration("timeout", time.Minute, "Give up after this long")
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

	camera, err := game.DefaultCamera(screenWidth, screenHeight)
	if err != nil {
		panic(fmt.Sprintf("Failed to create camera: %v", err))
	}

	gm, err := game.NewGameManager(game.NewGameManagerOptions{
		Rules:     cfg.Rules(),
		Presenter: game.NewLogPresenter(log.With("component", "presenter")),
		Raycaster: camera,
		Spawner:   game.SpawnDefaultLayout,
		Driver: autoplay.NewBot(autoplay.NewBotOptions{
			Camera:       camera,
			MistakeEvery: *mistakeEvery,
		}),
		TickInterval:     *tickInterval,
		StopOnSessionEnd: true,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game manager: %v", err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, *timeout)
	defer cancelTimeout()

	if err := gm.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to run session: %v", err))
	}

	session := gm.Session()
	log.Info("Final state %s, score %d, %.2fs remaining", session.State, session.Score, session.TimeRemaining)
	if session.IsPlaying() {
		os.Exit(1)
	}
}
