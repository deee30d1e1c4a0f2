package game

import (
	"fmt"

	"github.com/cbodonnell/shapesort/client/input"
	"github.com/cbodonnell/shapesort/client/scenes"
	"github.com/cbodonnell/shapesort/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 480
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether the debug overlay is shown.
	debug bool
	// scene is the current scene.
	scene *scenes.GameScene
}

type NewGameOptions struct {
	Debug bool
	Rules game.Rules
	// Autoplay lets a bot play the session.
	Autoplay     bool
	MistakeEvery int
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	g := &Game{
		debug: opts.Debug,
	}

	scene, err := scenes.NewGameScene(scenes.GameSceneOptions{
		Rules:        opts.Rules,
		Width:        DefaultScreenWidth,
		Height:       DefaultScreenHeight,
		Autoplay:     opts.Autoplay,
		MistakeEvery: opts.MistakeEvery,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game scene: %v", err)
	}
	if err := g.SetScene(scene); err != nil {
		return nil, fmt.Errorf("failed to set game scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene *scenes.GameScene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) Update() error {
	if input.IsDebugJustPressed() {
		g.debug = !g.debug
	}

	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	manager := g.scene.Manager()
	session := manager.Session()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   State: %s", session.State))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n\n   Shapes: %d", manager.Scene().Len()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n\n\n   Time: %0.2f", session.TimeRemaining))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return DefaultScreenWidth, DefaultScreenHeight
}
