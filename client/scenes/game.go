package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/shapesort/client/input"
	"github.com/cbodonnell/shapesort/client/objects"
	"github.com/cbodonnell/shapesort/pkg/autoplay"
	"github.com/cbodonnell/shapesort/pkg/game"
	gametypes "github.com/cbodonnell/shapesort/pkg/game/types"
	"github.com/cbodonnell/shapesort/pkg/kinematic"
	"github.com/cbodonnell/shapesort/pkg/log"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	receptacleZIndex = iota
	shapeZIndex
	effectZIndex
	hudZIndex
	bannerZIndex
)

var (
	backgroundColor = color.RGBA{0xd8, 0xe4, 0xee, 0xff}
	groundColor     = color.RGBA{0xb8, 0xc4, 0xa8, 0xff}
	correctColor    = color.RGBA{0x3c, 0xd0, 0x5a, 0xff}
	wrongColor      = color.RGBA{0xff, 0x55, 0x55, 0xff}
)

// GameScene renders a sorting session and feeds it pointer input.
type GameScene struct {
	*BaseScene

	manager *game.GameManager
	camera  *kinematic.Camera
	pointer *input.Pointer
	bot     *autoplay.Bot

	shapes  *objects.ShapeLayer
	effects *objects.BaseObject
	hud     *objects.HUD
	banner  *objects.MessageBanner
	overlay *EndOverlay
}

type GameSceneOptions struct {
	Rules game.Rules
	// Width and Height are the logical screen size.
	Width  int
	Height int
	// Autoplay lets a bot play instead of the pointer.
	Autoplay     bool
	MistakeEvery int
}

var _ Scene = &GameScene{}
var _ game.Presenter = &GameScene{}

func NewGameScene(opts GameSceneOptions) (*GameScene, error) {
	camera, err := game.DefaultCamera(opts.Width, opts.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to create camera: %v", err)
	}

	root := objects.NewLayerStack("game-root")
	s := &GameScene{
		BaseScene: NewBaseScene(root),
		camera:    camera,
		pointer:   input.NewPointer(),
		shapes:    objects.NewShapeLayer("shapes", shapeZIndex),
		effects:   objects.NewBaseObject("effects", &objects.NewBaseObjectOpts{ZIndex: effectZIndex}),
		hud:       objects.NewHUD("hud", hudZIndex),
		banner:    objects.NewMessageBanner("banner", bannerZIndex),
	}
	s.overlay = NewEndOverlay(s.requestRestart)

	for _, child := range []objects.GameObject{s.shapes, s.effects, s.hud, s.banner} {
		if err := root.AddChild(child.GetID(), child); err != nil {
			return nil, fmt.Errorf("failed to add %s to scene: %v", child.GetID(), err)
		}
	}

	if opts.Autoplay {
		s.bot = autoplay.NewBot(autoplay.NewBotOptions{
			Camera:       camera,
			MistakeEvery: opts.MistakeEvery,
		})
	}

	manager, err := game.NewGameManager(game.NewGameManagerOptions{
		Rules: opts.Rules,
		Presenter: game.MultiPresenter{
			s,
			game.NewLogPresenter(log.With("component", "presenter")),
		},
		Raycaster: camera,
		Spawner:   game.SpawnDefaultLayout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game manager: %v", err)
	}
	s.manager = manager

	for _, r := range manager.Scene().Receptacles() {
		obj := objects.NewReceptacleObject(r, camera, receptacleZIndex)
		if err := root.AddChild(obj.GetID(), obj); err != nil {
			return nil, fmt.Errorf("failed to add receptacle %s to scene: %v", r.Accepts, err)
		}
	}

	return s, nil
}

func (s *GameScene) Init() error {
	if err := s.syncShapes(); err != nil {
		return fmt.Errorf("failed to sync shapes: %v", err)
	}
	return s.BaseScene.Init()
}

func (s *GameScene) Update() error {
	s.overlay.Update()

	if s.bot != nil {
		if input.IsRestartJustPressed() {
			s.requestRestart()
		}
		s.bot.Drive(s.manager)
	} else if err := s.pointer.EnqueueEvents(s.manager.InputQueue()); err != nil {
		log.Warn("Failed to enqueue pointer events: %v", err)
	}

	s.manager.Advance(1 / float64(ebiten.TPS()))

	if err := s.syncShapes(); err != nil {
		return fmt.Errorf("failed to sync shapes: %v", err)
	}

	if err := s.BaseScene.Update(); err != nil {
		return fmt.Errorf("failed to update base scene: %v", err)
	}
	return nil
}

// syncShapes adds an object for every shape the scene gained since the last frame.
// Sorted shapes remove their own objects.
func (s *GameScene) syncShapes() error {
	for _, shape := range s.manager.Scene().Objects() {
		if s.shapes.Has(shape.ID) {
			continue
		}
		if err := s.shapes.AddChild(shape.ID, objects.NewShapeObject(shape, s.camera)); err != nil {
			return fmt.Errorf("failed to add shape %s: %v", shape.ID, err)
		}
	}
	return nil
}

func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	objects.DrawGroundQuad(screen, s.camera, -8, -8, 8, 5, groundColor)
	s.BaseScene.Draw(screen)
	s.overlay.Draw(screen)
}

func (s *GameScene) requestRestart() {
	if err := s.manager.InputQueue().Enqueue(&gametypes.RestartCommand{}); err != nil {
		log.Warn("Failed to enqueue restart: %v", err)
	}
}

// Manager returns the session driven by the scene.
func (s *GameScene) Manager() *game.GameManager {
	return s.manager
}

func (s *GameScene) ScoreChanged(score int) {
	s.hud.SetScore(score)
}

func (s *GameScene) Message(text string, kind gametypes.MessageKind, durationSeconds float64) {
	s.banner.Show(text, kind)
	switch kind {
	case gametypes.MessageKindCorrect:
		s.addEffect("+1", correctColor)
	case gametypes.MessageKindWrong:
		s.addEffect("-1", wrongColor)
	}
}

func (s *GameScene) addEffect(label string, clr color.Color) {
	id := uuid.New().String()
	effect := objects.NewTextEffect(id, objects.NewTextEffectOptions{
		Text:  label,
		X:     60,
		Y:     70,
		Color: clr,
		Speed: 30,
		TTL:   0.8,
	})
	if err := s.effects.AddChild(id, effect); err != nil {
		log.Warn("Failed to add score effect: %v", err)
	}
}

func (s *GameScene) MessageCleared() {
	s.banner.Hide()
}

func (s *GameScene) TimerChanged(secondsRemaining int, urgent bool) {
	s.hud.SetTimer(secondsRemaining, urgent)
}

func (s *GameScene) SessionEnded(outcome gametypes.Outcome) {
	s.overlay.Show(outcome, s.hud.Score())
}

func (s *GameScene) SessionReset() {
	s.overlay.Hide()
}
