package game

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/shapesort/pkg/game/constants"
	"github.com/cbodonnell/shapesort/pkg/game/types"
	"github.com/cbodonnell/shapesort/pkg/log"
	"github.com/cbodonnell/shapesort/pkg/queue"
)

// DefaultTickInterval is the interval used by Start when none is given.
const DefaultTickInterval = time.Second / 60

// Driver is called by Start before every tick, e.g. to feed input.
type Driver interface {
	Drive(gm *GameManager)
}

type GameManager struct {
	rules            Rules
	inputQueue       queue.Queue
	presenter        Presenter
	scene            *Scene
	spawner          Spawner
	driver           Driver
	tickInterval     time.Duration
	stopOnSessionEnd bool

	session  *types.GameSession
	toaster  *Toaster
	machine  *SessionStateMachine
	timer    *TimerEngine
	score    *ScoreEngine
	drag     *DragController
	triggers []*ClassificationTrigger
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	Rules Rules
	// InputQueue carries pointer events and restart commands. Defaults to an in-memory queue.
	InputQueue queue.Queue
	// Presenter receives session notifications. Defaults to NopPresenter.
	Presenter Presenter
	// Scene holds the shapes and bins. Defaults to an empty scene over the default arena.
	Scene *Scene
	// Raycaster resolves pointer positions. Without one, pointer input is ignored.
	Raycaster Raycaster
	// Spawner populates the scene at creation and, if the rules ask for it, on restart.
	Spawner Spawner
	// Driver is called before every tick of Start.
	Driver           Driver
	TickInterval     time.Duration
	StopOnSessionEnd bool
}

func NewGameManager(opts NewGameManagerOptions) (*GameManager, error) {
	if err := opts.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %v", err)
	}

	gm := &GameManager{
		rules:            opts.Rules,
		inputQueue:       opts.InputQueue,
		presenter:        opts.Presenter,
		scene:            opts.Scene,
		spawner:          opts.Spawner,
		driver:           opts.Driver,
		tickInterval:     opts.TickInterval,
		stopOnSessionEnd: opts.StopOnSessionEnd,
	}
	if gm.inputQueue == nil {
		gm.inputQueue = queue.NewInMemoryQueue(queue.DefaultQueueSize)
	}
	if gm.presenter == nil {
		gm.presenter = NopPresenter{}
	}
	if gm.scene == nil {
		gm.scene = NewDefaultScene()
	}
	if gm.tickInterval <= 0 {
		gm.tickInterval = DefaultTickInterval
	}

	if gm.spawner != nil {
		if err := gm.spawner(gm.scene); err != nil {
			return nil, fmt.Errorf("failed to spawn scene: %v", err)
		}
	}

	gm.session = types.NewGameSession(gm.rules.WinThreshold, gm.rules.TimeLimit)
	gm.toaster = NewToaster(gm.presenter, gm.rules.MessageDuration)
	gm.machine = NewSessionStateMachine(gm.session, gm.rules, gm.presenter, gm.toaster)
	gm.timer = NewTimerEngine(gm.session, gm.presenter, gm.machine)
	gm.machine.SetTimer(gm.timer)
	gm.score = NewScoreEngine(gm.session, gm.presenter, gm.toaster, gm.machine)
	gm.drag = NewDragController(gm.scene, opts.Raycaster)
	gm.triggers = NewClassificationTriggers(gm.scene, gm.score)
	gm.machine.OnRestart(gm.resetScene)

	gm.presenter.ScoreChanged(gm.session.Score)
	gm.toaster.Show(constants.Instructions, types.MessageKindInfo)
	seconds := DisplaySeconds(gm.session.TimeRemaining)
	gm.presenter.TimerChanged(seconds, IsUrgent(seconds))

	log.Debug("Session created with %d shapes, %d receptacles, win score %d, time limit %v",
		gm.scene.Len(), len(gm.triggers), gm.rules.WinThreshold, gm.rules.TimeLimit)
	return gm, nil
}

// Start runs the game loop until the context is done or, if configured, the session ends.
func (gm *GameManager) Start(ctx context.Context) error {
	ticker := time.NewTicker(gm.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if gm.driver != nil {
				gm.driver.Drive(gm)
			}
			gm.Advance(gm.tickInterval.Seconds())
			if gm.stopOnSessionEnd && !gm.session.IsPlaying() {
				log.Info("Session ended in state %s with score %d", gm.session.State, gm.session.Score)
				return nil
			}
		}
	}
}

// Advance runs one frame of dt seconds.
func (gm *GameManager) Advance(dt float64) {
	gm.toaster.Tick(dt)
	gm.timer.Tick(dt)

	events := gm.readInput()
	events = gm.processRestartCommands(events)
	if !gm.machine.InputEnabled() {
		gm.drag.Release()
		events = nil
	}
	gm.processPointerEvents(events)
	gm.detectOverlaps()
}

func (gm *GameManager) readInput() []interface{} {
	events, err := gm.inputQueue.ReadAllMessages()
	if err != nil {
		log.Error("Failed to read input events: %v", err)
		return nil
	}
	return events
}

// processRestartCommands restarts the session if any restart command is pending
// and returns the remaining events.
func (gm *GameManager) processRestartCommands(events []interface{}) []interface{} {
	remaining := events[:0]
	restart := false
	for _, item := range events {
		if _, ok := item.(*types.RestartCommand); ok {
			restart = true
			continue
		}
		remaining = append(remaining, item)
	}
	if restart {
		gm.machine.Restart()
	}
	return remaining
}

func (gm *GameManager) processPointerEvents(events []interface{}) {
	for _, item := range events {
		switch event := item.(type) {
		case *types.PointerDownEvent:
			gm.drag.OnPointerDown(event.X, event.Y)
		case *types.PointerMoveEvent:
			gm.updateDrag(event.X, event.Y)
		case *types.PointerUpEvent:
			gm.drag.OnPointerUp()
		default:
			log.Error("Unhandled input event type: %T", event)
		}
	}
}

// updateDrag moves the held shape under the pointer and classifies it where it lands,
// so a shape passing through a bin between two frames is still seen.
func (gm *GameManager) updateDrag(x, y float64) {
	if !gm.drag.OnPointerMove(x, y) {
		return
	}
	gm.detectOverlaps()
}

func (gm *GameManager) detectOverlaps() {
	for _, trigger := range gm.triggers {
		trigger.Detect()
	}
}

func (gm *GameManager) resetScene() {
	if gm.rules.RespawnOnRestart && gm.spawner != nil {
		gm.drag.Release()
		if err := gm.spawner(gm.scene); err != nil {
			log.Error("Failed to respawn scene: %v", err)
		}
		gm.triggers = NewClassificationTriggers(gm.scene, gm.score)
	}
}

// Restart restarts the session immediately.
func (gm *GameManager) Restart() {
	gm.machine.Restart()
}

// Session returns a copy of the session state.
func (gm *GameManager) Session() *types.GameSession {
	return gm.session.Copy()
}

func (gm *GameManager) Rules() Rules {
	return gm.rules
}

func (gm *GameManager) Scene() *Scene {
	return gm.scene
}

func (gm *GameManager) InputQueue() queue.Queue {
	return gm.inputQueue
}

// Held returns the shape being dragged, or nil.
func (gm *GameManager) Held() *types.DraggableObject {
	return gm.drag.Held()
}

func (gm *GameManager) InputEnabled() bool {
	return gm.machine.InputEnabled()
}

func (gm *GameManager) TimerState() TimerState {
	return gm.timer.State()
}
