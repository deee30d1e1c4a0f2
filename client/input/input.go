package input

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/shapesort/pkg/game/types"
	"github.com/cbodonnell/shapesort/pkg/queue"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsRestartJustPressed returns a boolean value indicating whether the restart key is just pressed.
func IsRestartJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

// IsDebugJustPressed returns a boolean value indicating whether the debug overlay key is just pressed.
func IsDebugJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF3)
}

// Pointer turns mouse and touch input into pointer events.
// It follows one touch at a time; the mouse is used when no touch is active.
type Pointer struct {
	touchID  ebiten.TouchID
	touching bool
	pressed  bool
	x, y     int
}

func NewPointer() *Pointer {
	return &Pointer{}
}

// Events returns the pointer events of the current frame.
func (p *Pointer) Events() []interface{} {
	var events []interface{}

	if !p.pressed {
		if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
			p.touchID = touchIDs[0]
			p.touching = true
			p.pressed = true
			p.x, p.y = ebiten.TouchPosition(p.touchID)
			return append(events, &types.PointerDownEvent{X: float64(p.x), Y: float64(p.y)})
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			p.touching = false
			p.pressed = true
			p.x, p.y = ebiten.CursorPosition()
			return append(events, &types.PointerDownEvent{X: float64(p.x), Y: float64(p.y)})
		}
		return events
	}

	var released bool
	var x, y int
	if p.touching {
		released = inpututil.IsTouchJustReleased(p.touchID)
		if released {
			x, y = inpututil.TouchPositionInPreviousTick(p.touchID)
		} else {
			x, y = ebiten.TouchPosition(p.touchID)
		}
	} else {
		released = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
		x, y = ebiten.CursorPosition()
	}

	if x != p.x || y != p.y {
		p.x, p.y = x, y
		events = append(events, &types.PointerMoveEvent{X: float64(x), Y: float64(y)})
	}
	if released {
		p.pressed = false
		p.touching = false
		events = append(events, &types.PointerUpEvent{})
	}
	return events
}

// EnqueueEvents pushes the pointer events of the current frame and any restart key press.
func (p *Pointer) EnqueueEvents(q queue.Queue) error {
	events := p.Events()
	if IsRestartJustPressed() {
		events = append(events, &types.RestartCommand{})
	}
	return enqueueAll(q, events)
}

// enqueueAll offers every event to q, even after one is rejected,
// so a full queue cannot swallow a release or restart behind it.
func enqueueAll(q queue.Queue, events []interface{}) error {
	var errs []error
	for _, event := range events {
		if err := q.Enqueue(event); err != nil {
			errs = append(errs, fmt.Errorf("failed to enqueue %T: %w", event, err))
		}
	}
	return errors.Join(errs...)
}
