package autoplay

import (
	"github.com/cbodonnell/shapesort/pkg/game"
	"github.com/cbodonnell/shapesort/pkg/game/types"
	"github.com/cbodonnell/shapesort/pkg/kinematic"
	"github.com/cbodonnell/shapesort/pkg/log"
	"github.com/go-gl/mathgl/mgl64"
)

// Camera converts between screen and world positions.
type Camera interface {
	game.Raycaster
	WorldToScreen(p mgl64.Vec3) (float64, float64, bool)
}

// Bot plays a session through the input queue like a pointer user would,
// sending one pointer event per tick.
type Bot struct {
	camera       Camera
	mistakeEvery int

	pending []interface{}
	drags   int
}

// NewBotOptions contains options for creating a new Bot.
type NewBotOptions struct {
	Camera Camera
	// MistakeEvery sends every nth shape to a wrong bin. Zero never does.
	MistakeEvery int
}

func NewBot(opts NewBotOptions) *Bot {
	return &Bot{
		camera:       opts.Camera,
		mistakeEvery: opts.MistakeEvery,
	}
}

var _ game.Driver = &Bot{}

// Drive enqueues the next pointer event, planning a new drag when the last one is done.
func (b *Bot) Drive(gm *game.GameManager) {
	if len(b.pending) == 0 {
		if !gm.Session().IsPlaying() {
			return
		}
		b.pending = b.plan(gm.Scene())
		if len(b.pending) == 0 {
			return
		}
	}
	if err := gm.InputQueue().Enqueue(b.pending[0]); err != nil {
		log.Warn("Failed to enqueue bot input: %v", err)
		return
	}
	b.pending = b.pending[1:]
}

// Idle reports whether the bot has no drag in progress.
func (b *Bot) Idle() bool {
	return len(b.pending) == 0
}

// plan returns the pointer events of one drag, or nil if no shape can be reached.
func (b *Bot) plan(scene *game.Scene) []interface{} {
	for _, obj := range scene.Objects() {
		events, ok := b.planDrag(scene, obj)
		if ok {
			return events
		}
	}
	return nil
}

func (b *Bot) planDrag(scene *game.Scene, obj *types.DraggableObject) ([]interface{}, bool) {
	downX, downY, ok := b.camera.WorldToScreen(mgl64.Vec3{obj.Position.X(), 0, obj.Position.Z()})
	if !ok {
		return nil, false
	}
	ray, err := b.camera.ScreenPointToRay(downX, downY)
	if err != nil {
		return nil, false
	}
	// another shape may be in front of the one aimed at
	picked, ok := scene.Pick(ray)
	if !ok {
		return nil, false
	}
	ground, ok := ray.IntersectGround()
	if !ok {
		return nil, false
	}

	kind := picked.Kind
	b.drags++
	if b.mistakeEvery > 0 && b.drags%b.mistakeEvery == 0 {
		kind = wrongKind(kind)
	}
	bin, ok := scene.ReceptacleFor(kind)
	if !ok {
		return nil, false
	}

	// the drag keeps the offset between the shape and the pointer
	offset := kinematic.Planar(picked.Position.Sub(ground))
	target := kinematic.Planar(bin.Bounds.Center()).Sub(offset)
	moveX, moveY, ok := b.camera.WorldToScreen(target)
	if !ok {
		return nil, false
	}

	log.Debug("Bot dragging %s %s to the %s bin", picked.Kind, picked.ID, bin.Accepts)
	return []interface{}{
		&types.PointerDownEvent{X: downX, Y: downY},
		&types.PointerMoveEvent{X: moveX, Y: moveY},
		&types.PointerUpEvent{},
	}, true
}

func wrongKind(kind types.ShapeKind) types.ShapeKind {
	for i, k := range types.ShapeKinds {
		if k == kind {
			return types.ShapeKinds[(i+1)%len(types.ShapeKinds)]
		}
	}
	return kind
}
