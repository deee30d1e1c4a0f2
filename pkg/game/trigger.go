package game

import (
	"github.com/cbodonnell/shapesort/pkg/game/types"
	"github.com/cbodonnell/shapesort/pkg/log"
)

// ClassificationHandler consumes the outcome of a shape entering a bin.
type ClassificationHandler interface {
	HandleCorrect(event types.CorrectEvent)
	HandleWrong(event types.WrongEvent)
}

// ClassificationTrigger classifies shapes entering one receptacle.
type ClassificationTrigger struct {
	scene      *Scene
	receptacle *types.Receptacle
	handler    ClassificationHandler
	logger     *log.Logger

	// inside holds the ids of shapes overlapping the bin on the last check
	inside map[string]struct{}
}

func NewClassificationTrigger(scene *Scene, receptacle *types.Receptacle, handler ClassificationHandler) *ClassificationTrigger {
	return &ClassificationTrigger{
		scene:      scene,
		receptacle: receptacle,
		handler:    handler,
		logger:     log.With("receptacle", receptacle.Accepts.String()),
		inside:     make(map[string]struct{}),
	}
}

// NewClassificationTriggers creates one trigger per receptacle of the scene.
func NewClassificationTriggers(scene *Scene, handler ClassificationHandler) []*ClassificationTrigger {
	triggers := make([]*ClassificationTrigger, 0, len(scene.Receptacles()))
	for _, r := range scene.Receptacles() {
		triggers = append(triggers, NewClassificationTrigger(scene, r, handler))
	}
	return triggers
}

func (t *ClassificationTrigger) Receptacle() *types.Receptacle {
	return t.receptacle
}

// Detect classifies the shapes that started overlapping the bin since the last check.
func (t *ClassificationTrigger) Detect() {
	overlapping := t.scene.Overlapping(t.receptacle)
	current := make(map[string]struct{}, len(overlapping))
	for _, obj := range overlapping {
		current[obj.ID] = struct{}{}
	}
	previous := t.inside
	t.inside = current
	for _, obj := range overlapping {
		if _, ok := previous[obj.ID]; ok {
			continue
		}
		t.OnOverlap(obj)
	}
}

// OnOverlap classifies obj against the bin. A correct shape is removed from
// the scene as part of the same step, so it can never be classified twice.
func (t *ClassificationTrigger) OnOverlap(obj *types.DraggableObject) {
	if obj == nil || obj.Destroyed() || !obj.Kind.Valid() {
		return
	}

	if IsCorrect(obj.Kind, t.receptacle.Accepts) {
		if t.handler != nil {
			t.handler.HandleCorrect(types.CorrectEvent{ObjectID: obj.ID, Kind: obj.Kind})
		} else {
			t.logger.Warn("Dropped correct classification of %s, no handler", obj.ID)
		}
		t.scene.Remove(obj)
		delete(t.inside, obj.ID)
		return
	}

	if t.handler == nil {
		t.logger.Warn("Dropped wrong classification of %s, no handler", obj.ID)
		return
	}
	t.handler.HandleWrong(types.WrongEvent{ObjectID: obj.ID, Expected: t.receptacle.Accepts, Got: obj.Kind})
}
