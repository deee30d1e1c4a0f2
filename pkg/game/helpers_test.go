package game

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cbodonnell/shapesort/pkg/game/types"
	"github.com/cbodonnell/shapesort/pkg/kinematic"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

// topDownRaycaster maps screen (x, y) to a ray falling straight onto ground (x, y).
type topDownRaycaster struct{}

func (topDownRaycaster) ScreenPointToRay(x, y float64) (kinematic.Ray, error) {
	return kinematic.NewRay(mgl64.Vec3{x, 10, y}, mgl64.Vec3{0, -1, 0}), nil
}

type raycasterFunc func(x, y float64) (kinematic.Ray, error)

func (f raycasterFunc) ScreenPointToRay(x, y float64) (kinematic.Ray, error) {
	return f(x, y)
}

// recordingPresenter keeps every notification as a string, in order.
type recordingPresenter struct {
	calls []string
}

func (p *recordingPresenter) ScoreChanged(score int) {
	p.calls = append(p.calls, fmt.Sprintf("score %d", score))
}

func (p *recordingPresenter) Message(text string, kind types.MessageKind, durationSeconds float64) {
	p.calls = append(p.calls, fmt.Sprintf("message %s %s", kind, text))
}

func (p *recordingPresenter) MessageCleared() {
	p.calls = append(p.calls, "cleared")
}

func (p *recordingPresenter) TimerChanged(secondsRemaining int, urgent bool) {
	p.calls = append(p.calls, fmt.Sprintf("timer %d %t", secondsRemaining, urgent))
}

func (p *recordingPresenter) SessionEnded(outcome types.Outcome) {
	p.calls = append(p.calls, fmt.Sprintf("ended %s", outcome))
}

func (p *recordingPresenter) SessionReset() {
	p.calls = append(p.calls, "reset")
}

func (p *recordingPresenter) count(call string) int {
	n := 0
	for _, c := range p.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (p *recordingPresenter) countPrefix(prefix string) int {
	n := 0
	for _, c := range p.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (p *recordingPresenter) reset() {
	p.calls = nil
}

// recordingHandler keeps the classification events it receives.
type recordingHandler struct {
	correct []types.CorrectEvent
	wrong   []types.WrongEvent
}

func (h *recordingHandler) HandleCorrect(event types.CorrectEvent) {
	h.correct = append(h.correct, event)
}

func (h *recordingHandler) HandleWrong(event types.WrongEvent) {
	h.wrong = append(h.wrong, event)
}

// recordingEnder counts End calls and accepts only the first one.
type recordingEnder struct {
	outcomes []types.Outcome
}

func (e *recordingEnder) End(outcome types.Outcome) bool {
	e.outcomes = append(e.outcomes, outcome)
	return len(e.outcomes) == 1
}

// newTestScene returns an empty default scene with the three default bins.
func newTestScene(t *testing.T) *Scene {
	t.Helper()
	scene := NewDefaultScene()
	require.NoError(t, SpawnDefaultReceptacles(scene))
	return scene
}

// binCenter returns the ground position of the centre of the bin accepting kind.
func binCenter(kind types.ShapeKind) mgl64.Vec3 {
	c := DefaultReceptacleBounds(kind).Center()
	return mgl64.Vec3{c.X(), 0, c.Z()}
}

// restingAt returns the position of a shape of kind standing on the ground at (x, z).
func restingAt(kind types.ShapeKind, x, z float64) mgl64.Vec3 {
	return mgl64.Vec3{x, kind.HalfExtents().Y(), z}
}
