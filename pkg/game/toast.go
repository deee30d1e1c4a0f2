package game

import "github.com/cbodonnell/shapesort/pkg/game/types"

// ToastToken identifies one shown message. The zero token is never issued.
type ToastToken uint64

// Toaster shows one message at a time and dismisses it after a fixed
// duration of game time. Showing a message replaces the pending one.
type Toaster struct {
	presenter Presenter
	duration  float64

	current   ToastToken
	remaining float64
	pending   bool
}

func NewToaster(presenter Presenter, duration float64) *Toaster {
	if duration < 0 {
		duration = 0
	}
	return &Toaster{
		presenter: presenter,
		duration:  duration,
	}
}

// Show presents text and schedules its dismissal, cancelling any pending one.
func (t *Toaster) Show(text string, kind types.MessageKind) ToastToken {
	t.current++
	t.remaining = t.duration
	t.pending = true
	t.presenter.Message(text, kind, t.duration)
	return t.current
}

// Cancel stops the dismissal of the message identified by token.
// It reports false if that message was replaced or already dismissed.
func (t *Toaster) Cancel(token ToastToken) bool {
	if !t.pending || token != t.current {
		return false
	}
	t.pending = false
	return true
}

// Clear dismisses the current message immediately.
func (t *Toaster) Clear() {
	t.pending = false
	t.presenter.MessageCleared()
}

// Tick counts down the pending dismissal.
func (t *Toaster) Tick(dt float64) {
	if !t.pending {
		return
	}
	if dt > 0 {
		t.remaining -= dt
	}
	if t.remaining > 0 {
		return
	}
	t.pending = false
	t.presenter.MessageCleared()
}

// Pending reports whether a dismissal is scheduled.
func (t *Toaster) Pending() bool {
	return t.pending
}
