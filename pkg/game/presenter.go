package game

import (
	"github.com/cbodonnell/shapesort/pkg/game/types"
	"github.com/cbodonnell/shapesort/pkg/log"
)

// Presenter receives the state changes a session produces.
// All methods are called from the goroutine running Advance.
type Presenter interface {
	ScoreChanged(score int)
	Message(text string, kind types.MessageKind, durationSeconds float64)
	MessageCleared()
	TimerChanged(secondsRemaining int, urgent bool)
	SessionEnded(outcome types.Outcome)
	SessionReset()
}

// NopPresenter discards every notification.
type NopPresenter struct{}

var _ Presenter = NopPresenter{}

func (NopPresenter) ScoreChanged(int)                           {}
func (NopPresenter) Message(string, types.MessageKind, float64) {}
func (NopPresenter) MessageCleared()                            {}
func (NopPresenter) TimerChanged(int, bool)                     {}
func (NopPresenter) SessionEnded(types.Outcome)                 {}
func (NopPresenter) SessionReset()                              {}

// LogPresenter writes every notification to the logger.
type LogPresenter struct {
	logger *log.Logger
}

var _ Presenter = &LogPresenter{}

func NewLogPresenter(logger *log.Logger) *LogPresenter {
	return &LogPresenter{logger: logger}
}

func (p *LogPresenter) ScoreChanged(score int) {
	p.logger.Info("Score: %d", score)
}

func (p *LogPresenter) Message(text string, kind types.MessageKind, durationSeconds float64) {
	p.logger.Info("Message (%s, %.1fs): %s", kind, durationSeconds, text)
}

func (p *LogPresenter) MessageCleared() {
	p.logger.Debug("Message cleared")
}

func (p *LogPresenter) TimerChanged(secondsRemaining int, urgent bool) {
	if urgent {
		p.logger.Info("Timer: %ds (hurry)", secondsRemaining)
		return
	}
	p.logger.Debug("Timer: %ds", secondsRemaining)
}

func (p *LogPresenter) SessionEnded(outcome types.Outcome) {
	p.logger.Info("Session ended: %s", outcome)
}

func (p *LogPresenter) SessionReset() {
	p.logger.Info("Session reset")
}

// MultiPresenter fans notifications out to several presenters in order.
type MultiPresenter []Presenter

var _ Presenter = MultiPresenter{}

func (m MultiPresenter) ScoreChanged(score int) {
	for _, p := range m {
		p.ScoreChanged(score)
	}
}

func (m MultiPresenter) Message(text string, kind types.MessageKind, durationSeconds float64) {
	for _, p := range m {
		p.Message(text, kind, durationSeconds)
	}
}

func (m MultiPresenter) MessageCleared() {
	for _, p := range m {
		p.MessageCleared()
	}
}

func (m MultiPresenter) TimerChanged(secondsRemaining int, urgent bool) {
	for _, p := range m {
		p.TimerChanged(secondsRemaining, urgent)
	}
}

func (m MultiPresenter) SessionEnded(outcome types.Outcome) {
	for _, p := range m {
		p.SessionEnded(outcome)
	}
}

func (m MultiPresenter) SessionReset() {
	for _, p := range m {
		p.SessionReset()
	}
}
