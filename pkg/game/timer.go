package game

import (
	"math"

	"github.com/cbodonnell/shapesort/pkg/game/constants"
	"github.com/cbodonnell/shapesort/pkg/game/types"
	"github.com/cbodonnell/shapesort/pkg/log"
)

type TimerState uint8

const (
	TimerStateRunning TimerState = iota
	TimerStateExpired
)

func (s TimerState) String() string {
	switch s {
	case TimerStateRunning:
		return "Running"
	case TimerStateExpired:
		return "Expired"
	}
	return "Unknown"
}

// TimerEngine counts the session down while it is being played.
type TimerEngine struct {
	session   *types.GameSession
	presenter Presenter
	ender     SessionEnder

	state     TimerState
	displayed int
}

func NewTimerEngine(session *types.GameSession, presenter Presenter, ender SessionEnder) *TimerEngine {
	return &TimerEngine{
		session:   session,
		presenter: presenter,
		ender:     ender,
		displayed: DisplaySeconds(session.TimeRemaining),
	}
}

// DisplaySeconds is the countdown as shown to the player. It only reads 0 at expiry.
func DisplaySeconds(remaining float64) int {
	return int(math.Ceil(remaining))
}

func IsUrgent(seconds int) bool {
	return seconds <= constants.UrgentSeconds
}

func (t *TimerEngine) State() TimerState {
	return t.state
}

func (t *TimerEngine) Expired() bool {
	return t.state == TimerStateExpired
}

// Tick advances the countdown by dt seconds.
func (t *TimerEngine) Tick(dt float64) {
	if !t.session.IsPlaying() || t.state == TimerStateExpired {
		return
	}
	if dt < 0 {
		dt = 0
	}
	t.session.TimeRemaining = math.Max(0, t.session.TimeRemaining-dt)
	if seconds := DisplaySeconds(t.session.TimeRemaining); seconds != t.displayed {
		t.displayed = seconds
		t.presenter.TimerChanged(seconds, IsUrgent(seconds))
	}
	if t.session.TimeRemaining > 0 {
		return
	}

	t.state = TimerStateExpired
	log.Debug("Timer expired")
	if t.ender == nil {
		log.Warn("Timer expired with no session to end")
		return
	}
	t.ender.End(types.OutcomeLost)
}

// Reset restarts the countdown from limit seconds.
func (t *TimerEngine) Reset(limit float64) {
	t.session.TimeRemaining = math.Max(0, limit)
	t.state = TimerStateRunning
	t.displayed = DisplaySeconds(t.session.TimeRemaining)
	t.presenter.TimerChanged(t.displayed, IsUrgent(t.displayed))
}
