package game

import (
	"github.com/cbodonnell/shapesort/pkg/game/constants"
	"github.com/cbodonnell/shapesort/pkg/game/types"
	"github.com/cbodonnell/shapesort/pkg/log"
)

// SessionStateMachine owns the Playing, Won and Lost transitions of a session.
type SessionStateMachine struct {
	session   *types.GameSession
	rules     Rules
	presenter Presenter
	toaster   *Toaster
	timer     *TimerEngine

	locked    bool
	onRestart []func()
}

var _ SessionEnder = &SessionStateMachine{}

func NewSessionStateMachine(session *types.GameSession, rules Rules, presenter Presenter, toaster *Toaster) *SessionStateMachine {
	return &SessionStateMachine{
		session:   session,
		rules:     rules,
		presenter: presenter,
		toaster:   toaster,
	}
}

// SetTimer sets the timer reset on restart.
func (m *SessionStateMachine) SetTimer(timer *TimerEngine) {
	m.timer = timer
}

// OnRestart registers fn to run at the end of every restart.
func (m *SessionStateMachine) OnRestart(fn func()) {
	m.onRestart = append(m.onRestart, fn)
}

func (m *SessionStateMachine) State() types.SessionState {
	return m.session.State
}

// End finishes a session that is being played. It reports false in any other state.
func (m *SessionStateMachine) End(outcome types.Outcome) bool {
	if !m.session.IsPlaying() {
		return false
	}
	m.session.State = outcome.State()
	log.Info("Session %s with score %d", outcome, m.session.Score)

	switch outcome {
	case types.OutcomeWon:
		m.toaster.Show(constants.WinMessage, types.MessageKindWin)
	default:
		m.toaster.Show(constants.LoseMessage, types.MessageKindLose)
	}
	m.presenter.SessionEnded(outcome)
	if m.rules.LockInputOnGameOver {
		m.locked = true
	}
	return true
}

// Restart starts a new play-through from any state.
func (m *SessionStateMachine) Restart() {
	m.session.Score = 0
	m.presenter.ScoreChanged(0)
	m.toaster.Clear()
	m.session.TimeLimit = m.rules.TimeLimit
	if m.timer != nil {
		m.timer.Reset(m.rules.TimeLimit)
	} else {
		m.session.TimeRemaining = m.rules.TimeLimit
	}
	m.session.State = types.SessionStatePlaying
	m.locked = false
	for _, fn := range m.onRestart {
		fn()
	}
	m.presenter.SessionReset()
	log.Info("Session restarted")
}

// InputEnabled reports whether drag input is accepted.
func (m *SessionStateMachine) InputEnabled() bool {
	return !m.locked
}
