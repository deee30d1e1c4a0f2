package game

import (
	"testing"

	mocks "github.com/cbodonnell/shapesort/mocks/github.com/cbodonnell/shapesort/pkg/game"
	"github.com/cbodonnell/shapesort/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

func newTestMachine(rules Rules, presenter Presenter) (*SessionStateMachine, *types.GameSession, *TimerEngine) {
	session := types.NewGameSession(rules.WinThreshold, rules.TimeLimit)
	machine := NewSessionStateMachine(session, rules, presenter, NewToaster(presenter, rules.MessageDuration))
	timer := NewTimerEngine(session, presenter, machine)
	machine.SetTimer(timer)
	return machine, session, timer
}

func TestSessionStateMachine_End(t *testing.T) {
	presenter := mocks.NewPresenter(t)
	presenter.EXPECT().Message("Well done, you win! (R to play again)", types.MessageKindWin, 2.0).Once()
	presenter.EXPECT().SessionEnded(types.OutcomeWon).Once()

	machine, session, _ := newTestMachine(DefaultRules(), presenter)

	assert.True(t, machine.End(types.OutcomeWon))
	assert.Equal(t, types.SessionStateWon, session.State)
	assert.False(t, machine.End(types.OutcomeLost), "terminal states are only left by restart")
	assert.False(t, machine.End(types.OutcomeWon))
	assert.Equal(t, types.SessionStateWon, machine.State())
	assert.True(t, machine.InputEnabled())
}

func TestSessionStateMachine_lockInputOnGameOver(t *testing.T) {
	rules := DefaultRules()
	rules.LockInputOnGameOver = true
	machine, _, _ := newTestMachine(rules, NopPresenter{})

	assert.True(t, machine.InputEnabled())
	machine.End(types.OutcomeLost)
	assert.False(t, machine.InputEnabled())
	machine.Restart()
	assert.True(t, machine.InputEnabled())
}

func TestSessionStateMachine_Restart(t *testing.T) {
	tests := []struct {
		name  string
		setup func(machine *SessionStateMachine, session *types.GameSession, timer *TimerEngine)
	}{
		{
			name: "from won",
			setup: func(machine *SessionStateMachine, session *types.GameSession, _ *TimerEngine) {
				session.Score = 9
				machine.End(types.OutcomeWon)
			},
		},
		{
			name: "from lost",
			setup: func(_ *SessionStateMachine, session *types.GameSession, timer *TimerEngine) {
				session.Score = 3
				timer.Tick(31)
			},
		},
		{
			name: "mid session",
			setup: func(_ *SessionStateMachine, session *types.GameSession, timer *TimerEngine) {
				session.Score = 4
				timer.Tick(12.5)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			presenter := &recordingPresenter{}
			machine, session, timer := newTestMachine(DefaultRules(), presenter)
			restarts := 0
			machine.OnRestart(func() { restarts++ })
			tt.setup(machine, session, timer)

			for i := 1; i <= 2; i++ {
				presenter.reset()
				machine.Restart()

				assert.Equal(t, 0, session.Score)
				assert.Equal(t, 30.0, session.TimeRemaining)
				assert.Equal(t, types.SessionStatePlaying, session.State)
				assert.Equal(t, TimerStateRunning, timer.State())
				assert.Equal(t, i, restarts)
				assert.Equal(t, []string{"score 0", "cleared", "timer 30 false", "reset"}, presenter.calls)
			}
		})
	}
}
