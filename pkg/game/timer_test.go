package game

import (
	"testing"

	mocks "github.com/cbodonnell/shapesort/mocks/github.com/cbodonnell/shapesort/pkg/game"
	"github.com/cbodonnell/shapesort/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDisplaySeconds(t *testing.T) {
	tests := []struct {
		remaining float64
		want      int
	}{
		{remaining: 30, want: 30},
		{remaining: 29.01, want: 30},
		{remaining: 0.001, want: 1},
		{remaining: 0, want: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplaySeconds(tt.remaining), "%v", tt.remaining)
	}
	assert.True(t, IsUrgent(10))
	assert.False(t, IsUrgent(11))
}

func TestTimerEngine_expires(t *testing.T) {
	presenter := mocks.NewPresenter(t)
	presenter.EXPECT().TimerChanged(0, true).Once()
	presenter.EXPECT().Message(mock.Anything, types.MessageKindLose, mock.Anything).Once()
	presenter.EXPECT().SessionEnded(types.OutcomeLost).Once()

	session := types.NewGameSession(9, 30)
	machine := NewSessionStateMachine(session, DefaultRules(), presenter, NewToaster(presenter, 2))
	timer := NewTimerEngine(session, presenter, machine)

	timer.Tick(30.1)
	assert.Equal(t, 0.0, session.TimeRemaining)
	assert.Equal(t, types.SessionStateLost, session.State)
	assert.True(t, timer.Expired())

	// ticking after the loss is a no-op
	timer.Tick(5)
	assert.Equal(t, 0.0, session.TimeRemaining)
}

func TestTimerEngine_Tick(t *testing.T) {
	presenter := &recordingPresenter{}
	session := types.NewGameSession(9, 11)
	ender := &recordingEnder{}
	timer := NewTimerEngine(session, presenter, ender)

	timer.Tick(0.5)
	assert.Empty(t, presenter.calls, "displayed second unchanged")
	timer.Tick(-3)
	assert.Equal(t, 10.5, session.TimeRemaining, "negative delta is ignored")
	timer.Tick(0.6)
	timer.Tick(0.2)
	timer.Tick(1)

	assert.Equal(t, []string{"timer 10 true", "timer 9 true"}, presenter.calls)
	assert.Equal(t, TimerStateRunning, timer.State())
	assert.Empty(t, ender.outcomes)
}

func TestTimerEngine_frozenOutsidePlaying(t *testing.T) {
	for _, state := range []types.SessionState{types.SessionStateWon, types.SessionStateLost} {
		session := types.NewGameSession(9, 30)
		session.State = state
		ender := &recordingEnder{}
		timer := NewTimerEngine(session, NopPresenter{}, ender)

		timer.Tick(100)
		assert.Equal(t, 30.0, session.TimeRemaining, state.String())
		assert.Empty(t, ender.outcomes)
	}
}

func TestTimerEngine_zeroLimit(t *testing.T) {
	session := types.NewGameSession(9, 0)
	ender := &recordingEnder{}
	timer := NewTimerEngine(session, NopPresenter{}, ender)

	timer.Tick(0)
	assert.True(t, timer.Expired())
	assert.Equal(t, []types.Outcome{types.OutcomeLost}, ender.outcomes)
}

func TestTimerEngine_Reset(t *testing.T) {
	presenter := &recordingPresenter{}
	session := types.NewGameSession(9, 5)
	ender := &recordingEnder{}
	timer := NewTimerEngine(session, presenter, ender)

	timer.Tick(6)
	a := assert.New(t)
	a.True(timer.Expired())

	presenter.reset()
	timer.Reset(20)
	a.Equal(20.0, session.TimeRemaining)
	a.Equal(TimerStateRunning, timer.State())
	a.Equal([]string{"timer 20 false"}, presenter.calls)

	timer.Reset(-4)
	a.Equal(0.0, session.TimeRemaining)
}
