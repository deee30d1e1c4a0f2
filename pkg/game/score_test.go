package game

import (
	"testing"

	mocks "github.com/cbodonnell/shapesort/mocks/github.com/cbodonnell/shapesort/pkg/game"
	"github.com/cbodonnell/shapesort/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestScoreEngine_clamping(t *testing.T) {
	presenter := mocks.NewPresenter(t)
	presenter.EXPECT().ScoreChanged(1).Once()
	presenter.EXPECT().ScoreChanged(0).Times(2)
	presenter.EXPECT().Message("Sorted: Cube!", types.MessageKindCorrect, 2.0).Once()
	presenter.EXPECT().Message("Wrong bin: expected Sphere, got Cube", types.MessageKindWrong, 2.0).Times(2)

	session := types.NewGameSession(9, 30)
	ender := &recordingEnder{}
	engine := NewScoreEngine(session, presenter, NewToaster(presenter, 2), ender)

	engine.HandleCorrect(types.CorrectEvent{ObjectID: "a", Kind: types.ShapeKindCube})
	assert.Equal(t, 1, session.Score)
	wrong := types.WrongEvent{ObjectID: "b", Expected: types.ShapeKindSphere, Got: types.ShapeKindCube}
	engine.HandleWrong(wrong)
	assert.Equal(t, 0, session.Score)
	engine.HandleWrong(wrong)
	assert.Equal(t, 0, session.Score, "score is clamped at zero")

	assert.Equal(t, types.SessionStatePlaying, session.State)
	assert.Empty(t, ender.outcomes)
}

func TestScoreEngine_AddScore(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		deltas    []int
		wantScore int
		wantEnds  int
	}{
		{name: "never negative", start: 0, deltas: []int{-1, -5, 2, -3}, wantScore: 0},
		{name: "reaches threshold", start: 7, deltas: []int{1, 1}, wantScore: 9, wantEnds: 1},
		{name: "jumps past threshold", start: 0, deltas: []int{12}, wantScore: 12, wantEnds: 1},
		{name: "below threshold", start: 0, deltas: []int{8}, wantScore: 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := types.NewGameSession(9, 30)
			session.Score = tt.start
			ender := &recordingEnder{}
			engine := NewScoreEngine(session, NopPresenter{}, NewToaster(NopPresenter{}, 2), ender)

			for _, d := range tt.deltas {
				engine.AddScore(d)
				assert.GreaterOrEqual(t, session.Score, 0)
			}
			assert.Equal(t, tt.wantScore, session.Score)
			assert.Len(t, ender.outcomes, tt.wantEnds)
		})
	}
}

func TestScoreEngine_winScenario(t *testing.T) {
	presenter := mocks.NewPresenter(t)
	for score := 1; score <= 10; score++ {
		presenter.EXPECT().ScoreChanged(score).Once()
	}
	presenter.EXPECT().Message(mock.Anything, mock.Anything, mock.Anything).Maybe()
	presenter.EXPECT().SessionEnded(types.OutcomeWon).Once()

	session := types.NewGameSession(9, 30)
	toaster := NewToaster(presenter, 2)
	machine := NewSessionStateMachine(session, DefaultRules(), presenter, toaster)
	engine := NewScoreEngine(session, presenter, toaster, machine)

	for i := 0; i < 9; i++ {
		engine.HandleCorrect(types.CorrectEvent{Kind: types.ShapeKindSphere})
	}
	assert.Equal(t, 9, session.Score)
	assert.Equal(t, types.SessionStateWon, session.State)

	// further events change the score but never the state
	engine.HandleCorrect(types.CorrectEvent{Kind: types.ShapeKindSphere})
	assert.Equal(t, types.SessionStateWon, session.State)
}

func TestScoreEngine_winMessageReplacesCorrect(t *testing.T) {
	presenter := &recordingPresenter{}
	session := types.NewGameSession(1, 30)
	toaster := NewToaster(presenter, 2)
	machine := NewSessionStateMachine(session, DefaultRules(), presenter, toaster)
	engine := NewScoreEngine(session, presenter, toaster, machine)

	engine.HandleCorrect(types.CorrectEvent{Kind: types.ShapeKindCapsule})

	assert.Equal(t, []string{
		"score 1",
		"message correct Sorted: Capsule!",
		"message win Well done, you win! (R to play again)",
		"ended Won",
	}, presenter.calls)
}
