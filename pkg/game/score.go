package game

import (
	"fmt"

	"github.com/cbodonnell/shapesort/pkg/game/types"
	"github.com/cbodonnell/shapesort/pkg/log"
)

// SessionEnder ends a session that is still being played.
type SessionEnder interface {
	End(outcome types.Outcome) bool
}

// ScoreEngine applies classification outcomes to the session score.
type ScoreEngine struct {
	session   *types.GameSession
	presenter Presenter
	toaster   *Toaster
	ender     SessionEnder
}

var _ ClassificationHandler = &ScoreEngine{}

func NewScoreEngine(session *types.GameSession, presenter Presenter, toaster *Toaster, ender SessionEnder) *ScoreEngine {
	return &ScoreEngine{
		session:   session,
		presenter: presenter,
		toaster:   toaster,
		ender:     ender,
	}
}

func (s *ScoreEngine) HandleCorrect(event types.CorrectEvent) {
	log.Debug("Correct: %s %s", event.Kind, event.ObjectID)
	s.applyScore(1)
	// shown before the win check so the win message replaces it
	s.toaster.Show(fmt.Sprintf("Sorted: %s!", event.Kind), types.MessageKindCorrect)
	s.checkWin()
}

func (s *ScoreEngine) HandleWrong(event types.WrongEvent) {
	log.Debug("Wrong: expected %s, got %s %s", event.Expected, event.Got, event.ObjectID)
	s.applyScore(-1)
	s.toaster.Show(fmt.Sprintf("Wrong bin: expected %s, got %s", event.Expected, event.Got), types.MessageKindWrong)
}

// AddScore changes the score by delta, clamped at zero, and checks for a win.
func (s *ScoreEngine) AddScore(delta int) {
	s.applyScore(delta)
	s.checkWin()
}

func (s *ScoreEngine) applyScore(delta int) {
	s.session.Score += delta
	if s.session.Score < 0 {
		s.session.Score = 0
	}
	s.presenter.ScoreChanged(s.session.Score)
}

func (s *ScoreEngine) checkWin() {
	if !s.session.IsPlaying() || s.session.Score < s.session.WinThreshold {
		return
	}
	if s.ender == nil {
		log.Warn("Win score reached with no session to end")
		return
	}
	s.ender.End(types.OutcomeWon)
}
