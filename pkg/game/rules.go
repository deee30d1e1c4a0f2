package game

import (
	"fmt"

	"github.com/cbodonnell/shapesort/pkg/game/constants"
)

// Rules are fixed when a session is created.
type Rules struct {
	WinThreshold int
	// TimeLimit is the countdown in seconds
	TimeLimit float64
	// LockInputOnGameOver stops drag input while the session is Won or Lost
	LockInputOnGameOver bool
	// MessageDuration is how long a toast stays on screen in seconds
	MessageDuration float64
	// RespawnOnRestart spawns the layout again when the session restarts
	RespawnOnRestart bool
}

func DefaultRules() Rules {
	return Rules{
		WinThreshold:    constants.DefaultWinScore,
		TimeLimit:       constants.DefaultTimeLimit,
		MessageDuration: constants.DefaultMessageDuration,
	}
}

func (r Rules) Validate() error {
	if r.WinThreshold <= 0 {
		return fmt.Errorf("win threshold must be positive, got %d", r.WinThreshold)
	}
	if r.TimeLimit < 0 {
		return fmt.Errorf("time limit must not be negative, got %v", r.TimeLimit)
	}
	if r.MessageDuration < 0 {
		return fmt.Errorf("message duration must not be negative, got %v", r.MessageDuration)
	}
	return nil
}
