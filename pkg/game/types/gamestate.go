package types

// SessionState is the overall state of a play-through.
type SessionState uint8

const (
	SessionStatePlaying SessionState = iota
	SessionStateWon
	SessionStateLost
)

func (s SessionState) String() string {
	switch s {
	case SessionStatePlaying:
		return "Playing"
	case SessionStateWon:
		return "Won"
	case SessionStateLost:
		return "Lost"
	}
	return "Unknown"
}

// Outcome is how a session ended.
type Outcome uint8

const (
	OutcomeWon Outcome = iota + 1
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "Won"
	case OutcomeLost:
		return "Lost"
	}
	return "Unknown"
}

// State returns the terminal session state matching the outcome.
func (o Outcome) State() SessionState {
	if o == OutcomeWon {
		return SessionStateWon
	}
	return SessionStateLost
}

// MessageKind styles a toast message.
type MessageKind uint8

const (
	MessageKindInfo MessageKind = iota
	MessageKindCorrect
	MessageKindWrong
	MessageKindWin
	MessageKindLose
)

func (k MessageKind) String() string {
	switch k {
	case MessageKindInfo:
		return "info"
	case MessageKindCorrect:
		return "correct"
	case MessageKindWrong:
		return "wrong"
	case MessageKindWin:
		return "win"
	case MessageKindLose:
		return "lose"
	}
	return "unknown"
}

// GameSession is the mutable state of one play-through.
type GameSession struct {
	// Score is never negative
	Score int
	// TimeRemaining is the countdown in seconds, never negative
	TimeRemaining float64
	State         SessionState
	// WinThreshold and TimeLimit are fixed for the life of the session
	WinThreshold int
	TimeLimit    float64
}

func NewGameSession(winThreshold int, timeLimit float64) *GameSession {
	if timeLimit < 0 {
		timeLimit = 0
	}
	return &GameSession{
		Score:         0,
		TimeRemaining: timeLimit,
		State:         SessionStatePlaying,
		WinThreshold:  winThreshold,
		TimeLimit:     timeLimit,
	}
}

func (s *GameSession) Copy() *GameSession {
	c := *s
	return &c
}

func (s *GameSession) IsPlaying() bool {
	return s.State == SessionStatePlaying
}
