package types

// PointerDownEvent is a primary button or touch press at screen coordinates.
type PointerDownEvent struct {
	X float64
	Y float64
}

// PointerMoveEvent is a pointer position update at screen coordinates.
type PointerMoveEvent struct {
	X float64
	Y float64
}

// PointerUpEvent is a primary button or touch release.
type PointerUpEvent struct{}

// RestartCommand asks for the session to be restarted.
type RestartCommand struct{}

// CorrectEvent is emitted when a shape enters the bin accepting its kind.
type CorrectEvent struct {
	ObjectID string
	Kind     ShapeKind
}

// WrongEvent is emitted when a shape enters a bin accepting another kind.
type WrongEvent struct {
	ObjectID string
	Expected ShapeKind
	Got      ShapeKind
}
