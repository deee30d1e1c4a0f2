package game

import "github.com/cbodonnell/shapesort/pkg/game/types"

// receptacleFor maps each shape kind to the kind of bin that accepts it.
// Bins are identified by the single kind they accept.
var receptacleFor = map[types.ShapeKind]types.ShapeKind{
	types.ShapeKindCube:    types.ShapeKindCube,
	types.ShapeKindCapsule: types.ShapeKindCapsule,
	types.ShapeKindSphere:  types.ShapeKindSphere,
}

// ReceptacleFor returns the bin that accepts shapes of the given kind.
func ReceptacleFor(kind types.ShapeKind) (types.ShapeKind, bool) {
	r, ok := receptacleFor[kind]
	return r, ok
}

// IsCorrect reports whether a shape of kind belongs in a bin accepting accepts.
func IsCorrect(kind, accepts types.ShapeKind) bool {
	r, ok := ReceptacleFor(kind)
	return ok && r == accepts
}
