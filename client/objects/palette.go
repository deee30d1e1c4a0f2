package objects

import (
	"image/color"

	"github.com/cbodonnell/shapesort/pkg/game/types"
)

var (
	cubeColor      = color.RGBA{0xe0, 0x5a, 0x47, 0xff}
	capsuleColor   = color.RGBA{0x4a, 0x90, 0xd9, 0xff}
	sphereColor    = color.RGBA{0x5c, 0xb8, 0x5c, 0xff}
	unknownColor   = color.RGBA{0x80, 0x80, 0x80, 0xff}
	shadowColor    = color.RGBA{0x00, 0x00, 0x00, 0x40}
	highlightColor = color.White
)

// KindColor returns the color shapes and bins of kind are drawn with.
func KindColor(kind types.ShapeKind) color.RGBA {
	switch kind {
	case types.ShapeKindCube:
		return cubeColor
	case types.ShapeKindCapsule:
		return capsuleColor
	case types.ShapeKindSphere:
		return sphereColor
	}
	return unknownColor
}

// MessageColor returns the text color of a message of kind.
func MessageColor(kind types.MessageKind) color.Color {
	switch kind {
	case types.MessageKindCorrect:
		return color.RGBA{0x3c, 0xd0, 0x5a, 0xff}
	case types.MessageKindWrong, types.MessageKindLose:
		return color.RGBA{0xff, 0x55, 0x55, 0xff}
	case types.MessageKindWin:
		return color.RGBA{0xff, 0xd7, 0x00, 0xff}
	}
	return color.Black
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	// color.RGBA is alpha premultiplied
	scale := float64(a) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * scale),
		G: uint8(float64(c.G) * scale),
		B: uint8(float64(c.B) * scale),
		A: a,
	}
}
