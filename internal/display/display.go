// Package display defines the primitives the core draws with and the device
// contract that puts them on a panel.
package display

import (
	"errors"
	"image/color"
)

// ErrDeviceCommit is wrapped by devices that fail to put a frame on screen.
var ErrDeviceCommit = errors.New("device commit failed")

// ColorMode is the colour capability of a device.
type ColorMode int

const (
	Monochrome ColorMode = iota
	RGB
)

func (m ColorMode) String() string {
	if m == RGB {
		return "rgb"
	}
	return "mono"
}

// Drawable is a primitive that can paint itself onto a Canvas.
type Drawable interface {
	Paint(c *Canvas)
}

// Rect is a filled rectangle spanning (X0,Y0) to (X1,Y1), both corners
// inclusive. Fractional corners are truncated when rasterised.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
	Fill   color.Color
}

// Text is a single line whose top-left corner sits at (X, Y).
type Text struct {
	X, Y  int
	Value string
	Fill  color.Color
}

// Device is a physical or emulated panel.
type Device interface {
	Width() int
	Height() int
	ColorMode() ColorMode
	// Commit replaces the panel contents with the given primitives.
	Commit(drawables []Drawable) error
	Clear() error
}

// Foreground is the colour used for text and mono shapes.
var Foreground color.Color = color.White
