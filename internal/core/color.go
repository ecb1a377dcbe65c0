package core

import "fmt"

// RGB is a 24-bit foreground color for a screen cell.
// Bit 24 marks the color as explicitly set; the zero value means
// "use the terminal default".
type RGB uint32

const rgbSet RGB = 1 << 24

// ColorDefault leaves the terminal's own foreground untouched.
const ColorDefault RGB = 0

// NewRGB builds a color from a packed 0xRRGGBB value.
func NewRGB(packed uint32) RGB {
	return RGB(packed&0xffffff) | rgbSet
}

// IsSet reports whether the color was explicitly assigned.
func (c RGB) IsSet() bool {
	return c&rgbSet != 0
}

// Hex renders the color as a #rrggbb string for terminal styling.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c&0xffffff))
}
