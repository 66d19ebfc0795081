// SPDX-License-Identifier: Unlicense OR MIT

package f32color

import "image/color"

// MulAlpha applies the alpha to the color.
func MulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xFF)
	return c
}

// Mix mixes c1 and c2 weighted by (1 - a/255) and a/255 respectively.
func Mix(c1, c2 color.NRGBA, a uint8) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8((uint32(x)*uint32(a) + uint32(y)*uint32(0xFF-a)) / 0xFF)
	}
	return color.NRGBA{
		R: mix(c1.R, c2.R),
		G: mix(c1.G, c2.G),
		B: mix(c1.B, c2.B),
		A: mix(c1.A, c2.A),
	}
}
