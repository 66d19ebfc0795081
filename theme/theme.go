// Package theme renders slidable panels and animates them to their
// resting positions.
package theme

import (
	"image/color"

	"gioui.org/font"
	"gioui.org/text"
	"gioui.org/unit"
)

type Theme struct {
	Shaper   *text.Shaper
	Palette  Palette
	TextSize unit.Sp
}

type Palette struct {
	Background color.NRGBA
	Foreground color.NRGBA
	Border     color.NRGBA

	Panel struct {
		Background color.NRGBA
		Action     color.NRGBA
	}
}

var DefaultPalette = Palette{
	Background: rgba(0xFFFFEAFF),
	Foreground: rgba(0x000000FF),
	Border:     rgba(0x000000FF),

	Panel: struct {
		Background color.NRGBA
		Action     color.NRGBA
	}{
		Background: rgba(0xEFFFFFFF),
		Action:     rgba(0xBB5D5DFF),
	},
}

func NewTheme(fontCollection []font.FontFace) *Theme {
	return &Theme{
		Palette:  DefaultPalette,
		Shaper:   text.NewShaper(text.WithCollection(fontCollection)),
		TextSize: 12,
	}
}

func rgba(c uint32) color.NRGBA {
	return color.NRGBA{
		A: uint8(c & 0xFF),
		B: uint8(c >> 8 & 0xFF),
		G: uint8(c >> 16 & 0xFF),
		R: uint8(c >> 24 & 0xFF),
	}
}
