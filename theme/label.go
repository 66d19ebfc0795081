package theme

import (
	"image/color"

	"honnef.co/go/slidable/layout"

	"gioui.org/font"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
)

type LabelStyle struct {
	Text     string
	Color    color.NRGBA
	Font     font.Font
	TextSize unit.Sp
	Shaper   *text.Shaper
}

func Label(th *Theme, txt string) LabelStyle {
	return LabelStyle{
		Text:     txt,
		Color:    th.Palette.Foreground,
		TextSize: th.TextSize,
		Shaper:   th.Shaper,
	}
}

func (ls LabelStyle) Layout(gtx layout.Context) layout.Dimensions {
	m := op.Record(gtx.Ops)
	paint.ColorOp{Color: ls.Color}.Add(gtx.Ops)
	textMaterial := m.Stop()
	return widget.Label{MaxLines: 1}.Layout(gtx, ls.Shaper, ls.Font, ls.TextSize, ls.Text, textMaterial)
}
