// Command slidable demonstrates slidable rows inside a horizontally
// paged container. Swiping a closed row to the right is ceded to the
// pager; swiping it to the left reveals the row's action pane.
package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"golang.org/x/image/colornames"

	"honnef.co/go/slidable/gesture"
	"honnef.co/go/slidable/layout"
	"honnef.co/go/slidable/theme"
)

const (
	numPages    = 3
	rowsPerPage = 5
	gridRows    = 3
	gridCols    = 2
)

var pageColors = [numPages]color.NRGBA{
	color.NRGBA(colornames.Whitesmoke),
	color.NRGBA(colornames.Honeydew),
	color.NRGBA(colornames.Lavender),
}

func main() {
	go func() {
		w := app.NewWindow(app.Title("slidable"), app.Size(unit.Dp(360), unit.Dp(640)))
		if err := run(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

type demo struct {
	th    *theme.Theme
	pager pager
	grid  layout.UniformGrid

	// One panel per row on the list pages, plus a grid page of cards.
	rows  [numPages - 1][rowsPerPage]theme.Panel
	cards [gridRows * gridCols]theme.Panel
}

func newDemo() *demo {
	d := &demo{
		th:   theme.NewTheme(gofont.Collection()),
		grid: layout.UniformGrid{Padding: 8},
	}
	d.pager.pages = numPages
	for i := range d.rows {
		for j := range d.rows[i] {
			p := &d.rows[i][j]
			p.Slidable.Axis = gesture.Horizontal
			p.Slidable.RestrictRightToLeft = true
			// The rows open leftward, revealing actions on the right.
			p.Controller.Direction = -1
		}
	}
	for i := range d.cards {
		p := &d.cards[i]
		p.Slidable.Axis = gesture.Vertical
		p.Controller.Direction = 1
	}
	return d
}

func run(w *app.Window) error {
	d := newDemo()

	var ops op.Ops
	for {
		e := <-w.Events()
		switch ev := e.(type) {
		case system.DestroyEvent:
			return ev.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, ev)
			d.Layout(gtx)
			ev.Frame(&ops)
		}
	}
}

func (d *demo) Layout(gtx layout.Context) layout.Dimensions {
	return d.pager.Layout(gtx, func(gtx layout.Context, page int) layout.Dimensions {
		paint.FillShape(gtx.Ops, pageColors[page], clip.Rect{Max: gtx.Constraints.Max}.Op())
		if page == numPages-1 {
			return d.layoutGrid(gtx)
		}
		return d.layoutRows(gtx, page)
	})
}

func (d *demo) layoutRows(gtx layout.Context, page int) layout.Dimensions {
	size := gtx.Constraints.Max
	pad := gtx.Dp(8)
	rowHeight := gtx.Dp(64)

	for i := range d.rows[page] {
		stack := op.Offset(image.Pt(pad, pad+i*(rowHeight+pad))).Push(gtx.Ops)
		rgtx := gtx
		rgtx.Constraints = layout.Exact(image.Pt(size.X-2*pad, rowHeight))
		d.layoutPanel(rgtx, &d.rows[page][i], fmt.Sprintf("Page %d, row %d", page+1, i+1))
		stack.Pop()
	}
	return layout.Dimensions{Size: size}
}

func (d *demo) layoutGrid(gtx layout.Context) layout.Dimensions {
	pad := gtx.Dp(8)
	defer op.Offset(image.Pt(pad, pad)).Push(gtx.Ops).Pop()

	cell := image.Pt((gtx.Constraints.Max.X-3*pad)/gridCols, gtx.Dp(96))
	return d.grid.Layout(gtx, gridRows, gridCols, cell, func(gtx layout.Context, row, col int) layout.Dimensions {
		return d.layoutPanel(gtx, &d.cards[row*gridCols+col], fmt.Sprintf("Card %d", row*gridCols+col+1))
	})
}

func (d *demo) layoutPanel(gtx layout.Context, p *theme.Panel, txt string) layout.Dimensions {
	return theme.Slidable(d.th, p).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		size := gtx.Constraints.Min
		defer op.Offset(image.Pt(gtx.Dp(8), size.Y/2-gtx.Sp(d.th.TextSize))).Push(gtx.Ops).Pop()
		theme.Label(d.th, txt).Layout(gtx)
		return layout.Dimensions{Size: size}
	})
}
