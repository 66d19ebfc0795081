package layout

import (
	"image"

	"gioui.org/layout"
	"gioui.org/x/outlay"
)

// UniformGrid lays out equally sized cells in a fixed number of rows
// and columns, separated by Padding pixels.
type UniformGrid struct {
	Grid    outlay.Grid
	Padding int
}

func (ug UniformGrid) Layout(gtx layout.Context, rows, cols int, cell image.Point, cellFunc outlay.Cell) layout.Dimensions {
	dimmer := func(axis layout.Axis, index, constraint int) int {
		switch axis {
		case layout.Vertical:
			return cell.Y + ug.Padding
		case layout.Horizontal:
			return cell.X + ug.Padding
		default:
			panic("unreachable")
		}
	}
	// outlay.Grid fills the Max constraint.
	width := cols*(cell.X+ug.Padding) - ug.Padding
	height := rows*(cell.Y+ug.Padding) - ug.Padding
	gtx.Constraints.Max = gtx.Constraints.Constrain(image.Pt(width, height))
	wrapper := func(gtx layout.Context, row, col int) layout.Dimensions {
		gtx.Constraints = layout.Exact(cell)
		return cellFunc(gtx, row, col)
	}
	return ug.Grid.Layout(gtx, rows, cols, dimmer, wrapper)
}
