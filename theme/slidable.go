package theme

import (
	"context"
	"image"
	"image/color"
	"math"
	rtrace "runtime/trace"
	"time"

	myclip "honnef.co/go/slidable/clip"
	"honnef.co/go/slidable/f32color"
	"honnef.co/go/slidable/gesture"
	"honnef.co/go/slidable/layout"
	"honnef.co/go/slidable/widget"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

const (
	// snapDuration is how long the panel takes to settle when no exit
	// velocity was measured.
	snapDuration    = 150 * time.Millisecond
	minSnapDuration = 50 * time.Millisecond
)

// Panel owns a slidable, its controller, and the snap animation that
// settles the panel once a gesture has ended.
type Panel struct {
	Slidable   widget.Slidable
	Controller widget.PanelController

	snap Animation[float32]
}

func (p *Panel) init() {
	if p.Slidable.Controller == nil {
		p.Slidable.Controller = &p.Controller
	}
}

// Update processes pointer events, consumes a finished gesture's
// decision, and advances the snap animation. It returns the ratio to
// lay out with this frame.
func (p *Panel) Update(gtx layout.Context) float32 {
	p.init()
	p.Slidable.Update(gtx)
	if p.Slidable.Dragging() {
		// The pointer follows the finger; a snap already in progress
		// is superseded.
		p.snap.Cancel()
		return p.Controller.Ratio()
	}

	if d, ok := p.Controller.PendingDecision(); ok {
		// The decision's direction is absolute; the panel settles open
		// when it points toward the panel's opening side.
		side := p.Controller.DirectionSign()
		target := float32(0)
		if d.Opening == (side > 0) {
			target = side
		}
		dur := snapDuration
		if extent := p.Slidable.AxisExtent(); d.HasVelocity && d.Velocity != 0 && extent > 0 {
			// Travel the remaining distance at the measured speed,
			// within reason.
			px := math.Abs(float64(target-p.Controller.Ratio())) * float64(extent)
			dur = time.Duration(px / math.Abs(float64(d.Velocity)) * float64(time.Second))
			if dur < minSnapDuration {
				dur = minSnapDuration
			} else if dur > snapDuration {
				dur = snapDuration
			}
		}
		StartSimpleAnimation(gtx, &p.snap, p.Controller.Ratio(), target, dur, EaseOut(2))
	}
	if !p.snap.Done() {
		p.Controller.SetRatio(p.snap.Value(gtx))
	}
	return p.Controller.Ratio()
}

// SlidableStyle describes the presentation of a slidable panel: an
// action pane that is revealed as the content pane slides off it.
type SlidableStyle struct {
	Panel      *Panel
	Background color.NRGBA
	Action     color.NRGBA
}

func Slidable(th *Theme, p *Panel) SlidableStyle {
	return SlidableStyle{
		Panel:      p,
		Background: th.Palette.Panel.Background,
		Action:     th.Palette.Panel.Action,
	}
}

// Layout draws the action pane underneath content and the content pane
// on top, offset by the current ratio.
func (ss SlidableStyle) Layout(gtx layout.Context, content layout.Widget) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "theme.SlidableStyle.Layout").End()

	ratio := ss.Panel.Update(gtx)

	macro := op.Record(gtx.Ops)
	dims := content(gtx)
	call := macro.Stop()

	defer clip.Rect(image.Rectangle{Max: dims.Size}).Push(gtx.Ops).Pop()
	ss.layoutAction(gtx, dims.Size, ratio)
	ss.Panel.Slidable.Add(gtx, dims.Size)

	var offset image.Point
	if ss.Panel.Slidable.Axis == gesture.Horizontal {
		offset = image.Pt(int(ratio*float32(dims.Size.X)), 0)
	} else {
		offset = image.Pt(0, int(ratio*float32(dims.Size.Y)))
	}
	defer op.Offset(offset).Push(gtx.Ops).Pop()
	paint.FillShape(gtx.Ops, ss.Background, clip.Rect{Max: dims.Size}.Op())
	call.Add(gtx.Ops)

	return dims
}

// layoutAction fills the strip of the panel that the content has slid
// off, fading the action color in as more of it is revealed.
func (ss SlidableStyle) layoutAction(gtx layout.Context, size image.Point, ratio float32) {
	if ratio == 0 {
		return
	}
	w, h := float32(size.X), float32(size.Y)
	var strip myclip.FRect
	if ss.Panel.Slidable.Axis == gesture.Horizontal {
		if off := ratio * w; off < 0 {
			strip = myclip.FRect{Min: f32.Pt(w+off, 0), Max: f32.Pt(w, h)}
		} else {
			strip = myclip.FRect{Min: f32.Pt(0, 0), Max: f32.Pt(off, h)}
		}
	} else {
		if off := ratio * h; off < 0 {
			strip = myclip.FRect{Min: f32.Pt(0, h+off), Max: f32.Pt(w, h)}
		} else {
			strip = myclip.FRect{Min: f32.Pt(0, 0), Max: f32.Pt(w, off)}
		}
	}

	revealed := float64(ratio)
	if revealed < 0 {
		revealed = -revealed
	}
	if revealed > 1 {
		revealed = 1
	}
	c := f32color.Mix(ss.Action, ss.Background, uint8(127+128*revealed))
	paint.FillShape(gtx.Ops, c, strip.Op(gtx.Ops))
}
