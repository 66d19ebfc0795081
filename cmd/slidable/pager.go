package main

import (
	"image"
	"math"
	"time"

	"honnef.co/go/slidable/gesture"
	"honnef.co/go/slidable/layout"
	"honnef.co/go/slidable/theme"

	"gioui.org/op"
	"gioui.org/op/clip"
)

const (
	pageSnapDuration = 250 * time.Millisecond
	// flingVelocity is the speed beyond which a release advances to
	// the next page regardless of how far it was dragged.
	flingVelocity = 300
)

// pager is a horizontally paged container. Its drag recognizer is
// ungated, so it picks up the sequences that closed slidable rows
// cede.
type pager struct {
	pages int

	drag     gesture.Drag
	dragging bool
	// pos is the horizontal scroll position in pixels, 0 through
	// (pages-1)*width.
	pos  float32
	snap theme.Animation[float32]
}

func (p *pager) Layout(gtx layout.Context, page func(gtx layout.Context, i int) layout.Dimensions) layout.Dimensions {
	size := gtx.Constraints.Max
	width := float32(size.X)

	for _, e := range p.drag.Events(gtx.Metric, gtx) {
		switch e.Kind {
		case gesture.KindStart:
			p.dragging = true
			p.snap.Cancel()
		case gesture.KindDrag:
			p.pos -= e.Delta.X
		case gesture.KindEnd:
			p.dragging = false
			p.settle(gtx, width, e.Velocity, e.HasVelocity)
		case gesture.KindCancel:
			p.dragging = false
			p.settle(gtx, width, 0, false)
		}
	}
	if !p.dragging && !p.snap.Done() {
		p.pos = p.snap.Value(gtx)
	}
	if max := width * float32(p.pages-1); p.pos < 0 {
		p.pos = 0
	} else if p.pos > max {
		p.pos = max
	}

	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	p.drag.Add(gtx.Ops)

	for i := 0; i < p.pages; i++ {
		stack := op.Offset(image.Pt(int(float32(i)*width-p.pos), 0)).Push(gtx.Ops)
		page(gtx, i)
		stack.Pop()
	}
	return layout.Dimensions{Size: size}
}

func (p *pager) settle(gtx layout.Context, width float32, velocity float32, hasVelocity bool) {
	at := float64(p.pos / width)
	target := math.Round(at)
	if hasVelocity {
		// Dragging leftward moves content left, i.e. forward.
		if velocity < -flingVelocity {
			target = math.Ceil(at)
		} else if velocity > flingVelocity {
			target = math.Floor(at)
		}
	}
	if target < 0 {
		target = 0
	} else if max := float64(p.pages - 1); target > max {
		target = max
	}
	theme.StartSimpleAnimation(gtx, &p.snap, p.pos, float32(target)*width, pageSnapDuration, theme.EaseOut(2))
}
