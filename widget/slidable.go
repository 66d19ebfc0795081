// Package widget implements the state of slidable panels.
package widget

import (
	"image"

	"honnef.co/go/slidable/gesture"
	"honnef.co/go/slidable/layout"

	"gioui.org/f32"
	"gioui.org/op/clip"
)

// Controller owns the open fraction of a slidable panel. It is
// injected into a Slidable, which writes the ratio while a gesture is
// active and hands off the final decision when it ends. Renderers may
// read the ratio at any time; it is only ever written from the event
// processing context.
type Controller interface {
	// Ratio returns the current open fraction, signed along the axis:
	// 0 means fully closed, +1 fully open toward the right
	// respectively bottom, -1 toward the left respectively top.
	Ratio() float32
	// SetRatio is called synchronously for every accepted drag event
	// while a gesture is active. The ratio follows the sign convention
	// of Ratio.
	SetRatio(ratio float32)
	// DirectionSign reports the side the panel opens toward, +1 or -1.
	DirectionSign() float32
	// EndGesture receives the decision of a completed drag. velocity
	// is the measured axis velocity in pixels per second, passed along
	// as a hint for the snap animation; hasVelocity is false if it
	// could not be estimated. The displacement of the gesture, not the
	// velocity, determines opening.
	EndGesture(velocity float32, hasVelocity bool, opening bool)
}

// Slidable translates one-axis drags into ratio updates on a
// Controller.
//
// The zero value is a horizontal, unrestricted slidable; a Controller
// must be assigned before use.
type Slidable struct {
	Controller Controller

	// Axis selects the direction the panel slides along.
	Axis gesture.Axis
	// RestrictRightToLeft cedes rightward drags to an ancestor while
	// the panel is fully closed. It only applies to horizontal
	// sliding and is ignored otherwise.
	RestrictRightToLeft bool
	// StartOnPress begins the gesture session on the initial contact
	// instead of on the first movement.
	StartOnPress bool
	// Disabled suspends all pointer handling.
	Disabled bool

	drag gesture.Drag

	// Gesture session, valid from a start event until the gesture ends
	// or is cancelled.
	dragging   bool
	startPos   f32.Point
	lastPos    f32.Point
	dragExtent float32
	// axisExtent is the laid out size along Axis, recorded by Add. It
	// must be nonzero by the time gestures arrive; the ratio math does
	// not defend against degenerate layouts.
	axisExtent float32
}

// Add registers a drag area covering size. size is the laid out extent
// of the panel; its component along the slidable's axis is the basis
// of all ratio computations.
func (s *Slidable) Add(gtx layout.Context, size image.Point) {
	if s.Disabled || s.Controller == nil {
		return
	}
	s.configure()
	if s.Axis == gesture.Horizontal {
		s.axisExtent = float32(size.X)
	} else {
		s.axisExtent = float32(size.Y)
	}
	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	s.drag.Add(gtx.Ops)
}

func (s *Slidable) configure() {
	s.drag.Axis = s.Axis
	s.drag.StartOnPress = s.StartOnPress
	if s.Axis == gesture.Horizontal && s.RestrictRightToLeft {
		s.drag.Gate = s.gate
	} else {
		s.drag.Gate = nil
	}
}

// gate rejects the first rightward movement of a sequence while the
// panel is fully closed, ceding the drag to an ancestor. Any nonzero
// ratio, or leftward or neutral motion, admits the sequence.
func (s *Slidable) gate(delta f32.Point) gesture.GateDecision {
	if s.Controller.Ratio() == 0 && delta.X > 0 {
		return gesture.GateReject
	}
	return gesture.GateContinue
}

// Update processes pointer events and reports whether the controller
// ratio was written.
func (s *Slidable) Update(gtx layout.Context) bool {
	if s.Disabled || s.Controller == nil {
		return false
	}
	s.configure()
	changed := false
	for _, e := range s.drag.Events(gtx.Metric, gtx) {
		switch e.Kind {
		case gesture.KindStart:
			s.dragStart(e.Position)
		case gesture.KindDrag:
			s.dragUpdate(e.Delta, e.Position)
			changed = true
		case gesture.KindEnd:
			s.dragEnd(e.Velocity, e.HasVelocity)
		case gesture.KindCancel:
			// The ratio keeps its last written value and no decision
			// is dispatched; state persists until the next gesture or
			// an external reset.
			s.dragging = false
		}
	}
	return changed
}

// Dragging reports whether a gesture session is active.
func (s *Slidable) Dragging() bool {
	return s.dragging
}

// AxisExtent returns the panel's laid out size along its axis, or zero
// if it hasn't been laid out yet.
func (s *Slidable) AxisExtent() float32 {
	return s.axisExtent
}

func (s *Slidable) dragStart(pos f32.Point) {
	s.dragging = true
	s.startPos = pos
	s.lastPos = pos
	// The recognizer has no memory of extent between gestures, so the
	// extent is reconstructed from the controller's ratio. The ratio is
	// signed along the axis, just like the extents dragUpdate derives
	// it from, so a gesture resuming a partially open panel continues
	// from its current position instead of jumping.
	s.dragExtent = s.axisExtent * s.Controller.Ratio()
}

func (s *Slidable) dragUpdate(delta, pos f32.Point) {
	if !s.dragging {
		return
	}
	s.dragExtent += s.val(delta)
	s.lastPos = pos
	s.Controller.SetRatio(s.dragExtent / s.axisExtent)
}

func (s *Slidable) dragEnd(velocity float32, hasVelocity bool) {
	if !s.dragging {
		return
	}
	s.dragging = false
	// The sign of the total displacement decides the direction, with
	// zero displacement counting as opening. The velocity is only a
	// hint for the snap.
	opening := s.val(s.lastPos.Sub(s.startPos)) >= 0
	s.Controller.EndGesture(velocity, hasVelocity, opening)
}

func (s *Slidable) val(p f32.Point) float32 {
	if s.Axis == gesture.Horizontal {
		return p.X
	} else {
		return p.Y
	}
}
