// Package gesture implements an axis-constrained drag recognizer for
// slidable panels.
//
// The recognizer accepts low level pointer events from an event queue
// and reduces them to drag events along a single axis. A pluggable
// gate hook is consulted once per pointer sequence, before standard
// drag handling, and may abandon the recognizer's claim on the
// sequence so that a competing handler (typically an ancestor, such as
// a horizontally paged container) receives the drag instead.
package gesture

import (
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/unit"
)

// touchSlop is the distance a pointer may travel before the recognizer
// grabs the pointer.
const touchSlop = unit.Dp(3)

type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// A GateDecision is returned by a GateFunc.
type GateDecision uint8

const (
	// GateContinue admits the sequence to standard drag handling.
	GateContinue GateDecision = iota
	// GateReject abandons the sequence. No events are reported for it
	// and the pointer is never grabbed, leaving it to competing
	// handlers.
	GateReject
)

// GateFunc inspects the first movement of a new pointer sequence and
// decides whether the recognizer keeps its claim on it. delta is the
// movement since the press, with the cross-axis component zeroed. The
// gate runs at most once per sequence.
type GateFunc func(delta f32.Point) GateDecision

const (
	// KindStart is reported when a sequence begins, either on the
	// press or on the first movement, depending on StartOnPress.
	KindStart Kind = iota
	// KindDrag is reported for every subsequent movement.
	KindDrag
	// KindEnd is reported when the pointer is released.
	KindEnd
	// KindCancel is reported when the sequence is cancelled.
	KindCancel
)

type Kind uint8

// Event is a recognized drag action.
type Event struct {
	Kind     Kind
	Position f32.Point
	Source   pointer.Source
	// Delta is the movement since the previous event of the sequence,
	// with the cross-axis component zeroed. It is only set for
	// KindDrag events.
	Delta f32.Point
	// Velocity is the estimated velocity along the axis at the time of
	// release, in pixels per second. It is only set for KindEnd
	// events, and only if HasVelocity is true.
	Velocity    float32
	HasVelocity bool
}

// sequence tracks one pointer contact from press to release or cancel.
type sequence struct {
	// decided tracks whether the gate has run for this sequence.
	decided bool
	// rejected sequences are tracked only so their remaining events
	// can be dropped.
	rejected bool
	// started tracks whether KindStart has been reported.
	started bool
	start   f32.Point
	last    f32.Point
	vel     estimator
}

// Drag detects drag gestures along a single axis.
type Drag struct {
	// Axis selects the coordinate component the drag follows.
	Axis Axis
	// Gate, if non-nil, is consulted once per pointer sequence on its
	// first movement, before standard drag handling.
	Gate GateFunc
	// StartOnPress reports KindStart on the initial contact instead of
	// on the first movement.
	StartOnPress bool

	grab bool
	// Concurrent contacts are tracked independently, keyed by the
	// pointer ID.
	sequences map[pointer.ID]*sequence
}

// Add the handler to the operation list to receive drag events.
func (d *Drag) Add(ops *op.Ops) {
	pointer.InputOp{
		Tag:   d,
		Grab:  d.grab,
		Kinds: pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
	}.Add(ops)
}

// Dragging reports whether a started sequence is in progress.
func (d *Drag) Dragging() bool {
	for _, seq := range d.sequences {
		if seq.started {
			return true
		}
	}
	return false
}

// Pressed reports whether a pointer is pressing.
func (d *Drag) Pressed() bool {
	for _, seq := range d.sequences {
		if !seq.rejected {
			return true
		}
	}
	return false
}

// Events returns the next drag events, if any.
func (d *Drag) Events(cfg unit.Metric, q event.Queue) []Event {
	var events []Event
	for _, evt := range q.Events(d) {
		e, ok := evt.(pointer.Event)
		if !ok {
			continue
		}

		switch e.Kind {
		case pointer.Press:
			if !(e.Buttons == pointer.ButtonPrimary || e.Source == pointer.Touch) {
				continue
			}
			if _, ok := d.sequences[e.PointerID]; ok {
				continue
			}
			if d.sequences == nil {
				d.sequences = make(map[pointer.ID]*sequence)
			}
			seq := &sequence{start: e.Position, last: e.Position}
			seq.vel.sample(e.Time, d.val(e.Position))
			d.sequences[e.PointerID] = seq
			if d.StartOnPress {
				seq.started = true
				events = append(events, Event{Kind: KindStart, Position: e.Position, Source: e.Source})
			}
		case pointer.Drag:
			seq, ok := d.sequences[e.PointerID]
			if !ok || seq.rejected {
				continue
			}
			pos := e.Position
			delta := pos.Sub(seq.last)
			switch d.Axis {
			case Horizontal:
				pos.Y = seq.start.Y
				delta.Y = 0
			case Vertical:
				pos.X = seq.start.X
				delta.X = 0
			}
			if !seq.decided {
				seq.decided = true
				if d.Gate != nil && d.Gate(delta) == GateReject {
					seq.rejected = true
					if seq.started {
						// StartOnPress already reported a start; a
						// reported sequence always terminates.
						events = append(events, Event{Kind: KindCancel, Position: seq.last})
					}
					continue
				}
			}
			seq.vel.sample(e.Time, d.val(e.Position))
			if e.Priority < pointer.Grabbed {
				diff := e.Position.Sub(seq.start)
				slop := cfg.Dp(touchSlop)
				if diff.X*diff.X+diff.Y*diff.Y > float32(slop*slop) {
					d.grab = true
				}
			}
			if !seq.started {
				seq.started = true
				seq.last = pos
				events = append(events, Event{Kind: KindStart, Position: pos, Source: e.Source})
				continue
			}
			seq.last = pos
			events = append(events, Event{Kind: KindDrag, Position: pos, Delta: delta, Source: e.Source})
		case pointer.Release:
			seq, ok := d.sequences[e.PointerID]
			if !ok {
				continue
			}
			delete(d.sequences, e.PointerID)
			if len(d.sequences) == 0 {
				d.grab = false
			}
			if seq.rejected || !seq.started {
				continue
			}
			seq.vel.sample(e.Time, d.val(e.Position))
			v, ok := seq.vel.estimate()
			events = append(events, Event{Kind: KindEnd, Position: seq.last, Source: e.Source, Velocity: v, HasVelocity: ok})
		case pointer.Cancel:
			// Cancel isn't scoped to a single pointer; all sequences
			// are discarded without end events.
			for _, seq := range d.sequences {
				if seq.started && !seq.rejected {
					events = append(events, Event{Kind: KindCancel, Position: seq.last})
				}
			}
			d.sequences = nil
			d.grab = false
		}
	}
	return events
}

func (d *Drag) val(p f32.Point) float32 {
	if d.Axis == Horizontal {
		return p.X
	} else {
		return p.Y
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("invalid Axis")
	}
}

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "KindStart"
	case KindDrag:
		return "KindDrag"
	case KindEnd:
		return "KindEnd"
	case KindCancel:
		return "KindCancel"
	default:
		panic("invalid Kind")
	}
}
