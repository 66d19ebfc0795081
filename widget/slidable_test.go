package widget

import (
	"image"
	"math"
	"testing"
	"time"

	"honnef.co/go/slidable/gesture"
	"honnef.co/go/slidable/layout"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/unit"
)

type gestureEnd struct {
	velocity    float32
	hasVelocity bool
	opening     bool
}

// recordController is a Controller that records every write.
type recordController struct {
	ratio     float32
	direction float32

	ratios []float32
	ends   []gestureEnd
}

func (c *recordController) Ratio() float32 { return c.ratio }

func (c *recordController) SetRatio(ratio float32) {
	c.ratio = ratio
	c.ratios = append(c.ratios, ratio)
}

func (c *recordController) DirectionSign() float32 { return c.direction }

func (c *recordController) EndGesture(velocity float32, hasVelocity bool, opening bool) {
	c.ends = append(c.ends, gestureEnd{velocity, hasVelocity, opening})
}

// frame lays out the slidable at size and delivers evs to it.
func frame(s *Slidable, size image.Point, evs ...event.Event) {
	gtx := layout.Context{
		Ops:    new(op.Ops),
		Metric: unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Queue:  queue(evs),
		Now:    time.Now(),
	}
	s.Add(gtx, size)
	s.Update(gtx)
}

type queue []event.Event

func (q queue) Events(event.Tag) []event.Event { return q }

func press(id pointer.ID, x, y float32, at time.Duration) pointer.Event {
	return pointer.Event{Kind: pointer.Press, Source: pointer.Touch, PointerID: id, Position: f32.Pt(x, y), Time: at}
}

func move(id pointer.ID, x, y float32, at time.Duration) pointer.Event {
	return pointer.Event{Kind: pointer.Drag, Source: pointer.Touch, PointerID: id, Position: f32.Pt(x, y), Time: at}
}

func release(id pointer.ID, x, y float32, at time.Duration) pointer.Event {
	return pointer.Event{Kind: pointer.Release, Source: pointer.Touch, PointerID: id, Position: f32.Pt(x, y), Time: at}
}

func TestRatioSeedContinuity(t *testing.T) {
	c := &recordController{ratio: 0.4, direction: 1}
	s := &Slidable{Controller: c, Axis: gesture.Horizontal}

	frame(s, image.Pt(100, 40),
		press(1, 10, 10, 0),
		move(1, 10, 10, 10*time.Millisecond),
	)
	if s.dragExtent != 40 {
		t.Errorf("seeded dragExtent = %v, want 40", s.dragExtent)
	}

	// The first update continues from 0.4 instead of jumping to 0.
	frame(s, image.Pt(100, 40),
		move(1, 20, 10, 20*time.Millisecond),
	)
	if c.ratio != 0.5 {
		t.Errorf("ratio after +10px = %v, want 0.5", c.ratio)
	}
}

func TestRatioSeedDirection(t *testing.T) {
	// A leftward-opening panel stores a negative ratio; the seed keeps
	// its sign.
	c := &recordController{ratio: -0.25, direction: -1}
	s := &Slidable{Controller: c, Axis: gesture.Horizontal}

	frame(s, image.Pt(200, 40),
		press(1, 100, 10, 0),
		move(1, 100, 10, 10*time.Millisecond),
	)
	if s.dragExtent != -50 {
		t.Errorf("seeded dragExtent = %v, want -50", s.dragExtent)
	}
}

func TestRatioSeedContinuityLeftward(t *testing.T) {
	c := &recordController{direction: -1}
	s := &Slidable{Controller: c, Axis: gesture.Horizontal}

	// Open a leftward panel by 30px and release.
	frame(s, image.Pt(100, 40),
		press(1, 80, 10, 0),
		move(1, 80, 10, 5*time.Millisecond),
		move(1, 50, 10, 10*time.Millisecond),
		release(1, 50, 10, 20*time.Millisecond),
	)
	if c.ratio != -0.3 {
		t.Fatalf("ratio after leftward drag = %v, want -0.3", c.ratio)
	}

	// A new gesture continues from -0.3 instead of flipping the panel
	// to the opposite side.
	frame(s, image.Pt(100, 40),
		press(2, 50, 10, 30*time.Millisecond),
		move(2, 50, 10, 35*time.Millisecond),
	)
	if s.dragExtent != -30 {
		t.Errorf("seeded dragExtent = %v, want -30", s.dragExtent)
	}
	frame(s, image.Pt(100, 40),
		move(2, 49, 10, 40*time.Millisecond),
	)
	if got, want := c.ratio, float32(-0.31); math.Abs(float64(got-want)) > 1e-6 {
		t.Errorf("ratio after resuming = %v, want %v", got, want)
	}
}

func TestZeroDisplacementOpens(t *testing.T) {
	c := &recordController{direction: 1}
	s := &Slidable{Controller: c, Axis: gesture.Horizontal}

	frame(s, image.Pt(100, 40),
		press(1, 10, 10, 0),
		move(1, 10, 10, 10*time.Millisecond),
		release(1, 10, 10, 20*time.Millisecond),
	)
	if len(c.ends) != 1 {
		t.Fatalf("got %d end decisions, want 1", len(c.ends))
	}
	if !c.ends[0].opening {
		t.Error("zero displacement classified as closing, want opening")
	}
}

func TestDisplacementDecidesDirection(t *testing.T) {
	c := &recordController{direction: 1}
	s := &Slidable{Controller: c, Axis: gesture.Horizontal}

	// Rightward at first, but ending left of the start. The
	// displacement decides, not the last movement.
	frame(s, image.Pt(100, 40),
		press(1, 50, 10, 0),
		move(1, 50, 10, 5*time.Millisecond),
		move(1, 70, 10, 10*time.Millisecond),
		move(1, 20, 10, 20*time.Millisecond),
		release(1, 20, 10, 30*time.Millisecond),
	)
	if len(c.ends) != 1 {
		t.Fatalf("got %d end decisions, want 1", len(c.ends))
	}
	if c.ends[0].opening {
		t.Error("negative displacement classified as opening, want closing")
	}
}

func TestRatioChunking(t *testing.T) {
	total := float32(120)
	final := func(chunks int) float32 {
		c := &recordController{direction: 1}
		s := &Slidable{Controller: c, Axis: gesture.Horizontal}
		evs := []event.Event{
			press(1, 0, 10, 0),
			move(1, 0, 10, time.Millisecond),
		}
		x := float32(0)
		for i := 0; i < chunks; i++ {
			x += total / float32(chunks)
			evs = append(evs, move(1, x, 10, time.Duration(i+2)*time.Millisecond))
		}
		frame(s, image.Pt(200, 40), evs...)
		return c.ratio
	}

	one, ten := final(1), final(10)
	want := total / 200
	if math.Abs(float64(one-want)) > 1e-6 {
		t.Errorf("ratio after one update = %v, want %v", one, want)
	}
	if math.Abs(float64(ten-one)) > 1e-6 {
		t.Errorf("ratio after ten updates = %v, differs from single update %v", ten, one)
	}
}

func TestCancelKeepsRatio(t *testing.T) {
	c := &recordController{direction: 1}
	s := &Slidable{Controller: c, Axis: gesture.Horizontal}

	frame(s, image.Pt(100, 40),
		press(1, 10, 10, 0),
		move(1, 10, 10, 5*time.Millisecond),
		move(1, 40, 10, 10*time.Millisecond),
		pointer.Event{Kind: pointer.Cancel},
	)
	if c.ratio != 0.3 {
		t.Errorf("ratio after cancel = %v, want the last written 0.3", c.ratio)
	}
	if len(c.ends) != 0 {
		t.Errorf("cancel dispatched %d end decisions, want none", len(c.ends))
	}
	if s.Dragging() {
		t.Error("still dragging after cancel")
	}
}

func TestGateRejectsRightwardWhenClosed(t *testing.T) {
	c := &recordController{direction: 1}
	s := &Slidable{Controller: c, Axis: gesture.Horizontal, RestrictRightToLeft: true}

	frame(s, image.Pt(100, 40),
		press(1, 10, 10, 0),
		move(1, 15, 10, 10*time.Millisecond),
		move(1, 25, 10, 20*time.Millisecond),
		release(1, 25, 10, 30*time.Millisecond),
	)
	if len(c.ratios) != 0 {
		t.Errorf("rejected gesture wrote ratios %v, want none", c.ratios)
	}
	if len(c.ends) != 0 {
		t.Errorf("rejected gesture dispatched %d end decisions, want none", len(c.ends))
	}
}

func TestGateBoundary(t *testing.T) {
	c := &recordController{direction: 1}
	s := &Slidable{Controller: c, Axis: gesture.Horizontal, RestrictRightToLeft: true}

	// Only a strictly rightward movement on a fully closed panel is
	// rejected.
	cases := []struct {
		ratio float32
		dx    float32
		want  gesture.GateDecision
	}{
		{0, 5, gesture.GateReject},
		{0, 0, gesture.GateContinue},
		{0, -5, gesture.GateContinue},
		{0.3, 5, gesture.GateContinue},
		{1e-6, 5, gesture.GateContinue},
	}
	for _, tc := range cases {
		c.ratio = tc.ratio
		if got := s.gate(f32.Pt(tc.dx, 0)); got != tc.want {
			t.Errorf("gate(dx=%v) with ratio %v = %v, want %v", tc.dx, tc.ratio, got, tc.want)
		}
	}
}

func TestGateProceedsWhenOpen(t *testing.T) {
	c := &recordController{ratio: 0.3, direction: 1}
	s := &Slidable{Controller: c, Axis: gesture.Horizontal, RestrictRightToLeft: true}

	frame(s, image.Pt(100, 40),
		press(1, 10, 10, 0),
		move(1, 15, 10, 10*time.Millisecond),
		move(1, 25, 10, 20*time.Millisecond),
	)
	if len(c.ratios) == 0 {
		t.Error("rightward drag on an open panel was rejected, want standard handling")
	}
}

func TestRestrictIgnoredOnVerticalAxis(t *testing.T) {
	c := &recordController{direction: 1}
	s := &Slidable{Controller: c, Axis: gesture.Vertical, RestrictRightToLeft: true}

	// Downward drag on a closed vertical panel. If the restriction
	// were applied it would reject; it must be a no-op instead.
	frame(s, image.Pt(100, 200),
		press(1, 10, 10, 0),
		move(1, 15, 20, 10*time.Millisecond),
		move(1, 15, 60, 20*time.Millisecond),
	)
	if len(c.ratios) == 0 {
		t.Fatal("vertical drag was rejected, want RestrictRightToLeft ignored")
	}
	if c.ratio != 0.2 {
		t.Errorf("ratio = %v, want 0.2 (40px of 200px)", c.ratio)
	}
}

func TestPanelControllerDecisionLatch(t *testing.T) {
	var c PanelController
	if _, ok := c.PendingDecision(); ok {
		t.Error("fresh controller has a pending decision")
	}

	c.EndGesture(250, true, true)
	d, ok := c.PendingDecision()
	if !ok {
		t.Fatal("no pending decision after EndGesture")
	}
	if d.Velocity != 250 || !d.HasVelocity || !d.Opening {
		t.Errorf("decision = %+v, want velocity 250, hasVelocity, opening", d)
	}
	if _, ok := c.PendingDecision(); ok {
		t.Error("decision not cleared after being consumed")
	}
}
