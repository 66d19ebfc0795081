package widget

// Decision is the latched outcome of a completed drag, consumed by
// whatever animates the panel to its resting position.
type Decision struct {
	// Velocity is the axis velocity at release in pixels per second.
	// It is only meaningful if HasVelocity is true.
	Velocity    float32
	HasVelocity bool
	// Opening reports whether the panel should settle open.
	Opening bool
}

// PanelController is the default Controller implementation. It stores
// the ratio and latches end-of-gesture decisions for the presentation
// layer to consume.
type PanelController struct {
	// Direction is the side the panel opens toward: positive for
	// right respectively down, negative for left respectively up. The
	// zero value counts as positive.
	Direction float32

	ratio float32

	pending  bool
	decision Decision
}

func (c *PanelController) Ratio() float32 {
	return c.ratio
}

func (c *PanelController) SetRatio(ratio float32) {
	c.ratio = ratio
}

func (c *PanelController) DirectionSign() float32 {
	if c.Direction < 0 {
		return -1
	}
	return 1
}

func (c *PanelController) EndGesture(velocity float32, hasVelocity bool, opening bool) {
	c.pending = true
	c.decision = Decision{Velocity: velocity, HasVelocity: hasVelocity, Opening: opening}
}

// PendingDecision returns the latched end-of-gesture decision, if any,
// and clears it.
func (c *PanelController) PendingDecision() (Decision, bool) {
	if !c.pending {
		return Decision{}, false
	}
	c.pending = false
	return c.decision, true
}

// Open requests that the panel settles open, as if a gesture had just
// ended with a displacement toward the panel's opening side.
func (c *PanelController) Open() {
	c.EndGesture(0, false, c.DirectionSign() > 0)
}

// Close requests that the panel settles closed.
func (c *PanelController) Close() {
	c.EndGesture(0, false, c.DirectionSign() < 0)
}

// IsOpen reports whether the panel is open to any degree.
func (c *PanelController) IsOpen() bool {
	return c.ratio != 0
}
