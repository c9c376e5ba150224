package motion

// hopState is one state of the hop machine. Update returns the horizontal
// velocity for the frame and may move the machine to another state.
type hopState interface {
	Phase() HopPhase
	Enter(h *Hop)
	Exit(h *Hop)
	Update(h *Hop, f Frame) float64
}

var (
	hopStateIdle    hopState = &hopIdleState{}
	hopStateMoving  hopState = &hopMovingState{}
	hopStateWaiting hopState = &hopWaitingState{}
)

type hopIdleState struct{}

type hopMovingState struct{}

type hopWaitingState struct{}

func (hopIdleState) Phase() HopPhase { return HopIdle }
func (hopIdleState) Enter(h *Hop) {
	h.state.PhaseTimer = 0
}
func (hopIdleState) Exit(h *Hop) {}

// Update starts a hop once the gate set by the previous one has opened. A
// closed gate keeps the frog idle and it retries next frame.
func (hopIdleState) Update(h *Hop, f Frame) float64 {
	if !elapsed(f.Now, h.state.NextHopAllowedAt) {
		return 0
	}
	h.state.NextHopAllowedAt = f.Now + h.tuning.MoveDuration + h.tuning.WaitDuration
	h.changeState(hopStateMoving)
	return h.current.Update(h, f)
}

func (hopMovingState) Phase() HopPhase { return HopMoving }
func (hopMovingState) Enter(h *Hop) {
	h.state.PhaseTimer = 0
}
func (hopMovingState) Exit(h *Hop) {}
func (hopMovingState) Update(h *Hop, f Frame) float64 {
	if h.state.PhaseTimer+timeEpsilon >= h.tuning.MoveDuration {
		h.changeState(hopStateWaiting)
		h.state.PhaseTimer += f.Dt
		return 0
	}
	h.state.PhaseTimer += f.Dt
	return h.hopVelocity()
}

func (hopWaitingState) Phase() HopPhase { return HopWaiting }
func (hopWaitingState) Enter(h *Hop) {
	h.state.PhaseTimer = 0
}
func (hopWaitingState) Exit(h *Hop) {}
func (hopWaitingState) Update(h *Hop, f Frame) float64 {
	if h.state.PhaseTimer+timeEpsilon >= h.tuning.WaitDuration {
		h.changeState(hopStateMoving)
		h.state.PhaseTimer += f.Dt
		return h.hopVelocity()
	}
	h.state.PhaseTimer += f.Dt
	return 0
}
