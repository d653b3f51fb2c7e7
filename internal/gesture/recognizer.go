package gesture

// Decision is the outcome of feeding one scroll event to the recognizer.
type Decision int

const (
	// DecisionPass leaves the recognizer idle and passes the event through.
	DecisionPass Decision = iota
	// DecisionBegin starts a new gesture; the event is consumed and moved on.
	DecisionBegin
	// DecisionContinue feeds the event to the existing gesture; consumed.
	DecisionContinue
	// DecisionEnd terminates the active gesture; the event passes through.
	DecisionEnd
)

// String returns the string representation of the decision
func (d Decision) String() string {
	switch d {
	case DecisionPass:
		return "pass"
	case DecisionBegin:
		return "begin"
	case DecisionContinue:
		return "continue"
	case DecisionEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Consumed reports whether the event must be withheld from the application.
func (d Decision) Consumed() bool {
	return d == DecisionBegin || d == DecisionContinue
}

// Transition is the pure recognizer step: given whether a gesture is
// currently active plus the incoming event and modifier state, it decides
// the state change and the consume/pass-through outcome. It has no side
// effects; the engine applies them.
//
// A gesture begins only on an event with a nonzero horizontal delta, the
// activation modifier held, and horizontal dominance (|dy| <= |dx|). The
// dominance test runs at begin only: once active, any event with dx != 0
// and the activation modifier still held continues the gesture.
func Transition(active bool, ev ScrollEvent, mods Modifiers) Decision {
	if !active {
		if ev.Dx == 0 || !mods.Activation {
			return DecisionPass
		}
		if abs(ev.Dy) > abs(ev.Dx) {
			// Looks more vertical than horizontal; reject the start.
			return DecisionPass
		}
		return DecisionBegin
	}

	if ev.Dx == 0 || !mods.Activation {
		return DecisionEnd
	}
	return DecisionContinue
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
