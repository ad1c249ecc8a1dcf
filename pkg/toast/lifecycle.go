package toast

// State represents a toast's position in its display lifecycle.
type State string

const (
	// StateVisible is the initial state: the toast is shown to the user.
	StateVisible State = "visible"
	// StateClosing means the toast has been dismissed and is playing its
	// exit transition; the entry is still present in the queue.
	StateClosing State = "closing"
	// StateRemoved is terminal: the entry has been deleted from the queue.
	StateRemoved State = "removed"
)

// transitions defines the allowed lifecycle moves. A stale timer firing for
// an entry that already moved on resolves to an invalid transition and is
// silently dropped.
var transitions = map[State][]State{
	StateVisible: {StateClosing, StateRemoved},
	StateClosing: {StateRemoved},
}

// CanTransition reports whether moving from s to target is a valid
// lifecycle transition.
func (s State) CanTransition(target State) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}
