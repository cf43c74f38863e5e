package mutation

// State tracks one optimistic mutation through its lifecycle.
type State int

const (
	Idle State = iota
	Optimistic
	Confirmed
	RolledBack
)

// Pending is one in-flight optimistic mutation: the value before the
// action, the value applied locally, and where the round-trip stands.
type Pending[T any] struct {
	Previous T
	Applied  T

	state State
}

// Begin records the pre-action value and the optimistically applied one.
func Begin[T any](previous, applied T) *Pending[T] {
	return &Pending[T]{
		Previous: previous,
		Applied:  applied,
		state:    Optimistic,
	}
}

// Confirm settles the mutation; the applied value stands.
func (p *Pending[T]) Confirm() T {
	p.state = Confirmed
	return p.Applied
}

// Rollback reverts to the pre-action value. Idempotent: rolling back
// twice yields the same value.
func (p *Pending[T]) Rollback() T {
	p.state = RolledBack
	return p.Previous
}

func (p *Pending[T]) State() State {
	return p.state
}
