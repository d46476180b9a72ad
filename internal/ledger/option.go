package ledger

// Option is a filter parameter that is either Any (no restriction) or one specific value.
type Option[T comparable] struct {
	value T
	set   bool
}

// Any returns the wildcard option.
func Any[T comparable]() Option[T] {
	return Option[T]{}
}

// Only returns an option restricted to v.
func Only[T comparable](v T) Option[T] {
	return Option[T]{value: v, set: true}
}

// IsAny reports whether the option is the wildcard.
func (o Option[T]) IsAny() bool {
	return !o.set
}

// Get returns the specific value and true, or the zero value and false for Any.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.set
}

// Matches reports whether v satisfies the option.
func (o Option[T]) Matches(v T) bool {
	return !o.set || o.value == v
}

// Direction distinguishes credits from debits.
type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

func directionOf(r Record) Direction {
	if r.IsCredit {
		return DirectionCredit
	}
	return DirectionDebit
}
