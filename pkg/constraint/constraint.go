package constraint

// Predicate reports whether a parsed value is acceptable.
type Predicate[T any] func(T) bool

// Constraint defines the contract for validity rules.
// Implementations close over whatever data they need (bounds, members, a
// caller function) and hand back a uniform Predicate.
type Constraint[T any] interface {
	Compile() Predicate[T]
}

// Compile satisfies Constraint, so a Predicate can be used wherever a
// Constraint is expected.
func (p Predicate[T]) Compile() Predicate[T] { return p }

// FuncConstraint wraps a caller-supplied function.
type FuncConstraint[T any] struct {
	fn func(T) bool
}

// Compile returns the wrapped function unchanged.
func (c FuncConstraint[T]) Compile() Predicate[T] { return c.fn }

// Func creates a constraint from an arbitrary function.
func Func[T any](fn func(T) bool) Constraint[T] {
	return FuncConstraint[T]{fn: fn}
}

// NotEqual creates a constraint that rejects exactly one value.
func NotEqual[T comparable](excluded T) Constraint[T] {
	return Func(func(x T) bool { return x != excluded })
}

// All combines constraints into one that passes only when every member
// passes. Members are evaluated in order and evaluation stops at the first
// failure.
func All[T any](cs ...Constraint[T]) Constraint[T] {
	preds := make([]Predicate[T], 0, len(cs))
	for _, c := range cs {
		preds = append(preds, c.Compile())
	}
	return Func(func(x T) bool {
		for _, p := range preds {
			if !p(x) {
				return false
			}
		}
		return true
	})
}

// Any combines constraints into one that passes when at least one member
// passes. An empty Any never passes.
func Any[T any](cs ...Constraint[T]) Constraint[T] {
	preds := make([]Predicate[T], 0, len(cs))
	for _, c := range cs {
		preds = append(preds, c.Compile())
	}
	return Func(func(x T) bool {
		for _, p := range preds {
			if p(x) {
				return true
			}
		}
		return false
	})
}

// Not inverts a constraint.
func Not[T any](c Constraint[T]) Constraint[T] {
	p := c.Compile()
	return Func(func(x T) bool { return !p(x) })
}
