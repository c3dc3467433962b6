package constraint

import "slices"

// SetConstraint accepts exactly its members.
type SetConstraint[T comparable] struct {
	members []T
}

// Set creates a constraint that accepts any of values.
// The values are copied.
func Set[T comparable](values ...T) SetConstraint[T] {
	return SetConstraint[T]{members: slices.Clone(values)}
}

// Compile returns a membership test by value equality. Small sets are
// scanned; larger ones are indexed.
func (s SetConstraint[T]) Compile() Predicate[T] {
	members := slices.Clone(s.members)
	if len(members) <= 8 {
		return func(x T) bool { return slices.Contains(members, x) }
	}
	index := make(map[T]struct{}, len(members))
	for _, m := range members {
		index[m] = struct{}{}
	}
	return func(x T) bool {
		_, ok := index[x]
		return ok
	}
}

// Members returns a copy of the accepted values in declaration order.
func (s SetConstraint[T]) Members() []T {
	return slices.Clone(s.members)
}

// SetFunc creates a membership constraint for types that are not comparable
// with ==, using eq to compare the candidate against each member.
func SetFunc[T any](eq func(a, b T) bool, values ...T) Constraint[T] {
	members := slices.Clone(values)
	return Func(func(x T) bool {
		return slices.ContainsFunc(members, func(m T) bool { return eq(m, x) })
	})
}
