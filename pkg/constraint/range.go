package constraint

import (
	"cmp"
	"fmt"
)

// Bound describes one side of a range.
type Bound int

const (
	// Unbounded accepts everything on that side.
	Unbounded Bound = iota
	// Included accepts the bound value itself.
	Included
	// Excluded rejects the bound value itself.
	Excluded
)

func (b Bound) String() string {
	switch b {
	case Unbounded:
		return "unbounded"
	case Included:
		return "included"
	case Excluded:
		return "excluded"
	default:
		return fmt.Sprintf("Bound(%d)", int(b))
	}
}

// RangeConstraint is an interval over an ordered type.
// The zero value is the full range.
type RangeConstraint[T cmp.Ordered] struct {
	LowKind  Bound
	Low      T
	HighKind Bound
	High     T
}

// Compile returns the interval test. Comparisons use the language operators,
// so a NaN never satisfies a bounded side.
func (r RangeConstraint[T]) Compile() Predicate[T] {
	lowKind, low, highKind, high := r.LowKind, r.Low, r.HighKind, r.High
	return func(x T) bool {
		switch lowKind {
		case Included:
			if !(low <= x) {
				return false
			}
		case Excluded:
			if !(low < x) {
				return false
			}
		}
		switch highKind {
		case Included:
			return x <= high
		case Excluded:
			return x < high
		}
		return true
	}
}

func (r RangeConstraint[T]) String() string {
	var b []byte
	switch r.LowKind {
	case Included:
		b = fmt.Appendf(b, "[%v", r.Low)
	case Excluded:
		b = fmt.Appendf(b, "(%v", r.Low)
	default:
		b = append(b, "(-inf"...)
	}
	b = append(b, ", "...)
	switch r.HighKind {
	case Included:
		b = fmt.Appendf(b, "%v]", r.High)
	case Excluded:
		b = fmt.Appendf(b, "%v)", r.High)
	default:
		b = append(b, "+inf)"...)
	}
	return string(b)
}

// Between creates a range with explicit bound kinds on each side.
// The value passed for an Unbounded side is ignored.
func Between[T cmp.Ordered](lowKind Bound, low T, highKind Bound, high T) RangeConstraint[T] {
	return RangeConstraint[T]{LowKind: lowKind, Low: low, HighKind: highKind, High: high}
}

// Range creates the half-open range low <= x < high.
func Range[T cmp.Ordered](low, high T) RangeConstraint[T] {
	return Between(Included, low, Excluded, high)
}

// RangeInclusive creates the closed range low <= x <= high.
func RangeInclusive[T cmp.Ordered](low, high T) RangeConstraint[T] {
	return Between(Included, low, Included, high)
}

// From creates the range low <= x.
func From[T cmp.Ordered](low T) RangeConstraint[T] {
	var zero T
	return Between(Included, low, Unbounded, zero)
}

// To creates the range x < high.
func To[T cmp.Ordered](high T) RangeConstraint[T] {
	var zero T
	return Between(Unbounded, zero, Excluded, high)
}

// ToInclusive creates the range x <= high.
func ToInclusive[T cmp.Ordered](high T) RangeConstraint[T] {
	var zero T
	return Between(Unbounded, zero, Included, high)
}

// Full creates the range that accepts every value.
func Full[T cmp.Ordered]() RangeConstraint[T] {
	return RangeConstraint[T]{}
}

// Min accepts values greater than or equal to lower.
func Min[T cmp.Ordered](lower T) RangeConstraint[T] { return From(lower) }

// Max accepts values less than or equal to upper.
func Max[T cmp.Ordered](upper T) RangeConstraint[T] { return ToInclusive(upper) }

// MinMax accepts values in [lower, upper].
func MinMax[T cmp.Ordered](lower, upper T) RangeConstraint[T] { return RangeInclusive(lower, upper) }

// RangeBy creates a range over any type using a three-way comparison
// function (negative, zero, positive), for types such as time.Time that are
// ordered but not cmp.Ordered.
func RangeBy[T any](compare func(a, b T) int, lowKind Bound, low T, highKind Bound, high T) Constraint[T] {
	return Func(func(x T) bool {
		switch lowKind {
		case Included:
			if compare(low, x) > 0 {
				return false
			}
		case Excluded:
			if compare(low, x) >= 0 {
				return false
			}
		}
		switch highKind {
		case Included:
			return compare(x, high) <= 0
		case Excluded:
			return compare(x, high) < 0
		}
		return true
	})
}
