// Package constraint compiles validity rules into plain predicates.
//
// A rule can be a range with inclusive, exclusive or absent bounds, a finite
// set of acceptable values, or an arbitrary function. Every rule compiles to
// a Predicate, so callers evaluating rules never need to know which kind of
// rule they hold.
//
// Basic usage:
//
//	inRange := constraint.Range(4, 9).Compile()   // 4 <= x < 9
//	inSet := constraint.Set(2, 6, 7).Compile()     // x == 2 || x == 6 || x == 7
//	even := constraint.Func(func(x int) bool { return x%2 == 0 }).Compile()
//
//	inRange(4) // true
//	inSet(3)   // false
//	even(10)   // true
//
// Convenience rules cover the common shapes:
//
//	constraint.Min(1)         // 1 <= x
//	constraint.Max(100)       // x <= 100
//	constraint.MinMax(1, 100) // 1 <= x <= 100
//	constraint.NotEqual(0)    // x != 0
//
// Compilation never fails and compiled predicates never fail: they are total
// functions over the value type. Sets copy their members, so mutating the
// caller's slice after compilation has no effect.
package constraint
