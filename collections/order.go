package collections

import "cmp"

// Less reports whether a must be placed before b.
//
// A Less must be a strict weak ordering: irreflexive, transitive and
// consistent. Sorting with anything else produces an unspecified (but
// never panicking) order.
type Less[T any] func(a, b T) bool

// Comparator is the three-way form of an ordering: negative when a sorts
// before b, positive when after, zero on a tie.
type Comparator[T any] func(a, b T) int

// Ordered is implemented by types that carry their own default ordering.
//
//	type Track struct{ Rate int }
//	func (t Track) Less(o Track) bool { return t.Rate < o.Rate }
//
//	collections.SortOrdered(tracks)
type Ordered[T any] interface {
	Less(other T) bool
}

// Natural returns the ascending ordering of a [cmp.Ordered] type.
// NaN sorts before every other float, as in [cmp.Less].
func Natural[T cmp.Ordered]() Less[T] {
	return cmp.Less[T]
}

// Intrinsic returns the ordering declared by T itself.
func Intrinsic[T Ordered[T]]() Less[T] {
	return func(a, b T) bool { return a.Less(b) }
}

// ByKey orders items by the key extracted from each of them.
//
//	byName := collections.ByKey(func(u User) string { return u.Name })
func ByKey[T any, K cmp.Ordered](key func(T) K) Less[T] {
	return func(a, b T) bool { return cmp.Less(key(a), key(b)) }
}

// FromLess converts a less-than ordering into a [Comparator].
func FromLess[T any](less Less[T]) Comparator[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Less converts the comparator into a less-than ordering.
func (c Comparator[T]) Less() Less[T] {
	return func(a, b T) bool { return c(a, b) < 0 }
}

// Reverse returns the descending counterpart of l. Ties stay ties.
func (l Less[T]) Reverse() Less[T] {
	return func(a, b T) bool { return l(b, a) }
}

// Then breaks ties of l using next.
//
//	byLastThenFirst := collections.ByKey(lastName).Then(collections.ByKey(firstName))
func (l Less[T]) Then(next Less[T]) Less[T] {
	return func(a, b T) bool {
		if l(a, b) {
			return true
		}
		if l(b, a) {
			return false
		}
		return next(a, b)
	}
}

// IsSorted reports whether no adjacent pair of items is out of order under
// less.
func IsSorted[T any](c *Collection[T], less Less[T]) bool {
	for i := 1; i < len(c.items); i++ {
		if less(c.items[i], c.items[i-1]) {
			return false
		}
	}
	return true
}
