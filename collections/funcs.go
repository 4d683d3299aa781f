package collections

// This file contains package-level generic functions for operations that
// transform a Collection[T] into a Collection[U] or a single U.
//
// The Try* variants accept callbacks that can fail. They stop at the first
// error and hand it back untouched, so errors.Is and errors.As see exactly
// what the callback returned.

// Map applies fn to every item, in order, and returns a new Collection[U] of
// the same length.
//
//	full := collections.Map(collections.New("John", "Paul"),
//	    func(n string, _ int) string { return n + " Beatle" })
func Map[T, U any](c *Collection[T], fn func(T, int) U) *Collection[U] {
	out := make([]U, len(c.items))
	for i, item := range c.items {
		out[i] = fn(item, i)
	}
	return &Collection[U]{items: out}
}

// TryMap is [Map] for a fallible fn. On the first error it returns nil and
// that error.
//
//	ports, err := collections.TryMap(raw, func(s string, _ int) (int, error) {
//	    return strconv.Atoi(s)
//	})
func TryMap[T, U any](c *Collection[T], fn func(T, int) (U, error)) (*Collection[U], error) {
	out := make([]U, len(c.items))
	for i, item := range c.items {
		v, err := fn(item, i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return &Collection[U]{items: out}, nil
}

// Pluck extracts a single field U from every item T and returns a new
// Collection[U].
//
//	names := collections.Pluck(users, func(u User) string { return u.Name })
func Pluck[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	return Map(c, func(item T, _ int) U { return fn(item) })
}

// TryFilter is [Collection.Filter] for a fallible predicate. On the first
// error it returns nil and that error.
func TryFilter[T any](c *Collection[T], fn func(T, int) (bool, error)) (*Collection[T], error) {
	out := make([]T, 0, len(c.items))
	for i, item := range c.items {
		keep, err := fn(item, i)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, item)
		}
	}
	return &Collection[T]{items: out}, nil
}

// Reduce folds Collection[T] into a single value of type U, strictly left to
// right: fn(...fn(fn(initial, c[0], 0), c[1], 1)..., c[n-1], n-1).
// An empty collection yields initial.
//
//	total := collections.Reduce(collections.New(8, 6, 7, 5, 3, 0, 9),
//	    func(acc, n, _ int) int { return acc + n }, 0) // 38
func Reduce[T, U any](c *Collection[T], fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range c.items {
		result = fn(result, item, i)
	}
	return result
}

// TryReduce is [Reduce] for a fallible fn. On the first error it returns the
// zero U and that error; later items are not visited.
func TryReduce[T, U any](c *Collection[T], fn func(U, T, int) (U, error), initial U) (U, error) {
	result := initial
	for i, item := range c.items {
		next, err := fn(result, item, i)
		if err != nil {
			var zero U
			return zero, err
		}
		result = next
	}
	return result, nil
}
