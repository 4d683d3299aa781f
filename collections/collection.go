package collections

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Collection is a generic, immutable wrapper around a slice of T.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged, so the same value may be read from many
// goroutines at once.
//
// # Creating a collection
//
//	c := collections.New(3, 2, 1, 4)
//	c := collections.From([]string{"John", "Paul"})
//	c := collections.Empty[int]()
//
// # Method chaining
//
//	small := collections.New(4, 8, 10, 33, 50, 0, 1, 3).
//	    Filter(func(n, _ int) bool { return n < 20 }).
//	    Sort(collections.Natural[int]())
//
// Callbacks receive (item, index). They are called synchronously, in input
// order, and are not retained after the call returns.
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// Get returns the item at index together with a presence flag.
func (c *Collection[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// String returns a JSON representation of the collection, falling back to
// %v formatting for items JSON cannot encode.
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// Each calls fn(item, index) for every item.
func (c *Collection[T]) Each(fn func(T, int)) {
	for i, item := range c.items {
		fn(item, i)
	}
}

// Implode joins all items into a string using sep, converting each item with fn.
func (c *Collection[T]) Implode(sep string, fn func(T) string) string {
	parts := make([]string, len(c.items))
	for i, item := range c.items {
		parts[i] = fn(item)
	}
	return strings.Join(parts, sep)
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with only the items for which fn(item, index)
// returns true, in their original relative order.
func (c *Collection[T]) Filter(fn func(T, int) bool) *Collection[T] {
	out := make([]T, 0, len(c.items))
	for i, item := range c.items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return &Collection[T]{items: out}
}

// Reject is the complement of [Collection.Filter].
func (c *Collection[T]) Reject(fn func(T, int) bool) *Collection[T] {
	return c.Filter(func(item T, i int) bool { return !fn(item, i) })
}

// Partition splits the collection into the items for which fn returns true
// and the rest. Both halves keep input order.
func (c *Collection[T]) Partition(fn func(T) bool) (*Collection[T], *Collection[T]) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range c.items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return &Collection[T]{items: pass}, &Collection[T]{items: fail}
}

// Contains reports whether at least one item satisfies fn.
func (c *Collection[T]) Contains(fn func(T) bool) bool {
	return slices.ContainsFunc(c.items, fn)
}

// Every reports whether all items satisfy fn. An empty collection passes.
func (c *Collection[T]) Every(fn func(T) bool) bool {
	for _, item := range c.items {
		if !fn(item) {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a new collection sorted by the given less function.
// The sort is stable: equal elements preserve their original order.
func (c *Collection[T]) Sort(less Less[T]) *Collection[T] {
	return c.SortFunc(FromLess(less))
}

// SortFunc is [Collection.Sort] for a three-way comparator.
func (c *Collection[T]) SortFunc(compare Comparator[T]) *Collection[T] {
	out := c.All()
	slices.SortStableFunc(out, compare)
	return &Collection[T]{items: out}
}

// SortBy returns a new collection sorted in ascending order by the float64
// value extracted by fn.
func (c *Collection[T]) SortBy(fn func(T) float64) *Collection[T] {
	return c.Sort(ByKey(fn))
}

// SortByDesc returns a new collection sorted in descending order by fn.
func (c *Collection[T]) SortByDesc(fn func(T) float64) *Collection[T] {
	return c.Sort(ByKey(fn).Reverse())
}

// Reverse returns a new collection with items in reversed order.
func (c *Collection[T]) Reverse() *Collection[T] {
	out := c.All()
	slices.Reverse(out)
	return &Collection[T]{items: out}
}

// SortOrdered sorts a collection whose items declare their own ordering.
func SortOrdered[T Ordered[T]](c *Collection[T]) *Collection[T] {
	return c.Sort(Intrinsic[T]())
}

// SortNatural sorts a collection of [cmp.Ordered] items in ascending order.
func SortNatural[T cmp.Ordered](c *Collection[T]) *Collection[T] {
	return c.SortFunc(cmp.Compare[T])
}

// SortByKey sorts items in ascending order of the key extracted by fn.
//
//	byName := collections.SortByKey(users, func(u User) string { return u.Name })
func SortByKey[T any, K cmp.Ordered](c *Collection[T], fn func(T) K) *Collection[T] {
	return c.Sort(ByKey(fn))
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds the collection left to right into a single value of type T.
//
// For folds that change the type (T → U), use the package-level [Reduce].
func (c *Collection[T]) Reduce(fn func(carry, item T) T, initial T) T {
	result := initial
	for _, item := range c.items {
		result = fn(result, item)
	}
	return result
}

// Sum returns the sum of all items using fn to extract numeric values.
func (c *Collection[T]) Sum(fn func(T) float64) float64 {
	return Reduce(c, func(acc float64, item T, _ int) float64 { return acc + fn(item) }, 0)
}

// Min returns the item with the smallest value extracted by fn; the first
// one wins a tie. Returns the zero value and false if the collection is empty.
func (c *Collection[T]) Min(fn func(T) float64) (T, bool) {
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	minItem, minVal := c.items[0], fn(c.items[0])
	for _, item := range c.items[1:] {
		if v := fn(item); v < minVal {
			minVal, minItem = v, item
		}
	}
	return minItem, true
}

// Max returns the item with the largest value extracted by fn; the first
// one wins a tie. Returns the zero value and false if the collection is empty.
func (c *Collection[T]) Max(fn func(T) float64) (T, bool) {
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	maxItem, maxVal := c.items[0], fn(c.items[0])
	for _, item := range c.items[1:] {
		if v := fn(item); v > maxVal {
			maxVal, maxItem = v, item
		}
	}
	return maxItem, true
}
