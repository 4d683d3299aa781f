// Package collections provides a generic, immutable Collection type and the
// higher-order operations built on it: ordering, mapping, filtering and
// folding.
//
// # Overview
//
// The central type is [Collection][T], a wrapper around a copied slice of T:
//
//	names := collections.Map(
//	    collections.New("John", "Paul").Filter(func(n string, _ int) bool { return n != "" }),
//	    func(n string, _ int) string { return n + " Beatle" },
//	) // → ["John Beatle", "Paul Beatle"]
//
// # Immutability
//
// Every operation returns a *new* Collection (or a scalar) and leaves its
// receiver untouched. Collections can therefore be shared between goroutines
// without locking.
//
// # Ordering
//
// All sorts are stable: items that compare equal keep their input order.
// An ordering can be supplied in three ways:
//
//	c.Sort(func(a, b Track) bool { return a.Number < b.Number })     // less-than
//	c.SortFunc(func(a, b Track) int { return a.Number - b.Number })   // three-way
//	collections.SortOrdered(c)                                        // T has Less(T) bool
//
// [Less] values compose with [Less.Reverse] and [Less.Then], and [ByKey]
// builds one from a derived key.
//
// # Callbacks that fail
//
// [TryMap], [TryFilter] and [TryReduce] accept callbacks that return an
// error. They stop at the first failure and return that error exactly as the
// callback produced it; no partial result is returned.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions:
// [Map], [TryMap], [Pluck], [Reduce], [TryReduce].
package collections
