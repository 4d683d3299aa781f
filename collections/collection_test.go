package collections_test

import (
	"encoding/json"
	"testing"

	"github.com/hasbyte1/go-closures/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) *collections.Collection[int] { return collections.New(ns...) }

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

type track struct {
	Number int
	Title  string
}

type ratedTrack struct {
	Rate int
}

func (t ratedTrack) Less(o ratedTrack) bool { return t.Rate < o.Rate }

// ─────────────────────────────────────────────────────────────────────────────
// Constructors & accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestNew(t *testing.T) {
	assertSlice(t, collections.New(1, 2, 3).All(), []int{1, 2, 3})
}

func TestFrom_CopiesInput(t *testing.T) {
	s := []string{"a", "b", "c"}
	c := collections.From(s)
	s[0] = "z"
	if c.All()[0] != "a" {
		t.Fatal("From did not copy the slice")
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	c := ints(1, 2, 3)
	got := c.All()
	got[0] = 99
	assertSlice(t, c.All(), []int{1, 2, 3})
}

func TestEmpty(t *testing.T) {
	c := collections.Empty[int]()
	if c.Count() != 0 || !c.IsEmpty() {
		t.Fatal("empty collection should have Count 0")
	}
}

func TestGet(t *testing.T) {
	c := ints(10, 20, 30)
	if v, ok := c.Get(1); !ok || v != 20 {
		t.Fatalf("Get(1) = %v, %v; want 20, true", v, ok)
	}
	if _, ok := c.Get(3); ok {
		t.Fatal("Get out of range should return false")
	}
	if _, ok := c.Get(-1); ok {
		t.Fatal("Get negative index should return false")
	}
}

func TestToJSON(t *testing.T) {
	b, err := ints(1, 2, 3).ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	var got []int
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	assertSlice(t, got, []int{1, 2, 3})
}

func TestString(t *testing.T) {
	if s := ints(1, 2).String(); s != "[1,2]" {
		t.Fatalf("String = %q", s)
	}
	// channels cannot be JSON encoded
	if s := collections.New(make(chan int)).String(); s == "" {
		t.Fatal("String fallback returned empty string")
	}
}

func TestEach(t *testing.T) {
	var seen []int
	ints(5, 6).Each(func(n, i int) { seen = append(seen, n*10+i) })
	assertSlice(t, seen, []int{50, 61})
}

func TestImplode(t *testing.T) {
	got := collections.New("a", "b", "c").Implode("-", func(s string) string { return s })
	if got != "a-b-c" {
		t.Fatalf("Implode = %q", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		fn   func(int, int) bool
		want []int
	}{
		{"below twenty", []int{4, 8, 10, 33, 50, 0, 1, 3}, func(n, _ int) bool { return n < 20 }, []int{4, 8, 10, 0, 1, 3}},
		{"keep all", []int{3, 1, 2}, func(int, int) bool { return true }, []int{3, 1, 2}},
		{"drop all", []int{3, 1, 2}, func(int, int) bool { return false }, []int{}},
		{"by index", []int{7, 8, 9}, func(_, i int) bool { return i != 1 }, []int{7, 9}},
		{"empty input", nil, func(int, int) bool { return true }, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertSlice(t, collections.From(tt.in).Filter(tt.fn).All(), tt.want)
		})
	}
}

func TestFilter_DoesNotMutate(t *testing.T) {
	c := ints(1, 2, 3, 4)
	c.Filter(func(n, _ int) bool { return n%2 == 0 })
	assertSlice(t, c.All(), []int{1, 2, 3, 4})
}

func TestReject(t *testing.T) {
	got := ints(1, 2, 3, 4).Reject(func(n, _ int) bool { return n%2 == 0 }).All()
	assertSlice(t, got, []int{1, 3})
}

func TestPartition(t *testing.T) {
	pass, fail := ints(1, 2, 3, 4, 5).Partition(func(n int) bool { return n > 2 })
	assertSlice(t, pass.All(), []int{3, 4, 5})
	assertSlice(t, fail.All(), []int{1, 2})
}

func TestContainsAndEvery(t *testing.T) {
	c := ints(2, 4, 6)
	if !c.Contains(func(n int) bool { return n == 4 }) {
		t.Fatal("Contains(4) = false")
	}
	if c.Contains(func(n int) bool { return n == 5 }) {
		t.Fatal("Contains(5) = true")
	}
	if !c.Every(func(n int) bool { return n%2 == 0 }) {
		t.Fatal("Every(even) = false")
	}
	if !collections.Empty[int]().Every(func(int) bool { return false }) {
		t.Fatal("Every on empty collection should be true")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

func TestSort(t *testing.T) {
	got := ints(3, 2, 1, 4).Sort(func(a, b int) bool { return a < b }).All()
	assertSlice(t, got, []int{1, 2, 3, 4})
}

func TestSort_EmptyAndSingle(t *testing.T) {
	less := collections.Natural[int]()
	if !collections.Empty[int]().Sort(less).IsEmpty() {
		t.Fatal("sorting empty collection should yield empty collection")
	}
	assertSlice(t, ints(7).Sort(less).All(), []int{7})
}

func TestSort_DoesNotMutate(t *testing.T) {
	c := ints(3, 1, 2)
	c.Sort(collections.Natural[int]())
	assertSlice(t, c.All(), []int{3, 1, 2})
}

func TestSort_Stable(t *testing.T) {
	tracks := collections.New(
		track{2, "b1"}, track{1, "a1"}, track{2, "b2"}, track{1, "a2"}, track{2, "b3"},
	)
	got := collections.Pluck(
		tracks.Sort(func(a, b track) bool { return a.Number < b.Number }),
		func(tr track) string { return tr.Title },
	).All()
	assertSlice(t, got, []string{"a1", "a2", "b1", "b2", "b3"})
}

func TestSortFunc(t *testing.T) {
	got := ints(5, 1, 4).SortFunc(func(a, b int) int { return b - a }).All()
	assertSlice(t, got, []int{5, 4, 1})
}

func TestSortBy(t *testing.T) {
	got := collections.New("ccc", "a", "bb").SortBy(func(s string) float64 { return float64(len(s)) }).All()
	assertSlice(t, got, []string{"a", "bb", "ccc"})
}

func TestSortByDesc_KeepsTieOrder(t *testing.T) {
	got := collections.New("x", "aa", "y", "bb").
		SortByDesc(func(s string) float64 { return float64(len(s)) }).All()
	assertSlice(t, got, []string{"aa", "bb", "x", "y"})
}

func TestSortOrdered(t *testing.T) {
	in := collections.New(ratedTrack{4}, ratedTrack{2}, ratedTrack{5}, ratedTrack{1}, ratedTrack{3})
	got := collections.Pluck(collections.SortOrdered(in), func(r ratedTrack) int { return r.Rate }).All()
	assertSlice(t, got, []int{1, 2, 3, 4, 5})
}

func TestSortNatural(t *testing.T) {
	assertSlice(t, collections.SortNatural(collections.New("Ringo", "George", "John")).All(),
		[]string{"George", "John", "Ringo"})
}

func TestSortByKey(t *testing.T) {
	in := collections.New(track{3, "c"}, track{1, "a"}, track{2, "b"})
	got := collections.SortByKey(in, func(tr track) string { return tr.Title }).All()
	assertSlice(t, got, []track{{1, "a"}, {2, "b"}, {3, "c"}})
}

func TestReverse(t *testing.T) {
	assertSlice(t, ints(1, 2, 3).Reverse().All(), []int{3, 2, 1})
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

func TestReduceMethod(t *testing.T) {
	sum := ints(8, 6, 7, 5, 3, 0, 9).Reduce(func(a, b int) int { return a + b }, 0)
	if sum != 38 {
		t.Fatalf("Reduce = %d; want 38", sum)
	}
}

func TestReduceMethod_Empty(t *testing.T) {
	if got := collections.Empty[int]().Reduce(func(a, b int) int { return a + b }, 42); got != 42 {
		t.Fatalf("Reduce on empty = %d; want initial 42", got)
	}
}

func TestSum(t *testing.T) {
	if s := ints(1, 2, 3).Sum(func(n int) float64 { return float64(n) }); s != 6 {
		t.Fatalf("Sum = %v", s)
	}
}

func TestMinMax(t *testing.T) {
	id := func(n int) float64 { return float64(n) }
	if v, ok := ints(3, 1, 2).Min(id); !ok || v != 1 {
		t.Fatalf("Min = %v, %v", v, ok)
	}
	if v, ok := ints(3, 1, 2).Max(id); !ok || v != 3 {
		t.Fatalf("Max = %v, %v", v, ok)
	}
	if _, ok := collections.Empty[int]().Min(id); ok {
		t.Fatal("Min on empty should return false")
	}
	if _, ok := collections.Empty[int]().Max(id); ok {
		t.Fatal("Max on empty should return false")
	}
}
