package automaton

import (
	"sort"

	"github.com/ironautomata/eudoxus/internal/bitset"
)

// SetKind identifies which of the three representations an InputSet uses.
type SetKind int

const (
	// Epsilon matches every input byte and stores no values.
	Epsilon SetKind = iota
	// Vector stores a small sorted, deduplicated list of byte values.
	Vector
	// Bitmap stores a 256-bit presence bitmap.
	Bitmap
)

// String renders the set kind for diagnostics.
func (k SetKind) String() string {
	switch k {
	case Epsilon:
		return "epsilon"
	case Vector:
		return "vector"
	case Bitmap:
		return "bitmap"
	default:
		return "unknown"
	}
}

// InputSet is an edge's input-byte set, represented as epsilon (matches
// anything, stores nothing), a sorted vector, or a 256-bit bitmap. The
// vector and bitmap representations are pure conversions of each other;
// Matches/Values behave identically regardless of which is in use.
type InputSet struct {
	kind   SetKind
	vector []byte
	bitmap bitset.Set256
}

// EpsilonSet returns the input set that matches every byte.
func EpsilonSet() InputSet { return InputSet{kind: Epsilon} }

// VectorSet returns a vector-form input set containing the given values
// (deduplicated and sorted).
func VectorSet(values ...byte) InputSet {
	v := append([]byte(nil), values...)
	sort.Slice(v, func(i, j int) bool { return v[i] < v[j] })
	v = dedupSorted(v)
	return InputSet{kind: Vector, vector: v}
}

// BitmapSet returns a bitmap-form input set containing the given values.
func BitmapSet(values ...byte) InputSet {
	var b bitset.Set256
	for _, c := range values {
		b.Set(c)
	}
	return InputSet{kind: Bitmap, bitmap: b}
}

func dedupSorted(v []byte) []byte {
	if len(v) < 2 {
		return v
	}
	out := v[:1]
	for _, c := range v[1:] {
		if c != out[len(out)-1] {
			out = append(out, c)
		}
	}
	return out
}

// Kind reports which representation is in use.
func (s InputSet) Kind() SetKind { return s.kind }

// IsEpsilon reports whether s matches every byte.
func (s InputSet) IsEpsilon() bool { return s.kind == Epsilon }

// Matches reports whether byte c is in s (or s is epsilon).
func (s InputSet) Matches(c byte) bool {
	switch s.kind {
	case Epsilon:
		return true
	case Vector:
		i := sort.Search(len(s.vector), func(i int) bool { return s.vector[i] >= c })
		return i < len(s.vector) && s.vector[i] == c
	case Bitmap:
		return s.bitmap.Test(c)
	default:
		return false
	}
}

// Values returns, in ascending order, every byte this set contains. For an
// epsilon set it returns nil — epsilon stores no values; it matches by
// virtue of its kind, not by enumeration.
func (s InputSet) Values() []byte {
	switch s.kind {
	case Vector:
		return append([]byte(nil), s.vector...)
	case Bitmap:
		return s.bitmap.Values()
	default:
		return nil
	}
}

// Len returns the number of distinct byte values this set contains (0 for
// epsilon, which represents "any" rather than an enumerated 256 values).
func (s InputSet) Len() int {
	switch s.kind {
	case Vector:
		return len(s.vector)
	case Bitmap:
		return s.bitmap.Count()
	default:
		return 0
	}
}

// AsBitmap converts s to bitmap form, a no-op if it already is one.
func (s InputSet) AsBitmap() InputSet {
	if s.kind == Bitmap {
		return s
	}
	return BitmapSet(s.Values()...)
}

// AsVector converts s to vector form, a no-op if it already is one.
func (s InputSet) AsVector() InputSet {
	if s.kind == Vector {
		return s
	}
	return VectorSet(s.Values()...)
}

// Edge is a labeled transition from a node to Target, advancing the input
// cursor iff Advance, and matching an input byte c iff Set.Matches(c).
type Edge struct {
	Target  NodeID
	Advance bool
	Set     InputSet
}

// NewEdge returns an advancing edge to target with the given input set.
func NewEdge(target NodeID, set InputSet) Edge {
	return Edge{Target: target, Advance: true, Set: set}
}
