package term

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// SortKind is the base for universe kinds. Set and Prop carry their level as
// a term; SetLit and PropLit carry a known numeral level; Inf is the limit
// universe at a given degree.
type SortKind interface {
	fmt.Stringer
	Hash() uint64

	// transform maps f over any terms embedded in the kind, copying.
	transform(f func(Term) Term) SortKind

	sortNode()
}

var (
	_ SortKind = SetSort{}
	_ SortKind = SetLitSort{}
	_ SortKind = PropSort{}
	_ SortKind = PropLitSort{}
	_ SortKind = InfSort{}
	_ SortKind = UnknownSort{}
)

// SetSort is Set at a level given by a term.
type SetSort struct {
	Level Term
}

func (s SetSort) sortNode() {}

func (s SetSort) transform(f func(Term) Term) SortKind {
	return SetSort{Level: s.Level.Transform(f)}
}

func (s SetSort) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("SetSort")
	arr = binary.LittleEndian.AppendUint64(arr, s.Level.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

// SetLitSort is Set at a literal level: Set0, Set1, and so on.
type SetLitSort struct {
	N uint64
}

func (s SetLitSort) sortNode() {}

func (s SetLitSort) transform(func(Term) Term) SortKind { return s }

func (s SetLitSort) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("SetLitSort")
	arr = binary.LittleEndian.AppendUint64(arr, s.N)
	_, _ = h.Write(arr)
	return h.Sum64()
}

// PropSort is Prop at a level given by a term.
type PropSort struct {
	Level Term
}

func (s PropSort) sortNode() {}

func (s PropSort) transform(f func(Term) Term) SortKind {
	return PropSort{Level: s.Level.Transform(f)}
}

func (s PropSort) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("PropSort")
	arr = binary.LittleEndian.AppendUint64(arr, s.Level.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

// PropLitSort is Prop at a literal level.
type PropLitSort struct {
	N uint64
}

func (s PropLitSort) sortNode() {}

func (s PropLitSort) transform(func(Term) Term) SortKind { return s }

func (s PropLitSort) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("PropLitSort")
	arr = binary.LittleEndian.AppendUint64(arr, s.N)
	_, _ = h.Write(arr)
	return h.Sum64()
}

// InfSort is the limit universe Setω at a given degree.
type InfSort struct {
	N uint64
}

func (s InfSort) sortNode() {}

func (s InfSort) transform(func(Term) Term) SortKind { return s }

func (s InfSort) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("InfSort")
	arr = binary.LittleEndian.AppendUint64(arr, s.N)
	_, _ = h.Write(arr)
	return h.Sum64()
}

// UnknownSort is a sort the engine cannot inspect.
type UnknownSort struct{}

func (s UnknownSort) sortNode() {}

func (s UnknownSort) transform(func(Term) Term) SortKind { return s }

func (s UnknownSort) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("UnknownSort"))
	return h.Sum64()
}
