package term

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
)

// Literal is the base for primitive literal values. Equal is decidable host
// equality on the payload; for floats it compares IEEE 754 bit patterns, so
// NaN equals NaN and positive and negative zero stay distinct.
type Literal interface {
	fmt.Stringer
	Equal(other Literal) bool
	Hash() uint64

	literalNode()
}

var (
	_ Literal = NatLit{}
	_ Literal = Word64Lit{}
	_ Literal = FloatLit{}
	_ Literal = CharLit{}
	_ Literal = StringLit{}
	_ Literal = NameLit{}
	_ Literal = MetaLit{}
)

// NatLit is an unbounded-in-principle natural; uint64 covers every value the
// engine manipulates in practice.
type NatLit struct {
	N uint64
}

func (l NatLit) literalNode() {}

func (l NatLit) Equal(other Literal) bool {
	o, ok := other.(NatLit)
	return ok && l.N == o.N
}

func (l NatLit) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("NatLit")
	arr = binary.LittleEndian.AppendUint64(arr, l.N)
	_, _ = h.Write(arr)
	return h.Sum64()
}

// Word64Lit is a machine word.
type Word64Lit struct {
	N uint64
}

func (l Word64Lit) literalNode() {}

func (l Word64Lit) Equal(other Literal) bool {
	o, ok := other.(Word64Lit)
	return ok && l.N == o.N
}

func (l Word64Lit) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Word64Lit")
	arr = binary.LittleEndian.AppendUint64(arr, l.N)
	_, _ = h.Write(arr)
	return h.Sum64()
}

// FloatLit is an IEEE 754 double.
type FloatLit struct {
	F float64
}

func (l FloatLit) literalNode() {}

func (l FloatLit) Equal(other Literal) bool {
	o, ok := other.(FloatLit)
	return ok && math.Float64bits(l.F) == math.Float64bits(o.F)
}

func (l FloatLit) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("FloatLit")
	arr = binary.LittleEndian.AppendUint64(arr, math.Float64bits(l.F))
	_, _ = h.Write(arr)
	return h.Sum64()
}

// CharLit is a single code point.
type CharLit struct {
	R rune
}

func (l CharLit) literalNode() {}

func (l CharLit) Equal(other Literal) bool {
	o, ok := other.(CharLit)
	return ok && l.R == o.R
}

func (l CharLit) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("CharLit")
	arr = binary.LittleEndian.AppendUint64(arr, uint64(l.R))
	_, _ = h.Write(arr)
	return h.Sum64()
}

// StringLit is a string literal.
type StringLit struct {
	S string
}

func (l StringLit) literalNode() {}

func (l StringLit) Equal(other Literal) bool {
	o, ok := other.(StringLit)
	return ok && l.S == o.S
}

func (l StringLit) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("StringLit" + l.S))
	return h.Sum64()
}

// NameLit is a quoted global name.
type NameLit struct {
	Name Name
}

func (l NameLit) literalNode() {}

func (l NameLit) Equal(other Literal) bool {
	o, ok := other.(NameLit)
	return ok && l.Name == o.Name
}

func (l NameLit) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("NameLit" + l.Name))
	return h.Sum64()
}

// MetaLit is a quoted metavariable.
type MetaLit struct {
	ID MetaID
}

func (l MetaLit) literalNode() {}

func (l MetaLit) Equal(other Literal) bool {
	o, ok := other.(MetaLit)
	return ok && l.ID == o.ID
}

func (l MetaLit) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("MetaLit")
	arr = binary.LittleEndian.AppendUint64(arr, uint64(l.ID))
	_, _ = h.Write(arr)
	return h.Sum64()
}
