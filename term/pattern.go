package term

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Pattern is the base for the left-hand-side patterns of match clauses.
// Variable and absurd patterns carry the de Bruijn index of the clause
// telescope variable they bind, counted from the innermost entry.
type Pattern interface {
	fmt.Stringer
	Hash() uint64

	// transform maps f over any terms embedded in the pattern, copying.
	transform(f func(Term) Term) Pattern

	patternNode()
}

var (
	_ Pattern = (*ConP)(nil)
	_ Pattern = (*DotP)(nil)
	_ Pattern = (*VarP)(nil)
	_ Pattern = (*LitP)(nil)
	_ Pattern = (*ProjP)(nil)
	_ Pattern = (*AbsurdP)(nil)
)

// PatArg pairs a pattern with argument metadata, mirroring Arg.
type PatArg struct {
	Info    ArgInfo
	Pattern Pattern
}

// ConP matches a constructor applied to subpatterns.
type ConP struct {
	Name Name
	Pats []PatArg
}

func (p *ConP) patternNode() {}

func (p *ConP) transform(f func(Term) Term) Pattern {
	copied := *p
	copied.Pats = make([]PatArg, len(p.Pats))
	for i, a := range p.Pats {
		copied.Pats[i] = PatArg{Info: a.Info, Pattern: a.Pattern.transform(f)}
	}
	return &copied
}

func (p *ConP) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("ConP" + p.Name)
	for _, a := range p.Pats {
		arr = append(arr, byte(a.Info.Visibility), byte(a.Info.Relevance))
		arr = binary.LittleEndian.AppendUint64(arr, a.Pattern.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

// DotP is a forced (dot) pattern whose shape is dictated by typing; it
// matches whatever its term elaborates to and binds nothing.
type DotP struct {
	Term Term
}

func (p *DotP) patternNode() {}

func (p *DotP) transform(f func(Term) Term) Pattern {
	return &DotP{Term: p.Term.Transform(f)}
}

func (p *DotP) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("DotP")
	arr = binary.LittleEndian.AppendUint64(arr, p.Term.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

// VarP binds the telescope variable at Index.
type VarP struct {
	Index int
}

func (p *VarP) patternNode() {}

func (p *VarP) transform(func(Term) Term) Pattern { return &VarP{Index: p.Index} }

func (p *VarP) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("VarP")
	arr = binary.LittleEndian.AppendUint64(arr, uint64(p.Index))
	_, _ = h.Write(arr)
	return h.Sum64()
}

// LitP matches a literal exactly.
type LitP struct {
	Value Literal
}

func (p *LitP) patternNode() {}

func (p *LitP) transform(func(Term) Term) Pattern { return &LitP{Value: p.Value} }

func (p *LitP) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("LitP")
	arr = binary.LittleEndian.AppendUint64(arr, p.Value.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

// ProjP is a copattern projecting a record field.
type ProjP struct {
	Name Name
}

func (p *ProjP) patternNode() {}

func (p *ProjP) transform(func(Term) Term) Pattern { return &ProjP{Name: p.Name} }

func (p *ProjP) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("ProjP" + p.Name))
	return h.Sum64()
}

// AbsurdP refutes the telescope variable at Index; its clause has no body.
type AbsurdP struct {
	Index int
}

func (p *AbsurdP) patternNode() {}

func (p *AbsurdP) transform(func(Term) Term) Pattern { return &AbsurdP{Index: p.Index} }

func (p *AbsurdP) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("AbsurdP")
	arr = binary.LittleEndian.AppendUint64(arr, uint64(p.Index))
	_, _ = h.Write(arr)
	return h.Sum64()
}

// TelescopeEntry declares one clause-local binding. The type of entry i may
// mention the i entries before it. Binder is alpha-irrelevant.
type TelescopeEntry struct {
	Binder string
	Type   Arg
}

// Telescope is the ordered list of bindings a clause brings into scope.
type Telescope []TelescopeEntry

// Clause is one alternative of a pattern-matching lambda. Pats and RHS are
// in scope of the telescope, so inside them index 0 is the last telescope
// entry. An absurd clause refutes its patterns and has no right-hand side:
// Absurd is set and RHS is nil.
type Clause struct {
	Telescope Telescope
	Pats      []PatArg
	RHS       Term
	Absurd    bool
}

func (c Clause) transform(f func(Term) Term) Clause {
	copied := c
	copied.Telescope = make(Telescope, len(c.Telescope))
	for i, e := range c.Telescope {
		copied.Telescope[i] = TelescopeEntry{
			Binder: e.Binder,
			Type:   Arg{Info: e.Type.Info, Term: e.Type.Term.Transform(f)},
		}
	}
	copied.Pats = make([]PatArg, len(c.Pats))
	for i, a := range c.Pats {
		copied.Pats[i] = PatArg{Info: a.Info, Pattern: a.Pattern.transform(f)}
	}
	if c.RHS != nil {
		copied.RHS = c.RHS.Transform(f)
	}
	return copied
}

func (c Clause) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Clause")
	for _, e := range c.Telescope {
		arr = append(arr, byte(e.Type.Info.Visibility), byte(e.Type.Info.Relevance))
		arr = binary.LittleEndian.AppendUint64(arr, e.Type.Term.Hash())
	}
	for _, a := range c.Pats {
		arr = append(arr, byte(a.Info.Visibility), byte(a.Info.Relevance))
		arr = binary.LittleEndian.AppendUint64(arr, a.Pattern.Hash())
	}
	if c.Absurd {
		arr = append(arr, 1)
	} else {
		arr = binary.LittleEndian.AppendUint64(arr, c.RHS.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}
