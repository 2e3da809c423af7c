// Package term models the reflected syntax of the proof engine's
// intermediate language: terms, argument metadata, universe sorts, literals,
// patterns and match clauses. Bound variables are de Bruijn indices counted
// from the innermost binder; binder name strings are display hints only and
// never affect equality or hashing.
package term

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Name identifies a global definition, constructor or projection. Names are
// globally unique and only ever compared, never resolved here.
type Name string

// MetaID identifies an unresolved metavariable.
type MetaID uint64

type Visibility uint8

const (
	Visible Visibility = iota
	Hidden
	Instance
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Hidden:
		return "hidden"
	case Instance:
		return "instance"
	default:
		return "invalid"
	}
}

type Relevance uint8

const (
	Relevant Relevance = iota
	Irrelevant
)

func (r Relevance) String() string {
	switch r {
	case Relevant:
		return "relevant"
	case Irrelevant:
		return "irrelevant"
	default:
		return "invalid"
	}
}

// ArgInfo is the metadata attached to an argument position. The zero value
// is a plain visible, relevant argument.
type ArgInfo struct {
	Visibility Visibility
	Relevance  Relevance
}

// Arg pairs a term with its argument metadata. Comparison logic preserves
// the metadata but never branches on it.
type Arg struct {
	Info ArgInfo
	Term Term
}

// Abs is a term under one extra binder: inside Term, index 0 refers to the
// variable bound here. Binder is alpha-irrelevant.
type Abs struct {
	Binder string
	Term   Term
}

// Term is the base for all term nodes.
//
// The following nodes exist:
//
//	Var:     bound variable applied to arguments
//	Def:     global definition applied to arguments
//	Con:     data constructor applied to arguments
//	Lam:     single-argument abstraction
//	PatLam:  pattern-matching abstraction applied to arguments
//	Pi:      dependent function type
//	Sort:    universe
//	Lit:     primitive literal
//	Meta:    unresolved metavariable applied to arguments
//	Unknown: opaque term that cannot be inspected
type Term interface {
	fmt.Stringer
	// Describe is what to call this term in diagnostics.
	Describe() string

	// Transform should, in order:
	//  - copy the term
	//  - call Transform(f) on any child terms (thus copying them too)
	//  - call f on this Term
	// In practice this means copying the entire tree, applying f to each
	// node bottom-up, and returning the result.
	Transform(f func(Term) Term) Term
	Hash() uint64

	termNode()
}

var (
	_ Term = (*Var)(nil)
	_ Term = (*Def)(nil)
	_ Term = (*Con)(nil)
	_ Term = (*Lam)(nil)
	_ Term = (*PatLam)(nil)
	_ Term = (*Pi)(nil)
	_ Term = (*Sort)(nil)
	_ Term = (*Lit)(nil)
	_ Term = (*Meta)(nil)
	_ Term = (*Unknown)(nil)
)

// Var is a bound variable reference applied to zero or more arguments.
// Index counts binders outward from the innermost one in scope.
type Var struct {
	Index int
	Args  []Arg
}

func (e *Var) termNode()        {}
func (e *Var) Describe() string { return "variable" }

func (e *Var) Transform(f func(Term) Term) Term {
	copied := *e
	copied.Args = transformArgs(e.Args, f)
	return f(&copied)
}

func (e *Var) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Var")
	arr = binary.LittleEndian.AppendUint64(arr, uint64(e.Index))
	arr = appendArgHashes(arr, e.Args)
	_, _ = h.Write(arr)
	return h.Sum64()
}

// Def references a global definition by name, applied to arguments.
type Def struct {
	Name Name
	Args []Arg
}

func (e *Def) termNode()        {}
func (e *Def) Describe() string { return "definition" }

func (e *Def) Transform(f func(Term) Term) Term {
	copied := *e
	copied.Args = transformArgs(e.Args, f)
	return f(&copied)
}

func (e *Def) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Def" + e.Name)
	arr = appendArgHashes(arr, e.Args)
	_, _ = h.Write(arr)
	return h.Sum64()
}

// Con references a data constructor by name, applied to arguments.
type Con struct {
	Name Name
	Args []Arg
}

func (e *Con) termNode()        {}
func (e *Con) Describe() string { return "constructor" }

func (e *Con) Transform(f func(Term) Term) Term {
	copied := *e
	copied.Args = transformArgs(e.Args, f)
	return f(&copied)
}

func (e *Con) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Con" + e.Name)
	arr = appendArgHashes(arr, e.Args)
	_, _ = h.Write(arr)
	return h.Sum64()
}

// Lam is a single-argument abstraction. Body binds one variable at index 0.
type Lam struct {
	Visibility Visibility
	Body       Abs
}

func (e *Lam) termNode()        {}
func (e *Lam) Describe() string { return "lambda abstraction" }

func (e *Lam) Transform(f func(Term) Term) Term {
	copied := *e
	copied.Body.Term = e.Body.Term.Transform(f)
	return f(&copied)
}

func (e *Lam) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Lam")
	arr = append(arr, byte(e.Visibility))
	arr = binary.LittleEndian.AppendUint64(arr, e.Body.Term.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

// PatLam is a pattern-matching abstraction: a list of clauses applied to
// further arguments.
type PatLam struct {
	Clauses []Clause
	Args    []Arg
}

func (e *PatLam) termNode()        {}
func (e *PatLam) Describe() string { return "pattern-matching lambda" }

func (e *PatLam) Transform(f func(Term) Term) Term {
	copied := *e
	copied.Clauses = make([]Clause, len(e.Clauses))
	for i, c := range e.Clauses {
		copied.Clauses[i] = c.transform(f)
	}
	copied.Args = transformArgs(e.Args, f)
	return f(&copied)
}

func (e *PatLam) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("PatLam")
	for _, c := range e.Clauses {
		arr = binary.LittleEndian.AppendUint64(arr, c.Hash())
	}
	arr = appendArgHashes(arr, e.Args)
	_, _ = h.Write(arr)
	return h.Sum64()
}

// Pi is a dependent function type. Dom carries the argument metadata of the
// domain; Cod binds one variable at index 0.
type Pi struct {
	Dom Arg
	Cod Abs
}

func (e *Pi) termNode()        {}
func (e *Pi) Describe() string { return "dependent function type" }

func (e *Pi) Transform(f func(Term) Term) Term {
	copied := *e
	copied.Dom.Term = e.Dom.Term.Transform(f)
	copied.Cod.Term = e.Cod.Term.Transform(f)
	return f(&copied)
}

func (e *Pi) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Pi")
	arr = append(arr, byte(e.Dom.Info.Visibility), byte(e.Dom.Info.Relevance))
	arr = binary.LittleEndian.AppendUint64(arr, e.Dom.Term.Hash())
	arr = binary.LittleEndian.AppendUint64(arr, e.Cod.Term.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

// Sort is a universe term; Kind says which universe.
type Sort struct {
	Kind SortKind
}

func (e *Sort) termNode()        {}
func (e *Sort) Describe() string { return "sort" }

func (e *Sort) Transform(f func(Term) Term) Term {
	copied := *e
	copied.Kind = e.Kind.transform(f)
	return f(&copied)
}

func (e *Sort) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Sort")
	arr = binary.LittleEndian.AppendUint64(arr, e.Kind.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

// Lit wraps a primitive literal.
type Lit struct {
	Value Literal
}

func (e *Lit) termNode()        {}
func (e *Lit) Describe() string { return "literal" }

func (e *Lit) Transform(f func(Term) Term) Term {
	copied := *e
	return f(&copied)
}

func (e *Lit) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Lit")
	arr = binary.LittleEndian.AppendUint64(arr, e.Value.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

// Meta is an unresolved metavariable applied to arguments.
type Meta struct {
	ID   MetaID
	Args []Arg
}

func (e *Meta) termNode()        {}
func (e *Meta) Describe() string { return "metavariable" }

func (e *Meta) Transform(f func(Term) Term) Term {
	copied := *e
	copied.Args = transformArgs(e.Args, f)
	return f(&copied)
}

func (e *Meta) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Meta")
	arr = binary.LittleEndian.AppendUint64(arr, uint64(e.ID))
	arr = appendArgHashes(arr, e.Args)
	_, _ = h.Write(arr)
	return h.Sum64()
}

// Unknown is a term the engine cannot inspect. It is already the least
// informative term there is.
type Unknown struct{}

func (e *Unknown) termNode()        {}
func (e *Unknown) Describe() string { return "unknown term" }

func (e *Unknown) Transform(f func(Term) Term) Term {
	copied := *e
	return f(&copied)
}

func (e *Unknown) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Unknown"))
	return h.Sum64()
}

func transformArgs(args []Arg, f func(Term) Term) []Arg {
	if args == nil {
		return nil
	}
	copied := make([]Arg, len(args))
	for i, a := range args {
		copied[i] = Arg{Info: a.Info, Term: a.Term.Transform(f)}
	}
	return copied
}

func appendArgHashes(arr []byte, args []Arg) []byte {
	for _, a := range args {
		arr = append(arr, byte(a.Info.Visibility), byte(a.Info.Relevance))
		arr = binary.LittleEndian.AppendUint64(arr, a.Term.Hash())
	}
	return arr
}
