// Package construct contains utilities to create terms programmatically,
// with visible relevant argument metadata filled in by default.
package construct

import (
	"github.com/congo-tactic/congo/term"
)

func Var(index int, args ...term.Arg) *term.Var {
	return &term.Var{Index: index, Args: args}
}

func Def(name term.Name, args ...term.Arg) *term.Def {
	return &term.Def{Name: name, Args: args}
}

func Con(name term.Name, args ...term.Arg) *term.Con {
	return &term.Con{Name: name, Args: args}
}

func Lam(binder string, body term.Term) *term.Lam {
	return &term.Lam{
		Visibility: term.Visible,
		Body:       term.Abs{Binder: binder, Term: body},
	}
}

func PatLam(clauses []term.Clause, args ...term.Arg) *term.PatLam {
	return &term.PatLam{Clauses: clauses, Args: args}
}

func Pi(binder string, dom term.Term, cod term.Term) *term.Pi {
	return &term.Pi{
		Dom: Arg(dom),
		Cod: term.Abs{Binder: binder, Term: cod},
	}
}

func Sort(kind term.SortKind) *term.Sort { return &term.Sort{Kind: kind} }

// Set is the universe at a literal level: Set(0) is Set0.
func Set(n uint64) *term.Sort { return Sort(term.SetLitSort{N: n}) }

func Meta(id term.MetaID, args ...term.Arg) *term.Meta {
	return &term.Meta{ID: id, Args: args}
}

func Unknown() *term.Unknown { return &term.Unknown{} }

func Nat(n uint64) *term.Lit    { return &term.Lit{Value: term.NatLit{N: n}} }
func Word(n uint64) *term.Lit   { return &term.Lit{Value: term.Word64Lit{N: n}} }
func Float(f float64) *term.Lit { return &term.Lit{Value: term.FloatLit{F: f}} }
func Char(r rune) *term.Lit     { return &term.Lit{Value: term.CharLit{R: r}} }
func Str(s string) *term.Lit    { return &term.Lit{Value: term.StringLit{S: s}} }

// Arg wraps a term as a plain visible relevant argument.
func Arg(t term.Term) term.Arg { return term.Arg{Term: t} }

// Hidden wraps a term as a hidden argument.
func Hidden(t term.Term) term.Arg {
	return term.Arg{Info: term.ArgInfo{Visibility: term.Hidden}, Term: t}
}

// Instance wraps a term as an instance argument.
func Instance(t term.Term) term.Arg {
	return term.Arg{Info: term.ArgInfo{Visibility: term.Instance}, Term: t}
}

// Args wraps terms as plain visible relevant arguments, preserving order.
func Args(ts ...term.Term) []term.Arg {
	out := make([]term.Arg, len(ts))
	for i, t := range ts {
		out[i] = Arg(t)
	}
	return out
}

func PVar(index int) *term.VarP        { return &term.VarP{Index: index} }
func PDot(t term.Term) *term.DotP      { return &term.DotP{Term: t} }
func PLit(l term.Literal) *term.LitP   { return &term.LitP{Value: l} }
func PAbsurd(index int) *term.AbsurdP  { return &term.AbsurdP{Index: index} }
func PProj(name term.Name) *term.ProjP { return &term.ProjP{Name: name} }

func PCon(name term.Name, pats ...term.PatArg) *term.ConP {
	return &term.ConP{Name: name, Pats: pats}
}

// PArg wraps a pattern as a plain visible relevant pattern argument.
func PArg(p term.Pattern) term.PatArg { return term.PatArg{Pattern: p} }

// PArgs wraps patterns as plain visible relevant pattern arguments.
func PArgs(ps ...term.Pattern) []term.PatArg {
	out := make([]term.PatArg, len(ps))
	for i, p := range ps {
		out[i] = PArg(p)
	}
	return out
}

// Entry declares one telescope binding with a visible relevant type.
func Entry(binder string, ty term.Term) term.TelescopeEntry {
	return term.TelescopeEntry{Binder: binder, Type: Arg(ty)}
}

func Clause(tel term.Telescope, pats []term.PatArg, rhs term.Term) term.Clause {
	return term.Clause{Telescope: tel, Pats: pats, RHS: rhs}
}

func AbsurdClause(tel term.Telescope, pats []term.PatArg) term.Clause {
	return term.Clause{Telescope: tel, Pats: pats, Absurd: true}
}
