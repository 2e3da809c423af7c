// Package antiunify computes the most specific common generalization of two
// terms: a single term equal to both inputs everywhere they agree, with the
// placeholder variable standing at every position where they differ.
//
// Generalization is total at the term level: any head mismatch narrows to a
// placeholder at that position rather than failing the whole walk. Argument
// lists and match clauses are the exception: no placeholder can stand for "a
// different number of arguments" or "a different pattern shape", so their
// generalizers report failure and the enclosing node degrades to a
// placeholder instead.
//
// phi is the placeholder depth: the de Bruijn index the placeholder variable
// has at the current nesting level. Callers start at 0 and the engine
// maintains it across binders; variable references from the inputs are
// shifted with term.Descend so they keep pointing at their original binders
// once the placeholder binder is inserted.
package antiunify

import (
	"github.com/congo-tactic/congo/term"
)

// Generalize anti-unifies t1 and t2 at placeholder depth phi. It never
// fails: the worst case is a bare placeholder for the whole term.
//
// Head identity is exact (variable index, definition or constructor name,
// literal payload, metavariable identity, sort kind with equal levels), and
// a matching head whose argument lists cannot be generalized degrades to the
// placeholder at this node too, the same as a head mismatch.
func Generalize(phi int, t1, t2 term.Term) term.Term {
	switch a := t1.(type) {
	case *term.Var:
		if b, ok := t2.(*term.Var); ok && a.Index == b.Index {
			if args, ok := GeneralizeArgs(phi, a.Args, b.Args); ok {
				return &term.Var{Index: term.Descend(phi, a.Index), Args: args}
			}
		}
	case *term.Def:
		if b, ok := t2.(*term.Def); ok && a.Name == b.Name {
			if args, ok := GeneralizeArgs(phi, a.Args, b.Args); ok {
				return &term.Def{Name: a.Name, Args: args}
			}
		}
	case *term.Con:
		if b, ok := t2.(*term.Con); ok && a.Name == b.Name {
			if args, ok := GeneralizeArgs(phi, a.Args, b.Args); ok {
				return &term.Con{Name: a.Name, Args: args}
			}
		}
	case *term.Lam:
		if b, ok := t2.(*term.Lam); ok {
			return &term.Lam{
				Visibility: a.Visibility,
				Body: term.Abs{
					Binder: a.Body.Binder,
					Term:   Generalize(phi+1, a.Body.Term, b.Body.Term),
				},
			}
		}
	case *term.PatLam:
		if b, ok := t2.(*term.PatLam); ok {
			if clauses, ok := GeneralizeClauses(phi, a.Clauses, b.Clauses); ok {
				if args, ok := GeneralizeArgs(phi, a.Args, b.Args); ok {
					return &term.PatLam{Clauses: clauses, Args: args}
				}
			}
		}
	case *term.Pi:
		if b, ok := t2.(*term.Pi); ok {
			return &term.Pi{
				Dom: term.Arg{
					Info: a.Dom.Info,
					Term: Generalize(phi, a.Dom.Term, b.Dom.Term),
				},
				Cod: term.Abs{
					Binder: a.Cod.Binder,
					Term:   Generalize(phi+1, a.Cod.Term, b.Cod.Term),
				},
			}
		}
	case *term.Sort:
		// levels are part of the head: a level mismatch is a gap here, not
		// a recursion into the level term
		if b, ok := t2.(*term.Sort); ok && term.EqualSort(a.Kind, b.Kind) {
			switch k := a.Kind.(type) {
			case term.SetSort:
				// the sides agree, so this generalization is exactly the
				// index shift the matched level still needs
				return &term.Sort{Kind: term.SetSort{Level: Generalize(phi, k.Level, k.Level)}}
			case term.PropSort:
				return &term.Sort{Kind: term.PropSort{Level: Generalize(phi, k.Level, k.Level)}}
			default:
				return &term.Sort{Kind: a.Kind}
			}
		}
	case *term.Lit:
		if b, ok := t2.(*term.Lit); ok && a.Value.Equal(b.Value) {
			return &term.Lit{Value: a.Value}
		}
	case *term.Meta:
		if b, ok := t2.(*term.Meta); ok && a.ID == b.ID {
			if args, ok := GeneralizeArgs(phi, a.Args, b.Args); ok {
				return &term.Meta{ID: a.ID, Args: args}
			}
		}
	case *term.Unknown:
		// already the least informative term: a perfect match, not a gap
		if _, ok := t2.(*term.Unknown); ok {
			return &term.Unknown{}
		}
	}
	return placeholder(phi)
}

// GeneralizeArgs pointwise-generalizes two argument lists. It fails exactly
// when the lengths differ; element generalization is total, and the output
// carries the first list's argument metadata.
func GeneralizeArgs(phi int, as1, as2 []term.Arg) ([]term.Arg, bool) {
	if len(as1) != len(as2) {
		return nil, false
	}
	if len(as1) == 0 {
		return nil, true
	}
	out := make([]term.Arg, len(as1))
	for i := range as1 {
		out[i] = term.Arg{
			Info: as1[i].Info,
			Term: Generalize(phi, as1[i].Term, as2[i].Term),
		}
	}
	return out, true
}

// GeneralizeClause generalizes two match clauses. Both must be ordinary or
// both absurd, and their telescopes and pattern lists must be
// alpha-equivalent; patterns are matched exactly, never weakened by
// placeholders. On success the patterns are descended for the placeholder
// binder and an ordinary clause's right-hand side is generalized at the
// depth the patterns produce; the output keeps the first clause's telescope.
func GeneralizeClause(phi int, c1, c2 term.Clause) (term.Clause, bool) {
	if c1.Absurd != c2.Absurd {
		return term.Clause{}, false
	}
	if !term.EqualTelescope(c1.Telescope, c2.Telescope) || !term.EqualPatterns(c1.Pats, c2.Pats) {
		return term.Clause{}, false
	}
	pats, inner := term.DescendPatterns(phi, c1.Pats)
	out := term.Clause{Telescope: c1.Telescope, Pats: pats, Absurd: c1.Absurd}
	if !c1.Absurd {
		out.RHS = Generalize(inner, c1.RHS, c2.RHS)
	}
	return out, true
}

// GeneralizeClauses generalizes two clause lists pairwise, preserving order.
// It fails on a length mismatch or any failing pair; empty lists generalize
// to an empty list.
func GeneralizeClauses(phi int, cs1, cs2 []term.Clause) ([]term.Clause, bool) {
	if len(cs1) != len(cs2) {
		return nil, false
	}
	if len(cs1) == 0 {
		return nil, true
	}
	out := make([]term.Clause, len(cs1))
	for i := range cs1 {
		c, ok := GeneralizeClause(phi, cs1[i], cs2[i])
		if !ok {
			return nil, false
		}
		out[i] = c
	}
	return out, true
}

// placeholder is the anti-unification gap: the placeholder variable at the
// current depth, applied to nothing.
func placeholder(phi int) *term.Var {
	return &term.Var{Index: phi}
}
