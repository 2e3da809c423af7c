package elab

import (
	"github.com/congo-tactic/congo/congoerr"
	"github.com/congo-tactic/congo/term"
)

// Unify makes a and b syntactically equal by solving bare metavariables
// against the opposite side. The descent is structural and never reduces:
// two terms that would only agree after normalization do not unify here,
// the same exactness the tactic itself lives by.
func (e *Elab) Unify(a, b term.Term) error {
	return e.unify(e.Zonk(a), e.Zonk(b))
}

// unify expects both sides zonked.
func (e *Elab) unify(a, b term.Term) error {
	if term.Equal(a, b) {
		return nil
	}
	if m, ok := a.(*term.Meta); ok && len(m.Args) == 0 {
		return e.SolveMeta(m.ID, b)
	}
	if m, ok := b.(*term.Meta); ok && len(m.Args) == 0 {
		return e.SolveMeta(m.ID, a)
	}

	switch x := a.(type) {
	case *term.Var:
		if y, ok := b.(*term.Var); ok && x.Index == y.Index {
			return e.unifyArgs(x.Args, y.Args, a, b)
		}
	case *term.Def:
		if y, ok := b.(*term.Def); ok && x.Name == y.Name {
			return e.unifyArgs(x.Args, y.Args, a, b)
		}
	case *term.Con:
		if y, ok := b.(*term.Con); ok && x.Name == y.Name {
			return e.unifyArgs(x.Args, y.Args, a, b)
		}
	case *term.Lam:
		if y, ok := b.(*term.Lam); ok && x.Visibility == y.Visibility {
			return e.unify(x.Body.Term, y.Body.Term)
		}
	case *term.PatLam:
		// clause-internal metas are beyond the first-order store; clauses
		// must already agree, only the outer arguments unify
		if y, ok := b.(*term.PatLam); ok && term.EqualClauses(x.Clauses, y.Clauses) {
			return e.unifyArgs(x.Args, y.Args, a, b)
		}
	case *term.Pi:
		if y, ok := b.(*term.Pi); ok && x.Dom.Info == y.Dom.Info {
			if err := e.unify(x.Dom.Term, y.Dom.Term); err != nil {
				return err
			}
			// the domain may have solved metas the codomain mentions
			return e.unify(e.Zonk(x.Cod.Term), e.Zonk(y.Cod.Term))
		}
	case *term.Sort:
		if y, ok := b.(*term.Sort); ok {
			switch xk := x.Kind.(type) {
			case term.SetSort:
				if yk, ok := y.Kind.(term.SetSort); ok {
					return e.unify(xk.Level, yk.Level)
				}
			case term.PropSort:
				if yk, ok := y.Kind.(term.PropSort); ok {
					return e.unify(xk.Level, yk.Level)
				}
			}
		}
	case *term.Meta:
		// both applied, or the same head: argument-wise is all we can do
		if y, ok := b.(*term.Meta); ok && x.ID == y.ID {
			return e.unifyArgs(x.Args, y.Args, a, b)
		}
	}
	return congoerr.New(congoerr.NewUnifyMismatch{Left: a, Right: b})
}

func (e *Elab) unifyArgs(as, bs []term.Arg, a, b term.Term) error {
	if len(as) != len(bs) {
		return congoerr.New(congoerr.NewUnifyMismatch{Left: a, Right: b})
	}
	for i := range as {
		// an earlier element may have solved metas this one mentions
		if err := e.unify(e.Zonk(as[i].Term), e.Zonk(bs[i].Term)); err != nil {
			return err
		}
	}
	return nil
}
