package term

import (
	set "github.com/hashicorp/go-set/v3"
)

// FreeVars collects the free variable indices of t, normalised to the scope
// of the root: an occurrence of index x under n binders contributes x-n when
// x reaches past all of them.
func FreeVars(t Term) *set.Set[int] {
	acc := set.New[int](0)
	freeVarsAt(t, 0, acc)
	return acc
}

// Metas collects the metavariables occurring in t. Quoted metas inside
// literals are data, not occurrences, and do not count.
func Metas(t Term) *set.Set[MetaID] {
	acc := set.New[MetaID](0)
	t.Transform(func(s Term) Term {
		if m, ok := s.(*Meta); ok {
			acc.Insert(m.ID)
		}
		return s
	})
	return acc
}

func freeVarsAt(t Term, depth int, acc *set.Set[int]) {
	switch t := t.(type) {
	case *Var:
		if t.Index >= depth {
			acc.Insert(t.Index - depth)
		}
		freeVarsArgs(t.Args, depth, acc)
	case *Def:
		freeVarsArgs(t.Args, depth, acc)
	case *Con:
		freeVarsArgs(t.Args, depth, acc)
	case *Lam:
		freeVarsAt(t.Body.Term, depth+1, acc)
	case *PatLam:
		for _, c := range t.Clauses {
			for i, e := range c.Telescope {
				freeVarsAt(e.Type.Term, depth+i, acc)
			}
			inner := depth + len(c.Telescope)
			for _, a := range c.Pats {
				freeVarsPat(a.Pattern, inner, acc)
			}
			if c.RHS != nil {
				freeVarsAt(c.RHS, inner, acc)
			}
		}
		freeVarsArgs(t.Args, depth, acc)
	case *Pi:
		freeVarsAt(t.Dom.Term, depth, acc)
		freeVarsAt(t.Cod.Term, depth+1, acc)
	case *Sort:
		switch k := t.Kind.(type) {
		case SetSort:
			freeVarsAt(k.Level, depth, acc)
		case PropSort:
			freeVarsAt(k.Level, depth, acc)
		}
	case *Meta:
		freeVarsArgs(t.Args, depth, acc)
	}
}

func freeVarsArgs(args []Arg, depth int, acc *set.Set[int]) {
	for _, a := range args {
		freeVarsAt(a.Term, depth, acc)
	}
}

func freeVarsPat(p Pattern, depth int, acc *set.Set[int]) {
	switch p := p.(type) {
	case *ConP:
		for _, a := range p.Pats {
			freeVarsPat(a.Pattern, depth, acc)
		}
	case *DotP:
		freeVarsAt(p.Term, depth, acc)
	}
}
