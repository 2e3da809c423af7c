package term

// Equal is alpha-equivalence: structural equality that ignores binder name
// strings but respects everything else, argument metadata included.
func Equal(a, b Term) bool {
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Index == b.Index && EqualArgs(a.Args, b.Args)
	case *Def:
		b, ok := b.(*Def)
		return ok && a.Name == b.Name && EqualArgs(a.Args, b.Args)
	case *Con:
		b, ok := b.(*Con)
		return ok && a.Name == b.Name && EqualArgs(a.Args, b.Args)
	case *Lam:
		b, ok := b.(*Lam)
		return ok && a.Visibility == b.Visibility && Equal(a.Body.Term, b.Body.Term)
	case *PatLam:
		b, ok := b.(*PatLam)
		return ok && EqualClauses(a.Clauses, b.Clauses) && EqualArgs(a.Args, b.Args)
	case *Pi:
		b, ok := b.(*Pi)
		return ok && a.Dom.Info == b.Dom.Info &&
			Equal(a.Dom.Term, b.Dom.Term) && Equal(a.Cod.Term, b.Cod.Term)
	case *Sort:
		b, ok := b.(*Sort)
		return ok && EqualSort(a.Kind, b.Kind)
	case *Lit:
		b, ok := b.(*Lit)
		return ok && a.Value.Equal(b.Value)
	case *Meta:
		b, ok := b.(*Meta)
		return ok && a.ID == b.ID && EqualArgs(a.Args, b.Args)
	case *Unknown:
		_, ok := b.(*Unknown)
		return ok
	default:
		return false
	}
}

// EqualArgs compares argument lists pairwise, metadata and all.
func EqualArgs(a, b []Arg) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Info != b[i].Info || !Equal(a[i].Term, b[i].Term) {
			return false
		}
	}
	return true
}

// EqualSort compares universe kinds, with term-carried levels compared by
// Equal.
func EqualSort(a, b SortKind) bool {
	switch a := a.(type) {
	case SetSort:
		b, ok := b.(SetSort)
		return ok && Equal(a.Level, b.Level)
	case SetLitSort:
		b, ok := b.(SetLitSort)
		return ok && a.N == b.N
	case PropSort:
		b, ok := b.(PropSort)
		return ok && Equal(a.Level, b.Level)
	case PropLitSort:
		b, ok := b.(PropLitSort)
		return ok && a.N == b.N
	case InfSort:
		b, ok := b.(InfSort)
		return ok && a.N == b.N
	case UnknownSort:
		_, ok := b.(UnknownSort)
		return ok
	default:
		return false
	}
}

// EqualPattern compares patterns structurally; dot pattern payloads go
// through Equal.
func EqualPattern(a, b Pattern) bool {
	switch a := a.(type) {
	case *ConP:
		b, ok := b.(*ConP)
		return ok && a.Name == b.Name && EqualPatterns(a.Pats, b.Pats)
	case *DotP:
		b, ok := b.(*DotP)
		return ok && Equal(a.Term, b.Term)
	case *VarP:
		b, ok := b.(*VarP)
		return ok && a.Index == b.Index
	case *LitP:
		b, ok := b.(*LitP)
		return ok && a.Value.Equal(b.Value)
	case *ProjP:
		b, ok := b.(*ProjP)
		return ok && a.Name == b.Name
	case *AbsurdP:
		b, ok := b.(*AbsurdP)
		return ok && a.Index == b.Index
	default:
		return false
	}
}

// EqualPatterns compares pattern argument lists pairwise.
func EqualPatterns(a, b []PatArg) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Info != b[i].Info || !EqualPattern(a[i].Pattern, b[i].Pattern) {
			return false
		}
	}
	return true
}

// EqualTelescope compares telescopes entrywise, ignoring binder names.
func EqualTelescope(a, b Telescope) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Type.Info != b[i].Type.Info || !Equal(a[i].Type.Term, b[i].Type.Term) {
			return false
		}
	}
	return true
}

// EqualClause compares whole clauses: telescope, patterns, and right-hand
// side when both sides have one.
func EqualClause(a, b Clause) bool {
	if a.Absurd != b.Absurd {
		return false
	}
	if !EqualTelescope(a.Telescope, b.Telescope) || !EqualPatterns(a.Pats, b.Pats) {
		return false
	}
	if a.Absurd {
		return true
	}
	return Equal(a.RHS, b.RHS)
}

// EqualClauses compares clause lists pairwise.
func EqualClauses(a, b []Clause) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !EqualClause(a[i], b[i]) {
			return false
		}
	}
	return true
}
