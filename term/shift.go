package term

// Descend adjusts a variable index for one extra binder inserted at depth
// phi: indices at or above phi step over the new binder, indices below it
// are untouched.
func Descend(phi, x int) int {
	if x >= phi {
		return x + 1
	}
	return x
}

// DescendPattern rewrites the indices a pattern binds for one extra binder
// at depth phi and returns the depth for whatever follows the pattern.
// Variable and absurd patterns shift their own index at the incoming depth
// and then deepen it by one; constructor patterns thread the depth through
// their subpatterns; dot, literal and projection patterns bind nothing and
// pass both through.
func DescendPattern(phi int, p Pattern) (Pattern, int) {
	switch p := p.(type) {
	case *ConP:
		ps, phi := DescendPatterns(phi, p.Pats)
		return &ConP{Name: p.Name, Pats: ps}, phi
	case *VarP:
		return &VarP{Index: Descend(phi, p.Index)}, phi + 1
	case *AbsurdP:
		return &AbsurdP{Index: Descend(phi, p.Index)}, phi + 1
	default:
		return p, phi
	}
}

// DescendPatterns threads DescendPattern left to right over an argument
// list, so each pattern sees the depth produced by the ones before it.
func DescendPatterns(phi int, ps []PatArg) ([]PatArg, int) {
	if len(ps) == 0 {
		return nil, phi
	}
	out := make([]PatArg, len(ps))
	for i, a := range ps {
		var p Pattern
		p, phi = DescendPattern(phi, a.Pattern)
		out[i] = PatArg{Info: a.Info, Pattern: p}
	}
	return out, phi
}
