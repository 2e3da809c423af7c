package term

import (
	"math"
	"strconv"
	"strings"
)

// The String renderings below are the canonical textual syntax: every form
// is a parenthesised keyword application, Unknown prints as "_", and
// default argument metadata is omitted. The parser package reads exactly
// this shape back.

func (e *Var) String() string {
	var sb strings.Builder
	sb.WriteString("(var ")
	sb.WriteString(strconv.Itoa(e.Index))
	writeArgs(&sb, e.Args)
	sb.WriteByte(')')
	return sb.String()
}

func (e *Def) String() string {
	var sb strings.Builder
	sb.WriteString("(def ")
	sb.WriteString(string(e.Name))
	writeArgs(&sb, e.Args)
	sb.WriteByte(')')
	return sb.String()
}

func (e *Con) String() string {
	var sb strings.Builder
	sb.WriteString("(con ")
	sb.WriteString(string(e.Name))
	writeArgs(&sb, e.Args)
	sb.WriteByte(')')
	return sb.String()
}

func (e *Lam) String() string {
	var sb strings.Builder
	sb.WriteString("(lam ")
	sb.WriteString(e.Visibility.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Quote(e.Body.Binder))
	sb.WriteByte(' ')
	sb.WriteString(e.Body.Term.String())
	sb.WriteByte(')')
	return sb.String()
}

func (e *PatLam) String() string {
	var sb strings.Builder
	sb.WriteString("(pat-lam (")
	for i, c := range e.Clauses {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte(')')
	writeArgs(&sb, e.Args)
	sb.WriteByte(')')
	return sb.String()
}

func (e *Pi) String() string {
	var sb strings.Builder
	sb.WriteString("(pi ")
	sb.WriteString(strconv.Quote(e.Cod.Binder))
	sb.WriteByte(' ')
	writeArg(&sb, e.Dom)
	sb.WriteByte(' ')
	sb.WriteString(e.Cod.Term.String())
	sb.WriteByte(')')
	return sb.String()
}

func (e *Sort) String() string {
	return "(sort " + e.Kind.String() + ")"
}

func (e *Lit) String() string {
	return "(lit " + e.Value.String() + ")"
}

func (e *Meta) String() string {
	var sb strings.Builder
	sb.WriteString("(meta ")
	sb.WriteString(strconv.FormatUint(uint64(e.ID), 10))
	writeArgs(&sb, e.Args)
	sb.WriteByte(')')
	return sb.String()
}

func (e *Unknown) String() string { return "_" }

func (s SetSort) String() string     { return "(set " + s.Level.String() + ")" }
func (s SetLitSort) String() string  { return "(lit " + strconv.FormatUint(s.N, 10) + ")" }
func (s PropSort) String() string    { return "(prop " + s.Level.String() + ")" }
func (s PropLitSort) String() string { return "(prop-lit " + strconv.FormatUint(s.N, 10) + ")" }
func (s InfSort) String() string     { return "(inf " + strconv.FormatUint(s.N, 10) + ")" }
func (s UnknownSort) String() string { return "unknown" }

func (l NatLit) String() string    { return strconv.FormatUint(l.N, 10) }
func (l Word64Lit) String() string { return strconv.FormatUint(l.N, 10) + "w" }

func (l FloatLit) String() string {
	s := strconv.FormatFloat(l.F, 'g', -1, 64)
	// keep a mark that distinguishes floats from naturals
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(l.F, 0) && !math.IsNaN(l.F) {
		s += ".0"
	}
	return s
}

func (l CharLit) String() string   { return strconv.QuoteRune(l.R) }
func (l StringLit) String() string { return strconv.Quote(l.S) }
func (l NameLit) String() string   { return "(name " + string(l.Name) + ")" }
func (l MetaLit) String() string {
	return "(meta " + strconv.FormatUint(uint64(l.ID), 10) + ")"
}

func (p *ConP) String() string {
	var sb strings.Builder
	sb.WriteString("(con ")
	sb.WriteString(string(p.Name))
	for _, a := range p.Pats {
		sb.WriteByte(' ')
		writePatArg(&sb, a)
	}
	sb.WriteByte(')')
	return sb.String()
}

func (p *DotP) String() string    { return "(dot " + p.Term.String() + ")" }
func (p *VarP) String() string    { return "(pvar " + strconv.Itoa(p.Index) + ")" }
func (p *LitP) String() string    { return "(plit " + p.Value.String() + ")" }
func (p *ProjP) String() string   { return "(proj " + string(p.Name) + ")" }
func (p *AbsurdP) String() string { return "(absurd " + strconv.Itoa(p.Index) + ")" }

func (c Clause) String() string {
	var sb strings.Builder
	if c.Absurd {
		sb.WriteString("(absurd-clause ")
	} else {
		sb.WriteString("(clause ")
	}
	sb.WriteByte('(')
	for i, e := range c.Telescope {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('(')
		sb.WriteString(strconv.Quote(e.Binder))
		sb.WriteByte(' ')
		writeArg(&sb, e.Type)
		sb.WriteByte(')')
	}
	sb.WriteString(") (")
	for i, a := range c.Pats {
		if i > 0 {
			sb.WriteByte(' ')
		}
		writePatArg(&sb, a)
	}
	sb.WriteByte(')')
	if !c.Absurd {
		sb.WriteByte(' ')
		sb.WriteString(c.RHS.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func writeArgs(sb *strings.Builder, args []Arg) {
	for _, a := range args {
		sb.WriteByte(' ')
		writeArg(sb, a)
	}
}

func writeArg(sb *strings.Builder, a Arg) {
	if a.Info == (ArgInfo{}) {
		sb.WriteString(a.Term.String())
		return
	}
	sb.WriteByte('(')
	writeMods(sb, a.Info)
	sb.WriteString(a.Term.String())
	sb.WriteByte(')')
}

func writePatArg(sb *strings.Builder, a PatArg) {
	if a.Info == (ArgInfo{}) {
		sb.WriteString(a.Pattern.String())
		return
	}
	sb.WriteByte('(')
	writeMods(sb, a.Info)
	sb.WriteString(a.Pattern.String())
	sb.WriteByte(')')
}

func writeMods(sb *strings.Builder, info ArgInfo) {
	switch info.Visibility {
	case Hidden:
		sb.WriteString("hidden ")
	case Instance:
		sb.WriteString("instance ")
	}
	if info.Relevance == Irrelevant {
		sb.WriteString("irrelevant ")
	}
}
