// Package parser reads the textual term syntax back into term values. The
// grammar is exactly what term.Term's String renderings emit: keyword-headed
// s-expressions, Unknown as "_", argument metadata parenthesised only when
// it differs from the visible relevant default.
package parser

import (
	"fmt"

	"github.com/congo-tactic/congo/congoerr"
	"github.com/congo-tactic/congo/internal/log"
	"github.com/congo-tactic/congo/term"
)

var logger = log.Section("parse")

// Parse reads a single term from src. Anything left over after the term is
// an error.
func Parse(src string) (term.Term, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.next(); err != nil {
		return nil, err
	}
	t, err := p.term()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != tokEOF {
		return nil, p.errorf("trailing %s after the term", p.tok.Type)
	}
	logger.Debug("parsed term", "term", t)
	return t, nil
}

// ParseAll reads terms until the input runs out.
func ParseAll(src string) ([]term.Term, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.next(); err != nil {
		return nil, err
	}
	var out []term.Term
	for p.tok.Type != tokEOF {
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

type parser struct {
	lex *lexer
	tok token
}

func (p *parser) next() error {
	tok, err := p.lex.scan()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) errorf(format string, args ...any) error {
	return congoerr.New(congoerr.NewParse{
		Line:          p.tok.Line,
		Col:           p.tok.Col,
		ParserMessage: fmt.Sprintf(format, args...),
	})
}

func (p *parser) hinted(hint, format string, args ...any) error {
	return congoerr.New(congoerr.NewParse{
		Line:          p.tok.Line,
		Col:           p.tok.Col,
		ParserMessage: fmt.Sprintf(format, args...),
		Hint:          hint,
	})
}

// errAt blames a token already consumed, the form keyword usually.
func errAt(tok token, hint, format string, args ...any) error {
	return congoerr.New(congoerr.NewParse{
		Line:          tok.Line,
		Col:           tok.Col,
		ParserMessage: fmt.Sprintf(format, args...),
		Hint:          hint,
	})
}

func (p *parser) expect(tt tokenType, what string) (token, error) {
	if p.tok.Type != tt {
		return token{}, p.errorf("expected %s for %s, found %s", tt, what, p.describeTok())
	}
	tok := p.tok
	if err := p.next(); err != nil {
		return token{}, err
	}
	return tok, nil
}

func (p *parser) describeTok() string {
	if p.tok.Type == tokEOF {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", p.tok.Type, p.tok.Text)
}

func (p *parser) term() (term.Term, error) {
	switch p.tok.Type {
	case tokSymbol:
		// the printer writes _, but unknown is accepted as its spelled form
		if p.tok.Text == "_" || p.tok.Text == "unknown" {
			if err := p.next(); err != nil {
				return nil, err
			}
			return &term.Unknown{}, nil
		}
		return nil, p.hinted("terms are parenthesised forms, or _ for an unknown",
			"unexpected symbol %q where a term was expected", p.tok.Text)
	case tokLParen:
		if err := p.next(); err != nil {
			return nil, err
		}
		head, err := p.expect(tokSymbol, "a form keyword")
		if err != nil {
			return nil, err
		}
		return p.form(head)
	default:
		return nil, p.errorf("expected a term, found %s", p.describeTok())
	}
}

// form parses the remainder of a term whose opening paren and keyword are
// already consumed, closing paren included.
func (p *parser) form(head token) (term.Term, error) {
	switch head.Text {
	case "var":
		index, err := p.natIndex("a de Bruijn index")
		if err != nil {
			return nil, err
		}
		args, err := p.argsUntilClose()
		if err != nil {
			return nil, err
		}
		return &term.Var{Index: index, Args: args}, nil

	case "def", "con":
		name, err := p.name()
		if err != nil {
			return nil, err
		}
		args, err := p.argsUntilClose()
		if err != nil {
			return nil, err
		}
		if head.Text == "def" {
			return &term.Def{Name: name, Args: args}, nil
		}
		return &term.Con{Name: name, Args: args}, nil

	case "meta":
		id, err := p.expect(tokNat, "a metavariable id")
		if err != nil {
			return nil, err
		}
		args, err := p.argsUntilClose()
		if err != nil {
			return nil, err
		}
		return &term.Meta{ID: term.MetaID(id.Nat), Args: args}, nil

	case "lam":
		vis, err := p.visibility()
		if err != nil {
			return nil, err
		}
		binder, err := p.expect(tokString, "the binder name")
		if err != nil {
			return nil, err
		}
		body, err := p.term()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "the end of the lambda"); err != nil {
			return nil, err
		}
		return &term.Lam{Visibility: vis, Body: term.Abs{Binder: binder.S, Term: body}}, nil

	case "pat-lam":
		if _, err := p.expect(tokLParen, "the clause list"); err != nil {
			return nil, err
		}
		var clauses []term.Clause
		for p.tok.Type != tokRParen {
			c, err := p.clause()
			if err != nil {
				return nil, err
			}
			clauses = append(clauses, c)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		args, err := p.argsUntilClose()
		if err != nil {
			return nil, err
		}
		return &term.PatLam{Clauses: clauses, Args: args}, nil

	case "pi":
		binder, err := p.expect(tokString, "the binder name")
		if err != nil {
			return nil, err
		}
		dom, err := p.arg()
		if err != nil {
			return nil, err
		}
		cod, err := p.term()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "the end of the pi type"); err != nil {
			return nil, err
		}
		return &term.Pi{Dom: dom, Cod: term.Abs{Binder: binder.S, Term: cod}}, nil

	case "sort":
		kind, err := p.sort()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "the end of the sort"); err != nil {
			return nil, err
		}
		return &term.Sort{Kind: kind}, nil

	case "lit":
		value, err := p.literal()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "the end of the literal"); err != nil {
			return nil, err
		}
		return &term.Lit{Value: value}, nil
	}
	return nil, errAt(head, "known forms are var, def, con, meta, lam, pat-lam, pi, sort, lit",
		"unknown form %q", head.Text)
}

func (p *parser) natIndex(what string) (int, error) {
	tok, err := p.expect(tokNat, what)
	if err != nil {
		return 0, err
	}
	return int(tok.Nat), nil
}

// name accepts any atom, raw text. The classifier may have taken it for a
// number first; names like 1≡2 are fine.
func (p *parser) name() (term.Name, error) {
	switch p.tok.Type {
	case tokSymbol, tokNat, tokWord, tokFloat:
		name := term.Name(p.tok.Text)
		if err := p.next(); err != nil {
			return "", err
		}
		return name, nil
	}
	return "", p.errorf("expected a name, found %s", p.describeTok())
}

func (p *parser) visibility() (term.Visibility, error) {
	tok, err := p.expect(tokSymbol, "a visibility")
	if err != nil {
		return term.Visible, err
	}
	switch tok.Text {
	case "visible":
		return term.Visible, nil
	case "hidden":
		return term.Hidden, nil
	case "instance":
		return term.Instance, nil
	}
	return term.Visible, p.hinted("one of visible, hidden, instance", "unknown visibility %q", tok.Text)
}

func (p *parser) argsUntilClose() ([]term.Arg, error) {
	var args []term.Arg
	for p.tok.Type != tokRParen {
		if p.tok.Type == tokEOF {
			return nil, p.errorf("unclosed form at end of input")
		}
		a, err := p.arg()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	return args, nil
}

// arg is either a bare term, carrying the default metadata, or a
// parenthesised group whose head names the modifiers. The two shapes are
// told apart by whether the keyword after '(' is a modifier.
func (p *parser) arg() (term.Arg, error) {
	if p.tok.Type == tokSymbol {
		t, err := p.term()
		if err != nil {
			return term.Arg{}, err
		}
		return term.Arg{Term: t}, nil
	}
	if _, err := p.expect(tokLParen, "an argument"); err != nil {
		return term.Arg{}, err
	}
	head, err := p.expect(tokSymbol, "a form keyword or modifier")
	if err != nil {
		return term.Arg{}, err
	}
	info, modded, err := p.mods(head)
	if err != nil {
		return term.Arg{}, err
	}
	if !modded {
		t, err := p.form(head)
		if err != nil {
			return term.Arg{}, err
		}
		return term.Arg{Term: t}, nil
	}
	t, err := p.term()
	if err != nil {
		return term.Arg{}, err
	}
	if _, err := p.expect(tokRParen, "the end of the argument"); err != nil {
		return term.Arg{}, err
	}
	return term.Arg{Info: info, Term: t}, nil
}

// mods consumes modifier keywords starting at head. When head is not a
// modifier it reports modded false and leaves the token stream untouched so
// the caller can treat head as a form keyword.
func (p *parser) mods(head token) (term.ArgInfo, bool, error) {
	var info term.ArgInfo
	apply := func(text string) bool {
		switch text {
		case "hidden":
			info.Visibility = term.Hidden
		case "instance":
			info.Visibility = term.Instance
		case "irrelevant":
			info.Relevance = term.Irrelevant
		default:
			return false
		}
		return true
	}
	if !apply(head.Text) {
		return info, false, nil
	}
	for p.tok.Type == tokSymbol && p.tok.Text != "_" && p.tok.Text != "unknown" {
		if !apply(p.tok.Text) {
			return info, true, p.hinted("modifiers are hidden, instance, irrelevant",
				"unknown modifier %q", p.tok.Text)
		}
		if err := p.next(); err != nil {
			return info, true, err
		}
	}
	return info, true, nil
}

func (p *parser) sort() (term.SortKind, error) {
	if p.tok.Type == tokSymbol && p.tok.Text == "unknown" {
		if err := p.next(); err != nil {
			return nil, err
		}
		return term.UnknownSort{}, nil
	}
	if _, err := p.expect(tokLParen, "a sort"); err != nil {
		return nil, err
	}
	head, err := p.expect(tokSymbol, "a sort keyword")
	if err != nil {
		return nil, err
	}
	var kind term.SortKind
	switch head.Text {
	case "set":
		level, err := p.term()
		if err != nil {
			return nil, err
		}
		kind = term.SetSort{Level: level}
	case "prop":
		level, err := p.term()
		if err != nil {
			return nil, err
		}
		kind = term.PropSort{Level: level}
	case "lit":
		n, err := p.expect(tokNat, "a universe level")
		if err != nil {
			return nil, err
		}
		kind = term.SetLitSort{N: n.Nat}
	case "prop-lit":
		n, err := p.expect(tokNat, "a universe level")
		if err != nil {
			return nil, err
		}
		kind = term.PropLitSort{N: n.Nat}
	case "inf":
		n, err := p.expect(tokNat, "a universe level")
		if err != nil {
			return nil, err
		}
		kind = term.InfSort{N: n.Nat}
	default:
		return nil, errAt(head, "sorts are (set t), (lit n), (prop t), (prop-lit n), (inf n) or unknown",
			"unknown sort %q", head.Text)
	}
	if _, err := p.expect(tokRParen, "the end of the sort"); err != nil {
		return nil, err
	}
	return kind, nil
}

func (p *parser) literal() (term.Literal, error) {
	switch p.tok.Type {
	case tokNat:
		value := term.NatLit{N: p.tok.Nat}
		return value, p.next()
	case tokWord:
		value := term.Word64Lit{N: p.tok.Nat}
		return value, p.next()
	case tokFloat:
		value := term.FloatLit{F: p.tok.F}
		return value, p.next()
	case tokChar:
		value := term.CharLit{R: p.tok.R}
		return value, p.next()
	case tokString:
		value := term.StringLit{S: p.tok.S}
		return value, p.next()
	case tokLParen:
		if err := p.next(); err != nil {
			return nil, err
		}
		head, err := p.expect(tokSymbol, "a literal keyword")
		if err != nil {
			return nil, err
		}
		var value term.Literal
		switch head.Text {
		case "name":
			name, err := p.name()
			if err != nil {
				return nil, err
			}
			value = term.NameLit{Name: name}
		case "meta":
			id, err := p.expect(tokNat, "a metavariable id")
			if err != nil {
				return nil, err
			}
			value = term.MetaLit{ID: term.MetaID(id.Nat)}
		default:
			return nil, errAt(head, "compound literals are (name n) and (meta i)",
				"unknown literal form %q", head.Text)
		}
		if _, err := p.expect(tokRParen, "the end of the literal"); err != nil {
			return nil, err
		}
		return value, nil
	}
	return nil, p.errorf("expected a literal, found %s", p.describeTok())
}

func (p *parser) clause() (term.Clause, error) {
	if _, err := p.expect(tokLParen, "a clause"); err != nil {
		return term.Clause{}, err
	}
	head, err := p.expect(tokSymbol, "clause or absurd-clause")
	if err != nil {
		return term.Clause{}, err
	}
	absurd := false
	switch head.Text {
	case "clause":
	case "absurd-clause":
		absurd = true
	default:
		return term.Clause{}, errAt(head, "clauses start with clause or absurd-clause",
			"unknown clause form %q", head.Text)
	}

	tel, err := p.telescope()
	if err != nil {
		return term.Clause{}, err
	}
	pats, err := p.patargsGroup()
	if err != nil {
		return term.Clause{}, err
	}
	c := term.Clause{Telescope: tel, Pats: pats, Absurd: absurd}
	if !absurd {
		rhs, err := p.term()
		if err != nil {
			return term.Clause{}, err
		}
		c.RHS = rhs
	}
	if _, err := p.expect(tokRParen, "the end of the clause"); err != nil {
		return term.Clause{}, err
	}
	return c, nil
}

func (p *parser) telescope() (term.Telescope, error) {
	if _, err := p.expect(tokLParen, "the clause telescope"); err != nil {
		return nil, err
	}
	var tel term.Telescope
	for p.tok.Type != tokRParen {
		if _, err := p.expect(tokLParen, "a telescope entry"); err != nil {
			return nil, err
		}
		binder, err := p.expect(tokString, "the entry binder")
		if err != nil {
			return nil, err
		}
		ty, err := p.arg()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "the end of the entry"); err != nil {
			return nil, err
		}
		tel = append(tel, term.TelescopeEntry{Binder: binder.S, Type: ty})
	}
	return tel, p.next()
}

func (p *parser) patargsGroup() ([]term.PatArg, error) {
	if _, err := p.expect(tokLParen, "the clause patterns"); err != nil {
		return nil, err
	}
	var pats []term.PatArg
	for p.tok.Type != tokRParen {
		a, err := p.patarg()
		if err != nil {
			return nil, err
		}
		pats = append(pats, a)
	}
	return pats, p.next()
}

func (p *parser) patarg() (term.PatArg, error) {
	if _, err := p.expect(tokLParen, "a pattern"); err != nil {
		return term.PatArg{}, err
	}
	head, err := p.expect(tokSymbol, "a pattern keyword or modifier")
	if err != nil {
		return term.PatArg{}, err
	}
	info, modded, err := p.mods(head)
	if err != nil {
		return term.PatArg{}, err
	}
	if !modded {
		pat, err := p.patform(head)
		if err != nil {
			return term.PatArg{}, err
		}
		return term.PatArg{Pattern: pat}, nil
	}
	pat, err := p.pattern()
	if err != nil {
		return term.PatArg{}, err
	}
	if _, err := p.expect(tokRParen, "the end of the pattern"); err != nil {
		return term.PatArg{}, err
	}
	return term.PatArg{Info: info, Pattern: pat}, nil
}

func (p *parser) pattern() (term.Pattern, error) {
	if _, err := p.expect(tokLParen, "a pattern"); err != nil {
		return nil, err
	}
	head, err := p.expect(tokSymbol, "a pattern keyword")
	if err != nil {
		return nil, err
	}
	return p.patform(head)
}

func (p *parser) patform(head token) (term.Pattern, error) {
	switch head.Text {
	case "con":
		name, err := p.name()
		if err != nil {
			return nil, err
		}
		var pats []term.PatArg
		for p.tok.Type != tokRParen {
			if p.tok.Type == tokEOF {
				return nil, p.errorf("unclosed constructor pattern at end of input")
			}
			a, err := p.patarg()
			if err != nil {
				return nil, err
			}
			pats = append(pats, a)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		return &term.ConP{Name: name, Pats: pats}, nil

	case "dot":
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "the end of the dot pattern"); err != nil {
			return nil, err
		}
		return &term.DotP{Term: t}, nil

	case "pvar":
		index, err := p.natIndex("a pattern variable index")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "the end of the pattern variable"); err != nil {
			return nil, err
		}
		return &term.VarP{Index: index}, nil

	case "plit":
		value, err := p.literal()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "the end of the literal pattern"); err != nil {
			return nil, err
		}
		return &term.LitP{Value: value}, nil

	case "proj":
		name, err := p.name()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "the end of the projection pattern"); err != nil {
			return nil, err
		}
		return &term.ProjP{Name: name}, nil

	case "absurd":
		index, err := p.natIndex("an absurd pattern index")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "the end of the absurd pattern"); err != nil {
			return nil, err
		}
		return &term.AbsurdP{Index: index}, nil
	}
	return nil, errAt(head, "patterns are con, dot, pvar, plit, proj, absurd",
		"unknown pattern form %q", head.Text)
}
