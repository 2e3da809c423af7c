package parser_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/congo-tactic/congo/congoerr"
	"github.com/congo-tactic/congo/construct"
	"github.com/congo-tactic/congo/parser"
	"github.com/congo-tactic/congo/term"
)

func TestParseRoundTrips(t *testing.T) {
	patLam := construct.PatLam([]term.Clause{
		construct.Clause(
			term.Telescope{construct.Entry("n", construct.Def("ℕ"))},
			construct.PArgs(construct.PCon("suc", construct.PArg(construct.PVar(0)))),
			construct.Con("suc", construct.Arg(construct.Var(0))),
		),
		construct.AbsurdClause(
			term.Telescope{construct.Entry("e", construct.Def("⊥"))},
			construct.PArgs(construct.PAbsurd(0)),
		),
	}, construct.Arg(construct.Var(2)))

	tests := []term.Term{
		construct.Unknown(),
		construct.Var(0),
		construct.Var(2, construct.Arg(construct.Nat(1)), construct.Hidden(construct.Var(0))),
		construct.Def("_+_", construct.Arg(construct.Var(0)), construct.Arg(construct.Nat(1))),
		construct.Def("ℕ.suc"),
		construct.Con("suc", construct.Arg(construct.Con("zero"))),
		construct.Lam("x", construct.Var(0)),
		&term.Lam{Visibility: term.Hidden, Body: term.Abs{Binder: "A", Term: construct.Var(0)}},
		construct.Pi("n", construct.Def("ℕ"), construct.Def("Vec", construct.Arg(construct.Var(0)))),
		&term.Pi{
			Dom: construct.Hidden(construct.Set(0)),
			Cod: term.Abs{Binder: "A", Term: construct.Var(0)},
		},
		patLam,
		construct.Set(0),
		construct.Sort(term.SetSort{Level: construct.Var(1)}),
		construct.Sort(term.PropSort{Level: construct.Def("lzero")}),
		construct.Sort(term.PropLitSort{N: 2}),
		construct.Sort(term.InfSort{N: 1}),
		construct.Sort(term.UnknownSort{}),
		construct.Nat(42),
		construct.Word(7),
		construct.Float(1.5),
		construct.Float(-2.25e-3),
		construct.Float(math.Inf(1)),
		construct.Char('λ'),
		construct.Char('\''),
		construct.Str("hello \"world\"\n"),
		&term.Lit{Value: term.NameLit{Name: "_≡_"}},
		&term.Lit{Value: term.MetaLit{ID: 3}},
		construct.Meta(4, construct.Arg(construct.Nat(0))),
		construct.Def("f", term.Arg{
			Info: term.ArgInfo{Visibility: term.Hidden, Relevance: term.Irrelevant},
			Term: construct.Var(0),
		}),
	}
	for _, want := range tests {
		src := want.String()
		t.Run(src, func(t *testing.T) {
			got, err := parser.Parse(src)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseNaNRoundTrip(t *testing.T) {
	nan := construct.Float(math.NaN())
	got, err := parser.Parse(nan.String())
	require.NoError(t, err)
	assert.True(t, term.Equal(nan, got), "got %s", got)
}

func TestParseIgnoresLayout(t *testing.T) {
	src := `
		(def _+_
			(con suc
				(con suc (var 0)))
			(var 1))`
	want := construct.Def("_+_",
		construct.Arg(construct.Con("suc", construct.Arg(construct.Con("suc", construct.Arg(construct.Var(0)))))),
		construct.Arg(construct.Var(1)),
	)
	got, err := parser.Parse(src)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseModifierOrder(t *testing.T) {
	// the printer writes visibility before irrelevant; the reader takes both orders
	want := construct.Def("f", term.Arg{
		Info: term.ArgInfo{Visibility: term.Hidden, Relevance: term.Irrelevant},
		Term: construct.Var(0),
	})
	for _, src := range []string{
		`(def f (hidden irrelevant (var 0)))`,
		`(def f (irrelevant hidden (var 0)))`,
	} {
		got, err := parser.Parse(src)
		require.NoError(t, err, "source %s", src)
		assert.Equal(t, want, got, "source %s", src)
	}
}

func TestParseNumericNames(t *testing.T) {
	// atoms that look numeric still serve as names after def and con
	got, err := parser.Parse(`(def 1≡2)`)
	require.NoError(t, err)
	assert.Equal(t, term.Term(construct.Def("1≡2")), got)

	got, err = parser.Parse(`(con 42)`)
	require.NoError(t, err)
	assert.Equal(t, term.Term(construct.Con("42")), got)
}

func TestParseUnknownSpellings(t *testing.T) {
	// the printer writes _; the reader also takes the spelled form
	tests := []struct {
		src  string
		want term.Term
	}{
		{"_", construct.Unknown()},
		{"unknown", construct.Unknown()},
		{"(con suc (hidden unknown))", construct.Con("suc", construct.Hidden(construct.Unknown()))},
		{"(sort unknown)", construct.Sort(term.UnknownSort{})},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := parser.Parse(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		line     int
		col      int
		contains string
	}{
		{"empty input", "", 1, 1, "expected a term"},
		{"bare symbol", "foo", 1, 1, "unexpected symbol"},
		{"unknown form", "(frob 1)", 1, 2, "unknown form"},
		{"missing index", "(var x)", 1, 6, "expected natural number"},
		{"binder not a string", `(lam visible x (var 0))`, 1, 14, "binder name"},
		{"unclosed form", "(def f (var 0)", 1, 15, "unclosed form"},
		{"trailing input", "(var 0) (var 1)", 1, 9, "trailing"},
		{"unknown sort", "(sort (frob 1))", 1, 8, "unknown sort"},
		{"unknown pattern", "(pat-lam ((clause () ((frob)) (var 0))))", 1, 24, "unknown pattern"},
		{"unterminated string", `(lam visible "x (var 0))`, 1, 14, "not closed"},
		{"bad char literal", `(lit 'ab')`, 1, 6, "invalid character literal"},
		{"second term on next line", "(var 0)\n(var 1)", 2, 1, "trailing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.src)
			require.Error(t, err)

			var perr congoerr.NewParse
			require.True(t, errors.As(err, &perr), "got %v", err)
			assert.Equal(t, tt.line, perr.Line, "line of %v", err)
			assert.Equal(t, tt.col, perr.Col, "column of %v", err)
			assert.Contains(t, perr.ParserMessage, tt.contains)
		})
	}
}

func TestParseAll(t *testing.T) {
	ts, err := parser.ParseAll("(var 0) _ (lit 3)")
	require.NoError(t, err)
	require.Len(t, ts, 3)
	assert.Equal(t, term.Term(construct.Var(0)), ts[0])
	assert.Equal(t, term.Term(construct.Unknown()), ts[1])
	assert.Equal(t, term.Term(construct.Nat(3)), ts[2])

	ts, err = parser.ParseAll("   ")
	require.NoError(t, err)
	assert.Empty(t, ts)

	_, err = parser.ParseAll("(var 0) (frob)")
	require.Error(t, err)
}

func TestParseErrorHints(t *testing.T) {
	_, err := parser.Parse("(frob)")
	require.Error(t, err)
	var perr congoerr.NewParse
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, perr.Hint, "known forms")
	assert.Contains(t, err.Error(), "1:2:")
}
