package term

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualIgnoresBinderNames(t *testing.T) {
	tests := []struct {
		name string
		a, b Term
	}{
		{
			"lambda binders",
			&Lam{Body: Abs{Binder: "x", Term: &Var{Index: 0}}},
			&Lam{Body: Abs{Binder: "y", Term: &Var{Index: 0}}},
		},
		{
			"pi binders",
			&Pi{Dom: Arg{Term: &Def{Name: "ℕ"}}, Cod: Abs{Binder: "n", Term: &Var{Index: 0}}},
			&Pi{Dom: Arg{Term: &Def{Name: "ℕ"}}, Cod: Abs{Binder: "m", Term: &Var{Index: 0}}},
		},
		{
			"telescope binders",
			&PatLam{Clauses: []Clause{{
				Telescope: Telescope{{Binder: "n", Type: Arg{Term: &Def{Name: "ℕ"}}}},
				Pats:      []PatArg{{Pattern: &VarP{Index: 0}}},
				RHS:       &Var{Index: 0},
			}}},
			&PatLam{Clauses: []Clause{{
				Telescope: Telescope{{Binder: "k", Type: Arg{Term: &Def{Name: "ℕ"}}}},
				Pats:      []PatArg{{Pattern: &VarP{Index: 0}}},
				RHS:       &Var{Index: 0},
			}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Equal(tt.a, tt.b))
			assert.Equal(t, tt.a.Hash(), tt.b.Hash(), "alpha-equal terms must hash equal")
		})
	}
}

func TestEqualDistinguishes(t *testing.T) {
	tests := []struct {
		name string
		a, b Term
	}{
		{"variable indices", &Var{Index: 0}, &Var{Index: 1}},
		{"definition names", &Def{Name: "f"}, &Def{Name: "g"}},
		{"node kinds", &Def{Name: "f"}, &Con{Name: "f"}},
		{
			"argument visibility",
			&Def{Name: "f", Args: []Arg{{Term: &Var{Index: 0}}}},
			&Def{Name: "f", Args: []Arg{{Info: ArgInfo{Visibility: Hidden}, Term: &Var{Index: 0}}}},
		},
		{
			"argument relevance",
			&Def{Name: "f", Args: []Arg{{Term: &Var{Index: 0}}}},
			&Def{Name: "f", Args: []Arg{{Info: ArgInfo{Relevance: Irrelevant}, Term: &Var{Index: 0}}}},
		},
		{
			"lambda visibility",
			&Lam{Visibility: Visible, Body: Abs{Term: &Var{Index: 0}}},
			&Lam{Visibility: Hidden, Body: Abs{Term: &Var{Index: 0}}},
		},
		{
			"sort kinds",
			&Sort{Kind: SetLitSort{N: 0}},
			&Sort{Kind: PropLitSort{N: 0}},
		},
		{
			"sort levels",
			&Sort{Kind: SetSort{Level: &Var{Index: 0}}},
			&Sort{Kind: SetSort{Level: &Var{Index: 1}}},
		},
		{"literal kinds", &Lit{Value: NatLit{N: 3}}, &Lit{Value: Word64Lit{N: 3}}},
		{"meta identity", &Meta{ID: 1}, &Meta{ID: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, Equal(tt.a, tt.b))
			assert.False(t, Equal(tt.b, tt.a))
		})
	}
}

func TestEqualReflexive(t *testing.T) {
	terms := []Term{
		&Var{Index: 2, Args: []Arg{{Term: &Var{Index: 0}}}},
		&Def{Name: "_+_", Args: []Arg{{Term: &Var{Index: 0}}, {Term: &Lit{Value: NatLit{N: 0}}}}},
		&Con{Name: "suc", Args: []Arg{{Term: &Var{Index: 1}}}},
		&Lam{Body: Abs{Binder: "x", Term: &Var{Index: 0}}},
		&Pi{Dom: Arg{Info: ArgInfo{Visibility: Hidden}, Term: &Sort{Kind: SetLitSort{}}},
			Cod: Abs{Binder: "A", Term: &Var{Index: 0}}},
		&Sort{Kind: InfSort{N: 1}},
		&Sort{Kind: UnknownSort{}},
		&Lit{Value: StringLit{S: "hello"}},
		&Meta{ID: 7, Args: []Arg{{Term: &Unknown{}}}},
		&Unknown{},
		&PatLam{Clauses: []Clause{{
			Telescope: Telescope{{Binder: "n", Type: Arg{Term: &Def{Name: "ℕ"}}}},
			Pats:      []PatArg{{Pattern: &ConP{Name: "suc", Pats: []PatArg{{Pattern: &VarP{Index: 0}}}}}},
			RHS:       &Var{Index: 0},
		}, {
			Telescope: Telescope{{Binder: "e", Type: Arg{Term: &Def{Name: "⊥"}}}},
			Pats:      []PatArg{{Pattern: &AbsurdP{Index: 0}}},
			Absurd:    true,
		}}},
	}
	for _, tm := range terms {
		t.Run(tm.Describe(), func(t *testing.T) {
			assert.True(t, Equal(tm, tm))
		})
	}
}

func TestLiteralEqual(t *testing.T) {
	nan := math.NaN()

	t.Run("floats compare bitwise", func(t *testing.T) {
		assert.True(t, FloatLit{F: nan}.Equal(FloatLit{F: nan}))
		assert.False(t, FloatLit{F: 0.0}.Equal(FloatLit{F: math.Copysign(0, -1)}))
		assert.True(t, FloatLit{F: 1.5}.Equal(FloatLit{F: 1.5}))
	})

	t.Run("kinds never cross", func(t *testing.T) {
		assert.False(t, NatLit{N: 3}.Equal(Word64Lit{N: 3}))
		assert.False(t, CharLit{R: 'a'}.Equal(StringLit{S: "a"}))
		assert.False(t, NameLit{Name: "x"}.Equal(StringLit{S: "x"}))
	})

	t.Run("payloads decide", func(t *testing.T) {
		assert.True(t, MetaLit{ID: 4}.Equal(MetaLit{ID: 4}))
		assert.False(t, MetaLit{ID: 4}.Equal(MetaLit{ID: 5}))
		assert.True(t, NameLit{Name: "_≡_"}.Equal(NameLit{Name: "_≡_"}))
	})
}

func TestEqualClause(t *testing.T) {
	ordinary := Clause{
		Telescope: Telescope{{Binder: "n", Type: Arg{Term: &Def{Name: "ℕ"}}}},
		Pats:      []PatArg{{Pattern: &VarP{Index: 0}}},
		RHS:       &Var{Index: 0},
	}
	absurd := Clause{
		Telescope: Telescope{{Binder: "e", Type: Arg{Term: &Def{Name: "⊥"}}}},
		Pats:      []PatArg{{Pattern: &AbsurdP{Index: 0}}},
		Absurd:    true,
	}

	assert.True(t, EqualClause(ordinary, ordinary))
	assert.True(t, EqualClause(absurd, absurd))
	assert.False(t, EqualClause(ordinary, absurd))

	differentRHS := ordinary
	differentRHS.RHS = &Var{Index: 0, Args: []Arg{{Term: &Unknown{}}}}
	assert.False(t, EqualClause(ordinary, differentRHS))

	differentPats := ordinary
	differentPats.Pats = []PatArg{{Pattern: &VarP{Index: 1}}}
	assert.False(t, EqualClause(ordinary, differentPats))
}
