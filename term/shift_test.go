package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescend(t *testing.T) {
	tests := []struct {
		name string
		phi  int
		x    int
		want int
	}{
		{"below the insertion point", 3, 2, 2},
		{"at the insertion point", 3, 3, 4},
		{"above the insertion point", 3, 7, 8},
		{"depth zero shifts everything", 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Descend(tt.phi, tt.x))
		})
	}
}

func TestDescendPattern(t *testing.T) {
	t.Run("var pattern shifts at the incoming depth, then deepens", func(t *testing.T) {
		p, phi := DescendPattern(1, &VarP{Index: 1})
		assert.Equal(t, &VarP{Index: 2}, p)
		assert.Equal(t, 2, phi)
	})

	t.Run("var pattern below the depth keeps its index but still deepens", func(t *testing.T) {
		p, phi := DescendPattern(2, &VarP{Index: 0})
		assert.Equal(t, &VarP{Index: 0}, p)
		assert.Equal(t, 3, phi)
	})

	t.Run("absurd pattern behaves like a binding pattern", func(t *testing.T) {
		p, phi := DescendPattern(0, &AbsurdP{Index: 4})
		assert.Equal(t, &AbsurdP{Index: 5}, p)
		assert.Equal(t, 1, phi)
	})

	t.Run("dot, literal and projection patterns pass through", func(t *testing.T) {
		dot := &DotP{Term: &Var{Index: 0}}
		for _, p := range []Pattern{dot, &LitP{Value: NatLit{N: 2}}, &ProjP{Name: "fst"}} {
			got, phi := DescendPattern(7, p)
			assert.Equal(t, p, got)
			assert.Equal(t, 7, phi)
		}
	})

	t.Run("constructor pattern threads depth through its subpatterns", func(t *testing.T) {
		in := &ConP{Name: "suc", Pats: []PatArg{
			{Pattern: &VarP{Index: 0}},
			{Pattern: &VarP{Index: 1}},
		}}
		p, phi := DescendPattern(0, in)
		want := &ConP{Name: "suc", Pats: []PatArg{
			{Pattern: &VarP{Index: 1}},
			{Pattern: &VarP{Index: 2}},
		}}
		assert.Equal(t, want, p)
		assert.Equal(t, 2, phi)
	})
}

func TestDescendPatterns(t *testing.T) {
	in := []PatArg{
		{Pattern: &VarP{Index: 0}},
		{Pattern: &ConP{Name: "suc", Pats: []PatArg{{Pattern: &VarP{Index: 1}}}}},
		{Pattern: &DotP{Term: &Var{Index: 3}}},
	}
	got, phi := DescendPatterns(0, in)

	want := []PatArg{
		{Pattern: &VarP{Index: 1}},
		{Pattern: &ConP{Name: "suc", Pats: []PatArg{{Pattern: &VarP{Index: 2}}}}},
		{Pattern: &DotP{Term: &Var{Index: 3}}},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 2, phi, "two binding patterns deepen the depth twice")
}
