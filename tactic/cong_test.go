package tactic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/congo-tactic/congo/congoerr"
	"github.com/congo-tactic/congo/construct"
	"github.com/congo-tactic/congo/term"
)

type fakeEngine struct {
	solveErr  error
	solved    []term.Term
	solutions []term.Term
}

func (f *fakeEngine) EqualityName() term.Name { return "_≡_" }

func (f *fakeEngine) MakeCong(fn, proof term.Term) term.Term {
	return construct.Def("cong", construct.Arg(fn), construct.Arg(proof))
}

func (f *fakeEngine) Solve(goal, solution term.Term) error {
	if f.solveErr != nil {
		return f.solveErr
	}
	f.solved = append(f.solved, goal)
	f.solutions = append(f.solutions, solution)
	return nil
}

func equalityGoal(lhs, rhs term.Term) term.Term {
	return construct.Def("_≡_",
		construct.Hidden(construct.Def("lzero")),
		construct.Hidden(construct.Def("ℕ")),
		construct.Arg(lhs),
		construct.Arg(rhs),
	)
}

func TestCongSolvesEqualityGoal(t *testing.T) {
	// suc (suc (m + 0)) + m ≡ suc (suc m) + m, abstracting m + 0 against m
	m := construct.Var(0)
	lhs := construct.Def("_+_",
		construct.Arg(construct.Con("suc", construct.Arg(construct.Con("suc",
			construct.Arg(construct.Def("_+_", construct.Arg(m), construct.Arg(construct.Nat(0)))))))),
		construct.Arg(m),
	)
	rhs := construct.Def("_+_",
		construct.Arg(construct.Con("suc", construct.Arg(construct.Con("suc", construct.Arg(m))))),
		construct.Arg(m),
	)
	goal := equalityGoal(lhs, rhs)
	proof := construct.Def("m+0≡m")

	eng := &fakeEngine{}
	got, err := Cong(eng, goal, proof)
	require.NoError(t, err)

	wantF := construct.Lam("ϕ", construct.Def("_+_",
		construct.Arg(construct.Con("suc", construct.Arg(construct.Con("suc", construct.Arg(construct.Var(0)))))),
		construct.Arg(construct.Var(1)),
	))
	want := construct.Def("cong", construct.Arg(wantF), construct.Arg(proof))
	assert.True(t, term.Equal(want, got), "want %s, got %s", want, got)

	require.Len(t, eng.solved, 1)
	assert.True(t, term.Equal(goal, eng.solved[0]))
	assert.True(t, term.Equal(want, eng.solutions[0]))
}

func TestCongAcceptsAgreeingEndpoints(t *testing.T) {
	lhs := construct.Con("suc", construct.Arg(construct.Nat(0)))
	goal := equalityGoal(lhs, construct.Con("suc", construct.Arg(construct.Nat(0))))

	eng := &fakeEngine{}
	got, err := Cong(eng, goal, construct.Def("refl"))
	require.NoError(t, err)

	wantF := construct.Lam("ϕ", construct.Con("suc", construct.Arg(construct.Nat(0))))
	assert.True(t, term.Equal(
		construct.Def("cong", construct.Arg(wantF), construct.Arg(construct.Def("refl"))),
		got,
	), "got %s", got)
}

func TestCongBlocksOnMetaGoal(t *testing.T) {
	eng := &fakeEngine{}
	_, err := Cong(eng, construct.Meta(5), construct.Def("refl"))
	require.Error(t, err)

	var blocked congoerr.NewBlockedOnMeta
	require.True(t, errors.As(err, &blocked))
	assert.Equal(t, term.MetaID(5), blocked.ID)
	assert.Empty(t, eng.solved, "a blocked goal must not reach the engine")
}

func TestCongRejectsNonEqualityGoals(t *testing.T) {
	tests := []struct {
		name string
		goal term.Term
	}{
		{"bare variable", construct.Var(0)},
		{"different definition", construct.Def("_<_",
			construct.Arg(construct.Nat(0)), construct.Arg(construct.Nat(1)),
			construct.Arg(construct.Nat(2)), construct.Arg(construct.Nat(3)))},
		{"equality with missing arguments", construct.Def("_≡_",
			construct.Arg(construct.Nat(0)), construct.Arg(construct.Nat(1)))},
		{"lambda", construct.Lam("x", construct.Var(0))},
		{"unknown", construct.Unknown()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := &fakeEngine{}
			_, err := Cong(eng, tt.goal, construct.Def("refl"))
			require.Error(t, err)

			var nonEq congoerr.NewNonEqualityGoal
			require.True(t, errors.As(err, &nonEq))
			assert.True(t, term.Equal(tt.goal, nonEq.Goal), "the offending goal travels with the error")
			assert.Empty(t, eng.solved)
		})
	}
}

func TestCongPropagatesSolveFailure(t *testing.T) {
	eng := &fakeEngine{solveErr: congoerr.New(congoerr.NewUnifyMismatch{
		Left:  construct.Nat(0),
		Right: construct.Nat(1),
	})}
	goal := equalityGoal(construct.Nat(0), construct.Nat(1))

	_, err := Cong(eng, goal, construct.Def("bogus"))
	require.Error(t, err)

	var mismatch congoerr.NewUnifyMismatch
	assert.True(t, errors.As(err, &mismatch))
}
