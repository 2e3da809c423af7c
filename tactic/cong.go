// Package tactic implements the congruence proof step: given an equality
// goal whose two endpoints share most of their structure, it abstracts the
// differing positions into a one-argument function and discharges the goal
// as the congruence of that function applied to a supplied equality proof.
package tactic

import (
	"github.com/congo-tactic/congo/antiunify"
	"github.com/congo-tactic/congo/congoerr"
	"github.com/congo-tactic/congo/construct"
	"github.com/congo-tactic/congo/internal/log"
	"github.com/congo-tactic/congo/term"
)

var logger = log.Section("tactic")

// Engine is the narrow boundary to the host proof engine. The tactic only
// ever consumes it; elab carries the in-repo implementation.
type Engine interface {
	// EqualityName is the name of the host's two-sided equality type. A
	// goal must be that definition applied to a level, a type and the two
	// endpoints.
	EqualityName() term.Name

	// MakeCong builds the congruence of a one-argument function applied to
	// a proof that two arguments for it are equal.
	MakeCong(f, proof term.Term) term.Term

	// Solve submits a solution for the obligation behind goal.
	Solve(goal, solution term.Term) error
}

// Cong proves an equality goal from a proof of the equality of the
// endpoints' differing position. The goal is inspected exactly as written:
// no normalization happens, so the caller's term shapes decide where the
// abstraction sits.
//
// A goal that is itself an unresolved metavariable cannot be inspected yet;
// Cong returns the blocked-on-meta error so a scheduler can retry once the
// meta is solved. Re-running is cheap and idempotent.
func Cong(eng Engine, goal, proof term.Term) (term.Term, error) {
	if m, ok := goal.(*term.Meta); ok {
		return nil, congoerr.New(congoerr.NewBlockedOnMeta{ID: m.ID})
	}
	eq, ok := goal.(*term.Def)
	if !ok || eq.Name != eng.EqualityName() || len(eq.Args) != 4 {
		return nil, congoerr.New(congoerr.NewNonEqualityGoal{Goal: goal})
	}
	lhs, rhs := eq.Args[2].Term, eq.Args[3].Term

	body := antiunify.Generalize(0, lhs, rhs)
	f := construct.Lam("ϕ", body)
	if !term.FreeVars(body).Contains(0) {
		logger.Debug("endpoints agree everywhere, congruence is trivial", "goal", goal)
	}
	logger.Debug("abstracted the differing positions", "f", f)

	solution := eng.MakeCong(f, proof)
	if err := eng.Solve(goal, solution); err != nil {
		return nil, err
	}
	return solution, nil
}
