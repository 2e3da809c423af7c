// Package elab is a miniature elaboration host for the congruence tactic:
// a metavariable store, a syntactic unifier and a blocked-goal scheduler.
// It implements tactic.Engine, backing the command line and the tests the
// way a full proof engine would back the tactic in production.
//
// The host is deliberately first-order: metavariables are solved through
// unification of bare (unapplied) occurrences, terms are never reduced, and
// nothing here is safe for concurrent use. Every proof session owns its
// own Elab.
package elab

import (
	"errors"

	set "github.com/hashicorp/go-set/v3"
	"github.com/samber/lo"

	"github.com/congo-tactic/congo/congoerr"
	"github.com/congo-tactic/congo/internal/log"
	"github.com/congo-tactic/congo/tactic"
	"github.com/congo-tactic/congo/term"
)

var _ tactic.Engine = (*Elab)(nil)

// Elab is one proof session: the meta store plus the obligations proved,
// failed or parked so far.
type Elab struct {
	equalityName   term.Name
	congruenceName term.Name

	store

	waiting map[term.MetaID][]*Pending
	solved  []GoalSolution
	errs    *congoerr.Errors
}

// GoalSolution records one obligation the engine accepted.
type GoalSolution struct {
	Goal     term.Term
	Solution term.Term
}

// New returns a session with the conventional equality and congruence
// names, _≡_ and cong.
func New() *Elab {
	return NewNamed("_≡_", "cong")
}

// NewNamed returns a session against a host library whose equality type and
// congruence function use different names.
func NewNamed(equality, congruence term.Name) *Elab {
	return &Elab{
		equalityName:   equality,
		congruenceName: congruence,
		store:          newStore(),
		waiting:        map[term.MetaID][]*Pending{},
	}
}

func (e *Elab) EqualityName() term.Name { return e.equalityName }

func (e *Elab) MakeCong(f, proof term.Term) term.Term {
	return &term.Def{Name: e.congruenceName, Args: []term.Arg{{Term: f}, {Term: proof}}}
}

// Solve accepts a solution for an open obligation. The miniature host has
// no typechecker to refuse one, so it records the pair, fully zonked, and
// trusts the tactic.
func (e *Elab) Solve(goal, solution term.Term) error {
	gs := GoalSolution{Goal: e.Zonk(goal), Solution: e.Zonk(solution)}
	e.solved = append(e.solved, gs)
	logger.Debug("obligation solved", "goal", gs.Goal, "solution", gs.Solution)
	return nil
}

// SolvedGoals lists the obligations accepted so far, in order.
func (e *Elab) SolvedGoals() []GoalSolution { return e.solved }

var logger = log.Section("elab")

// Pending is one congruence obligation. It either finished (successfully or
// not) or sits parked until a metavariable it is blocked on gets solved.
type Pending struct {
	goal  term.Term
	proof term.Term

	done      bool
	blockedOn term.MetaID
	solution  term.Term
	err       error
}

// Done reports whether the obligation has finished, either way.
func (p *Pending) Done() bool { return p.done }

// Result returns the solved congruence term. An obligation still parked on
// a metavariable reports the blocked-on-meta error.
func (p *Pending) Result() (term.Term, error) {
	if !p.done {
		return nil, congoerr.New(congoerr.NewBlockedOnMeta{ID: p.blockedOn})
	}
	return p.solution, p.err
}

// ProveCong runs the congruence tactic for goal with the given equality
// proof. A goal blocked on an unresolved metavariable is parked and retried
// automatically when that meta is solved; inspect the returned Pending for
// the outcome.
func (e *Elab) ProveCong(goal, proof term.Term) *Pending {
	p := &Pending{goal: goal, proof: proof}
	e.attempt(p)
	return p
}

func (e *Elab) attempt(p *Pending) {
	solution, err := tactic.Cong(e, e.Zonk(p.goal), e.Zonk(p.proof))

	var blocked congoerr.NewBlockedOnMeta
	if errors.As(err, &blocked) {
		p.blockedOn = blocked.ID
		e.waiting[blocked.ID] = append(e.waiting[blocked.ID], p)
		logger.Debug("goal parked on metavariable", "meta", blocked.ID, "goal", p.goal)
		return
	}

	p.done = true
	p.solution, p.err = solution, err
	var cerr congoerr.CongoError
	if errors.As(err, &cerr) {
		e.errs = e.errs.With(cerr)
	}
}

// wake retries every obligation parked on id. Called by the store after a
// solution lands.
func (e *Elab) wake(id term.MetaID) {
	parked := e.waiting[id]
	if len(parked) == 0 {
		return
	}
	delete(e.waiting, id)
	for _, p := range parked {
		e.attempt(p)
	}
}

// BlockedOn is the set of metavariables with at least one obligation parked
// on them.
func (e *Elab) BlockedOn() *set.Set[term.MetaID] {
	return set.From(lo.Keys(e.waiting))
}

// Errors accumulates every obligation failure of the session.
func (e *Elab) Errors() *congoerr.Errors { return e.errs }
