package elab

import (
	"github.com/benbjohnson/immutable"

	"github.com/congo-tactic/congo/congoerr"
	"github.com/congo-tactic/congo/term"
)

// store holds the session's metavariable state. Solutions live in an
// immutable map so readers handed out earlier are never invalidated by a
// later solve.
type store struct {
	nextMeta  term.MetaID
	solutions *immutable.Map[term.MetaID, term.Term]
}

func newStore() store {
	return store{solutions: immutable.NewMap[term.MetaID, term.Term](metaHasher{})}
}

var _ immutable.Hasher[term.MetaID] = metaHasher{}

type metaHasher struct{}

func (metaHasher) Hash(id term.MetaID) uint32  { return uint32(id) ^ uint32(id>>32) }
func (metaHasher) Equal(a, b term.MetaID) bool { return a == b }

// Fresh mints an unapplied metavariable unique within the session.
func (e *Elab) Fresh() *term.Meta {
	id := e.nextMeta
	e.nextMeta++
	return &term.Meta{ID: id}
}

// Lookup returns the stored solution for id, if any.
func (e *Elab) Lookup(id term.MetaID) (term.Term, bool) {
	return e.solutions.Get(id)
}

// SolveMeta records a solution for id and retries obligations parked on it.
// Solving an already-solved meta is fine when the solutions agree up to
// alpha-equivalence and an error otherwise; a solution mentioning its own
// meta fails the occurs check.
func (e *Elab) SolveMeta(id term.MetaID, t term.Term) error {
	solution := e.Zonk(t)
	if term.Metas(solution).Contains(id) {
		return congoerr.New(congoerr.NewOccursCheck{ID: id, In: solution})
	}
	if existing, ok := e.solutions.Get(id); ok {
		if !term.Equal(e.Zonk(existing), solution) {
			return congoerr.New(congoerr.NewMetaConflict{
				ID:       id,
				Existing: e.Zonk(existing),
				Proposed: solution,
			})
		}
		return nil
	}
	e.solutions = e.solutions.Set(id, solution)
	logger.Debug("metavariable solved", "meta", id, "solution", solution)
	e.wake(id)
	return nil
}

// Zonk substitutes solved metavariables into t, all the way down. Only bare
// occurrences are substituted: an applied meta keeps its head, since the
// first-order store has no way to apply a solution to arguments.
func (e *Elab) Zonk(t term.Term) term.Term {
	return t.Transform(func(s term.Term) term.Term {
		if m, ok := s.(*term.Meta); ok && len(m.Args) == 0 {
			if solution, ok := e.solutions.Get(m.ID); ok {
				// a solution stored before its own metas resolved may need
				// another pass; the occurs check keeps this finite
				return e.Zonk(solution)
			}
		}
		return s
	})
}
