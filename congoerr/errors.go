package congoerr

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/congo-tactic/congo/term"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None           ErrCode = iota
	NonEqualityGoal
	BlockedOnMeta
	Parse
	UnifyMismatch
	MetaConflict
	OccursCheck
)

type CongoError interface {
	Error() string
	Code() ErrCode

	withStack([]byte) CongoError
	getStack() []byte
}

func FormatWithCode(e CongoError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E CongoError](err E) CongoError {
	return err.withStack(debug.Stack())
}

type Unclassified struct {
	From  error
	stack []byte
}

func (e Unclassified) Error() string {
	return fmt.Sprintf("unclassified error: %v", e.From)
}
func (e Unclassified) Code() ErrCode    { return None }
func (e Unclassified) getStack() []byte { return e.stack }
func (e Unclassified) withStack(stack []byte) CongoError {
	e.stack = stack
	return e
}

// NewNonEqualityGoal reports a goal handed to the congruence driver that is
// not a two-sided equality.
type NewNonEqualityGoal struct {
	Goal  term.Term
	stack []byte
}

func (e NewNonEqualityGoal) Error() string {
	return fmt.Sprintf("goal is not a two-sided equality: found a %s '%s'", e.Goal.Describe(), e.Goal)
}
func (e NewNonEqualityGoal) Code() ErrCode    { return NonEqualityGoal }
func (e NewNonEqualityGoal) getStack() []byte { return e.stack }
func (e NewNonEqualityGoal) withStack(stack []byte) CongoError {
	e.stack = stack
	return e
}

// NewBlockedOnMeta is the deferral signal: the goal cannot be inspected
// until the named metavariable is solved. Schedulers consume it and retry;
// it only reaches a user when nothing ever solves the meta.
type NewBlockedOnMeta struct {
	ID    term.MetaID
	stack []byte
}

func (e NewBlockedOnMeta) Error() string {
	return fmt.Sprintf("goal is blocked on unresolved metavariable _%d", e.ID)
}
func (e NewBlockedOnMeta) Code() ErrCode    { return BlockedOnMeta }
func (e NewBlockedOnMeta) getStack() []byte { return e.stack }
func (e NewBlockedOnMeta) withStack(stack []byte) CongoError {
	e.stack = stack
	return e
}

type NewParse struct {
	Line          int
	Col           int
	ParserMessage string
	Hint          string
	stack         []byte
}

func (e NewParse) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%d:%d: %s (%s)", e.Line, e.Col, e.ParserMessage, e.Hint)
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.ParserMessage)
}
func (e NewParse) Code() ErrCode    { return Parse }
func (e NewParse) getStack() []byte { return e.stack }
func (e NewParse) withStack(stack []byte) CongoError {
	e.stack = stack
	return e
}

type NewUnifyMismatch struct {
	Left  term.Term
	Right term.Term
	stack []byte
}

func (e NewUnifyMismatch) Error() string {
	return fmt.Sprintf("cannot unify '%s' with '%s'", e.Left, e.Right)
}
func (e NewUnifyMismatch) Code() ErrCode    { return UnifyMismatch }
func (e NewUnifyMismatch) getStack() []byte { return e.stack }
func (e NewUnifyMismatch) withStack(stack []byte) CongoError {
	e.stack = stack
	return e
}

// NewMetaConflict reports a second, different solution for an already
// solved metavariable.
type NewMetaConflict struct {
	ID       term.MetaID
	Existing term.Term
	Proposed term.Term
	stack    []byte
}

func (e NewMetaConflict) Error() string {
	return fmt.Sprintf("metavariable _%d is already solved to '%s', refusing '%s'",
		e.ID, e.Existing, e.Proposed)
}
func (e NewMetaConflict) Code() ErrCode    { return MetaConflict }
func (e NewMetaConflict) getStack() []byte { return e.stack }
func (e NewMetaConflict) withStack(stack []byte) CongoError {
	e.stack = stack
	return e
}

type NewOccursCheck struct {
	ID    term.MetaID
	In    term.Term
	stack []byte
}

func (e NewOccursCheck) Error() string {
	return fmt.Sprintf("occurs check failed: metavariable _%d occurs in '%s'", e.ID, e.In)
}
func (e NewOccursCheck) Code() ErrCode    { return OccursCheck }
func (e NewOccursCheck) getStack() []byte { return e.stack }
func (e NewOccursCheck) withStack(stack []byte) CongoError {
	e.stack = stack
	return e
}
