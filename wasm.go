//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/congo-tactic/congo/antiunify"
	"github.com/congo-tactic/congo/elab"
	"github.com/congo-tactic/congo/parser"
)

func main() {
	js.Global().Set("CongoGeneralize", js.FuncOf(generalizeJS))
	js.Global().Set("CongoProve", js.FuncOf(proveJS))

	// wait indefinitely so that Go does not terminate execution
	// and the functions remain available
	<-make(chan struct{})
}

func errorObj(err string) any {
	return js.ValueOf(map[string]any{
		"error": err,
	})
}

// generalizeJS takes two term strings and returns their common shape and
// the one-argument abstraction over the differing positions.
//
// output: { error: string } | { generalized: string, abstraction: string }
func generalizeJS(_ js.Value, args []js.Value) (ret any) {
	defer func() {
		if r := recover(); r != nil {
			ret = errorObj("engine panicked: " + fmt.Sprint(r))
		}
	}()

	if len(args) != 2 {
		return errorObj(fmt.Sprintf("expected 2 arguments, got %d", len(args)))
	}
	lhs, err := parser.Parse(args[0].String())
	if err != nil {
		return errorObj(err.Error())
	}
	rhs, err := parser.Parse(args[1].String())
	if err != nil {
		return errorObj(err.Error())
	}

	body := antiunify.Generalize(0, lhs, rhs)
	return js.ValueOf(map[string]any{
		"generalized": body.String(),
		"abstraction": fmt.Sprintf("λ ϕ → %s", body),
	})
}

// proveJS takes an equality goal and a proof term and returns the solved
// congruence term.
//
// output: { error: string } | { solution: string }
func proveJS(_ js.Value, args []js.Value) (ret any) {
	defer func() {
		if r := recover(); r != nil {
			ret = errorObj("engine panicked: " + fmt.Sprint(r))
		}
	}()

	if len(args) != 2 {
		return errorObj(fmt.Sprintf("expected 2 arguments, got %d", len(args)))
	}
	goal, err := parser.Parse(args[0].String())
	if err != nil {
		return errorObj(err.Error())
	}
	proof, err := parser.Parse(args[1].String())
	if err != nil {
		return errorObj(err.Error())
	}

	pending := elab.New().ProveCong(goal, proof)
	solution, err := pending.Result()
	if err != nil {
		return errorObj(err.Error())
	}
	return js.ValueOf(map[string]any{
		"solution": solution.String(),
	})
}
