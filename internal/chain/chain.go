// Package chain locates the outermost call of a fluent invocation chain and
// classifies how the chain's result is consumed by its syntactic context.
package chain

import (
	"go/ast"
)

// Outermost returns the outermost call of the invocation chain that the
// call at the top of stack belongs to, together with its index in stack.
//
// The stack is the inspector stack (root first) and must end with the call
// being examined. The walk climbs through parentheses and through
// receiver positions: whenever the current call is the X of a selector that
// is itself called, that call becomes the new outermost call.
//
// Example:
//
//	bar.Foo3().AsTask().ContinueWith(nil)
//	// Outermost(stack ending at bar.Foo3()) returns the ContinueWith call
//	// Outermost(stack ending at the ContinueWith call) returns it unchanged
//
// ok is false when stack does not end with a call expression.
func Outermost(stack []ast.Node) (outer *ast.CallExpr, idx int, ok bool) {
	if len(stack) == 0 {
		return nil, 0, false
	}

	idx = len(stack) - 1
	outer, ok = stack[idx].(*ast.CallExpr)
	if !ok {
		return nil, 0, false
	}

	var cur ast.Node = outer
	for i := idx - 1; i >= 0; i-- {
		switch parent := stack[i].(type) {
		case *ast.ParenExpr:
			cur = parent
			continue

		case *ast.SelectorExpr:
			if parent.X != cur || i == 0 {
				return outer, idx, true
			}
			call, isCall := stack[i-1].(*ast.CallExpr)
			if !isCall || call.Fun != parent {
				return outer, idx, true
			}
			outer, idx, cur = call, i-1, call
			i--
			continue
		}

		return outer, idx, true
	}

	return outer, idx, true
}

// Context returns the first ancestor of stack[idx] that is not a
// parenthesized expression, along with the direct child of that ancestor on
// the path to stack[idx]. parent is nil when stack[idx] is the root.
func Context(stack []ast.Node, idx int) (parent, child ast.Node) {
	child = stack[idx]
	for i := idx - 1; i >= 0; i-- {
		if paren, ok := stack[i].(*ast.ParenExpr); ok {
			child = paren
			continue
		}
		return stack[i], child
	}
	return nil, child
}
