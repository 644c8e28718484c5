package chain

import (
	"go/ast"
	"go/token"
)

// Handling describes how the result of an outermost call is consumed.
type Handling int

const (
	// Unhandled means the result is dropped by an expression statement.
	Unhandled Handling = iota
	// Dropped means the result is dropped by a go or defer statement.
	// Neither rewrite applies there.
	Dropped
	// Forgotten means the chain already ends with the discard call.
	Forgotten
	// Bound means the result is assigned or bound to a variable.
	Bound
	// Awaited means the result is received with the <- operator.
	Awaited
	// Passed means the result is an argument of an enclosing call.
	Passed
	// Returned means the result is returned to the caller.
	Returned
	// Stored means the result is placed into a composite literal or sent on a channel.
	Stored
	// Consumed means the result is used by some other expression.
	Consumed
)

var handlingNames = [...]string{
	Unhandled: "unhandled",
	Dropped:   "dropped",
	Forgotten: "forgotten",
	Bound:     "bound",
	Awaited:   "awaited",
	Passed:    "passed",
	Returned:  "returned",
	Stored:    "stored",
	Consumed:  "consumed",
}

func (h Handling) String() string {
	if h < 0 || int(h) >= len(handlingNames) {
		return "unknown"
	}
	return handlingNames[h]
}

// Handled reports whether the result is awaited, stored, or explicitly discarded.
func (h Handling) Handled() bool {
	return h != Unhandled && h != Dropped
}

// Fixable reports whether a rewrite may be offered for the call site.
func (h Handling) Fixable() bool {
	return h == Unhandled
}

// HasForgetSuffix reports whether call is an invocation of the discard
// method, i.e. whether the chain it closes already ends in .Forget().
//
// The check is structural: the callee must be a selector whose selected name
// is method, regardless of spacing or line breaks inside the chain.
func HasForgetSuffix(call *ast.CallExpr, method string) bool {
	if call == nil || len(call.Args) != 0 {
		return false
	}
	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return false
	}
	return sel.Sel != nil && sel.Sel.Name == method
}

// Classify determines how the result of the outermost call stack[idx] is
// consumed. forgetMethod is the name of the discard method.
//
// Example:
//
//	f().Forget()          // Forgotten
//	t := f()              // Bound
//	<-f()                 // Awaited
//	run(f())              // Passed
//	f()                   // Unhandled
//	defer f()             // Dropped
func Classify(stack []ast.Node, idx int, forgetMethod string) Handling {
	outer, ok := stack[idx].(*ast.CallExpr)
	if !ok {
		return Consumed
	}
	if HasForgetSuffix(outer, forgetMethod) {
		return Forgotten
	}

	parent, child := Context(stack, idx)

	switch p := parent.(type) {
	case *ast.ExprStmt:
		return Unhandled

	case *ast.GoStmt, *ast.DeferStmt:
		return Dropped

	case *ast.AssignStmt:
		if containsExpr(p.Rhs, child) {
			return Bound
		}

	case *ast.ValueSpec:
		if containsExpr(p.Values, child) {
			return Bound
		}

	case *ast.UnaryExpr:
		if p.Op == token.ARROW {
			return Awaited
		}

	case *ast.CallExpr:
		if containsExpr(p.Args, child) {
			return Passed
		}

	case *ast.ReturnStmt:
		return Returned

	case *ast.CompositeLit, *ast.KeyValueExpr, *ast.SendStmt:
		return Stored
	}

	return Consumed
}

// IsArgument reports whether the node at stack[idx] is passed as an argument
// to an enclosing call, ignoring parentheses.
func IsArgument(stack []ast.Node, idx int) bool {
	parent, child := Context(stack, idx)
	call, ok := parent.(*ast.CallExpr)
	return ok && containsExpr(call.Args, child)
}

func containsExpr(exprs []ast.Expr, n ast.Node) bool {
	for _, e := range exprs {
		if e == n {
			return true
		}
	}
	return false
}
