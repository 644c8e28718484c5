// Package fixes builds the suggested fixes offered for unhandled deferred
// results: inserting the receive operator to await the result, or appending
// the discard call to the end of the invocation chain.
package fixes

import (
	"fmt"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/mpyw/taskforget/internal/chain"
	"github.com/mpyw/taskforget/internal/checker"
)

// Kind selects a rewrite.
type Kind string

// Known rewrite kinds.
const (
	KindForget Kind = "forget"
	KindAwait  Kind = "await"
)

// AwaitMessage is the message of the await fix.
const AwaitMessage = "Insert <- to await the result"

const forgetMessagePrefix = "Append ."

// ForgetMessage returns the message of the forget fix for method.
func ForgetMessage(method string) string {
	return forgetMessagePrefix + method + "()"
}

// KindOf returns the kind of a fix built by Rewriter.
func KindOf(fix analysis.SuggestedFix) (Kind, bool) {
	switch {
	case fix.Message == AwaitMessage:
		return KindAwait, true
	case strings.HasPrefix(fix.Message, forgetMessagePrefix):
		return KindForget, true
	}
	return "", false
}

// ParseKinds converts configured kind names, keeping their order and dropping duplicates.
func ParseKinds(names []string) ([]Kind, error) {
	var kinds []Kind
	seen := make(map[Kind]bool)

	for _, name := range names {
		kind := Kind(name)
		switch kind {
		case KindForget, KindAwait:
		default:
			return nil, fmt.Errorf("unknown fix kind %q", name)
		}
		if !seen[kind] {
			seen[kind] = true
			kinds = append(kinds, kind)
		}
	}

	return kinds, nil
}

// Rewriter produces suggested fixes for findings.
type Rewriter struct {
	// Kinds lists the offered rewrites in order.
	Kinds []Kind
	// ForgetMethod is the name of the discard method.
	ForgetMethod string
}

// Fixes returns every offered fix whose preconditions hold for f.
func (r Rewriter) Fixes(f checker.Finding) []analysis.SuggestedFix {
	var fixes []analysis.SuggestedFix
	for _, kind := range r.Kinds {
		if fix, ok := r.Fix(kind, f); ok {
			fixes = append(fixes, fix)
		}
	}
	return fixes
}

// Fix builds the fix of the given kind. ok is false when the rewrite does
// not apply to f.
func (r Rewriter) Fix(kind Kind, f checker.Finding) (analysis.SuggestedFix, bool) {
	if f.Call == nil || f.Outer == nil || !f.Handling.Fixable() {
		return analysis.SuggestedFix{}, false
	}

	switch kind {
	case KindAwait:
		if !Receivable(f.Type) {
			return analysis.SuggestedFix{}, false
		}
		return insert(AwaitMessage, f.Call.Pos(), "<-"), true

	case KindForget:
		if chain.HasForgetSuffix(f.Outer, r.ForgetMethod) || !HasForgetMethod(f.Type, f.Pkg, r.ForgetMethod) {
			return analysis.SuggestedFix{}, false
		}
		return insert(ForgetMessage(r.ForgetMethod), f.Outer.End(), "."+r.ForgetMethod+"()"), true
	}

	return analysis.SuggestedFix{}, false
}

func insert(message string, pos token.Pos, text string) analysis.SuggestedFix {
	return analysis.SuggestedFix{
		Message: message,
		TextEdits: []analysis.TextEdit{{
			Pos:     pos,
			End:     pos,
			NewText: []byte(text),
		}},
	}
}

// Receivable reports whether a value of type t can be received from.
func Receivable(t types.Type) bool {
	if t == nil {
		return false
	}
	ch, ok := t.Underlying().(*types.Chan)
	return ok && ch.Dir() != types.SendOnly
}

// HasForgetMethod reports whether a non-addressable value of type t has a
// method named name that takes no parameters and is accessible from pkg,
// the package of the call site.
func HasForgetMethod(t types.Type, pkg *types.Package, name string) bool {
	if t == nil || name == "" {
		return false
	}

	obj, _, _ := types.LookupFieldOrMethod(t, false, pkg, name)
	fn, ok := obj.(*types.Func)
	if !ok {
		return false
	}
	sig, ok := fn.Type().(*types.Signature)
	return ok && sig.Params().Len() == 0
}
