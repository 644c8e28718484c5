// Package checker walks every call expression of a package and reports the
// deferred results that are neither awaited, stored, nor forgotten.
package checker

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/taskforget/internal/chain"
	"github.com/mpyw/taskforget/internal/directives/ignore"
	"github.com/mpyw/taskforget/internal/typeutil"
)

// Finding is an unhandled deferred result found by a detector.
// Pkg is the package containing the call.
type Finding struct {
	Checker  ignore.CheckerName
	Call     *ast.CallExpr
	Outer    *ast.CallExpr
	Type     types.Type
	Callee   *typeutil.Callee
	Handling chain.Handling
	Pkg      *types.Package
}

// Pos returns the start of the flagged call.
func (f Finding) Pos() token.Pos { return f.Call.Pos() }

// End returns the end of the flagged call.
func (f Finding) End() token.Pos { return f.Call.End() }

// Checker runs the registered detectors over call expressions.
type Checker struct {
	detectors    []Detector
	forgetMethod string
	ignoreMaps   map[string]ignore.Map
	skipFiles    map[string]bool
}

// New creates a checker. Detectors run in the given order.
func New(
	detectors []Detector,
	forgetMethod string,
	ignoreMaps map[string]ignore.Map,
	skipFiles map[string]bool,
) *Checker {
	return &Checker{
		detectors:    detectors,
		forgetMethod: forgetMethod,
		ignoreMaps:   ignoreMaps,
		skipFiles:    skipFiles,
	}
}

// Run inspects every call expression and returns the findings in source order.
func (c *Checker) Run(pass *analysis.Pass, insp *inspector.Inspector) []Finding {
	if len(c.detectors) == 0 {
		return nil
	}

	var findings []Finding

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	insp.WithStack(nodeFilter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}

		filename := pass.Fset.Position(n.Pos()).Filename
		if c.skipFiles[filename] {
			return true
		}

		findings = append(findings, c.checkCall(pass, n.(*ast.CallExpr), stack)...)
		return true
	})

	return findings
}

// checkCall examines a single call. Only the outermost call of a chain is
// examined; inner calls are reached when the walk visits the outer one.
func (c *Checker) checkCall(pass *analysis.Pass, call *ast.CallExpr, stack []ast.Node) []Finding {
	outer, idx, ok := chain.Outermost(stack)
	if !ok || outer != call {
		return nil
	}

	if chain.IsArgument(stack, idx) {
		return nil
	}

	handling := chain.Classify(stack, idx, c.forgetMethod)
	if handling.Handled() {
		return nil
	}

	callee := typeutil.ResolveCallee(pass.TypesInfo, call)
	if callee == nil {
		return nil
	}

	exprType := pass.TypesInfo.TypeOf(call)

	var findings []Finding
	for _, d := range c.detectors {
		if !d.Detect(exprType, callee) {
			continue
		}
		if c.shouldIgnore(pass, call.Pos(), d.Name()) {
			continue
		}
		findings = append(findings, Finding{
			Checker:  d.Name(),
			Call:     call,
			Outer:    outer,
			Type:     exprType,
			Callee:   callee,
			Handling: handling,
			Pkg:      pass.Pkg,
		})
	}

	return findings
}

// shouldIgnore checks if the position should be ignored for the given checker.
func (c *Checker) shouldIgnore(pass *analysis.Pass, pos token.Pos, checkerName ignore.CheckerName) bool {
	filename := pass.Fset.Position(pos).Filename
	ignoreMap, ok := c.ignoreMaps[filename]
	if !ok {
		return false
	}
	line := pass.Fset.Position(pos).Line
	return ignoreMap.ShouldIgnore(line, checkerName)
}
