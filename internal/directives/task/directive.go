// Package task handles //taskforget:task directives.
//
// A type declaration marked with the directive is treated as a deferred-result
// type. The mark is exported as an analysis fact, so packages importing the
// marked type recognize it as well:
//
//	//taskforget:task
//	type Job <-chan error
//
//	//taskforget:task void
//	type Signal <-chan struct{}
package task

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
)

const directivePrefix = "taskforget:task"

// Fact marks a type name as a deferred-result type.
type Fact struct {
	// Void marks the fire-and-forget flavor.
	Void bool
}

// AFact implements analysis.Fact.
func (*Fact) AFact() {}

func (f *Fact) String() string {
	if f.Void {
		return directivePrefix + " void"
	}
	return directivePrefix
}

// Build scans files for type declarations marked with the directive and
// exports a Fact for each of them.
func Build(pass *analysis.Pass) map[*types.TypeName]*Fact {
	marked := make(map[*types.TypeName]*Fact)

	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				fact, ok := directiveOf(ts.Doc)
				if !ok && len(gd.Specs) == 1 {
					fact, ok = directiveOf(gd.Doc)
				}
				if !ok {
					continue
				}

				obj, ok := pass.TypesInfo.Defs[ts.Name].(*types.TypeName)
				if !ok || obj.IsAlias() {
					continue
				}

				pass.ExportObjectFact(obj, fact)
				marked[obj] = fact
			}
		}
	}

	return marked
}

// Lookup returns the fact exported for obj by this or an imported package.
func Lookup(pass *analysis.Pass, obj *types.TypeName) (*Fact, bool) {
	if obj == nil || obj.Pkg() == nil {
		return nil, false
	}
	fact := new(Fact)
	if !pass.ImportObjectFact(obj, fact) {
		return nil, false
	}
	return fact, true
}

// directiveOf parses the directive from a doc comment group.
func directiveOf(doc *ast.CommentGroup) (*Fact, bool) {
	if doc == nil {
		return nil, false
	}

	for _, c := range doc.List {
		text := strings.TrimPrefix(c.Text, "//")
		text = strings.TrimSpace(text)

		if text != directivePrefix && !strings.HasPrefix(text, directivePrefix+" ") {
			continue
		}

		rest := strings.TrimSpace(strings.TrimPrefix(text, directivePrefix))
		switch {
		case rest == "":
			return &Fact{}, true
		case rest == "void" || strings.HasPrefix(rest, "void "):
			return &Fact{Void: true}, true
		}
	}

	return nil, false
}
