// Package ignore handles //taskforget:ignore directives.
package ignore

import (
	"go/ast"
	"go/token"
	"slices"
	"strings"
)

const directivePrefix = "taskforget:ignore"

// CheckerName represents a checker that can be ignored.
type CheckerName string

// Valid checker names.
const (
	Task     CheckerName = "task"
	TaskVoid CheckerName = "taskvoid"
)

// AllCheckerNames returns all valid checker names.
func AllCheckerNames() []CheckerName {
	return []CheckerName{Task, TaskVoid}
}

// Entry tracks an ignore directive and its usage.
type Entry struct {
	pos      token.Pos
	checkers []CheckerName // empty = all
	used     map[CheckerName]bool
}

// Map tracks ignore entries by line number.
type Map map[int]*Entry

// EnabledCheckers tracks which checkers are currently enabled.
type EnabledCheckers map[CheckerName]bool

// Build scans a file for ignore comments and returns a map.
func Build(fset *token.FileSet, file *ast.File) Map {
	m := make(Map)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			if checkers, ok := parseIgnoreComment(c.Text); ok {
				line := fset.Position(c.Pos()).Line
				m[line] = &Entry{
					pos:      c.Pos(),
					checkers: checkers,
					used:     make(map[CheckerName]bool),
				}
			}
		}
	}

	return m
}

// parseIgnoreComment parses an ignore directive and returns the checker names.
// Returns nil slice if no specific checkers are specified (ignore all).
// Returns false if not an ignore comment.
//
// Supported formats:
//   - //taskforget:ignore                     -> ignore all checkers
//   - //taskforget:ignore taskvoid            -> ignore specific checker
//   - //taskforget:ignore task,taskvoid       -> ignore multiple checkers
//   - //taskforget:ignore - reason            -> ignore all with comment
//   - //taskforget:ignore task - reason       -> ignore specific with comment
func parseIgnoreComment(text string) ([]CheckerName, bool) {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	if text != directivePrefix && !strings.HasPrefix(text, directivePrefix+" ") {
		return nil, false
	}

	rest := strings.TrimSpace(strings.TrimPrefix(text, directivePrefix))

	// Stop at comment markers: " - " or " //"
	if idx := strings.Index(rest, " - "); idx >= 0 {
		rest = rest[:idx]
	}
	if idx := strings.Index(rest, " //"); idx >= 0 {
		rest = rest[:idx]
	}
	if strings.HasPrefix(rest, "- ") || rest == "-" || strings.HasPrefix(rest, "//") {
		return nil, true
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil, true
	}

	var checkers []CheckerName
	for part := range strings.SplitSeq(rest, ",") {
		if name := CheckerName(strings.TrimSpace(part)); name != "" {
			checkers = append(checkers, name)
		}
	}

	return checkers, true
}

// ShouldIgnore returns true if the given line should be ignored for the specified checker.
// It checks if the same line or the previous line has an ignore comment.
// When an ignore is used, it marks the entry as used for that checker.
func (m Map) ShouldIgnore(line int, checker CheckerName) bool {
	return m.shouldIgnoreEntry(m[line], checker) || m.shouldIgnoreEntry(m[line-1], checker)
}

func (m Map) shouldIgnoreEntry(entry *Entry, checker CheckerName) bool {
	if entry == nil {
		return false
	}

	if len(entry.checkers) == 0 || slices.Contains(entry.checkers, checker) {
		entry.used[checker] = true
		return true
	}

	return false
}

// UnusedIgnore represents an unused ignore directive.
type UnusedIgnore struct {
	Pos      token.Pos
	Checkers []CheckerName // Unused checker names (empty if entire directive is unused)
}

// GetUnusedIgnores returns ignore directives that were not used.
// Checker names that are unknown or disabled are reported as unused too.
func (m Map) GetUnusedIgnores(enabled EnabledCheckers) []UnusedIgnore {
	var unused []UnusedIgnore

	for _, entry := range m {
		if len(entry.checkers) == 0 {
			anyUsed := false
			for checker := range enabled {
				if entry.used[checker] {
					anyUsed = true
					break
				}
			}
			if !anyUsed {
				unused = append(unused, UnusedIgnore{Pos: entry.pos})
			}
			continue
		}

		var unusedCheckers []CheckerName
		for _, checker := range entry.checkers {
			if !enabled[checker] || !entry.used[checker] {
				unusedCheckers = append(unusedCheckers, checker)
			}
		}
		if len(unusedCheckers) > 0 {
			unused = append(unused, UnusedIgnore{
				Pos:      entry.pos,
				Checkers: unusedCheckers,
			})
		}
	}

	slices.SortFunc(unused, func(a, b UnusedIgnore) int {
		return int(a.Pos) - int(b.Pos)
	})

	return unused
}
