// Package tasktype provides parsing and matching of deferred-result type identities.
package tasktype

import (
	"go/types"
	"strings"
)

// Type identifies a named type.
// Format: "pkg/path.TypeName" (e.g., "github.com/mpyw/taskforget/task.Task").
type Type struct {
	PkgPath  string
	TypeName string
}

// Matches checks if the type name object is this type.
// Generic types are matched by their declaration, so callers pass the
// origin object of an instance.
func (t Type) Matches(obj *types.TypeName) bool {
	if obj == nil || obj.Pkg() == nil {
		return false
	}

	return matchPkg(obj.Pkg().Path(), t.PkgPath) && obj.Name() == t.TypeName
}

// matchPkg checks if pkgPath matches targetPkg, allowing version suffixes.
func matchPkg(pkgPath, targetPkg string) bool {
	if pkgPath == targetPkg {
		return true
	}
	// Check for version suffix like /v2, /v3, etc.
	prefix := targetPkg + "/v"
	if !strings.HasPrefix(pkgPath, prefix) {
		return false
	}
	rest := pkgPath[len(prefix):]
	return len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9'
}

// MatchesAny checks if the type name object matches any of the types.
func MatchesAny(obj *types.TypeName, list []Type) bool {
	for _, t := range list {
		if t.Matches(obj) {
			return true
		}
	}
	return false
}

// Parse parses a list of type identities.
// Blank entries and entries without a package qualifier are skipped.
func Parse(entries []string) []Type {
	var list []Type

	for _, part := range entries {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		t, ok := parseOne(part)
		if !ok {
			continue // Invalid format
		}

		list = append(list, t)
	}

	return list
}

// parseOne parses a single "pkg/path.TypeName" identity.
func parseOne(s string) (Type, bool) {
	lastDot := strings.LastIndex(s, ".")
	if lastDot <= 0 || lastDot == len(s)-1 {
		return Type{}, false
	}

	// The package path may contain dots (github.com), the type name may not.
	if strings.Contains(s[lastDot+1:], "/") {
		return Type{}, false
	}

	return Type{
		PkgPath:  s[:lastDot],
		TypeName: s[lastDot+1:],
	}, true
}
