// Package registry holds the deferred-result type identities recognized in
// one analysis session.
//
// # Sources
//
// Identities come from three places and are merged:
//
//   - the -task, -generic-task, and -void-task analyzer flags
//   - the [types] table of the TOML configuration file
//   - //taskforget:task directives, imported as analysis facts
//
// # Lists
//
// The registry keeps three lists with different matching rules:
//
//	tasks     non-generic types, matched by object identity
//	generics  generic definitions, matched by the origin of an instance
//	voids     fire-and-forget types, matched by exact type string
//
// The void list is compared against types.TypeString(t, nil), so entries
// must be written with their full package path:
//
//	github.com/mpyw/taskforget/task.Void
package registry
