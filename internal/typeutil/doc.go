// Package typeutil matches call expressions against the registered
// deferred-result types.
//
// # Callee Resolution
//
// [ResolveCallee] returns the statically known target of a call together
// with its declared signature:
//
//	bar.Foo3()        // *types.Func, declared signature
//	fn()              // *types.Var of func type, its signature
//	func() T { ... }() // no object, signature of the callee expression
//	T(x), len(x)      // nil: conversions and builtins have no callee
//
// # Non-void Rule
//
// [MatchDeferred] is deliberately asymmetric:
//
//  1. If the type of the call expression is an instance of a generic type,
//     its origin is compared with the registered generic definitions.
//  2. Otherwise the declared result of the callee is compared with the
//     registered non-generic types.
//
// The second branch looks at the declaration, not at the instantiated
// expression type. A generic function returning a type parameter is
// therefore matched when it yields a generic task instance but not when it
// yields a non-generic one:
//
//	identity(task.Go(fn))   // matched through rule 1
//	identity(task.Run(fn))  // not matched: declared result is T
//
// # Void Rule
//
// [MatchVoid] compares types.TypeString of the declared result with the
// registered void names, character for character.
package typeutil
