package typeutil

import (
	"go/ast"
	"go/types"

	xtypeutil "golang.org/x/tools/go/types/typeutil"

	"github.com/mpyw/taskforget/internal/registry"
)

// Callee is the resolved target of a call expression.
type Callee struct {
	// Name is the display name used in diagnostics.
	Name string
	// Func is the called function or method, nil for func values.
	Func *types.Func
	// Sig is the declared signature of the callee.
	Sig *types.Signature
}

// ResolveCallee returns the callee of call, or nil when the call is a
// conversion, a builtin, or cannot be resolved.
func ResolveCallee(info *types.Info, call *ast.CallExpr) *Callee {
	if info == nil || call == nil {
		return nil
	}
	if tv, ok := info.Types[call.Fun]; ok && tv.IsType() {
		return nil
	}

	switch obj := xtypeutil.Callee(info, call).(type) {
	case *types.Func:
		sig, ok := obj.Type().(*types.Signature)
		if !ok {
			return nil
		}
		return &Callee{Name: funcName(obj), Func: obj, Sig: sig}

	case *types.Var:
		sig, ok := obj.Type().Underlying().(*types.Signature)
		if !ok {
			return nil
		}
		return &Callee{Name: types.ExprString(call.Fun), Sig: sig}

	case *types.Builtin:
		return nil

	case nil:
		// Calls of func literals and of call results.
		sig, ok := types.Unalias(info.TypeOf(call.Fun)).(*types.Signature)
		if !ok {
			return nil
		}
		return &Callee{Name: types.ExprString(call.Fun), Sig: sig}
	}

	return nil
}

// DisplayName returns the name of callee used in diagnostics.
func DisplayName(callee *Callee) string {
	if callee == nil {
		return ""
	}
	return callee.Name
}

// funcName returns pkg.Func or pkg.Type.Method.
func funcName(fn *types.Func) string {
	var pkgName string
	if pkg := fn.Pkg(); pkg != nil {
		pkgName = pkg.Name() + "."
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return pkgName + fn.Name()
	}

	recv := sig.Recv().Type()
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = ptr.Elem()
	}
	switch t := types.Unalias(recv).(type) {
	case *types.Named:
		return pkgName + t.Origin().Obj().Name() + "." + fn.Name()
	case *types.Interface:
		// Interface methods obtained through embedding have no named receiver.
		return pkgName + fn.Name()
	}
	return pkgName + fn.Name()
}

// SingleResult returns the only result type of sig, or nil.
func SingleResult(sig *types.Signature) types.Type {
	if sig == nil || sig.Results().Len() != 1 {
		return nil
	}
	return sig.Results().At(0).Type()
}

// MatchDeferred applies the non-void rule to a call whose expression type is
// exprType and whose callee is callee.
func MatchDeferred(exprType types.Type, callee *Callee, reg *registry.Registry) bool {
	if exprType == nil || callee == nil || reg == nil {
		return false
	}

	if named, ok := types.Unalias(exprType).(*types.Named); ok && named.TypeArgs().Len() > 0 {
		return reg.IsGeneric(named.Origin().Obj())
	}

	named, ok := types.Unalias(SingleResult(callee.Sig)).(*types.Named)
	if !ok || named.TypeArgs().Len() > 0 {
		return false
	}
	return reg.IsTask(named.Obj())
}

// MatchVoid applies the fire-and-forget rule to callee.
func MatchVoid(callee *Callee, reg *registry.Registry) bool {
	if callee == nil || reg == nil {
		return false
	}
	result := SingleResult(callee.Sig)
	if result == nil {
		return false
	}
	return reg.IsVoid(result)
}
