package checker

import (
	"go/types"

	"github.com/mpyw/taskforget/internal/directives/ignore"
	"github.com/mpyw/taskforget/internal/registry"
	"github.com/mpyw/taskforget/internal/typeutil"
)

// Detector decides whether a resolved call produces a deferred result.
type Detector interface {
	Name() ignore.CheckerName
	Detect(exprType types.Type, callee *typeutil.Callee) bool
}

// TaskDetector applies the non-void rule.
type TaskDetector struct {
	Registry *registry.Registry
}

// Name implements Detector.
func (*TaskDetector) Name() ignore.CheckerName { return ignore.Task }

// Detect implements Detector.
func (d *TaskDetector) Detect(exprType types.Type, callee *typeutil.Callee) bool {
	return typeutil.MatchDeferred(exprType, callee, d.Registry)
}

// TaskVoidDetector applies the fire-and-forget rule.
type TaskVoidDetector struct {
	Registry *registry.Registry
}

// Name implements Detector.
func (*TaskVoidDetector) Name() ignore.CheckerName { return ignore.TaskVoid }

// Detect implements Detector.
func (d *TaskVoidDetector) Detect(_ types.Type, callee *typeutil.Callee) bool {
	return typeutil.MatchVoid(callee, d.Registry)
}
