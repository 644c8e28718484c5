// Package taskforget provides a go/analysis based analyzer for detecting
// deferred results (tasks and futures) that are neither awaited nor
// explicitly forgotten.
package taskforget

import (
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/taskforget/internal/checker"
	"github.com/mpyw/taskforget/internal/config"
	"github.com/mpyw/taskforget/internal/directives/ignore"
	taskdirective "github.com/mpyw/taskforget/internal/directives/task"
	"github.com/mpyw/taskforget/internal/fixes"
	"github.com/mpyw/taskforget/internal/registry"
	"github.com/mpyw/taskforget/internal/typeutil"
)

// Flags for the analyzer.
var (
	taskTypes     string
	genericTypes  string
	voidTypes     string
	forgetMethod  string
	configPath    string
	skipGenerated bool

	// Checker enable/disable flags (all enabled by default).
	enableTask     bool
	enableTaskVoid bool

	// Comma-separated fix kinds offered per checker, in order.
	taskFixes     string
	taskVoidFixes string
)

func init() {
	Analyzer.Flags.StringVar(&taskTypes, "task", config.DefaultTask,
		"comma-separated list of non-generic deferred-result types (e.g., pkg/path.Task)")
	Analyzer.Flags.StringVar(&genericTypes, "generic-task", config.DefaultGenericTask,
		"comma-separated list of generic deferred-result types (e.g., pkg/path.Future)")
	Analyzer.Flags.StringVar(&voidTypes, "void-task", config.DefaultVoidTask,
		"comma-separated list of fire-and-forget types, matched by full type name")
	Analyzer.Flags.StringVar(&forgetMethod, "forget-method", config.DefaultForgetMethod,
		"name of the method that explicitly discards a deferred result")
	Analyzer.Flags.StringVar(&configPath, "config", "",
		"path to a TOML configuration file")
	Analyzer.Flags.BoolVar(&skipGenerated, "skip-generated", false,
		"do not report findings in generated files")

	// Checker flags (default: all enabled)
	Analyzer.Flags.BoolVar(&enableTask, "task-checker", true, "enable task checker")
	Analyzer.Flags.BoolVar(&enableTaskVoid, "taskvoid-checker", true, "enable taskvoid checker")

	Analyzer.Flags.StringVar(&taskFixes, "task-fixes", "forget,await",
		"comma-separated fix kinds offered by the task checker (forget, await)")
	Analyzer.Flags.StringVar(&taskVoidFixes, "taskvoid-fixes", "forget,await",
		"comma-separated fix kinds offered by the taskvoid checker (forget, await)")
}

// Analyzer is the main analyzer for taskforget.
var Analyzer = &analysis.Analyzer{
	Name:      "taskforget",
	Doc:       "checks that tasks and futures are awaited or explicitly forgotten",
	Requires:  []*analysis.Analyzer{inspect.Analyzer},
	Run:       run,
	Flags:     flag.FlagSet{},
	FactTypes: []analysis.Fact{new(taskdirective.Fact)},
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	cfg, err := buildConfig()
	if err != nil {
		return nil, err
	}

	// Export facts for //taskforget:task directives before matching
	marked := taskdirective.Build(pass)

	reg := registry.New(cfg.Types, func(obj *types.TypeName) (bool, bool) {
		if fact, ok := marked[obj]; ok {
			return fact.Void, true
		}
		fact, ok := taskdirective.Lookup(pass, obj)
		if !ok {
			return false, false
		}
		return fact.Void, true
	})

	rewriters, err := buildRewriters(cfg)
	if err != nil {
		return nil, err
	}

	skipFiles := buildSkipFiles(pass, cfg.SkipGenerated)
	ignoreMaps := buildIgnoreMaps(pass, skipFiles)
	enabled := buildEnabledCheckers(cfg)

	c := checker.New(buildDetectors(reg, enabled), cfg.ForgetMethod, ignoreMaps, skipFiles)
	for _, f := range c.Run(pass, insp) {
		pass.Report(analysis.Diagnostic{
			Pos:            f.Pos(),
			End:            f.End(),
			Category:       string(f.Checker),
			Message:        fmt.Sprintf(cfg.Message(string(f.Checker)), typeutil.DisplayName(f.Callee)),
			SuggestedFixes: rewriters[f.Checker].Fixes(f),
		})
	}

	// Report unused ignore directives
	reportUnusedIgnores(pass, ignoreMaps, enabled)

	return nil, nil
}

// buildConfig merges the flag values with the optional configuration file.
func buildConfig() (config.Config, error) {
	cfg := config.Default()
	cfg.Types = config.Types{
		Task:    config.SplitList(taskTypes),
		Generic: config.SplitList(genericTypes),
		Void:    config.SplitList(voidTypes),
	}
	cfg.ForgetMethod = forgetMethod
	cfg.SkipGenerated = skipGenerated
	cfg.Checkers[config.CheckerTask] = enableTask
	cfg.Checkers[config.CheckerTaskVoid] = enableTaskVoid
	cfg.Fixes[config.CheckerTask] = config.SplitList(taskFixes)
	cfg.Fixes[config.CheckerTaskVoid] = config.SplitList(taskVoidFixes)

	if configPath != "" {
		return config.LoadFile(configPath, cfg)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// buildRewriters creates the rewriter of each checker.
func buildRewriters(cfg config.Config) (map[ignore.CheckerName]fixes.Rewriter, error) {
	rewriters := make(map[ignore.CheckerName]fixes.Rewriter)

	for _, name := range ignore.AllCheckerNames() {
		kinds, err := fixes.ParseKinds(cfg.Fixes[string(name)])
		if err != nil {
			return nil, fmt.Errorf("fixes for %s: %w", name, err)
		}
		rewriters[name] = fixes.Rewriter{Kinds: kinds, ForgetMethod: cfg.ForgetMethod}
	}

	return rewriters, nil
}

// buildDetectors creates the detectors of the enabled checkers.
func buildDetectors(reg *registry.Registry, enabled ignore.EnabledCheckers) []checker.Detector {
	var detectors []checker.Detector

	if enabled[ignore.Task] {
		detectors = append(detectors, &checker.TaskDetector{Registry: reg})
	}

	if enabled[ignore.TaskVoid] {
		detectors = append(detectors, &checker.TaskVoidDetector{Registry: reg})
	}

	return detectors
}

// buildSkipFiles creates a set of filenames to skip.
// Generated files are analyzed unless skipGenerated is set.
// Test files can be skipped via the driver's built-in -test flag.
func buildSkipFiles(pass *analysis.Pass, skipGenerated bool) map[string]bool {
	skipFiles := make(map[string]bool)
	if !skipGenerated {
		return skipFiles
	}

	for _, file := range pass.Files {
		if ast.IsGenerated(file) {
			skipFiles[pass.Fset.Position(file.Pos()).Filename] = true
		}
	}

	return skipFiles
}

// buildIgnoreMaps creates ignore maps for each file in the pass.
func buildIgnoreMaps(pass *analysis.Pass, skipFiles map[string]bool) map[string]ignore.Map {
	ignoreMaps := make(map[string]ignore.Map)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if skipFiles[filename] {
			continue
		}
		ignoreMaps[filename] = ignore.Build(pass.Fset, file)
	}

	return ignoreMaps
}

// buildEnabledCheckers creates a map of which checkers are enabled.
func buildEnabledCheckers(cfg config.Config) ignore.EnabledCheckers {
	enabled := make(ignore.EnabledCheckers)

	for _, name := range ignore.AllCheckerNames() {
		if cfg.Enabled(string(name)) {
			enabled[name] = true
		}
	}

	return enabled
}

// reportUnusedIgnores reports any ignore directives that were not used.
func reportUnusedIgnores(pass *analysis.Pass, ignoreMaps map[string]ignore.Map, enabled ignore.EnabledCheckers) {
	for _, ignoreMap := range ignoreMaps {
		for _, unused := range ignoreMap.GetUnusedIgnores(enabled) {
			if len(unused.Checkers) == 0 {
				pass.Reportf(unused.Pos, "unused taskforget:ignore directive")
				continue
			}
			checkerNames := make([]string, len(unused.Checkers))
			for i, c := range unused.Checkers {
				checkerNames[i] = string(c)
			}
			pass.Reportf(unused.Pos, "unused taskforget:ignore directive for checker(s): %s", strings.Join(checkerNames, ", "))
		}
	}
}
