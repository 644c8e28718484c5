package main

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"sort"

	"fortio.org/safecast"
	"github.com/spf13/cobra"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/checker"
	"golang.org/x/tools/go/packages"

	"github.com/mpyw/taskforget"
)

const configFileName = ".taskforget.toml"

// finding is a diagnostic together with the file content it was computed on.
type finding struct {
	Pos      token.Position
	End      token.Position
	Checker  string
	Message  string
	Fixes    []analysis.SuggestedFix
	fset     *token.FileSet
	diagPos  token.Pos
	diagEnd  token.Pos
	fileText []byte
}

// options holds the persistent flags shared by every command.
type options struct {
	configPath  string
	jobs        int
	maxFindings int
	tests       bool
}

func readOptions(cmd *cobra.Command) (options, error) {
	flags := cmd.Root().PersistentFlags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return options{}, err
	}
	jobs, err := flags.GetUint("jobs")
	if err != nil {
		return options{}, err
	}
	maxFindings, err := flags.GetUint("max-findings")
	if err != nil {
		return options{}, err
	}
	tests, err := flags.GetBool("tests")
	if err != nil {
		return options{}, err
	}

	opts := options{configPath: configPath, tests: tests}
	if opts.jobs, err = safecast.Conv[int](jobs); err != nil {
		return options{}, fmt.Errorf("--jobs: %w", err)
	}
	if opts.maxFindings, err = safecast.Conv[int](maxFindings); err != nil {
		return options{}, fmt.Errorf("--max-findings: %w", err)
	}
	return opts, nil
}

// findConfig walks up from startDir looking for the configuration file.
func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// configureAnalyzer points the analyzer at the configuration file, if any.
func configureAnalyzer(opts options, dir string) error {
	path := opts.configPath
	if path == "" {
		found, ok, err := findConfig(dir)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		path = found
	}
	return taskforget.Analyzer.Flags.Set("config", path)
}

// analyze loads the packages matching patterns and runs the analyzer on them.
func analyze(dir string, patterns []string, opts options) ([]finding, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	if err := configureAnalyzer(opts, dir); err != nil {
		return nil, err
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
			packages.NeedImports | packages.NeedDeps | packages.NeedTypes |
			packages.NeedTypesSizes | packages.NeedSyntax | packages.NeedTypesInfo |
			packages.NeedModule,
		Dir:   dir,
		Tests: opts.tests,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}
	if n := packages.PrintErrors(pkgs); n > 0 {
		return nil, fmt.Errorf("load packages: %d error(s)", n)
	}

	graph, err := checker.Analyze([]*analysis.Analyzer{taskforget.Analyzer}, pkgs, &checker.Options{})
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	contents := make(map[string][]byte)
	seen := make(map[string]bool)

	var findings []finding
	for _, act := range graph.Roots {
		if act.Err != nil {
			return nil, fmt.Errorf("%s: %w", act.Package.PkgPath, act.Err)
		}
		fset := act.Package.Fset
		for _, d := range act.Diagnostics {
			pos := fset.Position(d.Pos)
			end := fset.Position(d.End)

			// Test variants of a package report the same diagnostics.
			key := fmt.Sprintf("%s:%d:%s", pos.Filename, pos.Offset, d.Message)
			if seen[key] {
				continue
			}
			seen[key] = true

			text, ok := contents[pos.Filename]
			if !ok {
				text, err = os.ReadFile(pos.Filename)
				if err != nil {
					return nil, fmt.Errorf("read %s: %w", pos.Filename, err)
				}
				contents[pos.Filename] = text
			}

			findings = append(findings, finding{
				Pos:      pos,
				End:      end,
				Checker:  d.Category,
				Message:  d.Message,
				Fixes:    d.SuggestedFixes,
				fset:     fset,
				diagPos:  d.Pos,
				diagEnd:  d.End,
				fileText: text,
			})
		}
	}

	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i].Pos, findings[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		return a.Offset < b.Offset
	})

	return findings, nil
}
