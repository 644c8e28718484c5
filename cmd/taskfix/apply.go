package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpyw/taskforget/internal/edit"
	"github.com/mpyw/taskforget/internal/fixes"
)

var applyCmd = &cobra.Command{
	Use:   "apply [packages]",
	Short: "Apply one rewrite to every finding that offers it",
	Long: `Run the analyzer over the given packages (default ./...) and apply the chosen
strategy to each finding: "forget" appends the discard call to the chain,
"await" inserts the receive operator before the call.`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().String("strategy", string(fixes.KindForget), "rewrite to apply (forget|await)")
	applyCmd.Flags().Bool("dry-run", false, "report the fixes without writing files")
}

func runApply(cmd *cobra.Command, args []string) error {
	opts, err := readOptions(cmd)
	if err != nil {
		return err
	}
	strategy, err := cmd.Flags().GetString("strategy")
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}

	kinds, err := fixes.ParseKinds([]string{strategy})
	if err != nil {
		return fmt.Errorf("--strategy: %w", err)
	}

	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	findings, err := analyze(dir, args, opts)
	if err != nil {
		return err
	}

	selected, unfixable := selectFixes(findings, kinds[0])

	res, applyErr := edit.Apply(cmd.Context(), selected, edit.Options{DryRun: dryRun, Jobs: opts.jobs})
	if applyErr != nil && !errors.Is(applyErr, edit.ErrNoEdits) {
		return applyErr
	}

	return printApplyResult(cmd.OutOrStdout(), dir, res, unfixable, dryRun)
}

// selectFixes converts the fixes of the given kind to edit fixes.
// Findings without such a fix are returned separately.
func selectFixes(findings []finding, kind fixes.Kind) ([]edit.Fix, []finding) {
	var (
		selected  []edit.Fix
		unfixable []finding
	)

	for _, f := range findings {
		fix, ok := convertFix(f, kind)
		if !ok {
			unfixable = append(unfixable, f)
			continue
		}
		selected = append(selected, fix)
	}

	return selected, unfixable
}

func convertFix(f finding, kind fixes.Kind) (edit.Fix, bool) {
	for _, sf := range f.Fixes {
		if k, ok := fixes.KindOf(sf); !ok || k != kind {
			continue
		}

		file := f.fset.File(f.diagPos)
		if file == nil {
			return edit.Fix{}, false
		}
		start, end := file.Offset(f.diagPos), file.Offset(f.diagEnd)
		if end > len(f.fileText) || start > end {
			return edit.Fix{}, false
		}

		out := edit.Fix{
			ID:         fmt.Sprintf("%s:%d:%d", f.Pos.Filename, f.Pos.Line, f.Pos.Column),
			Title:      sf.Message,
			Path:       f.Pos.Filename,
			Guard:      string(f.fileText[start:end]),
			GuardStart: start,
			GuardEnd:   end,
		}
		for _, te := range sf.TextEdits {
			out.Edits = append(out.Edits, edit.Edit{
				Start:   file.Offset(te.Pos),
				End:     file.Offset(te.End),
				NewText: string(te.NewText),
			})
		}
		return out, true
	}
	return edit.Fix{}, false
}

func printApplyResult(w io.Writer, base string, res *edit.Result, unfixable []finding, dryRun bool) error {
	verb := "Applied"
	if dryRun {
		verb = "Would apply"
	}

	if len(res.Applied) > 0 {
		if _, err := fmt.Fprintf(w, "%s %d fix(es):\n", appliedColor.Sprint(verb), len(res.Applied)); err != nil {
			return err
		}
		for _, a := range res.Applied {
			if _, err := fmt.Fprintf(w, "  - %s: %s\n", relPath(base, a.ID), a.Title); err != nil {
				return err
			}
		}
	} else {
		if _, err := fmt.Fprintln(w, "No fixes applied."); err != nil {
			return err
		}
	}

	if len(res.Skipped) > 0 {
		if _, err := fmt.Fprintf(w, "%s %d fix(es):\n", skippedColor.Sprint("Skipped"), len(res.Skipped)); err != nil {
			return err
		}
		for _, s := range res.Skipped {
			if _, err := fmt.Fprintf(w, "  - %s: %v\n", relPath(base, s.ID), s.Reason); err != nil {
				return err
			}
		}
	}

	if len(unfixable) > 0 {
		if _, err := fmt.Fprintf(w, "%d finding(s) offer no such fix:\n", len(unfixable)); err != nil {
			return err
		}
		if err := printFindings(w, base, unfixable, 0); err != nil {
			return err
		}
	}

	if !dryRun {
		for _, fc := range res.Files {
			if _, err := fmt.Fprintf(w, "Updated %s (%d edit(s))\n", relPath(base, fc.Path), fc.EditCount); err != nil {
				return err
			}
		}
	}

	return nil
}
