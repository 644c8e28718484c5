// Package edit applies suggested fixes to files on disk.
//
// Fixes are grouped by file and each file is processed on its own: the
// content is read once, every fix is re-validated against it, and the result
// is written through a temporary file and a rename. A fix whose guard text no
// longer matches, or whose edits overlap an already applied fix, is skipped
// and reported; the remaining fixes of the file still apply.
package edit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrNoEdits is returned when no fix was applied.
	ErrNoEdits = errors.New("no applicable edits found")
	// ErrConflict is the reason of a fix whose edits overlap an applied fix.
	ErrConflict = errors.New("conflicts with a previously applied edit")
	// ErrStale is the reason of a fix whose guard text does not match the file.
	ErrStale = errors.New("file changed since it was analyzed")
)

// Edit replaces the bytes [Start, End) of a file with NewText.
type Edit struct {
	Start   int
	End     int
	NewText string
}

// Fix is a set of edits applied together to one file.
type Fix struct {
	// ID identifies the fix in reports.
	ID string
	// Title describes the fix.
	Title string
	// Path is the file the edits apply to.
	Path string
	// Guard is the text expected at [GuardStart, GuardEnd) before editing.
	Guard      string
	GuardStart int
	GuardEnd   int
	Edits      []Edit
}

// Applied records an applied fix.
type Applied struct {
	ID    string
	Title string
	Path  string
}

// Skipped records a fix that was not applied.
type Skipped struct {
	ID     string
	Title  string
	Path   string
	Reason error
}

// FileChange summarizes modifications of a file.
type FileChange struct {
	Path      string
	EditCount int
}

// Result aggregates the outcome of Apply.
type Result struct {
	Applied []Applied
	Skipped []Skipped
	Files   []FileChange
}

// Options configures Apply.
type Options struct {
	// DryRun computes the result without writing files.
	DryRun bool
	// Jobs bounds the number of files processed concurrently. Zero means no limit.
	Jobs int
}

// Apply applies fixes to their files. Fixes of one file are applied in the
// given order.
func Apply(ctx context.Context, fixes []Fix, opts Options) (*Result, error) {
	byPath := make(map[string][]Fix)
	var paths []string
	for _, f := range fixes {
		if _, ok := byPath[f.Path]; !ok {
			paths = append(paths, f.Path)
		}
		byPath[f.Path] = append(byPath[f.Path], f)
	}
	sort.Strings(paths)

	results := make([]fileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if opts.Jobs > 0 {
		g.SetLimit(opts.Jobs)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := applyFile(path, byPath[path], opts.DryRun)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	err := g.Wait()

	result := &Result{}
	for _, res := range results {
		result.Applied = append(result.Applied, res.applied...)
		result.Skipped = append(result.Skipped, res.skipped...)
		if res.edits > 0 {
			result.Files = append(result.Files, FileChange{Path: res.path, EditCount: res.edits})
		}
	}

	if err != nil {
		return result, err
	}
	if len(result.Applied) == 0 {
		return result, ErrNoEdits
	}
	return result, nil
}

type fileResult struct {
	path    string
	applied []Applied
	skipped []Skipped
	edits   int
}

func applyFile(path string, fixes []Fix, dryRun bool) (fileResult, error) {
	res := fileResult{path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("read %s: %w", path, err)
	}

	var applied []Edit
	for _, f := range fixes {
		if reason := validate(content, applied, f); reason != nil {
			res.skipped = append(res.skipped, Skipped{ID: f.ID, Title: f.Title, Path: path, Reason: reason})
			continue
		}
		for _, e := range f.Edits {
			applied = insertSorted(applied, e)
		}
		res.edits += len(f.Edits)
		res.applied = append(res.applied, Applied{ID: f.ID, Title: f.Title, Path: path})
	}

	if len(applied) == 0 || dryRun {
		return res, nil
	}

	if err := writeAtomic(path, Render(content, applied)); err != nil {
		return res, err
	}
	return res, nil
}

// validate returns the reason f cannot be applied, or nil.
func validate(content []byte, applied []Edit, f Fix) error {
	if len(f.Edits) == 0 {
		return ErrNoEdits
	}
	if f.GuardStart < 0 || f.GuardEnd < f.GuardStart || f.GuardEnd > len(content) ||
		string(content[f.GuardStart:f.GuardEnd]) != f.Guard {
		return ErrStale
	}
	for i, e := range f.Edits {
		if e.Start < 0 || e.End < e.Start || e.End > len(content) {
			return fmt.Errorf("%w: edit span out of range", ErrStale)
		}
		for _, prev := range applied {
			if Conflicts(prev, e) {
				return ErrConflict
			}
		}
		for _, other := range f.Edits[:i] {
			if Conflicts(other, e) {
				return ErrConflict
			}
		}
	}
	return nil
}

// Conflicts reports whether two edits overlap or insert at the same offset.
// Spans are half-open. A zero-width edit conflicts with a span that strictly
// contains its offset.
func Conflicts(a, b Edit) bool {
	if a.Start == a.End && b.Start == b.End {
		return a.Start == b.Start
	}
	if a.Start == a.End {
		return b.Start < a.Start && a.Start < b.End
	}
	if b.Start == b.End {
		return a.Start < b.Start && b.Start < a.End
	}
	return a.Start < b.End && b.Start < a.End
}

// Render applies non-overlapping edits, sorted by start offset, to content.
func Render(content []byte, edits []Edit) []byte {
	var buf bytes.Buffer
	buf.Grow(len(content))

	last := 0
	for _, e := range edits {
		buf.Write(content[last:e.Start])
		buf.WriteString(e.NewText)
		last = e.End
	}
	buf.Write(content[last:])

	return buf.Bytes()
}

func insertSorted(edits []Edit, e Edit) []Edit {
	idx := sort.Search(len(edits), func(i int) bool {
		if edits[i].Start == e.Start {
			return edits[i].End > e.End
		}
		return edits[i].Start > e.Start
	})
	return slices.Insert(edits, idx, e)
}

// writeAtomic replaces path with data, keeping its permissions.
func writeAtomic(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
