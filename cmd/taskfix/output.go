package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

var (
	locationColor = color.New(color.Bold)
	checkerColor  = color.New(color.FgYellow)
	appliedColor  = color.New(color.FgGreen, color.Bold)
	skippedColor  = color.New(color.FgRed)
)

// relPath returns path relative to base when possible.
func relPath(base, path string) string {
	if base == "" {
		return path
	}
	if rel, err := filepath.Rel(base, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

// printFindings writes one line per finding, aligning the messages.
// limit bounds the number of printed findings; zero means no limit.
func printFindings(w io.Writer, base string, findings []finding, limit int) error {
	shown := findings
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	locations := make([]string, len(shown))
	width := 0
	for i, f := range shown {
		locations[i] = fmt.Sprintf("%s:%d:%d:", relPath(base, f.Pos.Filename), f.Pos.Line, f.Pos.Column)
		width = max(width, runewidth.StringWidth(locations[i]))
	}

	for i, f := range shown {
		pad := strings.Repeat(" ", width-runewidth.StringWidth(locations[i]))
		if _, err := fmt.Fprintf(w, "%s%s %s %s\n",
			locationColor.Sprint(locations[i]), pad,
			checkerColor.Sprintf("[%s]", f.Checker),
			f.Message,
		); err != nil {
			return err
		}
	}

	if hidden := len(findings) - len(shown); hidden > 0 {
		if _, err := fmt.Fprintf(w, "... and %d more finding(s)\n", hidden); err != nil {
			return err
		}
	}
	return nil
}
