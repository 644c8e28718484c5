// Command taskforget is a linter that checks tasks and futures are awaited or forgotten.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/mpyw/taskforget"
)

func main() {
	singlechecker.Main(taskforget.Analyzer)
}
