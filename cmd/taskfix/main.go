// Command taskfix reports unhandled tasks across packages and applies one
// rewrite strategy to all of them.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// errFindings signals that check reported findings.
var errFindings = errors.New("findings reported")

var rootCmd = &cobra.Command{
	Use:   "taskfix",
	Short: "Find and fix tasks that are neither awaited nor forgotten",
	Long: `taskfix runs the taskforget analyzer over Go packages, prints its findings,
and applies the chosen rewrite to every finding that offers it.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupColor,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(applyCmd)

	rootCmd.PersistentFlags().String("config", "", "path to a TOML configuration file (default: nearest .taskforget.toml)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Uint("jobs", 0, "maximum number of files rewritten concurrently (0 = unlimited)")
	rootCmd.PersistentFlags().Uint("max-findings", 0, "maximum number of findings to print (0 = unlimited)")
	rootCmd.PersistentFlags().Bool("tests", false, "also analyze test files")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errFindings) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "taskfix:", err)
		os.Exit(2)
	}
}

func setupColor(cmd *cobra.Command, _ []string) error {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	switch colorFlag {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return fmt.Errorf("invalid --color value %q (want auto, on, or off)", colorFlag)
	}
	return nil
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
