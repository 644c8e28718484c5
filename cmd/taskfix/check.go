package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [packages]",
	Short: "Report tasks that are neither awaited nor forgotten",
	Long:  "Run the analyzer over the given packages (default ./...) and print its findings. Exits with status 1 when any finding is reported.",
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts, err := readOptions(cmd)
	if err != nil {
		return err
	}

	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	findings, err := analyze(dir, args, opts)
	if err != nil {
		return err
	}

	if err := printFindings(cmd.OutOrStdout(), dir, findings, opts.maxFindings); err != nil {
		return err
	}

	if len(findings) > 0 {
		return fmt.Errorf("%d finding(s): %w", len(findings), errFindings)
	}
	return nil
}
