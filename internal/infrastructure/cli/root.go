// Package cli wires the analysis pipeline into the reqqual command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build metadata, overridden at link time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:     "reqqual",
	Version: fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date),
	Short:   "Deterministic quality analysis for natural-language requirements",
	Long: `reqqual evaluates requirement statements against a fixed catalog of
deterministic quality rules, computes a traceable 0-100 score and a
PASS/WARN/FAIL status per requirement, and can optionally merge advisory
AI suggestions that never influence the score.`,
}
