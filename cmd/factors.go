package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shriyae/ladderboard/core"
	"github.com/shriyae/ladderboard/internal/contract"
)

// factorsCmd displays the definitions of all explanatory factors.
var factorsCmd = &cobra.Command{
	Use:   "factors",
	Short: "Display definitions for all explanatory factors",
	Long: `Show what each explanatory factor measures and where it comes from.

No dataset is read - this is purely informational.

Use this to:
- Understand what each factor column means
- Explain report output to your team
- Look up the canonical factor names for --factor

Examples:
  # Show factor definitions
  ladderboard factors

  # As JSON
  ladderboard factors --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFactors(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot display factors", err)
		}
	},
}
