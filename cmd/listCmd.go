package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listCmd prints what a batch run would execute, one target per line.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List unit-test targets and their batch commands",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateSimulator(cfgSim); err != nil {
			return err
		}
		mf, err := loadManifest(cfgManifest)
		if err != nil {
			return fmt.Errorf("failed to read manifest: %w", err)
		}
		out := cmd.OutOrStdout()
		for _, e := range mf {
			switch {
			case e.UnitTest:
				_, _ = fmt.Fprintf(out, "%s: %s\n", e.name(), batchCommand(e, cfgSim))
			case cfgListAll:
				_, _ = fmt.Fprintf(out, "%s: (skip)\n", e.name())
			}
		}
		return nil
	},
}
