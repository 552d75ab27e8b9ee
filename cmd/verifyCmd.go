package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Validate the manifest against the module_info schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := os.ReadFile(cfgManifest)
		if err != nil {
			return fmt.Errorf("failed to read manifest: %w", err)
		}
		if err := validateManifestSchema(b); err != nil {
			return fmt.Errorf("invalid manifest: %w", err)
		}
		mf, err := decodeManifest(b)
		if err != nil {
			return fmt.Errorf("invalid manifest: %w", err)
		}
		if err := checkDuplicateTargets(mf); err != nil {
			return fmt.Errorf("invalid manifest: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Manifest OK (%d entries, %d unit-test targets)\n", len(mf), len(mf.runnable()))
		return nil
	},
}
