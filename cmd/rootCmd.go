package cmd

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var rootCmd = &cobra.Command{
	Use:   "test-all",
	Short: "Run the unit tests listed in module_info.json",
	Long: "Runs every unit-test target of the manifest in order, stopping at the first one whose stderr " +
		"reports [error]. With --target only that target runs, with its output streamed to the console.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd.ErrOrStderr(), cfgLogLevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateSimulator(cfgSim); err != nil {
			return err
		}
		mf, err := loadManifest(cfgManifest)
		if err != nil {
			return fmt.Errorf("failed to read manifest: %w", err)
		}
		stdout := cmd.OutOrStdout()

		if cfgTarget != "" {
			line := singleCommand(cfgPackage, cfgTarget, cfgSim, mf.lookup(cfgPackage, cfgTarget))
			if cfgNoop {
				_, _ = fmt.Fprintf(stdout, "+ %s\n", line)
				return nil
			}
			runner, err := newCommandRunner()
			if err != nil {
				return err
			}
			defer closeRunner(runner)
			return runSingle(runner, line, stdout, cmd.ErrOrStderr(), cfgTimeout)
		}

		if cfgNoop {
			for _, e := range mf.runnable() {
				_, _ = fmt.Fprintf(stdout, "+ %s\n", batchCommand(e, cfgSim))
			}
			return nil
		}
		runner, err := newCommandRunner()
		if err != nil {
			return err
		}
		defer closeRunner(runner)

		rep := newYAMLReport(cfgManifest, cfgSim, runner.where())
		runErr := runBatch(stdout, runner, mf, batchOptions{
			manifestPath: cfgManifest,
			sim:          cfgSim,
			timeout:      cfgTimeout,
			strictExit:   cfgStrictExit,
		}, rep)
		if cfgReportPath != "" {
			if err := writeReportFile(cfgReportPath, rep); err != nil {
				return multierr.Append(runErr, err)
			}
			log.WithField("path", cfgReportPath).Info("report written")
		}
		return runErr
	},
}

func closeRunner(r io.Closer) {
	if err := r.Close(); err != nil {
		log.WithError(err).Warn("failed to close executor")
	}
}
