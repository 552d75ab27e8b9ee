package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "TEST_ALL"

// init declares the persistent flags, binds them to TEST_ALL_* environment
// variables through Viper and registers the subcommands.
func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgTarget, "target", "t", "", "Unit-test target to run; omit to run every unit_test entry")
	pf.StringVarP(&cfgPackage, "package", "p", defaultPackage, "Package of --target")
	pf.StringVarP(&cfgSim, "sim", "s", defaultSimulator, "Simulator: "+strings.Join(simulators, "|"))
	pf.StringVarP(&cfgManifest, "manifest", "m", defaultManifest, "Path to the JSON target manifest")
	pf.BoolVar(&cfgNoop, "noop", false, "Print the planned commands instead of running them")
	pf.StringVar(&cfgReportPath, "report", "", "Write a YAML report of the batch run to this path")
	pf.DurationVar(&cfgTimeout, "cmd-timeout", 0, "Per-target timeout (e.g., 30m). 0 disables")
	pf.BoolVar(&cfgStrictExit, "strict-exit", false, "Also fail a batch target on a non-zero exit status")
	pf.StringVar(&cfgLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&cfgWorkdir, "workdir", "", "Directory to run commands in (default: current directory, or the login directory with --remote)")
	pf.StringVar(&cfgRemote, "remote", "", "Run commands on this build host (host[:port]) over SSH")
	pf.StringVarP(&cfgUser, "user", "u", "", "SSH username for --remote")
	pf.StringVar(&cfgPassword, "password", "", "SSH password (or set TEST_ALL_PASSWORD)")
	pf.StringVar(&cfgKeyPath, "key", "", "Path to SSH private key (PEM, OpenSSH)")
	pf.StringVar(&cfgPassphrase, "passphrase", "", "Private key passphrase (or set TEST_ALL_PASSPHRASE)")
	pf.StringVar(&cfgKnownHosts, "known-hosts", filepath.Join(os.Getenv("HOME"), ".ssh", "known_hosts"), "Path to known_hosts file")
	pf.BoolVar(&cfgStrictHost, "strict-host-key", true, "Require host key verification (disable to accept any host key)")
	pf.DurationVar(&cfgConnTimeout, "conn-timeout", 15*time.Second, "SSH connection timeout")

	listCmd.Flags().BoolVar(&cfgListAll, "all", false, "Also list entries that are not unit tests")

	_ = viper.BindPFlags(pf)
	setupEnv()

	// Environment values fill in any flag not given on the command line.
	cobra.OnInitialize(func() {
		pf.VisitAll(func(f *pflag.Flag) {
			if f.Changed || !viper.IsSet(f.Name) {
				return
			}
			if err := f.Value.Set(viper.GetString(f.Name)); err != nil {
				log.WithError(err).Warnf("ignoring %s_%s", envPrefix, envKey(f.Name))
			}
		})
	})

	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(listCmd)
}

func setupEnv() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func envKey(flag string) string {
	return strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}
