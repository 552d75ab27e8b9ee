package cmd

import "time"

// Version is the CLI version string injected at build time via -ldflags.
var Version = "0.1.0"

const (
	defaultManifest  = "module_info.json"
	defaultPackage   = "SimpleL2"
	defaultSimulator = "iverilog"

	// errorMarker in a target's stderr marks the target as failed.
	errorMarker = "[error]"
)

var (
	// Global configuration populated by flags and/or TEST_ALL_* environment
	// variables, shared by the root command and its subcommands.
	cfgManifest    string
	cfgTarget      string
	cfgPackage     string
	cfgSim         string
	cfgNoop        bool
	cfgReportPath  string
	cfgTimeout     time.Duration
	cfgStrictExit  bool
	cfgLogLevel    string
	cfgWorkdir     string
	cfgRemote      string
	cfgUser        string
	cfgPassword    string
	cfgKeyPath     string
	cfgPassphrase  string
	cfgKnownHosts  string
	cfgStrictHost  bool
	cfgConnTimeout time.Duration
	cfgListAll     bool
)

// Allow tests to stub dialing and command execution
var (
	dialSSHFunc          = dialSSH
	runLocalCommandFunc  = runLocalCommand
	runRemoteCommandFunc = runRemoteCommand
)
