package cmd

import (
	"fmt"
	"slices"
	"strings"
)

const simVerilator = "verilator"

// simulators accepted by --sim, in the order shown to users.
var simulators = []string{"vcs", simVerilator, "iverilog", "wave_vpi"}

func validateSimulator(sim string) error {
	if slices.Contains(simulators, sim) {
		return nil
	}
	return fmt.Errorf("invalid --sim %q (choose from %s)", sim, strings.Join(simulators, ", "))
}
