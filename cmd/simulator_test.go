package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateSimulator(t *testing.T) {
	for _, sim := range []string{"vcs", "verilator", "iverilog", "wave_vpi"} {
		require.NoError(t, validateSimulator(sim), sim)
	}
	for _, sim := range []string{"", "questa", "Verilator"} {
		err := validateSimulator(sim)
		require.Error(t, err, sim)
		require.Contains(t, err.Error(), "choose from vcs, verilator, iverilog, wave_vpi")
	}
}
