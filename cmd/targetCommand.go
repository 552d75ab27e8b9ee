package cmd

import "fmt"

// batchCommand renders the command a batch run executes for e. The quiet
// make target keeps stdout short; failures are read from stderr.
func batchCommand(e manifestEntry, sim string) string {
	if e.hasOverride() {
		return e.UnitTestCmd + " simulator=" + sim
	}
	return fmt.Sprintf("make package=%s target=%s simulator=%s unit-test-quiet", e.Package, e.Target, sim)
}

// singleCommand renders the command for an explicitly requested target. entry
// is the matching manifest entry, if any. Verilator runs get WAVE_ENABLE=1 so
// the simulation dumps a waveform.
func singleCommand(pkg, target, sim string, entry *manifestEntry) string {
	var line string
	if entry != nil && entry.hasOverride() {
		line = entry.UnitTestCmd + " simulator=" + sim
	} else {
		line = fmt.Sprintf("make simulator=%s package=%s target=%s unit-test", sim, pkg, target)
	}
	if sim == simVerilator {
		line = "WAVE_ENABLE=1 " + line
	}
	return line
}
