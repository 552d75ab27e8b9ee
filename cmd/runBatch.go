package cmd

import (
	"fmt"
	"io"
	"time"
)

// batchOptions carries the flag values a batch run needs.
type batchOptions struct {
	manifestPath string
	sim          string
	timeout      time.Duration
	strictExit   bool
}

// runBatch runs every unit-test entry of mf in order and stops at the first
// failure. Each result is added to rep, including the failing one.
func runBatch(stdout io.Writer, runner commandRunner, mf manifest, opts batchOptions, rep *yamlReport) error {
	targets := mf.runnable()
	if len(targets) == 0 {
		_, _ = fmt.Fprintf(stdout, "no unit-test targets in %s\n", opts.manifestPath)
		return nil
	}
	for i, e := range targets {
		if err := writeStartBanner(stdout, i+1, len(targets), e); err != nil {
			return err
		}
		res := runTarget(runner, e, batchCommand(e, opts.sim), stdout, opts.timeout, opts.strictExit)
		rep.addResult(res)
		if res.err != nil {
			return res.err
		}
		if err := writeSuccessBanner(stdout, i+1, len(targets), e); err != nil {
			return err
		}
	}
	return nil
}
