package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// yamlReport is the --report document for a batch run. It is written after
// the last target or after the one that failed.
type yamlReport struct {
	Tool      string             `yaml:"tool"`
	Version   string             `yaml:"version"`
	Manifest  string             `yaml:"manifest"`
	Simulator string             `yaml:"simulator"`
	Executor  string             `yaml:"executor"`
	Generated string             `yaml:"generated"`
	Passed    bool               `yaml:"passed"`
	Results   []yamlTargetResult `yaml:"results"`
}

// yamlTargetResult records one executed target.
type yamlTargetResult struct {
	Package  string `yaml:"package"`
	Target   string `yaml:"target"`
	Command  string `yaml:"command"`
	ExitCode int    `yaml:"exit_code"`
	Duration string `yaml:"duration"`
	Passed   bool   `yaml:"passed"`
	Error    string `yaml:"error,omitempty"`
	Stderr   string `yaml:"stderr,omitempty"`
}

func newYAMLReport(manifestPath, sim, executor string) *yamlReport {
	return &yamlReport{
		Tool:      "test-all",
		Version:   Version,
		Manifest:  manifestPath,
		Simulator: sim,
		Executor:  executor,
		Generated: time.Now().Format(time.RFC3339),
		Passed:    true,
		Results:   []yamlTargetResult{},
	}
}

// addResult appends res; a single failing result marks the whole run failed.
func (r *yamlReport) addResult(res targetResult) {
	out := yamlTargetResult{
		Package:  res.entry.Package,
		Target:   res.entry.Target,
		Command:  res.command,
		ExitCode: res.exitCode,
		Duration: res.duration.Round(time.Millisecond).String(),
		Passed:   res.err == nil,
		Stderr:   res.stderr,
	}
	if res.err != nil {
		out.Error = res.err.Error()
		r.Passed = false
	}
	r.Results = append(r.Results, out)
}

// writeYAMLReport serializes the report to YAML with indentation and writes to
// the provided writer in a buffered manner.
func writeYAMLReport(w io.Writer, r *yamlReport) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		_ = enc.Close()
		return err
	}
	_ = enc.Close()
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(buf.Bytes()); err != nil {
		return err
	}
	return bw.Flush()
}

// writeReportFile writes r to path, creating parent directories.
func writeReportFile(path string, r *yamlReport) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := writeYAMLReport(f, r); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	return f.Close()
}
