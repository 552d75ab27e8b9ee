package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
)

// manifestEntry is one object of module_info.json. UnitTestCmd, when set,
// replaces the generated make invocation for the target.
type manifestEntry struct {
	Package     string `json:"package"`
	Target      string `json:"target"`
	UnitTest    bool   `json:"unit_test"`
	UnitTestCmd string `json:"unit_test_cmd,omitempty"`
}

// UnmarshalJSON rejects entries missing package, target or unit_test.
func (e *manifestEntry) UnmarshalJSON(b []byte) error {
	var raw struct {
		Package     *string `json:"package"`
		Target      *string `json:"target"`
		UnitTest    *bool   `json:"unit_test"`
		UnitTestCmd string  `json:"unit_test_cmd"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var missing []string
	if raw.Package == nil {
		missing = append(missing, "package")
	}
	if raw.Target == nil {
		missing = append(missing, "target")
	}
	if raw.UnitTest == nil {
		missing = append(missing, "unit_test")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}
	*e = manifestEntry{
		Package:     *raw.Package,
		Target:      *raw.Target,
		UnitTest:    *raw.UnitTest,
		UnitTestCmd: raw.UnitTestCmd,
	}
	return nil
}

// manifest is the decoded module_info.json array, in file order.
type manifest []manifestEntry

func (e manifestEntry) hasOverride() bool { return e.UnitTestCmd != "" }

func (e manifestEntry) name() string { return e.Package + "/" + e.Target }

// runnable returns the entries flagged for batch runs, keeping manifest order.
func (m manifest) runnable() []manifestEntry {
	var out []manifestEntry
	for _, e := range m {
		if e.UnitTest {
			out = append(out, e)
		}
	}
	return out
}

// lookup returns the last entry matching pkg and target, or nil.
func (m manifest) lookup(pkg, target string) *manifestEntry {
	var found *manifestEntry
	for i := range m {
		if m[i].Package == pkg && m[i].Target == target {
			found = &m[i]
		}
	}
	return found
}
