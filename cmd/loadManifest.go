package cmd

import (
	"encoding/json"
	"fmt"
	"os"
)

// loadManifest reads and decodes the JSON manifest at path. Entries missing a
// required key fail here; the full schema check is left to verify.
func loadManifest(path string) (manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	mf, err := decodeManifest(b)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return mf, nil
}

// decodeManifest decodes the entry array, naming the index of the first entry
// that does not decode.
func decodeManifest(b []byte) (manifest, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	mf := make(manifest, len(raw))
	for i, r := range raw {
		if err := json.Unmarshal(r, &mf[i]); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return mf, nil
}
