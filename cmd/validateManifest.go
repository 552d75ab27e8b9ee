package cmd

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/multierr"
)

//go:embed module_info.schema.json
var manifestSchema string

// validateManifestSchema checks raw manifest JSON against the embedded
// schema and returns every violation combined into one error.
func validateManifestSchema(b []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(manifestSchema), gojsonschema.NewBytesLoader(b))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}
	var errs error
	for _, desc := range result.Errors() {
		errs = multierr.Append(errs, errors.New(desc.String()))
	}
	return errs
}

// checkDuplicateTargets rejects manifests naming a package/target pair twice;
// single mode would silently pick the last of them.
func checkDuplicateTargets(mf manifest) error {
	seen := make(map[string]int, len(mf))
	var errs error
	for i, e := range mf {
		if first, ok := seen[e.name()]; ok {
			errs = multierr.Append(errs, fmt.Errorf("duplicate target %s (entries %d and %d)", e.name(), first, i))
			continue
		}
		seen[e.name()] = i
	}
	return errs
}
