// Package manifest provides the YAML schema, parsing, and validation for
// bundle.yaml files.
//
// A manifest selects records for decomposition without touching their
// source, and overrides per-record options. Directive flags and manifest
// flags are unioned; contradictions are diagnosed the same way whichever
// source they come from.
//
// # Schema Overview
//
//	version: 1
//	registryImport: bundle-generator/registry
//	decompositions:
//	  - package: bundle-generator/examples/game
//	    record: Enemy
//	    mode: component        # component | resource
//	    tags: named            # ordinal | named
//	    marker: unmarked       # marked | unmarked (component mode only)
//
// Unknown keys are rejected during decoding; unknown option values, missing
// record names, duplicate entries, and unsupported versions are reported as
// diagnostics during validation.
package manifest
