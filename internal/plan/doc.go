// Package plan turns scanned records and their selection flags into a
// deterministic generation plan.
//
// Resolution merges comment directives with manifest entries, rejects
// contradictions and unsupported record shapes, derives every generated
// identifier, and pre-checks the three collision classes: accessor
// collisions within a record, namespace collisions between records, and
// collisions with existing package declarations. Generation never starts
// from a plan carrying errors, so a partial write cannot happen.
package plan
