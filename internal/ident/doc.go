// Package ident derives every identifier the generator emits: case
// conversions and the composed names for tag types, wrapper families,
// aggregates, markers, and accessor aliases.
//
// Key functions:
//   - SnakeCase / PascalCase: deterministic case conversion
//   - Namespace: the per-record prefix reserved for tag types
//   - Accessor, Bundle, Marker, ComponentFamily, ResourceFamily: composed names
//
// All functions are pure. Identical input always yields identical output;
// collision checks over the derived names live in the planner.
package ident
