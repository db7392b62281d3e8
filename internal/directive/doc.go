// Package directive parses the struct-level flags a record carries and
// resolves them into an effective generation mode.
//
// Flags arrive as comment directives in a type's doc comment:
//
//	//bundle:component
//	//bundle:unmarked
//	type Player struct { ... }
//
// or from a manifest entry; both sources are unioned before resolution.
// Recognized names are component, resource, marked, and unmarked. Anything
// else after the bundle: prefix is collected but ignored. Contradictions
// (marked with unmarked, component with resource) are resolved by nobody:
// they surface as fatal diagnostics in the planner.
package directive
