// Package diagnostic provides structured errors, warnings, and infos for the
// bundle generator. Every input problem is fatal to the run as a set: the
// pipeline collects diagnostics, and generation proceeds only when no error
// severity is present.
//
// Key capabilities:
//   - Flag contradiction errors (marked vs unmarked)
//   - Record shape rejections with source positions
//   - Derived-name collision reports naming both colliding fields
//   - Ignored-directive notices
package diagnostic
