// Package gen renders decomposition plans into Go source files.
//
// Generation uses text/template + go/format. One file per record: tag
// types, the wrapper family, per-field aliases, then the mode-specific
// surface (bundle aggregate and conversions for components, registry
// dispatchers for resources). Field types are rendered with go/types so
// cross-package references carry their imports automatically, and imports
// are emitted sorted so re-runs are byte-identical.
package gen
