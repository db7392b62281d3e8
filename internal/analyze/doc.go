// Package analyze provides package loading and record extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to build an
// in-memory model of every named struct declared in the loaded packages,
// together with its doc comment lines (where selection directives live) and
// the top-level names already taken in each package.
//
// Key types:
//   - TypeID: package import path + type name
//   - Record: one struct declaration with ordered fields and raw doc lines
//   - PackageInfo: package name, directory, records, occupied declarations
package analyze
