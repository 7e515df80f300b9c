// Package domain defines the core business entities of the discrepancy finder.
//
// This package is the innermost layer of the hexagonal architecture.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A parsed table-bearing source file
//   - DocumentRow: One labelled row of numeric values within a Document
//   - ValidationOutcome: The transient result of one rule against one Document
//   - Discrepancy: A persisted record of a rule violation or processing error
//   - RawDocument: Opaque bytes read from a source before parsing
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
