// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - Source: Enumerates raw table-bearing files
//   - Normaliser: Transforms one raw file into a Document
//   - Rule: Checks one Document against one business rule
//   - DocumentStore: Document persistence
//   - DiscrepancyStore: Discrepancy persistence
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
