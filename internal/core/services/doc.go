// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The validation core is a fixed sequence of stages: the DocumentAssembler
// turns raw files into Documents, the ValidationEngine evaluates a rule set
// against one Document, and the DiscrepancyGenerator turns non-passing
// outcomes into Discrepancies. The Pipeline composes them with the stores.
package services
