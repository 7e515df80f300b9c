// Package mongo provides MongoDB implementations of the document and
// discrepancy stores.
//
// Documents live in the "documents" collection keyed by document id, and
// discrepancies in the "discrepancies" collection keyed by discrepancy id.
// Both are written with unordered bulk upserts, so re-running a batch
// replaces existing records.
package mongo
