package driving

import "context"

// PipelineService ingests table files and validates the resulting documents.
type PipelineService interface {
	// Run parses every table file in a directory, stores the documents,
	// validates them and stores the discrepancies found.
	Run(ctx context.Context, directory string) (*RunReport, error)

	// RunFiles is Run over an explicit list of files.
	RunFiles(ctx context.Context, paths []string) (*RunReport, error)

	// Validate re-validates stored documents. An empty ids slice
	// validates every stored document.
	Validate(ctx context.Context, ids []string) (*RunReport, error)
}

// RunReport summarises one pipeline run.
type RunReport struct {
	// RunID correlates log lines of one run.
	RunID string

	// FilesFailed is the number of files skipped because they could not be parsed.
	FilesFailed int

	// DocumentsParsed is the number of documents produced by parsing.
	DocumentsParsed int

	// DocumentsSaved is the number of documents written to the store.
	DocumentsSaved int

	// DocumentsValidated is the number of documents run through the rule set.
	DocumentsValidated int

	// DiscrepanciesFound is the number of discrepancies generated.
	DiscrepanciesFound int

	// DiscrepanciesSaved is the number of discrepancies written to the store.
	// Discrepancies sharing an id within a run are written once.
	DiscrepanciesSaved int

	// ByType counts discrepancies per discrepancy type.
	ByType map[string]int
}
