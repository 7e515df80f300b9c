package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driven"
	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driving"
	"github.com/custodia-labs/discrepancy-finder/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.PipelineService = (*Pipeline)(nil)

// ErrSourcesNotConfigured is returned when a run is requested without a source factory.
var ErrSourcesNotConfigured = errors.New("source factory not configured")

// Pipeline runs the ordered ingestion and validation stages:
// assemble, save documents, re-hydrate, generate, save discrepancies.
type Pipeline struct {
	sources          driven.SourceFactory
	normaliser       driven.Normaliser
	generator        *DiscrepancyGenerator
	docStore         driven.DocumentStore
	discrepancyStore driven.DiscrepancyStore
}

// NewPipeline creates a pipeline. Rules are evaluated in the order given.
func NewPipeline(
	sources driven.SourceFactory,
	normaliser driven.Normaliser,
	rules []driven.Rule,
	docStore driven.DocumentStore,
	discrepancyStore driven.DiscrepancyStore,
) *Pipeline {
	return &Pipeline{
		sources:          sources,
		normaliser:       normaliser,
		generator:        NewDiscrepancyGenerator(NewValidationEngine(rules)),
		docStore:         docStore,
		discrepancyStore: discrepancyStore,
	}
}

// Run ingests and validates the table files of a directory.
func (p *Pipeline) Run(ctx context.Context, directory string) (*driving.RunReport, error) {
	if p.sources == nil {
		return nil, ErrSourcesNotConfigured
	}
	return p.RunSource(ctx, p.sources.Directory(directory))
}

// RunFiles ingests and validates an explicit list of files.
func (p *Pipeline) RunFiles(ctx context.Context, paths []string) (*driving.RunReport, error) {
	if p.sources == nil {
		return nil, ErrSourcesNotConfigured
	}
	return p.RunSource(ctx, p.sources.Files(paths...))
}

// RunSource ingests and validates the documents of any source.
func (p *Pipeline) RunSource(ctx context.Context, src driven.Source) (*driving.RunReport, error) {
	report := newRunReport()
	logger.Section(fmt.Sprintf("Run %s (%s source)", report.RunID, src.Type()))

	if err := src.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate source: %w", err)
	}

	// 1. Assemble documents
	assembler := NewDocumentAssembler(p.normaliser)
	assembler.OnFailure(func(string, error) { report.FilesFailed++ })
	docs := slices.Collect(assembler.Assemble(ctx, src))
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report.DocumentsParsed = len(docs)
	logger.Info("Parsed %d documents (%d files failed)", len(docs), report.FilesFailed)

	if len(docs) == 0 {
		logger.Warn("no documents were inserted")
		return report, nil
	}

	// 2. Save documents
	saved, err := p.docStore.SaveDocuments(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("save documents: %w", err)
	}
	report.DocumentsSaved = saved
	logger.Info("Inserted %d documents", saved)

	// 3-5. Re-hydrate, generate and save discrepancies
	if err := p.validate(ctx, report, domain.IDs(docs)); err != nil {
		return nil, err
	}
	return report, nil
}

// Validate re-validates stored documents. An empty ids slice validates
// every stored document.
func (p *Pipeline) Validate(ctx context.Context, ids []string) (*driving.RunReport, error) {
	report := newRunReport()
	logger.Section("Validate " + report.RunID)

	if len(ids) == 0 {
		docs, err := p.docStore.ListDocuments(ctx)
		if err != nil {
			return nil, fmt.Errorf("list documents: %w", err)
		}
		ids = domain.IDs(docs)
	}
	if len(ids) == 0 {
		logger.Warn("no documents to validate")
		return report, nil
	}

	if err := p.validate(ctx, report, ids); err != nil {
		return nil, err
	}
	return report, nil
}

func (p *Pipeline) validate(ctx context.Context, report *driving.RunReport, ids []string) error {
	docs, err := p.docStore.FindByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("find documents: %w", err)
	}
	report.DocumentsValidated = len(docs)
	logger.Info("Validating %d documents", len(docs))

	// Several errors on one document share an id; the last one is kept,
	// as an upsert would.
	var discrepancies []domain.Discrepancy
	index := make(map[string]int)
	for d := range p.generator.Generate(slices.Values(docs)) {
		report.DiscrepanciesFound++
		report.ByType[d.DiscrepancyType]++
		if i, ok := index[d.DiscrepancyID]; ok {
			logger.Debug("Discrepancy %s repeated in this run, keeping the latest", d.DiscrepancyID)
			discrepancies[i] = d
			continue
		}
		index[d.DiscrepancyID] = len(discrepancies)
		discrepancies = append(discrepancies, d)
	}
	logger.Info("Found %d discrepancies (%d unique)", report.DiscrepanciesFound, len(discrepancies))

	if len(discrepancies) == 0 {
		return nil
	}

	saved, err := p.discrepancyStore.SaveDiscrepancies(ctx, discrepancies)
	if err != nil {
		return fmt.Errorf("save discrepancies: %w", err)
	}
	report.DiscrepanciesSaved = saved
	return nil
}

func newRunReport() *driving.RunReport {
	return &driving.RunReport{
		RunID:  uuid.New().String(),
		ByType: make(map[string]int),
	}
}
