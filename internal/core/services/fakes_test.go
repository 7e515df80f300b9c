package services

import (
	"bytes"
	"context"
	"errors"
	"iter"
	"os"
	"testing"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driven"
	"github.com/custodia-labs/discrepancy-finder/internal/logger"
)

const goodTable = `<table id="%s">
	<caption>%s</caption>
	<thead><tr><th>Region</th><th>Q1</th><th>Q2</th><th>Q3</th></tr></thead>
	<tbody><tr><td>North</td><td>2000</td><td>2000</td><td>2000</td></tr></tbody>
	<tfoot><tr><td>Creation: 15Jan23 Germany</td></tr></tfoot>
</table>`

const brokenTable = `<table id="broken">
	<thead><tr><th>Region</th><th>Q1</th></tr></thead>
	<tbody><tr><td>North</td><td>not-a-number</td></tr></tbody>
</table>`

// captureLog redirects logger output for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}

// fakeSource yields fixed raw documents and read errors.
type fakeSource struct {
	raws        []*domain.RawDocument
	readErrs    map[string]error
	validateErr error
}

func (s *fakeSource) Type() string { return "fake" }

func (s *fakeSource) Validate(context.Context) error { return s.validateErr }

func (s *fakeSource) Documents(context.Context) iter.Seq2[*domain.RawDocument, error] {
	return func(yield func(*domain.RawDocument, error) bool) {
		for _, raw := range s.raws {
			if !yield(raw, s.readErrs[raw.URI]) {
				return
			}
		}
	}
}

// fakeSourceFactory returns the same source for any location.
type fakeSourceFactory struct {
	source    *fakeSource
	directory string
	files     []string
}

func (f *fakeSourceFactory) Directory(path string) driven.Source {
	f.directory = path
	return f.source
}

func (f *fakeSourceFactory) Files(paths ...string) driven.Source {
	f.files = paths
	return f.source
}

// stubNormaliser maps URIs to documents or errors.
type stubNormaliser struct {
	docs map[string]*domain.Document
	errs map[string]error
	// panics lists URIs whose normalisation panics.
	panics map[string]bool
}

func (n *stubNormaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if n.panics[raw.URI] {
		panic("normaliser exploded")
	}
	if err, ok := n.errs[raw.URI]; ok {
		return nil, err
	}
	return n.docs[raw.URI], nil
}

// stubRule returns a fixed result, error, or panics.
type stubRule struct {
	name   string
	result domain.CheckResult
	err    error
	panic  bool
	calls  int
}

func (r *stubRule) Name() string { return r.name }

func (r *stubRule) Parameters() map[string]any { return map[string]any{"stub": true} }

func (r *stubRule) Check(*domain.Document) (domain.CheckResult, error) {
	r.calls++
	if r.panic {
		panic("rule exploded")
	}
	return r.result, r.err
}

func passingRule(name string) *stubRule {
	return &stubRule{name: name, result: domain.Valid()}
}

func failingRule(name string) *stubRule {
	return &stubRule{name: name, err: errors.New("boom")}
}

// failingDocStore fails every operation.
type failingDocStore struct{ err error }

func (s *failingDocStore) SaveDocuments(context.Context, []domain.Document) (int, error) {
	return 0, s.err
}

func (s *failingDocStore) FindByIDs(context.Context, []string) ([]domain.Document, error) {
	return nil, s.err
}

func (s *failingDocStore) GetDocument(context.Context, string) (*domain.Document, error) {
	return nil, s.err
}

func (s *failingDocStore) ListDocuments(context.Context) ([]domain.Document, error) {
	return nil, s.err
}

// failingDiscrepancyStore fails every operation.
type failingDiscrepancyStore struct{ err error }

func (s *failingDiscrepancyStore) SaveDiscrepancies(context.Context, []domain.Discrepancy) (int, error) {
	return 0, s.err
}

func (s *failingDiscrepancyStore) ListDiscrepancies(context.Context, string) ([]domain.Discrepancy, error) {
	return nil, s.err
}

func strPtr(s string) *string {
	return &s
}

// brokenParamsRule panics while building its parameters.
type brokenParamsRule struct{}

func (brokenParamsRule) Name() string { return "BrokenParams" }

func (brokenParamsRule) Parameters() map[string]any {
	var params map[string]any
	params["limit"] = 1
	return params
}

func (brokenParamsRule) Check(*domain.Document) (domain.CheckResult, error) {
	return domain.Valid(), nil
}

// brokenNameRule panics when asked for its name.
type brokenNameRule struct{}

func (brokenNameRule) Name() string { panic("no name") }

func (brokenNameRule) Parameters() map[string]any { return nil }

func (brokenNameRule) Check(*domain.Document) (domain.CheckResult, error) {
	return domain.Valid(), nil
}
