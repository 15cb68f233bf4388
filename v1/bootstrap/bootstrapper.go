package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/Aleph-Alpha/collection-init/v1/logger"
	"github.com/Aleph-Alpha/collection-init/v1/metrics"
	"github.com/Aleph-Alpha/collection-init/v1/tracer"
	"github.com/Aleph-Alpha/collection-init/v1/vectordb"
)

// Status tells whether a collection was created by the run or already there.
type Status string

const (
	StatusCreated  Status = "created"
	StatusExisting Status = "existing"

	outcomeFailed = "failed"
)

// Outcome is the result of ensuring one collection.
type Outcome struct {
	Name   string
	Status Status
}

// Result summarizes a successful run.
type Result struct {
	Outcomes []Outcome
	Report   []ReportEntry
}

// Config controls a run.
type Config struct {
	// ReportPath is where the JSON report is written.
	ReportPath string

	// Collections overrides DefaultCollections when non-empty.
	Collections []vectordb.CollectionSpec
}

// Bootstrapper ensures a fixed set of collections exists and reports on the store.
type Bootstrapper struct {
	store   vectordb.Service
	console *Console
	log     logger.Logger
	metrics metrics.MetricsCollector
	tracer  *tracer.Tracer
	cfg     Config
}

// New wires a Bootstrapper. metrics and tracer are required.
func New(store vectordb.Service, console *Console, log logger.Logger, m metrics.MetricsCollector, t *tracer.Tracer, cfg Config) *Bootstrapper {
	return &Bootstrapper{
		store:   store,
		console: console,
		log:     log,
		metrics: m,
		tracer:  t,
		cfg:     cfg,
	}
}

func (b *Bootstrapper) specs() []vectordb.CollectionSpec {
	if len(b.cfg.Collections) > 0 {
		out := make([]vectordb.CollectionSpec, len(b.cfg.Collections))
		for i, s := range b.cfg.Collections {
			out[i] = s.Clone()
		}
		return out
	}
	return DefaultCollections()
}

// Run ensures every collection exists, verifies the store and writes the report.
//
// The first failure aborts the run. Nothing is retried, and the report is
// only written once every collection is ensured and verified.
func (b *Bootstrapper) Run(ctx context.Context) (*Result, error) {
	ctx, span := b.tracer.StartSpan(ctx, "bootstrap.run")
	defer span.End()

	specs := b.specs()
	if err := validateSpecs(specs); err != nil {
		err = fmt.Errorf("%w: invalid collection set: %w", ErrEnsureFailed, err)
		b.console.InvalidCollections(err)
		b.tracer.RecordErrorOnSpan(span, err)
		return nil, err
	}

	b.console.EnsureStart(len(specs))

	outcomes := make([]Outcome, 0, len(specs))
	for _, spec := range specs {
		b.console.CollectionHeader(spec)

		status, err := b.ensure(ctx, spec)
		if err != nil {
			b.metrics.IncrementEnsured(outcomeFailed)
			b.console.EnsureFailed(spec.Name, err)
			b.log.ErrorWithContext(ctx, "Failed to ensure collection", err, map[string]interface{}{
				"collection": spec.Name,
			})
			err = fmt.Errorf("%w '%s': %w", ErrEnsureFailed, spec.Name, err)
			b.tracer.RecordErrorOnSpan(span, err)
			return nil, err
		}

		b.metrics.IncrementEnsured(string(status))
		if status == StatusCreated {
			b.console.Created(spec.Name)
		} else {
			b.console.Existing(spec.Name)
		}
		outcomes = append(outcomes, Outcome{Name: spec.Name, Status: status})
	}

	b.console.Initialized(len(outcomes))

	entries, err := b.Verify(ctx)
	if err != nil {
		b.tracer.RecordErrorOnSpan(span, err)
		return nil, err
	}

	if err := b.writeReport(ctx, entries); err != nil {
		b.tracer.RecordErrorOnSpan(span, err)
		return nil, err
	}

	b.console.Completed()
	b.log.InfoWithContext(ctx, "Bootstrap completed", nil, map[string]interface{}{
		"ensured":     len(outcomes),
		"collections": len(entries),
		"report":      b.cfg.ReportPath,
	})

	return &Result{Outcomes: outcomes, Report: entries}, nil
}

// ensure looks a collection up and creates it only when the store reports
// it missing. Any other lookup error is returned as is.
func (b *Bootstrapper) ensure(ctx context.Context, spec vectordb.CollectionSpec) (Status, error) {
	ctx, span := b.tracer.StartSpan(ctx, "bootstrap.ensure")
	defer span.End()
	b.tracer.SetAttributes(span, map[string]interface{}{"collection": spec.Name})

	start := time.Now()
	_, err := b.store.GetCollection(ctx, spec.Name)
	b.metrics.RecordOperationDuration(start, "get_collection")

	switch {
	case err == nil:
		b.tracer.SetAttributes(span, map[string]interface{}{"outcome": string(StatusExisting)})
		return StatusExisting, nil
	case !vectordb.IsNotFound(err):
		b.tracer.RecordErrorOnSpan(span, err)
		return "", fmt.Errorf("lookup failed: %w", err)
	}

	start = time.Now()
	_, err = b.store.CreateCollection(ctx, spec.Name, spec.Metadata)
	b.metrics.RecordOperationDuration(start, "create_collection")
	if err != nil {
		b.tracer.RecordErrorOnSpan(span, err)
		return "", err
	}

	b.log.InfoWithContext(ctx, "Created collection", nil, map[string]interface{}{
		"collection": spec.Name,
	})
	b.tracer.SetAttributes(span, map[string]interface{}{"outcome": string(StatusCreated)})
	return StatusCreated, nil
}

// Verify lists every collection in the store with its document count and
// prints them. The entries are sorted by name.
func (b *Bootstrapper) Verify(ctx context.Context) ([]ReportEntry, error) {
	ctx, span := b.tracer.StartSpan(ctx, "bootstrap.verify")
	defer span.End()

	b.console.VerifyStart()

	fail := func(err error) ([]ReportEntry, error) {
		b.console.VerifyFailed(err)
		b.tracer.RecordErrorOnSpan(span, err)
		b.log.ErrorWithContext(ctx, "Verification failed", err, nil)
		return nil, fmt.Errorf("%w: %w", ErrVerifyFailed, err)
	}

	start := time.Now()
	colls, err := b.store.ListCollections(ctx)
	b.metrics.RecordOperationDuration(start, "list_collections")
	if err != nil {
		return fail(err)
	}

	entries := make([]ReportEntry, 0, len(colls))
	for i, coll := range colls {
		start := time.Now()
		n, err := b.store.Count(ctx, coll.Name)
		b.metrics.RecordOperationDuration(start, "count")
		if err != nil {
			return fail(fmt.Errorf("count '%s': %w", coll.Name, err))
		}
		if n < 0 {
			return fail(fmt.Errorf("count '%s': negative document count %d", coll.Name, n))
		}

		entry := ReportEntry{
			Name:          coll.Name,
			Metadata:      vectordb.CloneMetadata(coll.Metadata),
			DocumentCount: n,
		}
		b.metrics.SetDocumentCount(coll.Name, n)
		b.console.VerifyEntry(i+1, entry)
		entries = append(entries, entry)
	}

	b.console.Total(len(entries))
	b.tracer.SetAttributes(span, map[string]interface{}{"collections": len(entries)})
	return entries, nil
}

func (b *Bootstrapper) writeReport(ctx context.Context, entries []ReportEntry) error {
	ctx, span := b.tracer.StartSpan(ctx, "bootstrap.report")
	defer span.End()

	if err := WriteReport(b.cfg.ReportPath, entries); err != nil {
		b.console.ReportFailed(err)
		b.tracer.RecordErrorOnSpan(span, err)
		b.log.ErrorWithContext(ctx, "Failed to write report", err, map[string]interface{}{
			"path": b.cfg.ReportPath,
		})
		return fmt.Errorf("%w: %w", ErrReportFailed, err)
	}

	b.console.ReportSaved(b.cfg.ReportPath)
	return nil
}
