package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/marklens/marklens/internal/analysis"
	"github.com/marklens/marklens/internal/source"
)

// Worker processes a single analysis job.
type Worker struct {
	log      *slog.Logger
	stats    *JobStats
	pdfFlags source.PDFSource
}

func NewWorker(log *slog.Logger, stats *JobStats, pdfFallback bool) *Worker {
	return &Worker{
		log:      log,
		stats:    stats,
		pdfFlags: source.PDFSource{FallbackPdftotext: pdfFallback},
	}
}

// Process runs the full analysis pipeline for a job: load the export,
// build and aggregate the tree, project every view, store the result.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)
	started := time.Now()
	defer func() {
		w.stats.Record(time.Since(started).Milliseconds())
	}()

	if err := ctx.Err(); err != nil {
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "canceled")
		return
	}

	// Phase 1: load records from the export file.
	job.SetStatus(StatusLoading, "loading")
	src, err := w.sourceFor(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "loading")
		return
	}

	records, err := src.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("load failed", "error", err)
		job.AddError(fmt.Sprintf("load: %s", err))
		job.SetStatus(StatusFailed, "loading")
		return
	}
	job.SetRecordCount(len(records))
	log.Info("loaded export", "records", len(records))

	// Phases 2-4: build, aggregate, project. The tree lives and dies
	// inside analysis.Run; only the projections survive.
	job.SetStatus(StatusBuilding, "building")
	job.SetStatus(StatusAggregating, "aggregating")
	job.SetStatus(StatusProjecting, "projecting")

	res, err := analysis.Run(records, job.Options)
	if err != nil {
		log.Error("analysis failed", "error", err)
		job.AddError(fmt.Sprintf("analyze: %s", err))
		job.SetStatus(StatusFailed, "projecting")
		return
	}
	for _, warning := range res.Warnings {
		job.AddError(warning)
	}

	job.SetResult(res)
	job.SetStatus(StatusCompleted, "done")
	log.Info("analysis complete",
		"records", res.Stats.TotalBookmarks,
		"folders", res.Stats.TotalFolders,
		"duration_ms", time.Since(started).Milliseconds(),
	)
}

// sourceFor returns the reader for a filename, carrying the worker's PDF
// fallback setting through.
func (w *Worker) sourceFor(filename string) (source.Source, error) {
	src, err := source.ForFile(filename)
	if err != nil {
		return nil, err
	}
	if _, ok := src.(*source.PDFSource); ok {
		pdf := w.pdfFlags
		return &pdf, nil
	}
	return src, nil
}
