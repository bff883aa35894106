// Package batch orchestrates metadata tagging across the files of a
// documentation build.
package batch

import (
	"context"
	"path/filepath"
	"sync/atomic"

	"github.com/fwojciec/pagemeta"
	"golang.org/x/sync/errgroup"
)

// ProgressType identifies the kind of progress event.
type ProgressType int

// Progress event types emitted during a batch run.
const (
	ProgressStarted ProgressType = iota
	ProgressTagged
	ProgressUnchanged
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during batch processing.
type ProgressEvent struct {
	Type ProgressType

	// Path is the output file the event concerns; Source is the content
	// file it was rendered from.
	Path   string
	Source string

	Completed int
	Total     int
	Error     error
}

// ProgressFunc is called as files are processed. Callbacks may run from
// concurrent workers and must be safe for concurrent use.
type ProgressFunc func(ProgressEvent)

// Result summarizes a batch run.
type Result struct {
	// Total is the number of qualifying output files that were processed.
	Total int

	// Tagged is the number of files that received at least one meta tag.
	Tagged int

	// Unchanged is the number of files processed without anything to
	// inject.
	Unchanged int

	// Failed is the number of files whose unit of work failed.
	Failed int

	// Skipped is the number of manifest outputs excluded before
	// processing: empty paths or unknown document types.
	Skipped int
}

// Processor fans metadata tagging out across the output files of a build
// manifest. Files are independent: they are processed concurrently, with no
// ordering guarantees between them, and a failure in one file never aborts
// the rest of the batch.
type Processor struct {
	Tagger pagemeta.PageTagger
	Store  pagemeta.PageStore

	// Concurrency limits parallel units of work. Zero or negative means
	// the default of 10.
	Concurrency int
}

// job is one unit of work: a single output file and its document type.
type job struct {
	typ        pagemeta.DocumentType
	sourcePath string
	outputPath string
}

// Process tags every qualifying output file in the manifest. Output
// relative paths are resolved against outputDir; source relative paths
// against sourceDir (reported in progress events for diagnostics).
//
// Per-file failures are isolated: they are counted, reported through the
// progress callback, and do not affect other files. Only an invalid
// manifest or missing collaborators fail the batch as a whole.
func (p *Processor) Process(ctx context.Context, manifest *pagemeta.Manifest, sourceDir, outputDir string, progress ProgressFunc) (*Result, error) {
	if manifest == nil {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "manifest required")
	}
	if p.Tagger == nil || p.Store == nil {
		return nil, pagemeta.Errorf(pagemeta.EINTERNAL, "processor requires a tagger and a store")
	}

	jobs, skipped := collectJobs(manifest, sourceDir, outputDir)
	total := len(jobs)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	// Tagged is the processed-file counter: it is the only cross-task
	// shared state and must be incremented atomically.
	var tagged, unchanged, failed atomic.Int64
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, j := range jobs {
		j := j
		g.Go(func() error {
			event := p.processFile(gctx, j)
			switch event.Type {
			case ProgressTagged:
				tagged.Add(1)
			case ProgressUnchanged:
				unchanged.Add(1)
			case ProgressFailed:
				failed.Add(1)
			}
			if progress != nil {
				event.Completed = int(completed.Add(1))
				event.Total = total
				progress(event)
			}
			return nil
		})
	}
	_ = g.Wait()

	result := &Result{
		Total:     total,
		Tagged:    int(tagged.Load()),
		Unchanged: int(unchanged.Load()),
		Failed:    int(failed.Load()),
		Skipped:   skipped,
	}
	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return result, nil
}

// processFile runs the load → tag → save sequence for one output file.
// Steps within a file are strictly ordered; the file is written at most
// once, and only when at least one tag was injected.
func (p *Processor) processFile(ctx context.Context, j job) ProgressEvent {
	markup, err := p.Store.Load(ctx, j.outputPath)
	if err != nil {
		return ProgressEvent{Type: ProgressFailed, Path: j.outputPath, Source: j.sourcePath, Error: err}
	}

	result, err := p.Tagger.Tag(markup, j.typ)
	if err != nil {
		return ProgressEvent{Type: ProgressFailed, Path: j.outputPath, Source: j.sourcePath, Error: err}
	}
	if len(result.Tags) == 0 {
		return ProgressEvent{Type: ProgressUnchanged, Path: j.outputPath, Source: j.sourcePath}
	}

	if err := p.Store.Save(ctx, j.outputPath, result.HTML); err != nil {
		return ProgressEvent{Type: ProgressFailed, Path: j.outputPath, Source: j.sourcePath, Error: err}
	}
	return ProgressEvent{Type: ProgressTagged, Path: j.outputPath, Source: j.sourcePath}
}

// collectJobs expands the manifest into units of work. Entries with an
// empty source path, an unknown document type, or an empty output relative
// path are nothing to do, not defects: they are skipped silently.
func collectJobs(manifest *pagemeta.Manifest, sourceDir, outputDir string) ([]job, int) {
	var jobs []job
	var skipped int
	for _, f := range manifest.Files {
		if f.SourceRelativePath == "" || !f.DocumentType().Known() {
			skipped += len(f.Output)
			continue
		}
		for _, out := range f.Output {
			if out.RelativePath == "" {
				skipped++
				continue
			}
			jobs = append(jobs, job{
				typ:        f.DocumentType(),
				sourcePath: filepath.Join(sourceDir, f.SourceRelativePath),
				outputPath: filepath.Join(outputDir, out.RelativePath),
			})
		}
	}
	return jobs, skipped
}
