package processor

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/woozymasta/geoz/internal/config"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Result is the outcome of one job.
type Result struct {
	Job      config.Job
	Err      error
	Duration time.Duration
	Skipped  bool
}

// ProcessJobs runs the jobs on up to concurrency workers. Results come back
// in job order. Jobs not yet started when ctx is done fail with ctx.Err().
// The client fetches inputs given as URLs.
func ProcessJobs(ctx context.Context, client *http.Client, jobs []config.Job, concurrency int, force bool, opts Options) []Result {
	if concurrency <= 0 {
		concurrency = 1
	}

	type task struct {
		index int
		job   config.Job
	}

	tasks := make(chan task, len(jobs))
	results := make([]Result, len(jobs))

	go func() {
		for i, j := range jobs {
			tasks <- task{index: i, job: j}
		}
		close(tasks)
	}()

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				if err := ctx.Err(); err != nil {
					results[t.index] = Result{Job: t.job, Err: err}
					continue
				}

				start := time.Now()
				skipped, err := ProcessFile(ctx, client, t.job, force, opts)
				results[t.index] = Result{Job: t.job, Err: err, Skipped: skipped, Duration: time.Since(start)}

				if err != nil {
					log.Error().Err(err).Str("job", t.job.Name).Msg("Job failed")
				}
			}
		}()
	}
	wg.Wait()

	return results
}

// ProcessFile converts one input file or URL into its output file. An
// existing output is kept unless force is set; skipped reports that case.
func ProcessFile(ctx context.Context, client *http.Client, job config.Job, force bool, opts Options) (skipped bool, err error) {
	if _, err := os.Stat(job.Output); err == nil && !force {
		log.Debug().Str("job", job.Name).Str("output", job.Output).Msg("Output exists, skipping")
		return true, nil
	}

	from, err := ResolveFormat(job.From, job.Input)
	if err != nil {
		return false, errors.Wrap(err, "input format")
	}
	to, err := ResolveFormat(job.To, job.Output)
	if err != nil {
		return false, errors.Wrap(err, "output format")
	}

	data, err := ReadSource(ctx, client, job.Input)
	if err != nil {
		return false, err
	}

	out, err := Convert(data, from, to, opts)
	if err != nil {
		return false, errors.Wrap(err, job.Input)
	}

	log.Info().
		Str("job", job.Name).
		Str("from", string(from)).
		Str("to", string(to)).
		Int("bytes", len(out)).
		Msg("Converted")

	return false, saveFile(job.Output, out)
}

// saveFile writes data to path, creating parent directories.
func saveFile(path string, data []byte) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
			if err == nil {
				err = closeErr
			}
		}
	}()

	_, err = f.Write(data)
	return err
}
