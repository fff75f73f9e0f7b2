// Package runner provides the bounded fan-out/fan-in pool that the per-level
// fetchers run on: one fetch invocation per key, up to Options.Workers in
// flight at once, all returned records merged into a single slice in
// completion order.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/matteobe/icd10-scraper/pkg/icd"
)

// ErrNoKeys is returned by Run when the key list is empty. A zero-key scrape
// is always a caller bug here (key lists come from a previous level's output
// or a user-supplied file), so Run fails loudly instead of returning an
// empty collection that looks like a successful scrape of nothing.
var ErrNoKeys = errors.New("runner: no keys to fetch")

// WorkerError reports an unexpected fetch failure that aborted a run. It
// names the key whose fetch failed and wraps the underlying cause.
type WorkerError struct {
	Key string
	Err error
}

func (e *WorkerError) Error() string { return fmt.Sprintf("fetch %q: %v", e.Key, e.Err) }

func (e *WorkerError) Unwrap() error { return e.Err }

// Fetch maps one key to the records scraped for it. Expected failures (a
// non-success HTTP status) must be encoded as a Failure-tagged record, not
// returned as an error; an error return is treated as unexpected.
type Fetch func(ctx context.Context, key string) ([]icd.Record, error)

// Options control a single Run invocation.
type Options struct {
	// Workers bounds the number of in-flight fetches. The effective pool
	// size is min(Workers, len(keys)); values below 1 mean a single worker.
	Workers int
	// FetchTimeout bounds each individual fetch. Zero means no per-fetch
	// timeout beyond the caller's context.
	FetchTimeout time.Duration
	// BestEffort downgrades an unexpected fetch error to a Failure-tagged
	// record instead of aborting the run. The default is fail-fast: the
	// first error cancels outstanding fetches and Run returns a
	// *WorkerError.
	BestEffort bool
	// Level tags the records synthesized for best-effort downgrades.
	Level icd.Level
}

type result struct {
	key     string
	records []icd.Record
	err     error
}

// Run schedules one fetch per key across a bounded worker pool and returns
// the concatenation of all returned records. Records appear in completion
// order; no ordering relative to keys is guaranteed. Every key is fetched
// exactly once. An empty key list returns ErrNoKeys.
func Run(ctx context.Context, fetch Fetch, keys []string, opts Options) ([]icd.Record, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(keys) {
		workers = len(keys)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan string, len(keys))
	results := make(chan result, len(keys))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for key := range jobs {
				if runCtx.Err() != nil {
					return
				}
				records, err := fetchOne(runCtx, fetch, key, opts.FetchTimeout)
				results <- result{key: key, records: records, err: err}
			}
		}()
	}

	for _, key := range keys {
		jobs <- key
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	// The collector goroutine owns the merged slice; workers never touch it.
	var merged []icd.Record
	var failed *WorkerError
	for res := range results {
		if res.err != nil {
			if !opts.BestEffort {
				if failed == nil {
					failed = &WorkerError{Key: res.key, Err: res.err}
					cancel()
				}
				continue
			}
			slog.ErrorContext(ctx, "fetch failed, keeping partial results",
				"key", res.key, "err", res.err)
			merged = append(merged, icd.Record{
				Level:      opts.Level,
				ParentCode: res.key,
				Failure:    &icd.Failure{Reason: res.err.Error()},
			})
			continue
		}
		merged = append(merged, res.records...)
	}

	if failed != nil {
		return nil, failed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return merged, nil
}

func fetchOne(ctx context.Context, fetch Fetch, key string, timeout time.Duration) ([]icd.Record, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return fetch(ctx, key)
}
