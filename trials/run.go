// SPDX-License-Identifier: MIT

package trials

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/tropix/attack"
	"github.com/katalvlaran/tropix/protocol"
)

// result is what a worker hands back for one trial index.
type result struct {
	rec Record
	err error
}

// Run executes cfg.Count trials and returns their summary.
//
// Implementation:
//   - Stage 1: validate cfg; start the workers.
//   - Stage 2: feed trial indices; each worker derives the trial seed,
//     draws an agreeing instance and attacks it.
//   - Stage 3: collect results, emit OnRecord in index order, tally.
//
// The first generation or attack error cancels the remaining trials and is
// returned. ctx cancellation stops the run with ctx.Err().
func Run(ctx context.Context, cfg Config) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, fmt.Errorf("Run: %w", err)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	start := time.Now()
	jobs := make(chan int)
	results := make(chan result, cfg.workers())

	var wg sync.WaitGroup
	for i := 0; i < cfg.workers(); i++ {
		wg.Add(1)
		go worker(ctx, cfg, jobs, results, &wg)
	}
	go func() {
		defer close(jobs)
		for i := 0; i < cfg.Count; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	sum := Summary{Count: cfg.Count, Records: make([]Record, cfg.Count)}
	done := make([]bool, cfg.Count)
	next := 0
	var firstErr error
	for res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
				cancel()
			}
			continue
		}
		sum.Records[res.rec.Index] = res.rec
		done[res.rec.Index] = true
		for next < cfg.Count && done[next] {
			sum.add(sum.Records[next])
			if cfg.OnRecord != nil {
				cfg.OnRecord(sum.Records[next])
			}
			next++
		}
	}
	sum.Elapsed = time.Since(start)

	if firstErr != nil {
		return Summary{}, fmt.Errorf("Run: %w", firstErr)
	}
	if next < cfg.Count {
		return Summary{}, fmt.Errorf("Run: %d of %d trials finished: %w", next, cfg.Count, context.Cause(ctx))
	}
	return sum, nil
}

// worker runs trials until jobs is closed.
func worker(ctx context.Context, cfg Config, jobs <-chan int, results chan<- result, done *sync.WaitGroup) {
	defer done.Done()
	for idx := range jobs {
		rec, err := runTrial(ctx, cfg, idx)
		results <- result{rec: rec, err: err}
	}
}

// runTrial generates and attacks the instance of trial idx.
func runTrial(ctx context.Context, cfg Config, idx int) (Record, error) {
	start := time.Now()
	gen, err := protocol.NewGenerator(protocol.DeriveSeed(cfg.Seed, uint64(idx)), cfg.generatorOptions()...)
	if err != nil {
		return Record{}, fmt.Errorf("trial %d: %w", idx, err)
	}
	in, err := gen.Next()
	if err != nil {
		return Record{}, fmt.Errorf("trial %d: %w", idx, err)
	}

	res, err := attack.AttackInstance(in, attack.Options{PBound: cfg.PBound, TBound: cfg.TBound, Ctx: ctx})
	if err != nil {
		return Record{}, fmt.Errorf("trial %d: %w", idx, err)
	}
	return Record{
		Index:       idx,
		Verdict:     Classify(res, in.KA),
		Outcome:     res.Outcome.String(),
		Fingerprint: in.Fingerprint(),
		Elapsed:     time.Since(start),
		Instance:    in,
		Key:         res.Key,
	}, nil
}
