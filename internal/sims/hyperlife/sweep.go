package hyperlife

import (
	"context"
	"sort"
	"sync"
)

// SweepResult records the outcome of one random seed pattern.
type SweepResult struct {
	Seed    int64
	Initial int
	Final   int
	Edge    int
	// Clipped is set when live cells touched the lattice boundary.
	Clipped bool
	Err     error
}

// Sweep runs base once per seed with a random pattern, spreading the runs
// over workers goroutines. Each run owns its lattice. Results are sorted by
// final count, highest first, then by seed.
func Sweep(ctx context.Context, base Config, seeds []int64, workers int) []SweepResult {
	if workers <= 0 {
		workers = 1
	}
	base.Pattern.Rows = nil

	jobs := make(chan int64)
	results := make(chan SweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(ctx, base, seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, seed := range seeds {
			select {
			case jobs <- seed:
			case <-ctx.Done():
				return
			}
		}
	}()

	var all []SweepResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Final != all[j].Final {
			return all[i].Final > all[j].Final
		}
		return all[i].Seed < all[j].Seed
	})
	return all
}

func runSeed(ctx context.Context, base Config, seed int64) SweepResult {
	cfg := base
	cfg.Seed = seed
	res := SweepResult{Seed: seed}
	s, err := New(cfg)
	if err != nil {
		res.Err = err
		return res
	}
	lat := s.Lattice()
	res.Edge = lat.Edge()
	res.Initial = lat.CountAlive()
	for i := 0; i < cfg.Ticks; i++ {
		if err := ctx.Err(); err != nil {
			res.Err = err
			return res
		}
		lat.Tick()
	}
	res.Final = lat.CountAlive()
	res.Clipped = lat.BoundaryAlive() > 0
	return res
}
