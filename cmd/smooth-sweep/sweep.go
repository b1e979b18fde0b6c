package main

import (
	"errors"
	"fmt"
	"sync"

	"terrain-ca/internal/sims/landscape"
	"terrain-ca/pkg/terrain"
)

type scenario struct {
	smoothness int
	seed       int64
}

type scenarioResult struct {
	scenario
	regions int
	largest int
	counts  []int
	cells   int
	err     error
}

type summary struct {
	smoothness int
	runs       int
	regions    float64
	largest    float64
	share      []float64
}


// sweep fans the scenarios out over a fixed pool of workers. Results come
// back in completion order.
func sweep(base landscape.Config, jobs []scenario, workers int) ([]scenarioResult, error) {
	in := make(chan scenario)
	out := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range in {
				out <- runScenario(base, job)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	go func() {
		for _, job := range jobs {
			in <- job
		}
		close(in)
	}()

	var all []scenarioResult
	var errs []error
	for res := range out {
		if res.err != nil {
			errs = append(errs, fmt.Errorf("smoothness=%d seed=%d: %w", res.smoothness, res.seed, res.err))
			continue
		}
		all = append(all, res)
	}
	return all, errors.Join(errs...)
}

func runScenario(base landscape.Config, job scenario) scenarioResult {
	cfg := base
	cfg.Smoothness = job.smoothness
	cfg.Seed = job.seed

	res := scenarioResult{scenario: job}
	world, err := landscape.New(cfg)
	if err != nil {
		res.err = err
		return res
	}
	grid, err := world.Run()
	if err != nil {
		res.err = err
		return res
	}

	regions := terrain.Regions(grid)
	res.regions = len(regions)
	for _, r := range regions {
		if r.Size() > res.largest {
			res.largest = r.Size()
		}
	}
	res.counts = terrain.Histogram(grid, cfg.Values.Alphabet())
	res.cells = grid.Width() * grid.Height()
	return res
}

// summarise averages results per smoothness level.
func summarise(results []scenarioResult, values int) []summary {
	byLevel := make(map[int]*summary)
	var order []int
	for _, res := range results {
		s, ok := byLevel[res.smoothness]
		if !ok {
			s = &summary{smoothness: res.smoothness, share: make([]float64, values)}
			byLevel[res.smoothness] = s
			order = append(order, res.smoothness)
		}
		s.runs++
		s.regions += float64(res.regions)
		s.largest += float64(res.largest)
		for i, n := range res.counts {
			if i < values && res.cells > 0 {
				s.share[i] += float64(n) / float64(res.cells)
			}
		}
	}
	out := make([]summary, 0, len(order))
	for _, level := range order {
		s := byLevel[level]
		n := float64(s.runs)
		s.regions /= n
		s.largest /= n
		for i := range s.share {
			s.share[i] /= n
		}
		out = append(out, *s)
	}
	return out
}
