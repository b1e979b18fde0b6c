package main

import (
	"testing"

	"terrain-ca/internal/sims/landscape"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() landscape.Config {
	cfg := landscape.DefaultConfig()
	cfg.Width = 12
	cfg.Height = 10
	return cfg
}

func TestSweepRunsEveryScenario(t *testing.T) {
	jobs := []scenario{{0, 1}, {0, 2}, {3, 1}, {3, 2}}
	results, err := sweep(smallConfig(), jobs, 3)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))
	for _, res := range results {
		assert.Equal(t, 120, res.cells)
		total := 0
		for _, n := range res.counts {
			total += n
		}
		assert.Equal(t, res.cells, total)
		assert.GreaterOrEqual(t, res.regions, 1)
		assert.LessOrEqual(t, res.largest, res.cells)
	}
}

func TestRunScenarioIsDeterministic(t *testing.T) {
	a := runScenario(smallConfig(), scenario{smoothness: 4, seed: 99})
	b := runScenario(smallConfig(), scenario{smoothness: 4, seed: 99})
	require.NoError(t, a.err)
	assert.Equal(t, a.regions, b.regions)
	assert.Equal(t, a.largest, b.largest)
	assert.Equal(t, a.counts, b.counts)
}

func TestSweepReportsInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Width = 2
	results, err := sweep(cfg, []scenario{{1, 1}}, 1)
	require.Error(t, err)
	assert.Empty(t, results)
}

func TestSummariseAverages(t *testing.T) {
	results := []scenarioResult{
		{scenario: scenario{smoothness: 2}, regions: 4, largest: 10, counts: []int{5, 15}, cells: 20},
		{scenario: scenario{smoothness: 2}, regions: 6, largest: 20, counts: []int{15, 5}, cells: 20},
		{scenario: scenario{smoothness: 0}, regions: 9, largest: 3, counts: []int{10, 10}, cells: 20},
	}
	got := summarise(results, 2)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].smoothness)
	assert.Equal(t, 2, got[0].runs)
	assert.InDelta(t, 5.0, got[0].regions, 1e-9)
	assert.InDelta(t, 15.0, got[0].largest, 1e-9)
	assert.InDelta(t, 0.5, got[0].share[0], 1e-9)
	assert.InDelta(t, 0.5, got[1].share[1], 1e-9)
}

func TestParseLevels(t *testing.T) {
	got, err := parseLevels(" 0, 5 ,10,")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 5, 10}, got)

	_, err = parseLevels("3,-1")
	assert.Error(t, err)
	_, err = parseLevels("")
	assert.Error(t, err)
}
