package sweep

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDeterministicAcrossWorkerCounts(t *testing.T) {
	opts := Options{Width: 24, Height: 24, Generations: 120, Density: 0.35, Workers: 1}
	seeds := Seeds(10, 6)

	serial, err := Run(context.Background(), opts, seeds)
	require.NoError(t, err)

	opts.Workers = 4
	parallel, err := Run(context.Background(), opts, seeds)
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
	require.Len(t, serial, 6)
	for i, r := range serial {
		assert.Equal(t, int64(10+i), r.Seed)
		assert.GreaterOrEqual(t, r.PeakPopulation, r.InitialPop)
		assert.GreaterOrEqual(t, r.PeakPopulation, r.FinalPopulation)
	}
}

func TestEmptySoupIsStableImmediately(t *testing.T) {
	res, err := Run(context.Background(), Options{Width: 8, Height: 8, Generations: 50}, []int64{1})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.True(t, res[0].Stable())
	assert.Equal(t, 0, res[0].StableAt)
	assert.Zero(t, res[0].FinalPopulation)
	assert.Zero(t, res[0].Generations)
}

func TestRunRejectsInvalidOptions(t *testing.T) {
	_, err := Run(context.Background(), Options{Width: 0, Height: 4, Generations: 1}, []int64{1})
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opts := Options{Width: 32, Height: 32, Generations: 10_000, Density: 0.5, Workers: 2}
	_, err := Run(ctx, opts, Seeds(1, 4))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, []Result{
		{Seed: 1, Generations: 10, InitialPop: 20, FinalPopulation: 4, PeakPopulation: 22, StableAt: 9},
		{Seed: 2, Generations: 50, InitialPop: 18, FinalPopulation: 7, PeakPopulation: 30, StableAt: -1},
	}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "SEED"))
	assert.Contains(t, lines[1], "9")
	assert.True(t, strings.HasSuffix(lines[2], "-"))
}
