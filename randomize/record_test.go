package randomize_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pamsum/randomize"
	"github.com/katalvlaran/pamsum/stats"
	"github.com/katalvlaran/pamsum/store"
)

// TestSave_FromRecord round-trips a summarized run through a store.
func TestSave_FromRecord(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := store.NewMemory()

	run, err := randomize.New(randomize.MethodSwap, randomize.Params{randomize.ParamIterations: 100})
	require.NoError(t, err)
	require.NoError(t, run.Compute(ctx, f.inputs()))
	_, err = run.Summarize()
	require.NoError(t, err)
	require.NoError(t, run.Save(ctx, p, "gv"))

	rec, err := p.LoadRun(ctx, run.ID())
	require.NoError(t, err)
	assert.Equal(t, "gv", rec.GridViewID)
	assert.Equal(t, int(randomize.MethodSwap), rec.Method)
	assert.Equal(t, int(randomize.StageComplete), rec.Stage)
	assert.Contains(t, rec.Vectors, stats.KeyAlpha)
	assert.Contains(t, rec.Scalars, stats.KeyWhittaker)

	back, err := randomize.FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, run.ID(), back.ID())
	assert.Equal(t, run.Stage(), back.Stage())
	assert.True(t, run.Matrix().Equal(back.Matrix()))
	assert.Equal(t, run.Index(), back.Index())
	assert.Equal(t, run.Summary().Scalars(), back.Summary().Scalars())
	require.ErrorIs(t, back.Compute(ctx, f.inputs()), randomize.ErrAlreadyComputed)
}

// TestRecord_Failed keeps the error code and no blobs.
func TestRecord_Failed(t *testing.T) {
	run, err := randomize.New(randomize.MethodSplotch, nil)
	require.NoError(t, err)
	require.Error(t, run.Compute(context.Background(), randomize.Inputs{}))

	rec, err := run.Record("gv")
	require.NoError(t, err)
	assert.Equal(t, int(randomize.StatusError), rec.Status)
	assert.Equal(t, randomize.CodeSplotch, rec.ErrorCode)
	assert.Nil(t, rec.Matrix)
	assert.Nil(t, rec.Index)

	_, err = randomize.FromRecord(store.RunRecord{ID: "x", Method: 9})
	require.ErrorIs(t, err, randomize.ErrInvalidMethod)
}
