package stress_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmap/stress"
)

// TestRun_PreservesInvariants is the seeded property test: random sew/unsew
// sequences in every small dimension keep the map valid after each step.
func TestRun_PreservesInvariants(t *testing.T) {
	t.Parallel()

	for dim := 1; dim <= 4; dim++ {
		for seed := int64(1); seed <= 4; seed++ {
			dim, seed := dim, seed
			t.Run(fmt.Sprintf("dim%d/seed%d", dim, seed), func(t *testing.T) {
				t.Parallel()
				p := stress.Profile{
					Seed:       seed,
					Steps:      300,
					Dimension:  dim,
					Darts:      40,
					SewRatio:   0.6,
					CheckEvery: 1,
				}
				rep, err := stress.Run(context.Background(), p, nil)
				require.NoError(t, err)
				assert.Equal(t, p.Steps, rep.Steps)
				assert.Equal(t, p.Steps, rep.Sews+rep.Unsews+rep.Rejected)
				assert.Equal(t, p.Steps+1, rep.Checks)
				assert.Positive(t, rep.Sews+rep.Unsews)
				assert.Equal(t, 40, rep.Darts)
				assert.Len(t, rep.Cells, dim+2)
			})
		}
	}
}

func TestRun_Deterministic(t *testing.T) {
	t.Parallel()

	p := stress.DefaultProfile()
	p.Steps = 200
	p.Dimension = 3
	p.AttributeDims = []int{0, 2}

	a, err := stress.Run(context.Background(), p, nil)
	require.NoError(t, err)
	b, err := stress.Run(context.Background(), p, nil)
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint, b.Fingerprint)
	assert.Equal(t, a.Merges, b.Merges)
	assert.Equal(t, a.Splits, b.Splits)
	assert.Len(t, a.Fingerprint, 64)

	p.Seed++
	c, err := stress.Run(context.Background(), p, nil)
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint, c.Fingerprint)
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := stress.Run(ctx, stress.DefaultProfile(), nil)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, rep)
	assert.Zero(t, rep.Steps)
	assert.NotEmpty(t, rep.Fingerprint)
}

func TestRun_InvalidProfile(t *testing.T) {
	t.Parallel()

	p := stress.DefaultProfile()
	p.Darts = 0
	rep, err := stress.Run(context.Background(), p, nil)
	require.ErrorIs(t, err, stress.ErrInvalidProfile)
	assert.Nil(t, rep)
}

func BenchmarkRun(b *testing.B) {
	p := stress.DefaultProfile()
	p.Steps = 500
	p.CheckEvery = 0
	for i := 0; i < b.N; i++ {
		if _, err := stress.Run(context.Background(), p, nil); err != nil {
			b.Fatal(err)
		}
	}
}
