package stress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmap/stress"
)

func TestLoadProfile_File(t *testing.T) {
	p, err := stress.LoadProfile("testdata/profile.yaml")
	require.NoError(t, err)
	assert.Equal(t, stress.Profile{
		Seed:          7,
		Steps:         250,
		Dimension:     3,
		Darts:         48,
		SewRatio:      0.55,
		AttributeDims: []int{0, 1, 2},
		CheckEvery:    5,
	}, p)
}

func TestLoadProfile_Defaults(t *testing.T) {
	p, err := stress.LoadProfile("")
	require.NoError(t, err)
	assert.Equal(t, stress.DefaultProfile(), p)
}

// Environment variables override the file; not parallel because of Setenv.
func TestLoadProfile_EnvOverrides(t *testing.T) {
	t.Setenv("CMAP_STEPS", "12")
	t.Setenv("CMAP_ATTRIBUTE_DIMS", "1,3")
	t.Setenv("CMAP_SEW_RATIO", "0.25")

	p, err := stress.LoadProfile("testdata/profile.yaml")
	require.NoError(t, err)
	assert.Equal(t, 12, p.Steps)
	assert.Equal(t, []int{1, 3}, p.AttributeDims)
	assert.Equal(t, 0.25, p.SewRatio)
	assert.Equal(t, int64(7), p.Seed, "untouched fields keep the file value")
}

func TestLoadProfile_Errors(t *testing.T) {
	_, err := stress.LoadProfile("testdata/missing.yaml")
	require.Error(t, err)

	_, err = stress.LoadProfile("testdata/broken.yaml")
	require.Error(t, err)

	t.Setenv("CMAP_DIMENSION", "1")
	_, err = stress.LoadProfile("testdata/profile.yaml")
	require.ErrorIs(t, err, stress.ErrInvalidProfile, "attribute dimension 2 exceeds dimension 1")
}

func TestProfile_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*stress.Profile)
	}{
		{"negative steps", func(p *stress.Profile) { p.Steps = -1 }},
		{"zero dimension", func(p *stress.Profile) { p.Dimension = 0 }},
		{"huge dimension", func(p *stress.Profile) { p.Dimension = 99 }},
		{"no darts", func(p *stress.Profile) { p.Darts = 0 }},
		{"ratio above one", func(p *stress.Profile) { p.SewRatio = 1.5 }},
		{"negative check", func(p *stress.Profile) { p.CheckEvery = -3 }},
		{"negative attribute dim", func(p *stress.Profile) { p.AttributeDims = []int{-1} }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := stress.DefaultProfile()
			tc.mutate(&p)
			require.ErrorIs(t, p.Validate(), stress.ErrInvalidProfile)
		})
	}
	require.NoError(t, stress.DefaultProfile().Validate())
}
