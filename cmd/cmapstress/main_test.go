package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmap/stress"
)

func TestRun_TextReport(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run([]string{"--seed", "3", "--steps", "50", "--dim", "2", "--log-level", "warn"}, &out, &errOut)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "seed 3, dimension 2")
	assert.Contains(t, out.String(), "fingerprint ")
	assert.Empty(t, errOut.String())
}

func TestRun_JSONReportMatchesSeed(t *testing.T) {
	decode := func() stress.Report {
		var out, errOut bytes.Buffer
		require.NoError(t, run([]string{"--json", "--seed", "9", "--steps", "80", "--log-level", "error"}, &out, &errOut))
		var r stress.Report
		require.NoError(t, json.Unmarshal(out.Bytes(), &r))
		return r
	}
	a, b := decode(), decode()
	assert.Equal(t, 80, a.Steps)
	assert.Equal(t, int64(9), a.Profile.Seed)
	assert.Equal(t, a.Fingerprint, b.Fingerprint)
}

func TestRun_Errors(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Error(t, run([]string{"--log-level", "loud"}, &out, &errOut))
	require.Error(t, run([]string{"extra"}, &out, &errOut))
	require.ErrorIs(t, run([]string{"--dim", "0"}, &out, &errOut), stress.ErrInvalidProfile)
	require.Error(t, run([]string{"--profile", "does-not-exist.yaml"}, &out, &errOut))
	require.NoError(t, run([]string{"--help"}, &out, &errOut))
}

func TestRun_DimDropsEveryAttributeDimension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "volumes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dimension: 3\nattribute_dims: [3]\n"), 0o600))

	var out, errOut bytes.Buffer
	err := run([]string{"--profile", path, "--dim", "2", "--steps", "5"}, &out, &errOut)
	require.ErrorIs(t, err, stress.ErrInvalidProfile)
	assert.Empty(t, out.String())

	out.Reset()
	err = run([]string{"--profile", path, "--steps", "5", "--log-level", "error"}, &out, &errOut)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "dimension 3")
}
