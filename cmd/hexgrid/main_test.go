package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HEXGRID_CONFIG", "")
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hexgrid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestPixelAndLocateRoundTrip(t *testing.T) {
	cfg := writeConfig(t, `
layout:
  orientation: flat
  size: {x: 10, y: 15}
  origin: {x: 35, y: 71}
`)
	out, err := run(t, "pixel", "--config", cfg, "--", "3", "4", "-7")
	require.NoError(t, err)
	xy := strings.Fields(strings.TrimSpace(out))
	require.Len(t, xy, 2)
	assert.Equal(t, "80", xy[0])

	out, err = run(t, "locate", "--config", cfg, xy[0], xy[1])
	require.NoError(t, err)
	assert.Equal(t, "3 4 -7\n", out)
}

func TestPixelRejectsInvalidCube(t *testing.T) {
	_, err := run(t, "pixel", "1", "1", "1")
	assert.Error(t, err)
}

func TestCorners(t *testing.T) {
	out, err := run(t, "corners", "0", "0")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 7)
	assert.True(t, strings.HasPrefix(got[0], "0 "))
	assert.Equal(t, "center 0 0", got[6])

	out, err = run(t, "corners", "0", "0", "--wkt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "POLYGON(("), out)
}

func TestOffsetCommands(t *testing.T) {
	out, err := run(t, "offset", "from-hex", "1", "3", "--scheme", "even-r")
	require.NoError(t, err)
	assert.Equal(t, "3 3\n", out)

	out, err = run(t, "offset", "to-hex", "3", "3", "--scheme", "even-r")
	require.NoError(t, err)
	assert.Equal(t, "1 3 -4\n", out)

	// default scheme is odd-r
	out, err = run(t, "offset", "from-hex", "1", "3")
	require.NoError(t, err)
	assert.Equal(t, "2 3\n", out)

	_, err = run(t, "offset", "to-hex", "0", "0", "--scheme", "odd-x")
	assert.Error(t, err)
}

func TestDistanceAndLine(t *testing.T) {
	out, err := run(t, "distance", "--", "0", "0", "3", "-7")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)

	out, err = run(t, "line", "--", "0", "0", "1", "-5")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"0 0 0", "0 -1 1", "0 -2 2", "1 -3 2", "1 -4 3", "1 -5 4",
	}, lines(out))
}

func TestGrid(t *testing.T) {
	cfg := writeConfig(t, `
offset: {family: q, parity: even}
grid: {cols: 3, rows: 2}
`)
	out, err := run(t, "grid", "--config", cfg)
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 6)
	assert.True(t, strings.HasPrefix(got[0], "0 0 0 0 0 "), got[0])
	// under even-q the cell at col 1, row 0 is axial (1, -1)
	assert.True(t, strings.HasPrefix(got[1], "1 0 1 -1 0 "), got[1])

	out, err = run(t, "grid", "--config", cfg, "--wkt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "GEOMETRYCOLLECTION(POLYGON(("), out)
	assert.Equal(t, 6, strings.Count(out, "POLYGON(("))
}

func TestPath(t *testing.T) {
	out, err := run(t, "path", "--radius", "4", "--block", "0:0", "--", "-2", "0", "2", "0")
	require.NoError(t, err)
	got := lines(out)
	assert.Equal(t, "-2 0 2", got[0])
	assert.Equal(t, "2 0 -2", got[len(got)-1])
	assert.NotContains(t, got, "0 0 0")
	assert.Len(t, got, 6)

	out, err = run(t, "path", "--radius", "4", "--seed", "7", "--", "-2", "0", "2", "0")
	require.NoError(t, err)
	assert.Len(t, lines(out), 5)

	_, err = run(t, "path", "--radius", "1", "0", "0", "3", "0")
	assert.Error(t, err)
}

func TestPathRejectsBlockedEndpoints(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"blocked start", []string{"path", "--block", "0:0", "--", "0", "0", "2", "0"}},
		{"blocked goal", []string{"path", "--block", "2:0", "--", "0", "0", "2", "0"}},
		{"seeded blocked start", []string{"path", "--seed", "3", "--block", "0:0", "--", "0", "0", "2", "0"}},
		{"start outside radius", []string{"path", "--radius", "2", "--", "-3", "0", "0", "0"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "no path")
			assert.Empty(t, out)
		})
	}
}

func TestBadConfig(t *testing.T) {
	cfg := writeConfig(t, "layout: {orientation: sideways}")
	_, err := run(t, "pixel", "--config", cfg, "0", "0")
	assert.Error(t, err)

	_, err = run(t, "pixel", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "0", "0")
	assert.Error(t, err)

	_, err = run(t, "pixel", "--log-level", "loud", "0", "0")
	assert.Error(t, err)
}
