package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/tableudf/functions"
	"github.com/rulego/tableudf/types"
)

const div144Fixture = `
function: div_144
names: [v]
types: [DOUBLE]
rows:
  - [288]
`

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRunList(t *testing.T) {
	out, _, err := runCLI(t, "", "-list")
	require.NoError(t, err)
	assert.Contains(t, out, "div_load_cap")
	assert.Contains(t, out, "| name")
	assert.Contains(t, out, "(17 rows)")
}

func TestRunFromStdin(t *testing.T) {
	out, _, err := runCLI(t, div144Fixture)
	require.NoError(t, err)
	assert.Contains(t, out, "div_144(v)")
	assert.Contains(t, out, "| 2 ")
	assert.Contains(t, out, "(1 rows)")
}

func TestRunFuncOverridesFixture(t *testing.T) {
	out, _, err := runCLI(t, div144Fixture, "-func", "ge_half")
	require.NoError(t, err)
	assert.Contains(t, out, "ge_half(v)")
	assert.NotContains(t, out, "div_144")
}

func TestRunYAMLOutput(t *testing.T) {
	out, _, err := runCLI(t, "", "-input", filepath.Join("testdata", "trucks.yaml"), "-format", "yaml")
	require.NoError(t, err)

	fx, err := ReadFixture(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, []string{"truck", "name", "value"}, fx.Names)
	assert.Equal(t, []string{"BINARY", "BINARY", "DOUBLE"}, fx.Types)
	require.Len(t, fx.Rows, 4)
	assert.Equal(t, []any{"truck_1", "velocity", 42.5}, fx.Rows[0])
	assert.Equal(t, []any{"truck_1", "velocity", nil}, fx.Rows[2])
	assert.Equal(t, []any{"truck_2", "velocity", 13.5}, fx.Rows[3])
}

func TestRunJSONFixture(t *testing.T) {
	out, _, err := runCLI(t, "", "-input", filepath.Join("testdata", "load.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "diagnostics.truck_1.avgload")
	assert.Contains(t, out, "0.5")
}

func TestRunKwArgs(t *testing.T) {
	fixture := `
names: [key, ts, v]
types: [LONG, LONG, DOUBLE]
rows:
  - [1, 1000, 1.5]
  - [2, 1250, 2.5]
  - [3, 1400, 3.5]
`
	out, _, err := runCLI(t, fixture, "-func", "timebucket", "-kw", "window=300", "-format", "yaml")
	require.NoError(t, err)

	fx, err := ReadFixture(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, fx.Rows, 3)
	assert.Equal(t, 1000, fx.Rows[0][1])
	assert.Equal(t, 1000, fx.Rows[1][1])
	assert.Equal(t, 1300, fx.Rows[2][1])
}

func TestRunMetrics(t *testing.T) {
	_, stderr, err := runCLI(t, div144Fixture, "-metrics")
	require.NoError(t, err)
	assert.Contains(t, stderr, "udf_invocations_total")
	assert.Contains(t, stderr, `function="div_144"`)
}

func TestRunErrors(t *testing.T) {
	t.Run("unknown function", func(t *testing.T) {
		_, _, err := runCLI(t, div144Fixture, "-func", "nope")
		assert.True(t, errors.Is(err, functions.ErrFunctionNotFound))
	})

	t.Run("no function", func(t *testing.T) {
		_, _, err := runCLI(t, "names: [v]\ntypes: [DOUBLE]\nrows: []\n")
		assert.ErrorContains(t, err, "no function given")
	})

	t.Run("arithmetic", func(t *testing.T) {
		_, stderr, err := runCLI(t, div144Fixture, "-func", "div", "-kw", "divisor=0")
		assert.True(t, errors.Is(err, types.ErrArithmetic))
		assert.Contains(t, stderr, "[WARN] [div] failed")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, _, err := runCLI(t, div144Fixture, "-format", "csv")
		assert.ErrorContains(t, err, `unknown format "csv"`)
	})

	t.Run("missing input", func(t *testing.T) {
		_, _, err := runCLI(t, "", "-input", filepath.Join(t.TempDir(), "missing.yaml"))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("bad kw", func(t *testing.T) {
		_, _, err := runCLI(t, div144Fixture, "-kw", "novalue")
		assert.ErrorContains(t, err, "want key=value")
	})
}

func TestRunConfigDisablesFunction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tableudf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("functions:\n  disabled: [div_144]\n"), 0o600))

	_, _, err := runCLI(t, div144Fixture, "-config", path)
	assert.True(t, errors.Is(err, functions.ErrFunctionNotFound))

	out, _, err := runCLI(t, "", "-config", path, "-list")
	require.NoError(t, err)
	assert.NotContains(t, out, "div_144")
	assert.Contains(t, out, "(16 rows)")
}
