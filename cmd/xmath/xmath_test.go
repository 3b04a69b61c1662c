package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xmath-go/xmath/f32"
	"github.com/xmath-go/xmath/internal/errprof"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "level:     "+f32.CurrentName())
	assert.Contains(t, out, "backend:   "+f32.CurrentBackend().Name())
	assert.NotContains(t, out, "\x1b[", "colour escape with --no-color")
}

func TestEval(t *testing.T) {
	out, err := run(t, "eval", "floor", "-2.7")
	require.NoError(t, err)
	assert.Contains(t, out, "approx   -3\n")
	assert.Contains(t, out, "ref      -3\n")
	assert.Contains(t, out, "abs err  0\n")

	out, err = run(t, "eval", "atan2", "1", "-1")
	require.NoError(t, err)
	assert.Contains(t, out, "approx   2.35")
	assert.Contains(t, out, "rel err")
}

func TestEval_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"arity", []string{"eval", "atan2", "1"}, errprof.ErrArity},
		{"unknown", []string{"eval", "erf", "1"}, errprof.ErrUnknownFunc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := run(t, "eval", "sqrt", "four")
	assert.ErrorContains(t, err, "argument 1")

	_, err = run(t, "eval", "sqrt")
	assert.Error(t, err)
}

func TestSweep(t *testing.T) {
	out, err := run(t, "sweep", "sqrt", "--from", "1", "--to", "100", "--steps", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "FUNC")
	assert.Regexp(t, `sqrt\s+11\s`, out)
	assert.Contains(t, out, "ok")
}

func TestSweep_All(t *testing.T) {
	out, err := run(t, "sweep", "all")
	require.NoError(t, err)
	for _, name := range []string{"sqrt", "cbrt", "sin", "exp2", "tanh"} {
		assert.Contains(t, out, name)
	}
	assert.NotContains(t, out, "atan2")
	assert.NotContains(t, out, "FAIL")
}

func TestSweep_Threshold(t *testing.T) {
	out, err := run(t, "sweep", "cos", "--max-abs", "1e-9")
	assert.ErrorIs(t, err, errThreshold)
	assert.Contains(t, out, "FAIL")
}

func TestSweep_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweeps.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[sweep]]
func = "cbrt"
from = 1.0
to = 8.0
steps = 70

[[sweep]]
func = "tanh"
max_abs = 1e-6
`), 0o644))

	out, err := run(t, "sweep", "--config", path)
	assert.ErrorIs(t, err, errThreshold)
	assert.ErrorContains(t, err, "1 of 2 sweeps")
	assert.Regexp(t, `cbrt\s+71\s`, out)
	assert.Contains(t, out, "tanh")
}

func TestSweep_BadInvocation(t *testing.T) {
	_, err := run(t, "sweep")
	assert.Error(t, err)

	_, err = run(t, "sweep", "sqrt", "--config", "x.toml")
	assert.ErrorContains(t, err, "mutually exclusive")

	_, err = run(t, "sweep", "sqrt", "--from", "5", "--to", "1")
	assert.ErrorIs(t, err, errprof.ErrBadRange)

	_, err = run(t, "sweep", "atan2")
	assert.ErrorIs(t, err, errprof.ErrArity)
}

func TestParseSweepFile(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want error
	}{
		{"binary function", "[[sweep]]\nfunc = \"pow\"\n", errprof.ErrArity},
		{"unknown function", "[[sweep]]\nfunc = \"erf\"\n", errprof.ErrUnknownFunc},
		{"log through zero", "[[sweep]]\nfunc = \"log2\"\nfrom = 0.0\n", errprof.ErrBadRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSweepFile([]byte(tt.toml))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := parseSweepFile([]byte("[[sweep]]\nfunc = \"sqrt\"\nstep = 3\n"))
	assert.Error(t, err, "unknown field")

	_, err = parseSweepFile([]byte(""))
	assert.ErrorContains(t, err, "no [[sweep]] entries")

	jobs, err := parseSweepFile([]byte("[[sweep]]\nfunc = \"Sqrt\"\nlog = false\nmax_rel = 0.5\n"))
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "sqrt", jobs[0].fn.Name)
	assert.False(t, jobs[0].rng.Log)
	assert.Equal(t, jobs[0].fn.Range.From, jobs[0].rng.From)
	assert.Equal(t, thresholds{maxRel: 0.5}, jobs[0].limit)
}

func TestRangeFlags(t *testing.T) {
	var rf rangeFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	bindRangeFlags(fs, &rf)
	require.NoError(t, fs.Parse([]string{"--to", "50", "--log"}))

	base := errprof.Range{From: 1, To: 10, Steps: 100}
	got := rf.apply(fs, base)
	assert.Equal(t, errprof.Range{From: 1, To: 50, Steps: 100, Log: true}, got)
}

func TestThresholds(t *testing.T) {
	rel := errprof.Func{Name: "r", Relative: true, Bound: 1e-3}
	abs := errprof.Func{Name: "a", Bound: 1e-3}
	rep := errprof.Report{MaxAbs: 5e-3, MaxRel: 5e-4}

	assert.False(t, thresholds{}.exceeded(rel, rep))
	assert.True(t, thresholds{}.exceeded(abs, rep))
	assert.True(t, thresholds{maxAbs: 1e-3}.exceeded(rel, rep))
	assert.False(t, thresholds{maxAbs: 1e-2}.exceeded(abs, rep))
	assert.True(t, thresholds{maxRel: 1e-4}.exceeded(abs, rep))
}
