package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/cribbage/cribbage"
)

// run parses args as the binary would and runs the selected command against
// a missing config file, returning what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var cli CLI
	var out bytes.Buffer
	parser, err := kong.New(&cli,
		kong.Name("cribbage"),
		kong.Vars{"version": "test"},
		kong.BindTo(io.Writer(&out), (*io.Writer)(nil)),
		kong.Exit(func(code int) { t.Fatalf("unexpected exit %d", code) }),
	)
	require.NoError(t, err)

	base := []string{"--config", filepath.Join(t.TempDir(), "missing.hcl"), "--no-color", "--log-level", "error"}
	ctx, err := parser.Parse(append(base, args...))
	if err != nil {
		return "", err
	}
	err = ctx.Run(&cli.Globals)
	return out.String(), err
}

func TestEvalCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "hand with starter", args: []string{"eval", "5H", "2C", "3C", "10S", "JS"}, want: "Score: 8\n"},
		{name: "hand without starter", args: []string{"eval", "5H", "2C", "3C", "10S"}, want: "Score: 4\n"},
		{name: "single quoted argument", args: []string{"eval", "5H,2C,3C,10S"}, want: "Score: 4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEvalCommandSplitsDeal(t *testing.T) {
	out, err := run(t, "eval", "5H", "2C", "3C", "10S", "JS", "QS")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "The best possible: [5H, 10S, JS, QS] / "), lines[0])
	assert.Equal(t, "Keep in hand: [5H, 10S, JS, QS], throw to crib: [2C, 3C]", lines[len(lines)-1])
}

func TestEvalCommandRejectsBadInput(t *testing.T) {
	_, err := run(t, "eval", "5H", "2C", "3C")
	assert.ErrorIs(t, err, cribbage.ErrInvalidInput)

	_, err = run(t, "eval", "5H", "2C", "3C", "TS")
	assert.ErrorIs(t, err, cribbage.ErrInvalidCard)
}

func TestScoreCommand(t *testing.T) {
	out, err := run(t, "score", "--crib", "3S", "4S", "5S", "KS")
	require.NoError(t, err)
	assert.Equal(t, "Score: 5\n", out)

	out, err = run(t, "score", "--breakdown", "5C", "5D", "5H", "JS", "5S")
	require.NoError(t, err)
	assert.Contains(t, out, "fifteens")
	assert.Contains(t, out, "16")
	assert.True(t, strings.HasSuffix(out, "Score: 29\n"), out)

	_, err = run(t, "score", "5H", "2C", "3C", "10S", "JS", "QS")
	assert.ErrorIs(t, err, cribbage.ErrInvalidInput)
}

func TestCribCommand(t *testing.T) {
	out, err := run(t, "crib", "--candidates", "5H", "2C", "3C", "10S", "JS", "QS")
	require.NoError(t, err)
	assert.Contains(t, out, "Keep in hand: [5H, 10S, JS, QS], throw to crib: [2C, 3C]")
	assert.Contains(t, out, "mean")

	_, err = run(t, "crib", "5H", "2C", "3C", "10S")
	assert.ErrorIs(t, err, cribbage.ErrInvalidHandSize)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cribbage.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level   = "warn"
parallelism = 2

histogram {
  width = 40
}
`), 0o600))

	g := &Globals{Config: path}
	cfg, err := g.loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 2, cfg.Parallelism)
	assert.Equal(t, 40, cfg.Histogram.Width)
	assert.False(t, cfg.NoColor)

	g = &Globals{Config: path, LogLevel: "debug", NoColor: true}
	cfg, err = g.loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.NoColor)

	g = &Globals{Config: path, LogLevel: "loud"}
	_, err = g.loadConfig()
	assert.Error(t, err)
}

func TestInvalidConfigStopsCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cribbage.hcl")
	require.NoError(t, os.WriteFile(path, []byte("parallelism = -1\n"), 0o600))

	g := &Globals{Config: path}
	err := (&EvalCmd{Cards: []string{"5H", "2C", "3C", "10S"}}).Run(g, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parallelism")
}
