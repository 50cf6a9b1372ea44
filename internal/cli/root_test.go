package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toroid/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"tui", "window", "run", "sweep", "patterns"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"config", "log-level", "width", "height", "tps", "pattern", "density", "seed"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "c", cmd.PersistentFlags().Lookup("config").Shorthand)
}

func TestRunBlockIsStill(t *testing.T) {
	out, err := execute(t, "run", "--width", "6", "--height", "6", "--pattern", "block", "--generations", "2")
	require.NoError(t, err)

	grid := "......\n......\n..OO..\n..OO..\n......\n......\n"
	want := "generation 0\n" + grid + "\n" + "generation 2\n" + grid + "\n" + "population 4\n"
	assert.Equal(t, want, out)
}

func TestRunGliderSnapshots(t *testing.T) {
	out, err := execute(t, "run", "--width", "8", "--height", "8", "--pattern", "glider", "-n", "8", "--every", "4")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "generation "))
	assert.Contains(t, out, "generation 4\n")
	assert.True(t, strings.HasSuffix(out, "population 5\n"), out)
}

func TestRunErrors(t *testing.T) {
	_, err := execute(t, "run", "--pattern", "no-such-pattern")
	assert.ErrorContains(t, err, "unknown pattern")

	_, err = execute(t, "run", "--width", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = execute(t, "run", "--generations", "-1")
	assert.Error(t, err)

	_, err = execute(t, "run", "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid log level")

	_, err = execute(t, "run", "--width", "2", "--height", "2", "--pattern", "glider")
	assert.ErrorContains(t, err, "larger than grid")
}

func TestConfigFileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toroid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 6\nheight: 6\npattern: blinker\n"), 0o644))

	out, err := execute(t, "run", "--config", path, "-n", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "generation 0\n......\n..+...\n.-O-..\n..+...\n......\n......\n")
	assert.True(t, strings.HasSuffix(out, "population 3\n"))

	out, err = execute(t, "run", "--config", path, "--pattern", "block", "-n", "0")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "population 4\n"), "flag should override the file")

	_, err = execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPatternsList(t *testing.T) {
	out, err := execute(t, "patterns")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, out, "gosper-gun")
	assert.Contains(t, out, "36x9")
}

func TestSweepTable(t *testing.T) {
	out, err := execute(t, "sweep", "--width", "16", "--height", "16", "--count", "3", "-n", "50", "--workers", "2", "--seed", "5")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "SEED"))
	assert.True(t, strings.HasPrefix(lines[1], "5 "))
	assert.True(t, strings.HasPrefix(lines[3], "7 "))
}
