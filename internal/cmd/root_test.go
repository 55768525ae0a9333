package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/on-the-ground/allsums/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs a fresh root command with args and returns captured stdout and stderr
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestRootCommand_PrintsSortedPartitions(t *testing.T) {
	out, _, err := executeCommand(t, "4", "1")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"(1, 1, 1, 1)",
		"(1, 1, 2)",
		"(1, 3)",
		"(2, 2)",
	}, lines(out))
}

func TestRootCommand_StepArgument(t *testing.T) {
	out, _, err := executeCommand(t, "6", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"(2, 2, 2)", "(2, 4)"}, lines(out))
}

func TestRootCommand_Defaults(t *testing.T) {
	out, _, err := executeCommand(t, "--count")
	require.NoError(t, err)
	// p(10) = 42 minus the single part (10)
	assert.Equal(t, "41\n", out)
}

func TestRootCommand_Pairs(t *testing.T) {
	out, _, err := executeCommand(t, "--pairs", "5")
	require.NoError(t, err)
	assert.Equal(t, []string{"(1, 4)", "(2, 3)"}, lines(out))
}

func TestRootCommand_EmptyResultPrintsNothing(t *testing.T) {
	out, _, err := executeCommand(t, "3", "2")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRootCommand_Backends(t *testing.T) {
	want, _, err := executeCommand(t, "9", "1")
	require.NoError(t, err)

	for _, backend := range config.ValidTables() {
		t.Run(backend, func(t *testing.T) {
			out, _, err := executeCommand(t, "--table", backend, "9", "1")
			require.NoError(t, err)
			assert.Equal(t, want, out)
		})
	}
}

func TestRootCommand_Stats(t *testing.T) {
	out, errOut, err := executeCommand(t, "--stats", "--count", "5")
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)
	assert.Contains(t, errOut, "enumeration finished")
	assert.Contains(t, errOut, "digest")
}

func TestRootCommand_PairsWithStats(t *testing.T) {
	out, errOut, err := executeCommand(t, "--pairs", "--stats", "5")
	require.NoError(t, err)
	assert.Equal(t, []string{"(1, 4)", "(2, 3)"}, lines(out))
	assert.Contains(t, errOut, "enumeration finished")
	assert.Contains(t, errOut, "count")
}

func TestRootCommand_NoLimit(t *testing.T) {
	out, _, err := executeCommand(t, "--max-n", "0", "--count", "40", "10")
	require.NoError(t, err)
	// (10, 30), (20, 20), (10, 10, 20), (10, 10, 10, 10)
	assert.Equal(t, "4\n", out)
}

func TestRootCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"non-integer n", []string{"ten"}, `invalid n "ten"`},
		{"non-integer step", []string{"10", "x"}, `invalid step "x"`},
		{"zero step", []string{"10", "0"}, "allsums.step: must be at least 1"},
		{"over limit", []string{"--max-n", "20", "21"}, "target exceeds limit"},
		{"over default limit", []string{"31"}, "target exceeds limit"},
		{"negative n after dashes", []string{"--", "-4", "1"}, "allsums.n: must be non-negative"},
		{"negative limit", []string{"--max-n", "-1"}, "allsums.max_n"},
		{"unknown table", []string{"--table", "redis"}, "allsums.table.backend"},
		{"too many args", []string{"1", "2", "3"}, "accepts at most 2 arg(s)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
