package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/lucasgdosr/arraydeque/metrics"
)

func TestParseScript(t *testing.T) {
	ops, err := parseScript(strings.NewReader(`
# setup
push_back 1
push_front -2   # trailing comment

insert 1 7
extend
extend 3 4 5
print
`))
	require.NoError(t, err)
	require.Len(t, ops, 6)
	assert.Equal(t, op{line: 3, name: "push_back", args: []int{1}}, ops[0])
	assert.Equal(t, op{line: 4, name: "push_front", args: []int{-2}}, ops[1])
	assert.Equal(t, []int{1, 7}, ops[2].args)
	assert.Empty(t, ops[3].args)
	assert.Equal(t, []int{3, 4, 5}, ops[4].args)
	assert.Equal(t, 9, ops[5].line)
}

func TestParseScriptErrors(t *testing.T) {
	for _, tc := range []struct {
		script string
		want   string
	}{
		{"push_back\n", "line 1: push_back takes 1 arguments, got 0"},
		{"print\nshift 1\n", `line 2: unknown operation "shift"`},
		{"pop_front 1\n", "line 1: pop_front takes 0 arguments, got 1"},
		{"get x\n", `line 1: strconv.Atoi: parsing "x": invalid syntax`},
	} {
		t.Run(tc.want, func(t *testing.T) {
			_, err := parseScript(strings.NewReader(tc.script))
			require.EqualError(t, err, tc.want)
		})
	}
}

func TestExecute(t *testing.T) {
	script := `
push_back 11
push_back 13
insert 1 12
print
remove 0
get 5
extend 1 2 3 4 5 6
push_front 0
insert 9 1
pop_front
pop_back
swap_remove_front 1
swap_remove_back 0
clear
pop_back
`
	var out bytes.Buffer
	err := execute(strings.NewReader(script), &out, runOptions{size: 8}, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, `[11 12 13]
remove: 11
get: none
extend: extended 5 of 6
line 9: push_front: insufficient capacity: element 0 rejected
line 10: insert: index out of range: insert at 9 with length 7
pop_front: 12
pop_back: 5
swap_remove_front: 1
swap_remove_back: 13
pop_back: none
[] len=0 cap=7
`, out.String())
}

func TestExecuteStats(t *testing.T) {
	var out bytes.Buffer
	err := execute(strings.NewReader("extend 1 2 3 4\npop_back\n"), &out,
		runOptions{size: 4, stats: true}, zaptest.NewLogger(t))
	require.NoError(t, err)

	lines := strings.SplitN(out.String(), "\n", 3)
	assert.Equal(t, "extend: extended 3 of 4", lines[0])
	assert.Equal(t, "pop_back: 3", lines[1])

	var summary metrics.StatsSummary
	_, stats, _ := strings.Cut(lines[2], "\n")
	require.NoError(t, json.Unmarshal([]byte(stats), &summary))
	assert.Equal(t, int64(3), summary.Pushes)
	assert.Equal(t, int64(1), summary.Pops)
	assert.Equal(t, int64(1), summary.Saturations)
	assert.Equal(t, int64(3), summary.MaxSize)
}

func TestExecuteUnsupportedSize(t *testing.T) {
	err := execute(strings.NewReader(""), &bytes.Buffer{}, runOptions{size: 7}, zaptest.NewLogger(t))
	require.EqualError(t, err, "unsupported size 7, see dequectl sizes")
}

func TestEveryBackingSize(t *testing.T) {
	for size, newDeque := range backings {
		d, err := newDeque()
		require.NoError(t, err)
		assert.Equal(t, size-1, d.Cap(), "size %d", size)
	}
}

func TestRunCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.txt")
	require.NoError(t, os.WriteFile(path, []byte("push_back 1\npush_back 2\npush_back 3\n"), 0o644))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"run", path, "--size", "2"})
	require.NoError(t, root.Execute())

	assert.Equal(t, `line 2: push_back: insufficient capacity: element 2 rejected
line 3: push_back: insufficient capacity: element 3 rejected
[1] len=1 cap=1
`, out.String())
}

func TestRunCommandStdin(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetIn(strings.NewReader("push_front 4\nprint\n"))
	root.SetArgs([]string{"run", "-"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "[4]\n[4] len=1 cap=7\n", out.String())
}

func TestSizesCommand(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"sizes"})
	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(backings))
	assert.Equal(t, "2\tcapacity 1", lines[0])
	assert.Equal(t, "1024\tcapacity 1023", lines[len(lines)-1])
}
