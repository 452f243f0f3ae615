package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timpalpant/kuhn-cfr"
)

func TestRun(t *testing.T) {
	for _, store := range []string{"memory", "leveldb"} {
		t.Run(store, func(t *testing.T) {
			params := RunParams{
				Iterations: 200,
				Store:      store,
				LevelDBDir: t.TempDir(),
				Params:     cfr.DefaultParams(),
			}

			var buf bytes.Buffer
			require.NoError(t, run(params, &buf))

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			require.Len(t, lines, 3+1+6+1+6)
			ev := parseValue(t, lines[0], "player 1 expected value: ")
			negEV := parseValue(t, lines[1], "player 2 expected value: ")
			require.Equal(t, -ev, negEV)
			require.Equal(t, "", lines[2])
			require.Equal(t, "player 1 strategies:", lines[3])
			require.Equal(t, "J rr", lines[4][:4])
			require.Equal(t, "player 2 strategies:", lines[10])
			require.Equal(t, "J rrb", lines[11][:5])
		})
	}
}

func parseValue(t *testing.T, line, prefix string) float64 {
	t.Helper()
	require.True(t, strings.HasPrefix(line, prefix), line)
	x, err := strconv.ParseFloat(strings.TrimPrefix(line, prefix), 64)
	require.NoError(t, err)
	return x
}

func TestRun_InvalidParams(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, run(RunParams{Iterations: 0, Store: "memory"}, &buf))
	require.Error(t, run(RunParams{Iterations: 10, Store: "redis"}, &buf))
	require.Empty(t, buf.String())
}
