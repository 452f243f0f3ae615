package kuhn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTerminalUtil(t *testing.T) {
	testCases := []struct {
		history        History
		p0Card, p1Card Card
		expected       float64
	}{
		{"rrcc", King, Jack, 1.0},
		{"rrcc", Jack, King, -1.0},
		{"rrbb", Jack, King, -2.0},
		{"rrbb", King, Queen, 2.0},
		{"rrbc", Jack, King, 1.0},
		{"rrbc", King, Jack, 1.0},
		{"rrcbc", King, Jack, 1.0},
		{"rrcbb", Queen, King, 2.0}, // Player 1 to move holds the King.
		{"rrcbb", King, Queen, -2.0},
	}

	for _, tc := range testCases {
		got := TerminalUtil(tc.history, tc.p0Card, tc.p1Card)
		if got != tc.expected {
			t.Errorf("TerminalUtil(%q, %v, %v): expected %v, got %v",
				tc.history, tc.p0Card, tc.p1Card, tc.expected, got)
		}
	}
}

func TestTerminalUtil_ShowdownIsZeroSum(t *testing.T) {
	for h, p := range payoffs {
		if p.rule != showdown {
			continue
		}

		for _, d := range Deals() {
			u := TerminalUtil(h, d.P0Card, d.P1Card)
			swapped := TerminalUtil(h, d.P1Card, d.P0Card)
			require.Equal(t, -u, swapped, "history %q deal %v", h, d)
			require.Equal(t, p.stake, abs(u))
		}
	}
}

func TestTerminalUtil_PanicsOnNonTerminal(t *testing.T) {
	for _, h := range []History{"", "rr", "rrc", "rrb", "rrcb", "rrcbcb"} {
		require.Panics(t, func() { TerminalUtil(h, King, Jack) }, "history %q", h)
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := []History{"rrcc", "rrbc", "rrbb", "rrcbc", "rrcbb"}
	for _, h := range terminal {
		require.True(t, IsTerminal(h), "history %q", h)
	}

	for _, h := range []History{"", "rr", "rrc", "rrb", "rrcb"} {
		require.False(t, IsTerminal(h), "history %q", h)
	}
}

func TestIsChance(t *testing.T) {
	require.True(t, IsChance(""))
	require.False(t, IsChance(Root))
}

func TestDeals(t *testing.T) {
	deals := Deals()
	require.Len(t, deals, 6)

	seen := make(map[[2]Card]struct{})
	var total float64
	for _, d := range deals {
		require.NotEqual(t, d.P0Card, d.P1Card)
		seen[[2]Card{d.P0Card, d.P1Card}] = struct{}{}
		require.Equal(t, 1.0/6, d.Probability)
		total += d.Probability
	}

	require.Len(t, seen, 6)
	require.InDelta(t, 1.0, total, 1e-12)
}

func TestHistory(t *testing.T) {
	require.Equal(t, History("rrc"), Root.Next(Check))
	require.Equal(t, History("rrcb"), Root.Next(Check).Next(Bet))
	require.Equal(t, Player0, Root.Player())
	require.Equal(t, Player1, Root.Next(Bet).Player())
}

func TestInfoSetKey(t *testing.T) {
	require.Equal(t, "K rrcb", InfoSetKey(King, "rrcb"))
	require.Equal(t, "J rr", InfoSetKey(Jack, Root))
}

func TestNode_Children(t *testing.T) {
	root := NewGame()
	require.Equal(t, ChanceNode, root.Type())
	require.Equal(t, Chance, root.Player())

	deals := root.Children()
	require.Len(t, deals, 6)
	for _, child := range deals {
		require.Equal(t, PlayerNode, child.Type())
		require.Equal(t, Root, child.History)
		require.Len(t, child.Children(), NumActions)
	}

	terminal := Node{History: "rrcc", P0Card: Queen, P1Card: Jack}
	require.Equal(t, TerminalNode, terminal.Type())
	require.Empty(t, terminal.Children())
	require.Equal(t, 1.0, terminal.Utility())
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
