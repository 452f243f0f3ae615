package kuhn

import (
	"fmt"
)

type NodeType int

const (
	ChanceNode NodeType = iota
	TerminalNode
	PlayerNode
)

// Node is one state of the game tree: the public history plus the
// private cards dealt to both players.
type Node struct {
	History History

	// Private card held by either player. Unset at the chance node.
	P0Card, P1Card Card
}

// NewGame returns the chance node at the root of the game tree.
func NewGame() Node {
	return Node{}
}

// String implements fmt.Stringer.
func (n Node) String() string {
	if n.Type() == ChanceNode {
		return "Chance node"
	}

	return fmt.Sprintf("Player %v's turn. History: %5s [Cards: P0 - %s, P1 - %s]",
		n.Player(), n.History, n.P0Card, n.P1Card)
}

func (n Node) Type() NodeType {
	if IsChance(n.History) {
		return ChanceNode
	} else if IsTerminal(n.History) {
		return TerminalNode
	}

	return PlayerNode
}

// Player returns the player to act, or Chance at the root.
func (n Node) Player() int {
	if IsChance(n.History) {
		return Chance
	}

	return n.History.Player()
}

// Card returns the private card held by player.
func (n Node) Card(player int) Card {
	if player == Player0 {
		return n.P0Card
	}

	return n.P1Card
}

// InfoSetKey returns the key of the acting player's information set.
// It may only be called for player nodes.
func (n Node) InfoSetKey() string {
	return InfoSetKey(n.Card(n.Player()), n.History)
}

// Utility returns the payoff to the player to move at a terminal node.
func (n Node) Utility() float64 {
	return TerminalUtil(n.History, n.P0Card, n.P1Card)
}

// Children returns the successors of n: one per deal at the chance node,
// one per action at a player node, none at a terminal node.
func (n Node) Children() []Node {
	switch n.Type() {
	case ChanceNode:
		deals := Deals()
		result := make([]Node, 0, len(deals))
		for _, d := range deals {
			result = append(result, Node{History: Root, P0Card: d.P0Card, P1Card: d.P1Card})
		}
		return result
	case PlayerNode:
		result := make([]Node, 0, NumActions)
		for _, a := range Actions {
			child := n
			child.History = n.History.Next(a)
			result = append(result, child)
		}
		return result
	}

	return nil
}
