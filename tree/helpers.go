// Package tree has helpers for walking the full Kuhn Poker game tree.
package tree

import (
	"github.com/timpalpant/kuhn-cfr/kuhn"
)

// Visit calls visitor on every node of the tree rooted at root, depth first.
func Visit(root kuhn.Node, visitor func(node kuhn.Node)) {
	visitor(root)
	for _, child := range root.Children() {
		Visit(child, visitor)
	}
}

// VisitInfoSets calls visitor once per distinct information set, in the
// order they are first reached.
func VisitInfoSets(root kuhn.Node, visitor func(player int, infoSet string)) {
	seen := make(map[string]struct{})
	Visit(root, func(node kuhn.Node) {
		if node.Type() != kuhn.PlayerNode {
			return
		}

		infoSet := node.InfoSetKey()
		if _, ok := seen[infoSet]; ok {
			return
		}

		visitor(node.Player(), infoSet)
		seen[infoSet] = struct{}{}
	})
}

func CountTerminalNodes(root kuhn.Node) int {
	total := 0
	Visit(root, func(node kuhn.Node) {
		if node.Type() == kuhn.TerminalNode {
			total++
		}
	})

	return total
}

func CountNodes(root kuhn.Node) int {
	total := 0
	Visit(root, func(node kuhn.Node) { total++ })
	return total
}

func CountInfoSets(root kuhn.Node) int {
	total := 0
	VisitInfoSets(root, func(player int, infoSet string) { total++ })
	return total
}
