// Package kuhn encodes the rules of Kuhn Poker: the deck, the legal
// actions, which histories end the game and what they pay.
//
// Adapted from: https://justinsermeno.com/posts/cfr/.
package kuhn

import (
	"fmt"
)

const (
	Chance  = -1
	Player0 = 0
	Player1 = 1
)

// NumActions is the number of legal actions at every decision node.
const NumActions = 2

type Action byte

const (
	Random Action = 'r'
	Check  Action = 'c'
	Bet    Action = 'b'
)

// Actions lists the legal actions in the order strategies index them.
var Actions = [NumActions]Action{Check, Bet}

type Card int

const (
	Jack Card = iota
	Queen
	King
)

// Deck is every card in the game, lowest rank first.
var Deck = [...]Card{Jack, Queen, King}

var cardStr = [...]string{
	"J",
	"Q",
	"K",
}

func (c Card) String() string {
	return cardStr[c]
}

// History is the public action sequence. The empty history is the deal;
// every dealt hand starts from "rr", both players having posted their ante.
type History string

// Root is the history of the first decision node after the deal.
const Root History = "rr"

// Next returns the history after playing a.
func (h History) Next(a Action) History {
	return h + History([]byte{byte(a)})
}

// Player returns the player to act at h.
func (h History) Player() int {
	return len(h) % 2
}

// IsChance is true only for the empty history.
func IsChance(h History) bool {
	return h == ""
}

// IsTerminal is true iff h ends the game.
func IsTerminal(h History) bool {
	_, ok := payoffs[h]
	return ok
}

type payoffRule int

const (
	// The last player folded to a bet; the player to move wins the ante.
	fold payoffRule = iota
	// Cards are compared; the higher card wins the stake.
	showdown
)

type payoff struct {
	rule  payoffRule
	stake float64
}

// payoffs is the only place terminal histories are enumerated.
var payoffs = map[History]payoff{
	"rrcc":  {showdown, 1},
	"rrbc":  {fold, 1},
	"rrcbc": {fold, 1},
	"rrbb":  {showdown, 2},
	"rrcbb": {showdown, 2},
}

// TerminalUtil returns the payoff at terminal history h to the player
// whose turn it would be at h. It panics if h is not terminal.
func TerminalUtil(h History, p0Card, p1Card Card) float64 {
	p, ok := payoffs[h]
	if !ok {
		panic(fmt.Errorf("unexpected history: %q", h))
	}

	if p.rule == fold {
		return p.stake
	}

	cardPlayer, cardOpponent := p0Card, p1Card
	if h.Player() == Player1 {
		cardPlayer, cardOpponent = p1Card, p0Card
	}

	if cardPlayer > cardOpponent {
		return p.stake
	}

	return -p.stake
}

// Deal is one outcome of the chance node.
type Deal struct {
	P0Card, P1Card Card
	Probability    float64
}

// Deals enumerates every ordered pair of distinct cards.
func Deals() []Deal {
	var result []Deal
	for _, c0 := range Deck {
		for _, c1 := range Deck {
			if c0 == c1 {
				continue // Both players can't be dealt the same card.
			}

			result = append(result, Deal{P0Card: c0, P1Card: c1})
		}
	}

	p := 1.0 / float64(len(result))
	for i := range result {
		result[i].Probability = p
	}

	return result
}

// InfoSetKey identifies what the player holding card observes at h.
func InfoSetKey(card Card, h History) string {
	return card.String() + " " + string(h)
}
