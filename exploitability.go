package cfr

import (
	"math"

	"github.com/timpalpant/kuhn-cfr/kuhn"
)

// Exploitability returns how much a best-responding opponent gains
// against the average strategies in store, averaged over both seats.
// It is zero at a Nash equilibrium.
//
// InfoSets that are missing or were never reached are assumed to play
// uniformly.
func Exploitability(store InfoSetStore, threshold float64) float64 {
	br := &bestResponse{store: store, threshold: threshold}
	total := br.value(kuhn.Player0) + br.value(kuhn.Player1)
	return total / 2
}

type bestResponse struct {
	store     InfoSetStore
	threshold float64
}

// value returns the expected utility of player's best response to the
// opponent's average strategy.
func (br *bestResponse) value(player int) float64 {
	var total float64
	for _, card := range kuhn.Deck {
		// Reach probability of each card the opponent may hold.
		oppReach := make([]float64, len(kuhn.Deck))
		for _, oppCard := range kuhn.Deck {
			if oppCard != card {
				oppReach[oppCard] = 1.0 / float64(len(kuhn.Deck)-1)
			}
		}

		total += br.walk(player, card, kuhn.Root, oppReach)
	}

	return total / float64(len(kuhn.Deck))
}

// walk returns player's utility at h summed over the opponent's possible
// cards, each weighted by the probability the opponent gets there.
func (br *bestResponse) walk(player int, card kuhn.Card, h kuhn.History, oppReach []float64) float64 {
	if kuhn.IsTerminal(h) {
		var total float64
		for oppCard, p := range oppReach {
			if p == 0 {
				continue
			}

			total += p * br.utility(player, card, kuhn.Card(oppCard), h)
		}

		return total
	}

	if h.Player() == player {
		best := math.Inf(-1)
		for _, action := range kuhn.Actions {
			best = math.Max(best, br.walk(player, card, h.Next(action), oppReach))
		}

		return best
	}

	var total float64
	childReach := make([]float64, len(oppReach))
	for i, action := range kuhn.Actions {
		for oppCard, p := range oppReach {
			childReach[oppCard] = 0
			if p > 0 {
				childReach[oppCard] = p * br.actionProb(kuhn.InfoSetKey(kuhn.Card(oppCard), h), i)
			}
		}

		total += br.walk(player, card, h.Next(action), childReach)
	}

	return total
}

func (br *bestResponse) actionProb(key string, action int) float64 {
	if is, ok := br.store.Get(key); ok {
		if avgStrat, ok := is.AverageStrategy(br.threshold); ok {
			return avgStrat[action]
		}
	}

	return 1.0 / kuhn.NumActions
}

// utility returns player's payoff at terminal history h.
func (br *bestResponse) utility(player int, card, oppCard kuhn.Card, h kuhn.History) float64 {
	p0Card, p1Card := card, oppCard
	if player == kuhn.Player1 {
		p0Card, p1Card = oppCard, card
	}

	u := kuhn.TerminalUtil(h, p0Card, p1Card)
	if h.Player() != player {
		return -u
	}

	return u
}
