package cfr

import (
	"github.com/golang/glog"

	"github.com/timpalpant/kuhn-cfr/internal/f64"
	"github.com/timpalpant/kuhn-cfr/kuhn"
)

// Vanilla implements full-tree counterfactual regret minimization for
// Kuhn Poker. Every iteration walks the entire game tree, enumerating
// all chance outcomes.
type Vanilla struct {
	params Params
	store  InfoSetStore
	iter   int

	slicePool *floatSlicePool
}

// NewVanilla returns a solver that accumulates into the given store.
func NewVanilla(store InfoSetStore, params Params) *Vanilla {
	return &Vanilla{
		params:    params,
		store:     store,
		iter:      1,
		slicePool: &floatSlicePool{},
	}
}

// Store returns the InfoSetStore the solver accumulates into.
func (v *Vanilla) Store() InfoSetStore {
	return v.store
}

// Iter returns the number of the next iteration, starting from 1.
func (v *Vanilla) Iter() int {
	return v.iter
}

// Run performs one iteration of CFR and returns the game value for
// player 0 under the strategy profile used during the iteration.
func (v *Vanilla) Run() float64 {
	expectedValue := v.runHelper("", 0, 0, 1.0, 1.0, 1.0)
	v.nextStrategyProfile()
	return expectedValue
}

func (v *Vanilla) nextStrategyProfile() {
	discountPos, discountNeg, discountSum := v.params.GetDiscountFactors(v.iter)
	glog.V(3).Infof("Updating %d infosets", v.store.Len())
	v.store.Update(discountPos, discountNeg, discountSum)
	v.iter++
}

// runHelper returns the utility of the node to the player to act there.
func (v *Vanilla) runHelper(h kuhn.History, p0Card, p1Card kuhn.Card, reachP0, reachP1, reachChance float64) float64 {
	switch {
	case kuhn.IsChance(h):
		return v.handleChanceNode(reachP0, reachP1, reachChance)
	case kuhn.IsTerminal(h):
		return kuhn.TerminalUtil(h, p0Card, p1Card)
	default:
		return v.handlePlayerNode(h, p0Card, p1Card, reachP0, reachP1, reachChance)
	}
}

func (v *Vanilla) handleChanceNode(reachP0, reachP1, reachChance float64) float64 {
	deals := kuhn.Deals()
	expectedValue := 0.0
	for _, d := range deals {
		expectedValue += v.runHelper(kuhn.Root, d.P0Card, d.P1Card, reachP0, reachP1, reachChance*d.Probability)
	}

	return expectedValue / float64(len(deals))
}

func (v *Vanilla) handlePlayerNode(h kuhn.History, p0Card, p1Card kuhn.Card, reachP0, reachP1, reachChance float64) float64 {
	player := h.Player()
	card := p0Card
	if player == kuhn.Player1 {
		card = p1Card
	}

	is := v.store.GetOrCreate(kuhn.InfoSetKey(card, h))
	if player == kuhn.Player0 {
		is.AddReachPr(reachP0)
	} else {
		is.AddReachPr(reachP1)
	}

	strategy := is.Strategy()
	actionUtils := v.slicePool.alloc(kuhn.NumActions)
	defer v.slicePool.free(actionUtils)
	for i, action := range kuhn.Actions {
		child := h.Next(action)
		p := strategy[i]
		if player == kuhn.Player0 {
			actionUtils[i] = -1 * v.runHelper(child, p0Card, p1Card, p*reachP0, reachP1, reachChance)
		} else {
			actionUtils[i] = -1 * v.runHelper(child, p0Card, p1Card, reachP0, p*reachP1, reachChance)
		}
	}

	util := f64.DotUnitary(strategy, actionUtils)
	regrets := v.slicePool.alloc(kuhn.NumActions)
	defer v.slicePool.free(regrets)
	for i := range regrets {
		regrets[i] = actionUtils[i] - util
	}

	is.AddRegret(counterFactualProb(player, reachP0, reachP1, reachChance), regrets)
	v.store.Save(is)
	return util
}

// The probability of reaching this node, assuming that the current player
// tried to reach it.
func counterFactualProb(player int, reachP0, reachP1, reachChance float64) float64 {
	if player == kuhn.Player0 {
		return reachP1 * reachChance
	}

	return reachP0 * reachChance
}
