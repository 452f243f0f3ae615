package cfr

import (
	"bytes"
	"encoding/gob"

	"github.com/timpalpant/kuhn-cfr/internal/f64"
	"github.com/timpalpant/kuhn-cfr/kuhn"
)

// InfoSet accumulates regrets and strategies for one information set:
// every game state that looks the same to the acting player.
type InfoSet struct {
	key string

	regretSum   []float64
	strategy    []float64
	strategySum []float64

	// Reach probability accrued during the current iteration.
	reachPr float64
	// Reach probability accrued over all completed iterations.
	reachPrSum float64
}

// NewInfoSet returns an InfoSet with zero regrets that plays uniformly.
func NewInfoSet(key string) *InfoSet {
	return &InfoSet{
		key:         key,
		regretSum:   make([]float64, kuhn.NumActions),
		strategy:    uniformDist(kuhn.NumActions),
		strategySum: make([]float64, kuhn.NumActions),
	}
}

func (is *InfoSet) Key() string {
	return is.key
}

// Strategy returns the action probabilities for the current iteration.
func (is *InfoSet) Strategy() []float64 {
	return is.strategy
}

func (is *InfoSet) RegretSum() []float64 {
	return is.regretSum
}

func (is *InfoSet) StrategySum() []float64 {
	return is.strategySum
}

func (is *InfoSet) ReachPr() float64 {
	return is.reachPr
}

func (is *InfoSet) ReachPrSum() float64 {
	return is.reachPrSum
}

// AddReachPr accrues reach probability for the current iteration.
func (is *InfoSet) AddReachPr(p float64) {
	is.reachPr += p
}

// AddRegret adds w * instantaneousRegrets to the accumulated regret.
func (is *InfoSet) AddRegret(w float64, instantaneousRegrets []float64) {
	f64.AxpyUnitary(w, instantaneousRegrets, is.regretSum)
}

// NextStrategy folds this iteration into the average strategy and
// performs regret matching to get the next iteration's strategy.
//
// The discount factors correspond to α, β, and γ as configured by
// DiscountParams. All ones is plain CFR.
func (is *InfoSet) NextStrategy(discountPositiveRegret, discountNegativeRegret, discountStrategySum float64) {
	if discountStrategySum != 1.0 {
		f64.ScalUnitary(discountStrategySum, is.strategySum)
		is.reachPrSum *= discountStrategySum
	}

	f64.AxpyUnitary(is.reachPr, is.strategy, is.strategySum)

	if discountPositiveRegret != 1.0 {
		for i, x := range is.regretSum {
			if x > 0 {
				is.regretSum[i] *= discountPositiveRegret
			}
		}
	}

	if discountNegativeRegret != 1.0 {
		for i, x := range is.regretSum {
			if x < 0 {
				is.regretSum[i] *= discountNegativeRegret
			}
		}
	}

	is.regretMatching()
	is.reachPrSum += is.reachPr
	is.reachPr = 0.0
}

// AverageStrategy returns the strategy averaged over all iterations,
// weighted by reach probability. Probabilities below threshold are
// purified to zero. ok is false if the info set was never reached.
func (is *InfoSet) AverageStrategy(threshold float64) (avgStrat []float64, ok bool) {
	if is.reachPrSum <= 0 {
		return nil, false
	}

	avgStrat = make([]float64, len(is.strategySum))
	f64.ScalUnitaryTo(avgStrat, 1.0/is.reachPrSum, is.strategySum)
	for i, p := range avgStrat {
		if p < threshold {
			avgStrat[i] = 0.0
		}
	}

	total := f64.Sum(avgStrat)
	if total <= 0 {
		return nil, false
	}

	f64.ScalUnitary(1.0/total, avgStrat)
	return avgStrat, true
}

func (is *InfoSet) regretMatching() {
	copy(is.strategy, is.regretSum)
	makePositive(is.strategy)
	total := f64.Sum(is.strategy)
	if total > 0 {
		f64.ScalUnitary(1.0/total, is.strategy)
	} else {
		for i := range is.strategy {
			is.strategy[i] = 1.0 / float64(len(is.strategy))
		}
	}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (is *InfoSet) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)

	if err := enc.Encode(is.key); err != nil {
		return nil, err
	}

	for _, v := range [][]float64{is.regretSum, is.strategy, is.strategySum} {
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
	}

	for _, x := range []float64{is.reachPr, is.reachPrSum} {
		if err := enc.Encode(x); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (is *InfoSet) UnmarshalBinary(buf []byte) error {
	r := bytes.NewReader(buf)
	dec := gob.NewDecoder(r)

	if err := dec.Decode(&is.key); err != nil {
		return err
	}

	for _, v := range []*[]float64{&is.regretSum, &is.strategy, &is.strategySum} {
		*v = make([]float64, 0, kuhn.NumActions)
		if err := dec.Decode(v); err != nil {
			return err
		}
	}

	if err := dec.Decode(&is.reachPr); err != nil {
		return err
	}

	return dec.Decode(&is.reachPrSum)
}

func uniformDist(n int) []float64 {
	result := make([]float64, n)
	p := 1.0 / float64(n)
	f64.AddConst(p, result)
	return result
}

func makePositive(v []float64) {
	for i := range v {
		if v[i] < 0 {
			v[i] = 0.0
		}
	}
}
