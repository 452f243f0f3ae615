package cfr

import (
	"sort"

	"github.com/golang/glog"
)

// StrategyTable implements traditional (tabular) CFR by keeping every
// InfoSet in memory, looked up by its Key().
type StrategyTable struct {
	// Map of InfoSet Key -> accumulators for that infoset.
	infoSets map[string]*InfoSet
}

var _ InfoSetStore = &StrategyTable{}

// NewStrategyTable returns an empty StrategyTable.
func NewStrategyTable() *StrategyTable {
	return &StrategyTable{
		infoSets: make(map[string]*InfoSet),
	}
}

// GetOrCreate implements InfoSetStore.
func (st *StrategyTable) GetOrCreate(key string) *InfoSet {
	is, ok := st.infoSets[key]
	if !ok {
		is = NewInfoSet(key)
		st.infoSets[key] = is
		glog.V(2).Infof("Created infoset %q (%d total)", key, len(st.infoSets))
	}

	return is
}

// Save implements InfoSetStore. InfoSets are held by pointer, so there
// is nothing to do.
func (st *StrategyTable) Save(is *InfoSet) {}

// Get implements InfoSetStore.
func (st *StrategyTable) Get(key string) (*InfoSet, bool) {
	is, ok := st.infoSets[key]
	return is, ok
}

// Update implements InfoSetStore.
func (st *StrategyTable) Update(discountPos, discountNeg, discountSum float64) {
	for _, is := range st.infoSets {
		is.NextStrategy(discountPos, discountNeg, discountSum)
	}
}

// ForEach implements InfoSetStore.
func (st *StrategyTable) ForEach(fn func(is *InfoSet)) {
	keys := make([]string, 0, len(st.infoSets))
	for key := range st.infoSets {
		keys = append(keys, key)
	}

	sort.Strings(keys)
	for _, key := range keys {
		fn(st.infoSets[key])
	}
}

// Len implements InfoSetStore.
func (st *StrategyTable) Len() int {
	return len(st.infoSets)
}

// Close implements io.Closer.
func (st *StrategyTable) Close() error {
	return nil
}
