package cfr

// InfoSetStore maintains the InfoSet for each information set that is
// visited in a traversal of the game tree.
//
// Stores are not safe for concurrent use.
type InfoSetStore interface {
	// GetOrCreate returns the InfoSet with the given key, inserting
	// a new one if it has not been seen before.
	GetOrCreate(key string) *InfoSet
	// Save records changes made to an InfoSet returned by GetOrCreate.
	Save(is *InfoSet)
	// Get returns the InfoSet with the given key, if it exists.
	Get(key string) (*InfoSet, bool)
	// Update calls NextStrategy on every InfoSet in the store.
	Update(discountPos, discountNeg, discountSum float64)
	// ForEach calls fn for every InfoSet, in order of key.
	ForEach(fn func(is *InfoSet))
	// Len returns the number of InfoSets in the store.
	Len() int
	Close() error
}
