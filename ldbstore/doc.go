// Package ldbstore implements a cfr.InfoSetStore that keeps information
// sets on disk in a LevelDB database, rather than in memory.
//
// It is substantially slower than cfr.StrategyTable but produces identical
// results. The database lives in a scratch directory that is removed when
// the store is closed.
package ldbstore
