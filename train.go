package cfr

import (
	"github.com/golang/glog"
)

// Result summarizes a training run.
type Result struct {
	// Expected game value for player 0, averaged over all iterations.
	ExpectedValue float64
	Iterations    int
}

// Train runs nIter iterations of CFR and returns the average game value.
func Train(v *Vanilla, nIter int) Result {
	var expectedValue float64
	for i := 1; i <= nIter; i++ {
		expectedValue += v.Run()
		if nIter/10 > 0 && i%(nIter/10) == 0 {
			glog.V(1).Infof("[iter=%d] Expected game value: %.4f (%d infosets)",
				i, expectedValue/float64(i), v.store.Len())
		}
	}

	if nIter > 0 {
		expectedValue /= float64(nIter)
	}

	return Result{
		ExpectedValue: expectedValue,
		Iterations:    nIter,
	}
}
