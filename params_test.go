package cfr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetDiscountFactors(t *testing.T) {
	pos, neg, sum := DiscountParams{}.GetDiscountFactors(5)
	require.Equal(t, [3]float64{1, 1, 1}, [3]float64{pos, neg, sum})

	pos, neg, sum = DiscountParams{UseRegretMatchingPlus: true, LinearWeighting: true}.GetDiscountFactors(3)
	require.Equal(t, 1.0, pos)
	require.Equal(t, 0.0, neg)
	require.Equal(t, 0.75, sum)

	pos, neg, sum = DiscountParams{DiscountAlpha: 1.5, DiscountGamma: 2.0}.GetDiscountFactors(4)
	require.InDelta(t, 8.0/9.0, pos, 1e-12)
	require.Equal(t, 1.0, neg)
	require.InDelta(t, 0.64, sum, 1e-12)
}
