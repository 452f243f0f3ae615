package cfr

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// StrategyEntry is the average strategy of one information set.
type StrategyEntry struct {
	Key string
	// Nil if the information set was never reached.
	Strategy []float64
}

func (e StrategyEntry) String() string {
	if e.Strategy == nil {
		return e.Key + " n/a"
	}

	probs := make([]string, len(e.Strategy))
	for i, p := range e.Strategy {
		probs[i] = fmt.Sprintf("%.2f", p)
	}

	return e.Key + " " + strings.Join(probs, " ")
}

// Report is the final output of a training run: the expected value and
// each player's average strategies sorted by key.
type Report struct {
	ExpectedValue float64
	Player0       []StrategyEntry
	Player1       []StrategyEntry
}

// NewReport collects the average strategy of every InfoSet in store.
// InfoSets are assigned to players by the parity of their history.
func NewReport(result Result, store InfoSetStore, threshold float64) *Report {
	r := &Report{ExpectedValue: result.ExpectedValue}
	store.ForEach(func(is *InfoSet) {
		avgStrat, _ := is.AverageStrategy(threshold)
		entry := StrategyEntry{Key: is.Key(), Strategy: avgStrat}
		// Keys are "<card> <history>", so the key length has the parity of the history.
		if len(is.Key())%2 == 0 {
			r.Player0 = append(r.Player0, entry)
		} else {
			r.Player1 = append(r.Player1, entry)
		}
	})

	return r
}

// WriteTo implements io.WriterTo.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	ev := strconv.FormatFloat(r.ExpectedValue, 'f', -1, 64)
	negEV := strconv.FormatFloat(-r.ExpectedValue, 'f', -1, 64)
	fmt.Fprintf(bw, "player 1 expected value: %s\n", ev)
	fmt.Fprintf(bw, "player 2 expected value: %s\n", negEV)
	fmt.Fprintln(bw)

	for i, entries := range [][]StrategyEntry{r.Player0, r.Player1} {
		fmt.Fprintf(bw, "player %d strategies:\n", i+1)
		for _, e := range entries {
			fmt.Fprintln(bw, e)
		}
	}

	if err := bw.Flush(); err != nil {
		return cw.n, errors.Wrap(err, "error writing report")
	}

	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
