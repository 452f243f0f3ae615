// Command kuhncfr solves Kuhn Poker with counterfactual regret minimization
// and prints the expected game value and each player's average strategy.
package main

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/timpalpant/kuhn-cfr"
	"github.com/timpalpant/kuhn-cfr/kuhn"
	"github.com/timpalpant/kuhn-cfr/ldbstore"
	"github.com/timpalpant/kuhn-cfr/tree"
)

type RunParams struct {
	Iterations int
	Store      string
	LevelDBDir string
	Params     cfr.Params
}

func main() {
	var params RunParams
	flag.IntVar(&params.Iterations, "iter", cfr.DefaultIterations,
		"Number of CFR iterations to run")
	flag.Float64Var(&params.Params.PurificationThreshold, "threshold", cfr.DefaultPurificationThreshold,
		"Average strategy probabilities below this value are reported as zero")
	flag.StringVar(&params.Store, "store", "memory",
		"Where to keep infosets during the run: memory or leveldb")
	flag.StringVar(&params.LevelDBDir, "leveldb_dir", "",
		"Parent directory for the scratch leveldb store (default: system temp dir)")
	flag.BoolVar(&params.Params.UseRegretMatchingPlus, "cfr_plus", false,
		"Use regret matching+ (CFR+)")
	flag.BoolVar(&params.Params.LinearWeighting, "linear", false,
		"Use linear weighting of the average strategy (Linear CFR)")
	flag.Float64Var(&params.Params.DiscountAlpha, "discount_alpha", 0,
		"Discounted CFR: positive regret discount exponent")
	flag.Float64Var(&params.Params.DiscountBeta, "discount_beta", 0,
		"Discounted CFR: negative regret discount exponent")
	flag.Float64Var(&params.Params.DiscountGamma, "discount_gamma", 0,
		"Discounted CFR: average strategy discount exponent")
	flag.Parse()

	if err := run(params, os.Stdout); err != nil {
		glog.Fatal(err)
	}
}

func run(params RunParams, w io.Writer) error {
	if params.Iterations <= 0 {
		return errors.Errorf("invalid number of iterations: %d", params.Iterations)
	}

	game := kuhn.NewGame()
	glog.Infof("Game tree has %d nodes (%d terminal), %d infosets",
		tree.CountNodes(game), tree.CountTerminalNodes(game), tree.CountInfoSets(game))

	store, err := newStore(params)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			glog.Errorf("Error closing infoset store: %v", err)
		}
	}()

	glog.Infof("Running %d iterations of CFR with %s store", params.Iterations, params.Store)
	start := time.Now()
	v := cfr.NewVanilla(store, params.Params)
	result := cfr.Train(v, params.Iterations)
	glog.Infof("Finished in %v. Expected game value: %.4f, exploitability: %.5f",
		time.Since(start), result.ExpectedValue,
		cfr.Exploitability(store, params.Params.PurificationThreshold))

	report := cfr.NewReport(result, store, params.Params.PurificationThreshold)
	_, err = report.WriteTo(w)
	return err
}

func newStore(params RunParams) (cfr.InfoSetStore, error) {
	switch params.Store {
	case "memory":
		return cfr.NewStrategyTable(), nil
	case "leveldb":
		store, err := ldbstore.New(params.LevelDBDir, &opt.Options{})
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	return nil, errors.Errorf("unknown store: %q", params.Store)
}
