package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/boristopalov/bandits/pkg/core"
)

// tailWindow is the number of final steps averaged for the reward column
const tailWindow = 100

type Standing struct {
	Rank        int // 0 for failed submissions
	Label       string
	FinalRegret float64
	TailReward  float64
	Elapsed     time.Duration
	Err         error
}

// Leaderboard ranks results by final mean cumulative regret, lowest first.
// Failed results follow in their original order.
func Leaderboard(results []core.Result) []Standing {
	ok := make([]core.Result, 0, len(results))
	failed := make([]core.Result, 0)
	for _, r := range results {
		if r.Failed() {
			failed = append(failed, r)
			continue
		}
		ok = append(ok, r)
	}
	sort.SliceStable(ok, func(i, j int) bool {
		return ok[i].FinalRegret() < ok[j].FinalRegret()
	})

	standings := make([]Standing, 0, len(results))
	for i, r := range ok {
		standings = append(standings, Standing{
			Rank:        i + 1,
			Label:       r.Label(),
			FinalRegret: r.FinalRegret(),
			TailReward:  tailMean(r.MeanReward),
			Elapsed:     r.Elapsed,
		})
	}
	for _, r := range failed {
		standings = append(standings, Standing{
			Label:   r.Label(),
			Elapsed: r.Elapsed,
			Err:     r.Err,
		})
	}
	return standings
}

func tailMean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	n := tailWindow
	if n > len(x) {
		n = len(x)
	}
	return stat.Mean(x[len(x)-n:], nil)
}

// WriteLeaderboard prints standings as an aligned table
func WriteLeaderboard(w io.Writer, standings []Standing) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tAGENT\tFINAL REGRET\tTAIL REWARD\tTIME")
	for _, s := range standings {
		if s.Err != nil {
			fmt.Fprintf(tw, "-\t%s\tfailed: %v\t\t%.1fs\n", s.Label, s.Err, s.Elapsed.Seconds())
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%.3f\t%.1fs\n", s.Rank, s.Label, s.FinalRegret, s.TailReward, s.Elapsed.Seconds())
	}
	return tw.Flush()
}
