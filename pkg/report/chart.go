package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/boristopalov/bandits/pkg/core"
)

type ChartOptions struct {
	Episodes int
	Steps    int
	Window   int // moving average window for the reward chart
}

// RenderCharts writes one HTML page with three charts: smoothed average
// reward, cumulative regret, and final regret per agent sorted ascending.
// Failed results are skipped.
func RenderCharts(w io.Writer, results []core.Result, o ChartOptions) error {
	ok := make([]core.Result, 0, len(results))
	for _, r := range results {
		if !r.Failed() && len(r.MeanReward) > 0 {
			ok = append(ok, r)
		}
	}
	if len(ok) == 0 {
		return fmt.Errorf("no successful results to chart")
	}

	page := components.NewPage()
	page.PageTitle = "Bandit evaluation"
	page.AddCharts(
		rewardChart(ok, o),
		regretChart(ok),
		summaryChart(ok),
	)
	return page.Render(w)
}

func stepAxis(n int) []string {
	axis := make([]string, n)
	for i := range axis {
		axis[i] = strconv.Itoa(i + 1)
	}
	return axis
}

func lineData(x []float64) []opts.LineData {
	data := make([]opts.LineData, len(x))
	for i, v := range x {
		data[i] = opts.LineData{Value: v}
	}
	return data
}

func rewardChart(results []core.Result, o ChartOptions) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeInfographic}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Average Reward",
			Subtitle: fmt.Sprintf("episodes=%d, steps=%d, window=%d", o.Episodes, o.Steps, o.Window),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Step"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Avg reward (smoothed)"}),
	)
	line.SetXAxis(stepAxis(len(results[0].MeanReward)))
	for _, r := range results {
		line.AddSeries(r.Label(), lineData(MovingAverage(r.MeanReward, o.Window)))
	}
	return line
}

func regretChart(results []core.Result) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeInfographic}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Cumulative Regret",
			Subtitle: "lower is better",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Step"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Average cumulative regret"}),
	)
	line.SetXAxis(stepAxis(len(results[0].MeanRegret)))
	for _, r := range results {
		line.AddSeries(r.Label(), lineData(r.MeanRegret))
	}
	return line
}

func summaryChart(results []core.Result) *charts.Bar {
	standings := Leaderboard(results)
	labels := make([]string, len(standings))
	data := make([]opts.BarData, len(standings))
	for i, s := range standings {
		labels[i] = s.Label
		data[i] = opts.BarData{Value: s.FinalRegret}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeInfographic}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Summary",
			Subtitle: "final avg cumulative regret, lower is better",
		}),
	)
	bar.SetXAxis(labels).AddSeries("Final regret", data)
	return bar
}
