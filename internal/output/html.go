package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/shandley/chromdetect/internal/chromdetect"
)

// writeHTML renders an interactive report page: a pie of the
// classification breakdown and a bar chart of the largest scaffolds
// colored by category.
func writeHTML(w io.Writer, assemblyName string, results []chromdetect.Result, stats chromdetect.AssemblyStats) error {
	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("ChromDetect: %s", assemblyName)
	page.AddCharts(
		breakdownPie(assemblyName, results),
		lengthBar(results, stats),
	)
	return page.Render(w)
}

func breakdownPie(assemblyName string, results []chromdetect.Result) *charts.Pie {
	breakdown := chromdetect.Summarize(results)

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Scaffold Classification",
			Subtitle: fmt.Sprintf("%s: %d scaffolds", assemblyName, len(results)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	pie.AddSeries("classification", []opts.PieData{
		{Name: string(chromdetect.Chromosome), Value: breakdown.ChromosomeCount},
		{Name: string(chromdetect.Unlocalized), Value: breakdown.UnlocalizedCount},
		{Name: string(chromdetect.Unplaced), Value: breakdown.UnplacedCount},
	})
	return pie
}

const barScaffolds = 30

func lengthBar(results []chromdetect.Result, stats chromdetect.AssemblyStats) *charts.Bar {
	top := append([]chromdetect.Result(nil), results...)
	sort.Slice(top, func(i, j int) bool { return top[i].Length > top[j].Length })
	if len(top) > barScaffolds {
		top = top[:barScaffolds]
	}

	names := make([]string, len(top))
	data := make([]opts.BarData, len(top))
	for i, r := range top {
		names[i] = r.Name
		data[i] = opts.BarData{
			Value:   r.Length,
			Tooltip: &opts.Tooltip{Show: opts.Bool(true)},
			ItemStyle: &opts.ItemStyle{
				Color: classColor(r.Classification),
			},
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Largest Scaffolds",
			Subtitle: fmt.Sprintf("assembly N50 %d bp, N90 %d bp", stats.N50, stats.N90),
		}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 45}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "length (bp)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(names)
	bar.AddSeries("length", data)
	return bar
}

func classColor(c chromdetect.Classification) string {
	switch c {
	case chromdetect.Chromosome:
		return "#31688e"
	case chromdetect.Unlocalized:
		return "#35b779"
	default:
		return "#fde725"
	}
}
