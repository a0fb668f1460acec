package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/balkashynov/clockwork/internal/config"
	"github.com/balkashynov/clockwork/internal/daterange"
	"github.com/balkashynov/clockwork/internal/report"
)

// ChartFileName derives the deterministic artifact name for a breakdown.
func ChartFileName(start, end time.Time, category string) string {
	name := fmt.Sprintf("clockwork_%s_%s", daterange.Format(start), daterange.Format(end))
	if category != "" {
		name += "_" + category
	}
	return name + ".html"
}

// WriteChart renders the proportional breakdown as a doughnut chart and
// writes a self-contained HTML artifact to the temp directory. Slice colors
// come from the persisted color map, so a label keeps its color across
// invocations.
func WriteChart(slices []report.Slice, total int64, cfg *config.Config, title string, start, end time.Time, category string) (string, error) {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "Total Time: " + FormatHoursMinutes(total),
			Left:     "center",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Orient: "horizontal",
			Bottom: "0",
		}),
	)

	items := make([]opts.PieData, 0, len(slices))
	for _, slice := range slices {
		items = append(items, opts.PieData{
			Name:      slice.Label,
			Value:     slice.Seconds,
			ItemStyle: &opts.ItemStyle{Color: cfg.ColorFor(slice.Label)},
		})
	}

	pie.AddSeries("duration", items).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}: {d}%",
		}),
		charts.WithPieChartOpts(opts.PieChart{
			Radius: []string{"30%", "60%"},
		}),
	)

	path := filepath.Join(os.TempDir(), ChartFileName(start, end, category))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create chart file: %w", err)
	}
	defer file.Close()

	if err := pie.Render(file); err != nil {
		return "", fmt.Errorf("failed to render chart: %w", err)
	}

	return path, nil
}
