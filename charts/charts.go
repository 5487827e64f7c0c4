package charts

import (
	"math"
	"strconv"
	"strings"

	"coursehub/models"
)

// Chart kinds.
const (
	KindBar  = "bar"
	KindPie  = "pie"
	KindLine = "line"
)

// Kinds lists the valid chart types.
var Kinds = []string{KindBar, KindPie, KindLine}

// EmptyMessage is shown instead of an empty chart canvas.
const EmptyMessage = "No data for this selection. Try different options."

const maxLabelLen = 18

// Point is one renderable series point: a display label (truncated), the
// full label for tooltips, and the value with its metric formatting.
type Point struct {
	Label     string
	FullLabel string
	Value     float64
	Formatted string
}

// View is a fully prepared chart: either a non-empty series or the
// defined empty state. No aggregation happens here; the series comes
// pre-computed from the backend.
type View struct {
	Kind         string
	Metric       string
	Points       []Point
	Empty        bool
	EmptyMessage string
}

// Render prepares a backend series for display.
func Render(kind, metric string, series []models.ChartPoint) View {
	view := View{Kind: kind, Metric: metric}
	if len(series) == 0 {
		view.Empty = true
		view.EmptyMessage = EmptyMessage
		return view
	}

	view.Points = make([]Point, 0, len(series))
	for _, p := range series {
		view.Points = append(view.Points, Point{
			Label:     truncateLabel(p.Label),
			FullLabel: p.Label,
			Value:     p.Value,
			Formatted: FormatValue(metric, p.Value),
		})
	}
	return view
}

// FormatValue formats a metric value: currency for revenue, percentage
// for average score, plain number otherwise.
func FormatValue(metric string, value float64) string {
	switch metric {
	case models.MetricRevenue:
		return "$" + groupThousands(value)
	case models.MetricAvgScore:
		return plainNumber(value) + "%"
	default:
		return plainNumber(value)
	}
}

func truncateLabel(label string) string {
	runes := []rune(label)
	if len(runes) <= maxLabelLen {
		return label
	}
	return string(runes[:maxLabelLen-2]) + "…"
}

func plainNumber(value float64) string {
	if value == math.Trunc(value) {
		return strconv.FormatFloat(value, 'f', 0, 64)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// groupThousands renders the integer part with comma separators; cents
// are kept only when present.
func groupThousands(value float64) string {
	formatted := plainNumber(value)
	intPart, fracPart := formatted, ""
	if i := strings.IndexByte(formatted, '.'); i >= 0 {
		intPart, fracPart = formatted[:i], formatted[i:]
	}

	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String() + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
