package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"coursehub/models"
)

func TestRenderEmptySeries(t *testing.T) {
	view := Render(KindBar, models.MetricEnrollments, nil)

	assert.True(t, view.Empty)
	assert.Equal(t, "No data for this selection. Try different options.", view.EmptyMessage)
	assert.Empty(t, view.Points)
}

func TestRenderKeepsFullLabelForTooltips(t *testing.T) {
	series := []models.ChartPoint{
		{Label: "Distributed Systems in Go", Value: 42},
	}

	view := Render(KindBar, models.MetricEnrollments, series)

	assert.False(t, view.Empty)
	assert.Equal(t, "Distributed Syst…", view.Points[0].Label)
	assert.Equal(t, "Distributed Systems in Go", view.Points[0].FullLabel)
}

func TestRenderShortLabelUntouched(t *testing.T) {
	series := []models.ChartPoint{{Label: "Go Basics", Value: 3}}

	view := Render(KindPie, models.MetricEnrollments, series)

	assert.Equal(t, "Go Basics", view.Points[0].Label)
}

func TestFormatValueRevenue(t *testing.T) {
	assert.Equal(t, "$1,234,567", FormatValue(models.MetricRevenue, 1234567))
	assert.Equal(t, "$999", FormatValue(models.MetricRevenue, 999))
	assert.Equal(t, "$1,000.5", FormatValue(models.MetricRevenue, 1000.5))
}

func TestFormatValueAvgScore(t *testing.T) {
	assert.Equal(t, "87.5%", FormatValue(models.MetricAvgScore, 87.5))
	assert.Equal(t, "90%", FormatValue(models.MetricAvgScore, 90))
}

func TestFormatValuePlain(t *testing.T) {
	assert.Equal(t, "42", FormatValue(models.MetricEnrollments, 42))
	assert.Equal(t, "6.5", FormatValue(models.MetricDuration, 6.5))
}
