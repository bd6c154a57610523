package analytics_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/mta-ridership/analytics"
	"github.com/theoremus-urban-solutions/mta-ridership/dataset"
	"github.com/theoremus-urban-solutions/mta-ridership/resample"
)

// monthlyAgg builds a two-bucket monthly table from thousands-scaled values.
func monthlyAgg(t *testing.T, jan, feb string) *resample.AggregatedTable {
	t.Helper()
	csv := "Date,Subways\n01/15/2024," + jan + "\n02/15/2024," + feb + "\n"
	tbl, err := dataset.Read(strings.NewReader(csv))
	require.NoError(t, err)
	return resample.Resample(tbl, resample.Month)
}

func TestPeriodMetricsMillions(t *testing.T) {
	agg := monthlyAgg(t, "500", "1200")

	metrics, err := analytics.PeriodMetrics(agg, []string{"Subways"})
	require.NoError(t, err)

	m := metrics["Subways"]
	assert.Equal(t, "1.2M", m.RidershipLastPeriod)
	assert.InDelta(t, 140.0, m.PercentChange, 1e-9)
}

func TestPeriodMetricsThousands(t *testing.T) {
	agg := monthlyAgg(t, "500", "512")

	metrics, err := analytics.PeriodMetrics(agg, []string{"Subways"})
	require.NoError(t, err)

	m := metrics["Subways"]
	assert.Equal(t, "512K", m.RidershipLastPeriod)
	assert.InDelta(t, 2.4, m.PercentChange, 1e-9)
}

func TestPeriodMetricsErrors(t *testing.T) {
	t.Run("single bucket", func(t *testing.T) {
		csv := "Date,Subways\n01/15/2024,500\n"
		tbl, err := dataset.Read(strings.NewReader(csv))
		require.NoError(t, err)
		agg := resample.Resample(tbl, resample.Month)

		_, err = analytics.PeriodMetrics(agg, []string{"Subways"})
		assert.Error(t, err)
	})

	t.Run("unknown service", func(t *testing.T) {
		agg := monthlyAgg(t, "500", "512")
		_, err := analytics.PeriodMetrics(agg, []string{"Ferries"})
		assert.Error(t, err)
	})

	t.Run("missing last period", func(t *testing.T) {
		agg := monthlyAgg(t, "500", "")
		_, err := analytics.PeriodMetrics(agg, []string{"Subways"})
		assert.Error(t, err)
	})
}
