package resample_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/mta-ridership/dataset"
	"github.com/theoremus-urban-solutions/mta-ridership/resample"
)

func readTable(t *testing.T, csv string) *dataset.Table {
	t.Helper()
	tbl, err := dataset.Read(strings.NewReader(csv))
	require.NoError(t, err)
	return tbl
}

func TestResampleWeeklyKeepsSingleRowValues(t *testing.T) {
	// two Sundays in separate weeks
	tbl := readTable(t, "Date,Buses\n01/05/2020,2\n01/12/2020,4\n")

	weekly := resample.Resample(tbl, resample.Week)

	assert.Equal(t, 2, weekly.Nrow())
	assert.Equal(t, []string{"2020-01-05", "2020-01-12"}, weekly.Col("Date").Records())
	assert.Equal(t, []float64{2, 4}, weekly.Col("Buses").Float())
}

func TestResampleMonthlyAveragesAcrossWeeks(t *testing.T) {
	tbl := readTable(t, "Date,Buses\n01/05/2020,2\n01/12/2020,4\n")

	monthly := resample.Resample(tbl, resample.Month)

	assert.Equal(t, 1, monthly.Nrow())
	assert.Equal(t, []string{"2020-01-31"}, monthly.Col("Date").Records())
	assert.Equal(t, []float64{3}, monthly.Col("Buses").Float())
}

func TestResampleSingleRowMonth(t *testing.T) {
	tbl := readTable(t, "Date,Subways\n03/01/2020,1000\n")

	monthly := resample.Resample(tbl, resample.Month)

	assert.Equal(t, []string{"2020-03-31"}, monthly.Col("Date").Records())
	assert.Equal(t, []float64{1000}, monthly.Col("Subways").Float())
}

func TestResampleIgnoresMissingValues(t *testing.T) {
	tbl := readTable(t, "Date,Subways,Buses\n"+
		"01/06/2020,2,\n"+
		"01/07/2020,,\n"+
		"01/08/2020,4,\n")

	weekly := resample.Resample(tbl, resample.Week)

	require.Equal(t, 1, weekly.Nrow())
	assert.Equal(t, []float64{3}, weekly.Col("Subways").Float())
	// a bucket with only missing values stays missing
	assert.True(t, math.IsNaN(weekly.Col("Buses").Float()[0]))
}

func TestResampleOmitsEmptyBuckets(t *testing.T) {
	// January and March rows, nothing in February
	tbl := readTable(t, "Date,Subways\n01/15/2020,1\n03/15/2020,3\n")

	monthly := resample.Resample(tbl, resample.Month)

	assert.Equal(t, []string{"2020-01-31", "2020-03-31"}, monthly.Col("Date").Records())
}

func TestResampleRowCountMatchesDistinctBuckets(t *testing.T) {
	tbl := readTable(t, "Date,Subways\n"+
		"01/06/2020,1\n"+ // week ending 01/12
		"01/07/2020,2\n"+ // same week
		"01/13/2020,3\n"+ // week ending 01/19
		"02/03/2020,4\n") // week ending 02/09

	weekly := resample.Resample(tbl, resample.Week)
	monthly := resample.Resample(tbl, resample.Month)
	annual := resample.Resample(tbl, resample.Year)

	assert.Equal(t, 3, weekly.Nrow())
	assert.Equal(t, 2, monthly.Nrow())
	assert.Equal(t, 1, annual.Nrow())
}

func TestResampleAnnualCarriesYearLabel(t *testing.T) {
	tbl := readTable(t, "Date,Subways\n06/15/2020,10\n06/15/2021,20\n")

	annual := resample.Resample(tbl, resample.Year)

	assert.Equal(t, []string{"2020-12-31", "2021-12-31"}, annual.Col("Date").Records())
	assert.Equal(t, []string{"2020", "2021"}, annual.Col(resample.YearColumn).Records())
	assert.Equal(t, []float64{10, 20}, annual.Col("Subways").Float())
}

func TestResampleIsPure(t *testing.T) {
	tbl := readTable(t, "Date,Subways,Buses\n"+
		"01/05/2020,2,10\n"+
		"01/12/2020,4,20\n"+
		"02/01/2020,6,30\n")

	first := resample.Resample(tbl, resample.Month)
	second := resample.Resample(tbl, resample.Month)

	assert.Equal(t, first.DF().Records(), second.DF().Records())
	assert.Equal(t, first.Ends(), second.Ends())
}

func TestAllTables(t *testing.T) {
	tbl := readTable(t, "Date,Subways\n01/05/2020,2\n")

	tables := resample.AllTables(tbl)

	require.Len(t, tables, 4)
	for _, g := range resample.All() {
		assert.Contains(t, tables, g)
		assert.Equal(t, g, tables[g].Granularity())
	}
}
