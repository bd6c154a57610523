package resample

import (
	"math"
	"strconv"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/montanaflynn/stats"
	"github.com/samber/lo"

	"github.com/theoremus-urban-solutions/mta-ridership/dataset"
)

// YearColumn is the display label column added to annual tables.
const YearColumn = "Year"

// AggregatedTable holds one row per non-empty calendar bucket, labeled with
// the bucket end date.
type AggregatedTable struct {
	df          dataframe.DataFrame
	ends        []time.Time
	granularity Granularity
}

// DF returns the underlying dataframe.
func (a *AggregatedTable) DF() dataframe.DataFrame { return a.df }

// Ends returns the bucket end dates, strictly increasing.
func (a *AggregatedTable) Ends() []time.Time { return a.ends }

// Granularity returns the bucket size the table was built with.
func (a *AggregatedTable) Granularity() Granularity { return a.granularity }

// Nrow returns the number of buckets.
func (a *AggregatedTable) Nrow() int { return a.df.Nrow() }

// Col returns the named column.
func (a *AggregatedTable) Col(name string) series.Series { return a.df.Col(name) }

// Resample groups the table's rows into g-sized calendar buckets and averages
// every numeric column within each bucket, ignoring missing values. A column
// with only missing values in a bucket stays missing; buckets with no rows do
// not appear at all.
func Resample(t *dataset.Table, g Granularity) *AggregatedTable {
	dates := t.Dates()

	// input rows are date-ordered, so bucket ends come out ordered too
	var ends []time.Time
	groups := make(map[time.Time][]int)
	for i, d := range dates {
		end := BucketEnd(d, g)
		if _, seen := groups[end]; !seen {
			ends = append(ends, end)
		}
		groups[end] = append(groups[end], i)
	}

	labels := lo.Map(ends, func(end time.Time, _ int) string {
		return end.Format("2006-01-02")
	})
	cols := []series.Series{series.New(labels, series.String, dataset.DateColumn)}
	for _, name := range t.NumericColumns() {
		vals := t.Col(name).Float()
		means := make([]float64, len(ends))
		for j, end := range ends {
			means[j] = meanIgnoringMissing(vals, groups[end])
		}
		cols = append(cols, series.New(means, series.Float, name))
	}
	if g == Year {
		years := lo.Map(ends, func(end time.Time, _ int) string {
			return strconv.Itoa(end.Year())
		})
		cols = append(cols, series.New(years, series.String, YearColumn))
	}

	return &AggregatedTable{
		df:          dataframe.New(cols...),
		ends:        ends,
		granularity: g,
	}
}

// AllTables resamples the table at every supported granularity.
func AllTables(t *dataset.Table) map[Granularity]*AggregatedTable {
	out := make(map[Granularity]*AggregatedTable, len(All()))
	for _, g := range All() {
		out[g] = Resample(t, g)
	}
	return out
}

func meanIgnoringMissing(vals []float64, idx []int) float64 {
	sample := make([]float64, 0, len(idx))
	for _, i := range idx {
		if !math.IsNaN(vals[i]) {
			sample = append(sample, vals[i])
		}
	}
	if len(sample) == 0 {
		return math.NaN()
	}
	m, err := stats.Mean(sample)
	if err != nil {
		return math.NaN()
	}
	return m
}
