package formatter_test

import (
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/mta-ridership/formatter"
)

func TestRecords(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"2020-03-01", "2020-03-02"}, series.String, "Date"),
		series.New([]float64{1000, math.NaN()}, series.Float, "Subways"),
	)

	records := formatter.Records(df)

	require.Len(t, records, 2)
	assert.Equal(t, "2020-03-01", records[0]["Date"])
	assert.Equal(t, 1000.0, records[0]["Subways"])
	assert.Nil(t, records[1]["Subways"], "missing cells become null")
}

func TestBuildJSONRendersMissingAsNull(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"2020-03-01"}, series.String, "Date"),
		series.New([]float64{math.NaN()}, series.Float, "Subways"),
	)

	payload := formatter.BuildJSON(formatter.Records(df))

	assert.JSONEq(t, `[{"Date":"2020-03-01","Subways":null}]`, string(payload))
}
