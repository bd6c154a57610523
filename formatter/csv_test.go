package formatter_test

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/mta-ridership/formatter"
)

func TestWriteCSV(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"2020-03-01", "2020-03-02"}, series.String, "Date"),
		series.New([]float64{1000, math.NaN()}, series.Float, "Subways"),
	)

	var buf strings.Builder
	require.NoError(t, formatter.WriteCSV(&buf, df))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Subways", lines[0])
	assert.Equal(t, "2020-03-01,1000.000000", lines[1])
	assert.Equal(t, "2020-03-02,NaN", lines[2])
}
