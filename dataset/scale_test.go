package dataset_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/mta-ridership/dataset"
)

func TestScaleToThousands(t *testing.T) {
	csv := "Date,Subways,Buses,Subways: % of Pre-Pandemic\n" +
		"03/01/2020,1000000,2000,55.3\n" +
		"03/02/2020,2500000,4000,57.1\n"
	tbl, err := dataset.Read(strings.NewReader(csv))
	require.NoError(t, err)

	scaled := dataset.ScaleToThousands(tbl)

	assert.Equal(t, []float64{1000, 2500}, scaled.Col("Subways").Float())
	assert.Equal(t, []float64{2, 4}, scaled.Col("Buses").Float())
	// percentage columns are never scaled
	assert.Equal(t, []float64{55.3, 57.1}, scaled.Col("Subways: % of Pre-Pandemic").Float())
	assert.Equal(t, tbl.Nrow(), scaled.Nrow())
	assert.Equal(t, tbl.Dates(), scaled.Dates())
}

func TestScaleLeavesOriginalUnchanged(t *testing.T) {
	csv := "Date,Subways\n03/01/2020,1000000\n"
	tbl, err := dataset.Read(strings.NewReader(csv))
	require.NoError(t, err)

	_ = dataset.ScaleToThousands(tbl)

	assert.Equal(t, []float64{1000000}, tbl.Col("Subways").Float())
}

func TestScalePropagatesMissingValues(t *testing.T) {
	csv := "Date,Subways\n03/01/2020,\n03/02/2020,500\n"
	tbl, err := dataset.Read(strings.NewReader(csv))
	require.NoError(t, err)

	scaled := dataset.ScaleToThousands(tbl)

	vals := scaled.Col("Subways").Float()
	assert.True(t, math.IsNaN(vals[0]))
	assert.Equal(t, 0.5, vals[1])
}
