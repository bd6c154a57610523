package dataset

import (
	"github.com/go-gota/gota/series"
	"github.com/samber/lo"
)

// CountColumns are the seven ridership count columns that get scaled for
// chart readability. Percentage columns are never scaled.
var CountColumns = []string{
	"Subways",
	"Buses",
	"LIRR",
	"Metro-North",
	"Access-A-Ride",
	"Bridges and Tunnels",
	"Staten Island Railway",
}

const thousand = 1000.0

// ScaleToThousands returns a copy of the table with each count column divided
// by 1000. The receiver is left unchanged, missing values stay missing, and
// row count and date ordering are preserved.
func ScaleToThousands(t *Table) *Table {
	df := t.df
	for _, name := range CountColumns {
		if !hasColumn(df, name) {
			continue
		}
		scaled := lo.Map(df.Col(name).Float(), func(v float64, _ int) float64 {
			return v / thousand
		})
		df = df.Mutate(series.New(scaled, series.Float, name))
	}
	return &Table{df: df, dates: t.dates}
}
