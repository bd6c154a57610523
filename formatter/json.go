package formatter

import (
	"encoding/json"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Records converts a dataframe into records orientation: one object per row,
// keyed by column name. Missing numeric cells become JSON null.
func Records(df dataframe.DataFrame) []map[string]any {
	names := df.Names()
	types := df.Types()

	floatCols := make(map[string][]float64)
	stringCols := make(map[string][]string)
	for i, name := range names {
		if types[i] == series.Float {
			floatCols[name] = df.Col(name).Float()
		} else {
			stringCols[name] = df.Col(name).Records()
		}
	}

	out := make([]map[string]any, df.Nrow())
	for row := range out {
		rec := make(map[string]any, len(names))
		for _, name := range names {
			if vals, ok := floatCols[name]; ok {
				if math.IsNaN(vals[row]) {
					rec[name] = nil
				} else {
					rec[name] = vals[row]
				}
				continue
			}
			rec[name] = stringCols[name][row]
		}
		out[row] = rec
	}
	return out
}

// BuildJSON serializes a payload for an API response.
func BuildJSON(v any) []byte {
	b, _ := json.Marshal(v)
	return b
}
