package analytics

import (
	"fmt"
	"math"

	"github.com/theoremus-urban-solutions/mta-ridership/dataset"
)

// ServiceComparison is one row of the ridership comparison table: totals for
// the pre-pandemic baseline and the two matching October windows, plus the
// recovery percentages derived from the window averages.
type ServiceComparison struct {
	Service            string `json:"Service"`
	PrePandemic        string `json:"Pre-Pandemic"`
	FirstPostPandemic  string `json:"First Post-Pandemic Year"`
	CurrentYear        string `json:"Current Year"`
	PostRecoveryPct    string `json:"% of Pre-Pandemic (Post)"`
	CurrentRecoveryPct string `json:"% of Pre-Pandemic (Current)"`
}

// ComparisonTable builds the per-service comparison rows from the normalized
// (unscaled) table.
func ComparisonTable(t *dataset.Table, p Periods) []ServiceComparison {
	rows := make([]ServiceComparison, 0, len(t.ServiceColumns()))
	for _, svc := range t.ServiceColumns() {
		preTotal := sumOverWindow(t, []string{svc}, p.Baseline)
		firstTotal := sumOverWindow(t, []string{svc}, p.FirstPostPandemic)
		currentTotal := sumOverWindow(t, []string{svc}, p.Current)

		preAvg := meanOverWindow(t, svc, p.Baseline)
		firstAvg := meanOverWindow(t, svc, p.FirstPostPandemic)
		currentAvg := meanOverWindow(t, svc, p.Current)

		rows = append(rows, ServiceComparison{
			Service:            svc,
			PrePandemic:        formatWithCommas(int64(math.Round(preTotal))),
			FirstPostPandemic:  formatWithCommas(int64(math.Round(firstTotal))),
			CurrentYear:        formatWithCommas(int64(math.Round(currentTotal))),
			PostRecoveryPct:    formatRecovery(firstAvg, preAvg),
			CurrentRecoveryPct: formatRecovery(currentAvg, preAvg),
		})
	}
	return rows
}

func formatRecovery(avg, baselineAvg float64) string {
	if baselineAvg <= 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", avg/baselineAvg*100)
}
