package analytics

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/theoremus-urban-solutions/mta-ridership/dataset"
)

// KPIs is the headline metric set shown on the dashboard cards.
type KPIs struct {
	TotalRidership           string  `json:"total_ridership"`
	HighestRidershipDay      string  `json:"highest_ridership_day"`
	TotalRecovery            string  `json:"total_recovery"`
	TopService               string  `json:"top_service"`
	RecoveryPercentage       float64 `json:"recovery_percentage"`
	YoYGrowth                float64 `json:"yoy_growth"`
	AvgLockdownRidership     string  `json:"avg_lockdown_ridership"`
	AvgPostLockdownRidership string  `json:"avg_post_lockdown_ridership"`
}

// ComputeKPIs derives the full KPI set from the normalized (unscaled) table.
func ComputeKPIs(t *dataset.Table, p Periods) KPIs {
	day, total := HighestRidershipDay(t, p)
	topService, topRecovery := TopServiceRecovery(t, p)
	lockdownAvg, postLockdownAvg := AverageRiderships(t, p)
	return KPIs{
		TotalRidership:           total,
		HighestRidershipDay:      day,
		TotalRecovery:            fmt.Sprintf("%.1f%%", TotalRecovery(t, p)),
		TopService:               topService,
		RecoveryPercentage:       topRecovery,
		YoYGrowth:                YoYGrowth(t, p),
		AvgLockdownRidership:     lockdownAvg,
		AvgPostLockdownRidership: postLockdownAvg,
	}
}

// TotalRecovery returns current-window ridership across all services as a
// percentage of the pre-pandemic baseline total.
func TotalRecovery(t *dataset.Table, p Periods) float64 {
	cols := t.ServiceColumns()
	baseline := sumOverWindow(t, cols, p.Baseline)
	current := sumOverWindow(t, cols, p.Current)
	if baseline <= 0 {
		return 0
	}
	return current / baseline * 100
}

// TopServiceRecovery returns the service with the highest recovery percentage
// between the baseline and current windows, and that percentage.
func TopServiceRecovery(t *dataset.Table, p Periods) (string, float64) {
	best := ""
	bestRecovery := math.Inf(-1)
	for _, svc := range t.ServiceColumns() {
		baseline := sumOverWindow(t, []string{svc}, p.Baseline)
		current := sumOverWindow(t, []string{svc}, p.Current)
		recovery := 0.0
		if baseline > 0 {
			recovery = current / baseline * 100
		}
		if recovery > bestRecovery {
			best = svc
			bestRecovery = recovery
		}
	}
	if best == "" {
		return "", 0
	}
	return best, bestRecovery
}

// YoYGrowth returns the total ridership growth between the previous and
// current October windows, as a percentage.
func YoYGrowth(t *dataset.Table, p Periods) float64 {
	cols := t.ServiceColumns()
	previous := sumOverWindow(t, cols, p.PreviousOctober)
	current := sumOverWindow(t, cols, p.CurrentOctober)
	if previous <= 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// HighestRidershipDay finds the post-pandemic day with the highest summed
// ridership across all services. It returns the day as "02 Jan 2006" and the
// total in whole millions.
func HighestRidershipDay(t *dataset.Table, p Periods) (string, string) {
	totals := dailyTotals(t)
	dates := t.Dates()
	bestIdx := -1
	bestTotal := math.Inf(-1)
	for i, d := range dates {
		if d.Before(p.PandemicStart) {
			continue
		}
		if totals[i] > bestTotal {
			bestIdx = i
			bestTotal = totals[i]
		}
	}
	if bestIdx < 0 {
		return "", ""
	}
	return dates[bestIdx].Format("02 Jan 2006"),
		fmt.Sprintf("%.1fM", math.Floor(bestTotal/1_000_000))
}

// AverageRiderships returns the mean daily total ridership during the
// lockdown window and after it, formatted with thousands separators.
func AverageRiderships(t *dataset.Table, p Periods) (string, string) {
	totals := dailyTotals(t)
	dates := t.Dates()
	var lockdown, postLockdown []float64
	for i, d := range dates {
		switch {
		case p.Lockdown.Contains(d):
			lockdown = append(lockdown, totals[i])
		case p.PostLockdown.Contains(d):
			postLockdown = append(postLockdown, totals[i])
		}
	}
	return formatWithCommas(int64(math.Round(meanOf(lockdown)))),
		formatWithCommas(int64(math.Round(meanOf(postLockdown))))
}

// dailyTotals sums the service columns per row, skipping missing cells.
func dailyTotals(t *dataset.Table) []float64 {
	totals := make([]float64, t.Nrow())
	for _, name := range t.ServiceColumns() {
		for i, v := range t.Col(name).Float() {
			if !math.IsNaN(v) {
				totals[i] += v
			}
		}
	}
	return totals
}

func sumOverWindow(t *dataset.Table, cols []string, w Window) float64 {
	dates := t.Dates()
	sum := 0.0
	for _, name := range cols {
		vals := t.Col(name).Float()
		for i, d := range dates {
			if !w.Contains(d) {
				continue
			}
			if !math.IsNaN(vals[i]) {
				sum += vals[i]
			}
		}
	}
	return sum
}

func meanOverWindow(t *dataset.Table, col string, w Window) float64 {
	dates := t.Dates()
	vals := t.Col(col).Float()
	sample := make([]float64, 0, len(vals))
	for i, d := range dates {
		if w.Contains(d) && !math.IsNaN(vals[i]) {
			sample = append(sample, vals[i])
		}
	}
	return meanOf(sample)
}

func meanOf(sample []float64) float64 {
	if len(sample) == 0 {
		return 0
	}
	m, err := stats.Mean(sample)
	if err != nil {
		return 0
	}
	return m
}
