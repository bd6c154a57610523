package analytics

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/theoremus-urban-solutions/mta-ridership/resample"
)

// ServiceMetric is the per-service card content for one granularity: the
// latest period's value (in thousands, formatted K/M) and the change against
// the period before it.
type ServiceMetric struct {
	RidershipLastPeriod string  `json:"ridership_last_period"`
	PercentChange       float64 `json:"percent_change"`
}

// PeriodMetrics computes a ServiceMetric for each requested service from a
// resampled table built on the thousands-scaled data. The table needs at
// least two buckets so there is a previous period to compare against.
func PeriodMetrics(agg *resample.AggregatedTable, services []string) (map[string]ServiceMetric, error) {
	n := agg.Nrow()
	if n < 2 {
		return nil, fmt.Errorf("need at least two %s buckets, have %d", agg.Granularity(), n)
	}
	names := agg.DF().Names()
	metrics := make(map[string]ServiceMetric, len(services))
	for _, svc := range services {
		if !lo.Contains(names, svc) {
			return nil, fmt.Errorf("unknown service %q", svc)
		}
		vals := agg.Col(svc).Float()
		last, previous := vals[n-1], vals[n-2]
		if math.IsNaN(last) || math.IsNaN(previous) || previous == 0 {
			return nil, fmt.Errorf("service %q has no data for the last two periods", svc)
		}
		metrics[svc] = ServiceMetric{
			RidershipLastPeriod: formatThousands(last),
			PercentChange:       round2((last - previous) / previous * 100),
		}
	}
	return metrics, nil
}

// formatThousands renders a value already scaled to thousands: "1.2M" above
// a thousand (i.e. a million riders), otherwise a comma-grouped "512K".
func formatThousands(v float64) string {
	if v > 1000 {
		return fmt.Sprintf("%.1fM", round1(v/1000))
	}
	return formatWithCommas(int64(v)) + "K"
}
