package ridership

import (
	"strings"

	"github.com/samber/lo"

	"github.com/theoremus-urban-solutions/mta-ridership/resample"
)

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// normalizeGranularity maps the granularity query parameter onto a bucket
// size. An empty parameter means monthly, matching the dashboard default.
func normalizeGranularity(s string) (resample.Granularity, error) {
	if strings.TrimSpace(s) == "" {
		return resample.Month, nil
	}
	g, err := resample.Parse(s)
	if err != nil {
		return "", &QueryError{Msg: "Unsupported granularity: " + s}
	}
	return g, nil
}

// parseServices splits the comma-separated services parameter and checks each
// against the available service columns. Empty means all services.
func parseServices(s string, available []string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return available, nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if !lo.Contains(available, name) {
			return nil, &QueryError{Msg: "Unknown service: " + name}
		}
		out = append(out, name)
	}
	if len(out) == 0 {
		return available, nil
	}
	return out, nil
}
