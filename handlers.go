package ridership

import (
	"net/http"

	"github.com/theoremus-urban-solutions/mta-ridership/analytics"
	"github.com/theoremus-urban-solutions/mta-ridership/formatter"
)

type errorPayload struct {
	Call  string `json:"call"`
	Error string `json:"error"`
}

func buildErrorPayload(call, msg string) []byte {
	return formatter.BuildJSON(errorPayload{Call: call, Error: msg})
}

func handleDaily(store *SnapshotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		snap := store.Get()
		_, _ = w.Write(formatter.BuildJSON(formatter.Records(snap.Scaled.DF())))
	}
}

func handleResampled(store *SnapshotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		g, err := normalizeGranularity(r.URL.Query().Get("granularity"))
		if err != nil {
			w.WriteHeader(400)
			_, _ = w.Write(buildErrorPayload("resampled", err.Error()))
			return
		}
		snap := store.Get()
		_, _ = w.Write(formatter.BuildJSON(formatter.Records(snap.Aggregates[g].DF())))
	}
}

func handleKPIs(store *SnapshotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(formatter.BuildJSON(store.Get().KPIs))
	}
}

func handleComparison(store *SnapshotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(formatter.BuildJSON(store.Get().Comparison))
	}
}

func handleMetrics(store *SnapshotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		g, err := normalizeGranularity(r.URL.Query().Get("granularity"))
		if err != nil {
			w.WriteHeader(400)
			_, _ = w.Write(buildErrorPayload("metrics", err.Error()))
			return
		}
		snap := store.Get()
		services, err := parseServices(r.URL.Query().Get("services"), snap.Scaled.ServiceColumns())
		if err != nil {
			w.WriteHeader(400)
			_, _ = w.Write(buildErrorPayload("metrics", err.Error()))
			return
		}
		metrics, err := analytics.PeriodMetrics(snap.Aggregates[g], services)
		if err != nil {
			w.WriteHeader(500)
			_, _ = w.Write(buildErrorPayload("metrics", err.Error()))
			return
		}
		_, _ = w.Write(formatter.BuildJSON(metrics))
	}
}
