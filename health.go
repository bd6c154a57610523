package ridership

import (
	"net/http"
	"time"

	"github.com/theoremus-urban-solutions/mta-ridership/formatter"
)

type healthResponse struct {
	Status   string `json:"status"`
	Rows     int    `json:"rows"`
	LoadedAt string `json:"loaded_at"`
}

func handleHealth(store *SnapshotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		snap := store.Get()
		resp := healthResponse{
			Status:   "ok",
			Rows:     snap.Raw.Nrow(),
			LoadedAt: snap.LoadedAt.Format(time.RFC3339),
		}
		_, _ = w.Write(formatter.BuildJSON(resp))
	}
}
