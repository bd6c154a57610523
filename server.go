package ridership

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

var server *http.Server

// StartServer exposes the snapshot views over HTTP and returns immediately.
func StartServer(store *SnapshotStore) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handleHealth(store))
	mux.HandleFunc("/api/ridership/daily.json", handleDaily(store))
	mux.HandleFunc("/api/ridership/resampled.json", handleResampled(store))
	mux.HandleFunc("/api/ridership/kpis.json", handleKPIs(store))
	mux.HandleFunc("/api/ridership/metrics.json", handleMetrics(store))
	mux.HandleFunc("/api/ridership/comparison.json", handleComparison(store))

	addr := fmt.Sprintf(":%d", Config.Server.Port)
	server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Infof("server listening on %s", addr)
}

// HandleGracefulShutdown blocks until SIGINT/SIGTERM, then drains the server.
func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Errorf("server shutdown error: %v", err)
		} else {
			log.Info("server shut down successfully")
		}
	}
}
