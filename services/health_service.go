package services

import (
	"context"
	"runtime"
	"time"

	"github.com/MonkyMars/gecho"
)

var uptimeStart time.Time

func init() {
	uptimeStart = time.Now()
}

type serverHealthStatus struct {
	Uptime       float64   `json:"uptime"`        // in seconds
	CurrentTime  time.Time `json:"current_time"`  // server current time
	ServiceAlive bool      `json:"service_alive"` // always true if service is running
	RamStats     *RamStats `json:"ram_stats"`
}

type RamStats struct {
	TotalMB     uint64 `json:"total_mb"`
	UsedMB      uint64 `json:"used_mb"`
	FreeMB      uint64 `json:"free_mb"`
	UsedPercent uint64 `json:"used_percent"`
}

type sessionStoreHealthStatus struct {
	Backend        string         `json:"backend"`
	Connected      bool           `json:"connected"`
	LastChecked    time.Time      `json:"last_checked"`
	ResponseTimeMs int64          `json:"response_time_ms"`
	PoolStats      map[string]any `json:"pool_stats,omitempty"`
}

// poolStatsReporter is implemented by stores backed by a connection pool
type poolStatsReporter interface {
	GetConnectionStats() map[string]any
}

type HealthService struct {
	logger  *gecho.Logger
	store   SessionStore
	backend string
}

func NewHealthService(logger *gecho.Logger, store SessionStore, backend string) *HealthService {
	return &HealthService{
		logger:  logger,
		store:   store,
		backend: backend,
	}
}

func getRamStats() *RamStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	totalMB := m.Sys / 1024 / 1024
	usedMB := m.Alloc / 1024 / 1024
	freeMB := totalMB - usedMB
	usedPercent := uint64(0)
	if totalMB > 0 {
		usedPercent = (usedMB * 100) / totalMB
	}

	return &RamStats{
		TotalMB:     totalMB,
		UsedMB:      usedMB,
		FreeMB:      freeMB,
		UsedPercent: usedPercent,
	}
}

func (hs *HealthService) GetServerHealthStatus() serverHealthStatus {
	return serverHealthStatus{
		Uptime:       time.Since(uptimeStart).Seconds(),
		CurrentTime:  time.Now(),
		ServiceAlive: true,
		RamStats:     getRamStats(),
	}
}

func (hs *HealthService) GetSessionStoreHealthStatus(ctx context.Context) (sessionStoreHealthStatus, error) {
	start := time.Now()
	err := hs.store.Ping(ctx)
	elapsed := time.Since(start).Milliseconds()

	status := sessionStoreHealthStatus{
		Backend:        hs.backend,
		Connected:      err == nil,
		LastChecked:    time.Now(),
		ResponseTimeMs: elapsed,
	}
	if reporter, ok := hs.store.(poolStatsReporter); ok {
		status.PoolStats = reporter.GetConnectionStats()
	}

	if err != nil {
		hs.logger.Error("Session store health check failed", gecho.Field("error", err), gecho.Field("backend", hs.backend))
	}

	return status, err
}
