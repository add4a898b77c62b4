// File: utils/health.go
package utils

import (
	"context"
	"net/http"
	"sync"
	"time"

	"diagnotech/config"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is a point-in-time snapshot of every backing service the API
// depends on, keyed by component name.
type HealthStatus struct {
	Healthy    bool            `json:"healthy"`
	Components map[string]bool `json:"components"`
	CheckedAt  time.Time       `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot. Before the first
// check completes, CheckedAt is the zero time.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

func allHealthy(components map[string]bool) bool {
	for _, ok := range components {
		if !ok {
			return false
		}
	}
	return true
}

// StartHealthMonitor checks Mongo, each Redis database, and the prediction
// service once immediately and then every 60 seconds, updating the in-memory
// snapshot served by the health endpoint.
func StartHealthMonitor(mongoClient *mongo.Client) {
	reminderQueue := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	httpClient := &http.Client{Timeout: 5 * time.Second}

	collect := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		components := map[string]bool{
			"mongo":           mongoClient.Ping(ctx, nil) == nil,
			"redis_cache":     GetCacheClient().Ping(ctx).Err() == nil,
			"redis_auth":      GetAuthCacheClient().Ping(ctx).Err() == nil,
			"redis_reset":     GetResetCacheClient().Ping(ctx).Err() == nil,
			"redis_reminders": reminderQueue.Ping(ctx).Err() == nil,
			"prediction":      predictionReachable(ctx, httpClient),
		}

		healthMu.Lock()
		currentHealth = HealthStatus{
			Healthy:    allHealthy(components),
			Components: components,
			CheckedAt:  time.Now(),
		}
		healthMu.Unlock()
	}

	go func() {
		collect()

		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			collect()
		}
	}()
}

// predictionReachable probes the diagnosis model server. Any HTTP response
// counts as reachable; only transport failures mark it down.
func predictionReachable(ctx context.Context, client *http.Client) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, config.AppConfig.PredictionURL, nil)
	if err != nil {
		return false
	}
	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}
