package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllHealthy(t *testing.T) {
	t.Run("true when every component is up", func(t *testing.T) {
		assert.True(t, allHealthy(map[string]bool{"mongo": true, "redis_cache": true}))
	})

	t.Run("false when any component is down", func(t *testing.T) {
		assert.False(t, allHealthy(map[string]bool{"mongo": true, "prediction": false}))
	})

	t.Run("true for an empty map", func(t *testing.T) {
		assert.True(t, allHealthy(map[string]bool{}))
	})
}

func TestGetHealthStatusSnapshot(t *testing.T) {
	healthMu.Lock()
	prev := currentHealth
	currentHealth = HealthStatus{
		Healthy:    false,
		Components: map[string]bool{"mongo": false, "redis_reminders": true},
		CheckedAt:  time.Now(),
	}
	healthMu.Unlock()
	defer func() {
		healthMu.Lock()
		currentHealth = prev
		healthMu.Unlock()
	}()

	got := GetHealthStatus()
	assert.False(t, got.Healthy)
	assert.False(t, got.Components["mongo"])
	assert.True(t, got.Components["redis_reminders"])
	assert.False(t, got.CheckedAt.IsZero())
}
