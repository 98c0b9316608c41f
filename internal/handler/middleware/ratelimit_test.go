//go:build unit

package middleware

import (
	"testing"
	"time"

	"venuebook/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_BurstThenDeny(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{
		RequestsPerSecond: 1,
		Burst:             3,
		ClientTTL:         time.Minute,
	})

	ip := "203.0.113.10"
	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow(ip), "request %d within burst should pass", i+1)
	}
	assert.False(t, rl.Allow(ip), "request beyond burst should be denied")
}

func TestRateLimiter_ClientsAreIndependent(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{
		RequestsPerSecond: 1,
		Burst:             1,
		ClientTTL:         time.Minute,
	})

	assert.True(t, rl.Allow("203.0.113.10"))
	assert.False(t, rl.Allow("203.0.113.10"))
	assert.True(t, rl.Allow("203.0.113.11"))
}
