package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alx-travel-app/backend/pkg/config"
	"github.com/alx-travel-app/backend/pkg/retry"
)

func fastRetry(attempts int) retry.Config {
	return retry.Config{
		MaxAttempts:   attempts,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		BackoffFactor: 2,
	}
}

func redisConfigFor(t *testing.T, mr *miniredis.Miniredis) *config.RedisConfig {
	t.Helper()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return &config.RedisConfig{Enabled: true, Host: mr.Host(), Port: port}
}

func TestNewClient_Connects(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := newClientWithRetry(context.Background(), redisConfigFor(t, mr), fastRetry(3))
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Client().Set(context.Background(), "k", "v", 0).Err())
	assert.True(t, mr.Exists("k"))
}

func TestNewClient_RetriesUntilAvailable(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := redisConfigFor(t, mr)
	mr.SetError("ERR not ready")

	go func() {
		time.Sleep(10 * time.Millisecond)
		mr.SetError("")
	}()

	retryCfg := fastRetry(50)
	retryCfg.InitialDelay = 2 * time.Millisecond
	client, err := newClientWithRetry(context.Background(), cfg, retryCfg)
	require.NoError(t, err)
	client.Close()
}

func TestNewClient_GivesUp(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := redisConfigFor(t, mr)
	mr.SetError("ERR not ready")

	_, err := newClientWithRetry(context.Background(), cfg, fastRetry(2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Redis: max retry attempts (2) exceeded")
}
