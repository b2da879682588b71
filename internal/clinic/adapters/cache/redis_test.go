package cache_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicdesk/internal/clinic/adapters/cache"
	"clinicdesk/internal/clinic/config"
	cachePorts "clinicdesk/internal/clinic/ports/cache"
)

func mockRedisServer(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func redisConfigFor(t *testing.T, addr string) *config.RedisConfig {
	t.Helper()

	host, portStr, ok := strings.Cut(addr, ":")
	require.True(t, ok)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	return &config.RedisConfig{
		Host:            host,
		Port:            port,
		ConnectTimeout:  5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
		PoolSize:        10,
		MinIdle:         2,
		IdleTimeout:     5 * time.Minute,
		MaxConnLifetime: time.Hour,
		DefaultTTL:      time.Minute,
	}
}

func TestNewRedisCache(t *testing.T) {
	s := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, redisConfigFor(t, s.Addr()))
	require.NoError(t, err)
	require.NotNil(t, redisCache)

	_, ok := redisCache.(cachePorts.Cache)
	assert.True(t, ok)

	assert.NoError(t, redisCache.Close())
}

func TestNewRedisCacheConnectionFailure(t *testing.T) {
	cfg := &config.RedisConfig{
		Host:           "127.0.0.1",
		Port:           1,
		ConnectTimeout: 100 * time.Millisecond,
		ReadTimeout:    100 * time.Millisecond,
		WriteTimeout:   100 * time.Millisecond,
	}

	redisCache, err := cache.NewRedisCache(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, redisCache)
}

func TestRedisCacheSetGetDelete(t *testing.T) {
	s := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, redisConfigFor(t, s.Addr()))
	require.NoError(t, err)
	defer redisCache.Close()

	require.NoError(t, redisCache.Set(ctx, "patients:all", `[{"patientId":1}]`, time.Minute))

	value, err := redisCache.Get(ctx, "patients:all")
	require.NoError(t, err)
	assert.Equal(t, `[{"patientId":1}]`, value)

	require.NoError(t, redisCache.Delete(ctx, "patients:all"))

	value, err = redisCache.Get(ctx, "patients:all")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestRedisCacheGetMissReturnsEmpty(t *testing.T) {
	s := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, redisConfigFor(t, s.Addr()))
	require.NoError(t, err)
	defer redisCache.Close()

	value, err := redisCache.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestRedisCacheZeroTTLUsesDefault(t *testing.T) {
	s := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, redisConfigFor(t, s.Addr()))
	require.NoError(t, err)
	defer redisCache.Close()

	require.NoError(t, redisCache.Set(ctx, "staff:all", "[]", 0))

	// The configured default is one minute; advance past it.
	s.FastForward(2 * time.Minute)

	value, err := redisCache.Get(ctx, "staff:all")
	require.NoError(t, err)
	assert.Empty(t, value)
}
