package app

import (
	"context"
	"testing"

	"lexhub_backend/internal/ai"
	"lexhub_backend/internal/config"
	"lexhub_backend/internal/logger"
	"lexhub_backend/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Database.DSN = "postgres://localhost/lexhub_test"
	cfg.Auth.SessionSecret = "secret"
	cfg.RateLimit.Requests = 10
	cfg.RateLimit.WindowSeconds = 60
	return cfg
}

// В test окружении пустой ключ AI допустим, чат при этом всегда отвечает ошибкой
func TestNewCompleter_TestEnvWithoutKey(t *testing.T) {
	logger.Init("test")
	cfg := testConfig()
	require.NoError(t, cfg.Validate())

	completer, closeFn := newCompleter(cfg)
	defer closeFn()

	require.IsType(t, unavailableCompleter{}, completer)
	out, err := completer.Complete(context.Background(), ai.CompletionRequest{})
	assert.Error(t, err)
	assert.Empty(t, out)
}

func TestValidate_AIKeyRequiredOutsideTest(t *testing.T) {
	cfg := testConfig()
	cfg.Server.Env = "production"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ai.api_key")
}

func TestNewRateLimiter_MemoryWithoutRedis(t *testing.T) {
	logger.Init("test")

	limiter := newRateLimiter(testConfig())
	assert.IsType(t, &middleware.MemoryRateLimiter{}, limiter)
}
