package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("marketplace")
	require.NoError(t, err)

	assert.Equal(t, "marketplace", cfg.Server.ServiceName)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)

	assert.InDelta(t, 5, cfg.Scoring.MaxDistanceKm, 0.001)
	assert.Equal(t, "₹", cfg.Scoring.CurrencySymbol)
	assert.Equal(t, 70, cfg.Scoring.RecommendThreshold)

	assert.InDelta(t, 10000, cfg.Fraud.HighValuePrice, 0.001)
	assert.Equal(t, 7, cfg.Fraud.NewAccountDays)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SCORING_MAX_DISTANCE_KM", "12.5")
	t.Setenv("SCORING_CURRENCY_SYMBOL", "$")
	t.Setenv("SCORING_RECOMMEND_THRESHOLD", "80")
	t.Setenv("FRAUD_NEW_ACCOUNT_DAYS", "14")

	cfg, err := Load("marketplace")
	require.NoError(t, err)

	assert.InDelta(t, 12.5, cfg.Scoring.MaxDistanceKm, 0.001)
	assert.Equal(t, "$", cfg.Scoring.CurrencySymbol)
	assert.Equal(t, 80, cfg.Scoring.RecommendThreshold)
	assert.Equal(t, 14, cfg.Fraud.NewAccountDays)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("SCORING_RECOMMEND_THRESHOLD", "not-a-number")
	t.Setenv("FRAUD_HIGH_VALUE_PRICE", "also-bad")

	cfg, err := Load("marketplace")
	require.NoError(t, err)

	assert.Equal(t, 70, cfg.Scoring.RecommendThreshold)
	assert.InDelta(t, 10000, cfg.Fraud.HighValuePrice, 0.001)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host: "db", Port: "5432", User: "app", Password: "secret",
		DBName: "marketplace", SSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=marketplace sslmode=disable", cfg.DSN())
}

func TestRedisAddr(t *testing.T) {
	cfg := RedisConfig{Host: "cache", Port: "6379"}
	assert.Equal(t, "cache:6379", cfg.RedisAddr())
}
