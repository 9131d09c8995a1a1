package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("BUCKET_NAME", "")
	t.Setenv("TABLE_NAME", "")
	t.Setenv("AWS_REGION", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.Equal(t, "factuprobucket", cfg.Bucket)
	assert.Equal(t, "Invoices", cfg.Table)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BUCKET_NAME", "other-bucket")
	t.Setenv("TABLE_NAME", "OtherInvoices")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("PUBLIC_BASE_URL", "https://cdn.example.com")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "other-bucket", cfg.Bucket)
	assert.Equal(t, "OtherInvoices", cfg.Table)
	assert.Equal(t, "eu-west-1", cfg.AWSRegion)
	assert.Equal(t, "https://cdn.example.com", cfg.PublicBaseURL)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestLoadConfig_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
}
