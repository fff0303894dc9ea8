package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"images": map[string]any{
			"bucketUrl":     "",
			"publicBaseUrl": "",
		},
		"ticketSequence": map[string]any{
			"redis": map[string]any{
				"keyPrefix": "",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "IMAGES_BUCKETURL", want: "images.bucketUrl"},
		{envKey: "IMAGES_PUBLICBASEURL", want: "images.publicBaseUrl"},
		{envKey: "TICKETSEQUENCE_REDIS_KEYPREFIX", want: "ticketSequence.redis.keyPrefix"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("http:\n  port: 8080\nimages:\n  bucketUrl: mem://\n  folder: shop\ncleanup:\n  retryDelay: 30s\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))
	t.Chdir(dir)
	t.Setenv("IMAGES_BUCKETURL", "file:///tmp/media")
	t.Setenv("HTTP_CORSORIGINS", "https://a.test,https://b.test")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "file:///tmp/media", cfg.Images.BucketURL)
	assert.Equal(t, "shop", cfg.Images.Folder)
	assert.Equal(t, 30*time.Second, cfg.Cleanup.RetryDelay)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.HTTP.CORSOrigins)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.ErrorContains(t, err, "config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, "/api", cfg.HTTP.APIPrefix)
	assert.Equal(t, "30M", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "pol-products", cfg.Images.Folder)
	assert.Equal(t, 5, cfg.Images.MaxFiles)
	assert.Equal(t, int64(5*1024*1024), cfg.Images.MaxFileSize)
	assert.True(t, cfg.Cleanup.Enabled)
	assert.Equal(t, "@every 1m", cfg.Cleanup.Schedule)
	assert.Equal(t, "gorm", cfg.TicketSequence.Provider)
	assert.Equal(t, int64(1000), cfg.TicketSequence.StartAt)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "storefront_events", cfg.Events.Topic)

	cfg.Cleanup.Enabled = false
	cfg.ApplyDefaults()
	assert.False(t, cfg.Cleanup.Enabled)
}
