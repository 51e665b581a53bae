package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_GeolocationConfig(t *testing.T) {
	os.Setenv("GEOLOCATION_PROVIDER", "google")
	os.Setenv("GEOLOCATION_USER_AGENT", "test-agent")
	os.Setenv("GEOLOCATION_TIMEOUT", "3s")
	defer func() {
		os.Unsetenv("GEOLOCATION_PROVIDER")
		os.Unsetenv("GEOLOCATION_USER_AGENT")
		os.Unsetenv("GEOLOCATION_TIMEOUT")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "google", cfg.Geolocation.Provider)
	assert.Equal(t, "test-agent", cfg.Geolocation.UserAgent)
	assert.Equal(t, 3*time.Second, cfg.Geolocation.Timeout)
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("GEOLOCATION_PROVIDER")
	os.Unsetenv("LOCATION_SOURCE")
	os.Unsetenv("LOCATION_PERMISSION_STORE")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "nominatim", cfg.Geolocation.Provider)
	assert.Equal(t, "Disease Information System", cfg.Geolocation.UserAgent)
	assert.Equal(t, "https://nominatim.openstreetmap.org/reverse", cfg.Geolocation.NominatimURL)
	assert.Equal(t, "ip", cfg.Location.Source)
	assert.Equal(t, "redis", cfg.Location.PermissionStore)
	assert.Equal(t, "localhost:6379", cfg.Redis.RedisAddr())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	os.Setenv("LOCATION_FALLBACK_LAT", "north")
	os.Setenv("REDIS_PORT", "not-a-port")
	defer func() {
		os.Unsetenv("LOCATION_FALLBACK_LAT")
		os.Unsetenv("REDIS_PORT")
	}()

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 0.0, cfg.Location.FallbackLatitude)
	assert.Equal(t, 6379, cfg.Redis.Port)
}

func TestLoad_RejectsBadServerPort(t *testing.T) {
	os.Setenv("SERVER_PORT", "70000")
	defer os.Unsetenv("SERVER_PORT")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_AllowedOrigins(t *testing.T) {
	os.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	defer os.Unsetenv("ALLOWED_ORIGINS")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.Redis.Enabled)

	os.Setenv("ALLOWED_ORIGINS", " , ")
	cfg, err = Load()
	assert.NoError(t, err)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
}
