package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{"STORE_DRIVER": "memory"}))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, "UTC", cfg.App.Timezone)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessExpiry)
	assert.True(t, cfg.Booking.CheckConflicts)
	assert.Empty(t, cfg.Booking.DefaultStatus)
	assert.False(t, cfg.Auth.IssueToken, "no secret means no tokens")
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestFromViper_SecretEnablesTokens(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{
		"STORE_DRIVER": "memory",
		"JWT_SECRET":   "secret",
	}))
	require.NoError(t, err)
	assert.True(t, cfg.Auth.IssueToken)

	cfg, err = fromViper(newViper(map[string]any{
		"STORE_DRIVER":     "memory",
		"JWT_SECRET":       "secret",
		"AUTH_ISSUE_TOKEN": false,
	}))
	require.NoError(t, err)
	assert.False(t, cfg.Auth.IssueToken)
}

func TestFromViper_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]any
	}{
		{"postgres without url", map[string]any{"STORE_DRIVER": "postgres"}},
		{"unknown driver", map[string]any{"STORE_DRIVER": "sqlite"}},
		{"mongo without uri", map[string]any{"STORE_DRIVER": "mongo"}},
		{"token without secret", map[string]any{"STORE_DRIVER": "memory", "AUTH_ISSUE_TOKEN": true}},
		{"bad timezone", map[string]any{"STORE_DRIVER": "memory", "APP_TIMEZONE": "Mars/Olympus"}},
		{"bad status", map[string]any{"STORE_DRIVER": "memory", "BOOKING_DEFAULT_STATUS": "Done"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fromViper(newViper(tt.values))
			assert.Error(t, err)
		})
	}
}

func TestFromViper_Mongo(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{
		"STORE_DRIVER": "Mongo",
		"MONGODB_URI":  "mongodb://localhost:27017",
	}))
	require.NoError(t, err)
	assert.Equal(t, StoreDriverMongo, cfg.DB.Driver)
	assert.Equal(t, "medical_appointments", cfg.Mongo.Database)
}

func TestDBConfig_ConnectionURL(t *testing.T) {
	c := DBConfig{Host: "db", Port: "5432", User: "app", Password: "p@ss", Name: "clinic", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/clinic?sslmode=disable", c.ConnectionURL())

	c.URL = "postgres://other/x"
	assert.Equal(t, "postgres://other/x", c.ConnectionURL())
}
