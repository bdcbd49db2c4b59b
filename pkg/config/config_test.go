package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizdash/pkg/config"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "127.0.0.1:8090", cfg.HTTP.Addr())
	assert.Equal(t, config.StorageFile, cfg.Storage.Driver)
	assert.Equal(t, 20*time.Second, cfg.Backend.Timeout)
	assert.False(t, cfg.Receipt.ArchiveEnabled())
}

func TestFromViper_TrimsBackendURL(t *testing.T) {
	v := viper.New()
	v.Set("BACKEND_URL", "https://api.example.co.ke/api/")
	v.Set("BACKEND_TIMEOUT_SECONDS", "5")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.co.ke/api", cfg.Backend.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
}

func TestFromViper_PostgresSinDSN_Error(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "postgres")

	_, err := config.FromViper(v)
	assert.Error(t, err)
}

func TestFromViper_DriverDesconocido_Error(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "sqlite")

	_, err := config.FromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_DSN_EscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss/word", DBName: "x", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss%2Fword@db:5432/x?sslmode=disable", c.ConnectionString())
}
