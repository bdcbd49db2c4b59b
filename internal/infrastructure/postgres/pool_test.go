package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizdash/pkg/config"
)

func TestPoolConfig_DesdeCampos(t *testing.T) {
	pc, err := poolConfig(config.DBConfig{Host: "db.local", Port: 5433, User: "till", Password: "p@ss", DBName: "bizdash", SSLMode: "disable"})
	require.NoError(t, err)

	assert.Equal(t, "db.local", pc.ConnConfig.Host)
	assert.Equal(t, uint16(5433), pc.ConnConfig.Port)
	assert.Equal(t, "p@ss", pc.ConnConfig.Password)
	assert.Equal(t, int32(4), pc.MaxConns)
	assert.Equal(t, time.Hour, pc.MaxConnLifetime)
	assert.NotNil(t, pc.AfterConnect)
}

func TestPoolConfig_DatabaseURLTienePrioridad(t *testing.T) {
	pc, err := poolConfig(config.DBConfig{DatabaseURL: "postgres://u:x@remote:6543/shop?sslmode=disable", Host: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "remote", pc.ConnConfig.Host)
	assert.Equal(t, "shop", pc.ConnConfig.Database)
}

func TestPoolConfig_DSNInvalido(t *testing.T) {
	_, err := poolConfig(config.DBConfig{DatabaseURL: "postgres://%zz"})
	assert.Error(t, err)
}
