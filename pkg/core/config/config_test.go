package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortURLConfig_WithDefaults(t *testing.T) {
	cfg := ShortURLConfig{WebLocation: "console"}.WithDefaults()

	assert.Equal(t, "console", cfg.WebLocation)
	assert.Equal(t, DefaultAssetCacheControl, cfg.AssetCacheControl)
	assert.Equal(t, 300, cfg.LinkCacheTTL)
	assert.Equal(t, 6, cfg.CodeLength)
	assert.Equal(t, "admin", cfg.BootstrapAdmin.Username)
}

func TestOpen_Sqlite(t *testing.T) {
	db, err := Open(Database{Driver: DriverSqlite, Path: ":memory:"}, ProxyConfig{})
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(Database{Driver: "oracle"}, ProxyConfig{})
	assert.Error(t, err)
}

func TestProxyConfig_DisabledReturnsDirectDialer(t *testing.T) {
	assert.NotNil(t, ProxyConfig{}.GetDialer())
	assert.NotNil(t, ProxyConfig{}.GetContextDialer())
}
