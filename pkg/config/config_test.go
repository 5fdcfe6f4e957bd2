package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvVarsPriman(t *testing.T) {
	t.Setenv("DB_HOST", "db.interna")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.interna", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestDSN_EscapaCaracteresEspeciales(t *testing.T) {
	db := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:w/rd",
		DBName:   "inventory_system",
		SSLMode:  "disable",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "p%40ss%3Aw%2Frd", "la contraseña va URL-encoded")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestConnectionString_DatabaseURLManda(t *testing.T) {
	db := DBConfig{
		DatabaseURL: "postgresql://u:p@remoto:5432/db?sslmode=require",
		Host:        "localhost",
	}
	assert.Equal(t, db.DatabaseURL, db.ConnectionString())
}
