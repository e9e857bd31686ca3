package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("PORT", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("ALLOWED_ORIGIN", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "insertDB", cfg.DBName)
	assert.Equal(t, "https://artfusion-f9745.web.app", cfg.AllowedOrigin)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://db.example.com:27017")
	t.Setenv("PORT", "8080")
	t.Setenv("DB_NAME", "artfusion")
	t.Setenv("ALLOWED_ORIGIN", "http://localhost:3000")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://db.example.com:27017", cfg.MongoURI)
	assert.Equal(t, "artfusion", cfg.DBName)
	assert.Equal(t, "http://localhost:3000", cfg.AllowedOrigin)
}

func TestLoadConfigRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGODB_URI", "")

	_, err := LoadConfig()
	require.Error(t, err)
}
