package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-erp/pkg/config"
)

func TestLoad_Defectos(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "stock-erp", cfg.App.Name)
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Empty(t, cfg.Mirror.URL, "sin MIRROR_URL el espejo queda desactivado")
	assert.Equal(t, 30*time.Second, cfg.Mirror.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Autosave.Interval)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("DATA_DIR", "/var/lib/stock")
	t.Setenv("MIRROR_URL", "https://demo.firebaseio.com")
	t.Setenv("MIRROR_TIMEOUT_SECONDS", "5")
	t.Setenv("AUTOSAVE_MINUTES", "1")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/stock", cfg.Data.Dir)
	assert.Equal(t, "https://demo.firebaseio.com", cfg.Mirror.URL)
	assert.Equal(t, 5*time.Second, cfg.Mirror.Timeout)
	assert.Equal(t, time.Minute, cfg.Autosave.Interval)
}
