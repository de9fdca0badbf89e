package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-erp/pkg/config"
)

func TestLoadSettings_FicheroAusenteDevuelveDefectos(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s, err := config.LoadSettings(path)
	require.NoError(t, err, "un fichero ausente no es un error")
	assert.Equal(t, config.DefaultSettings(), s)
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	in := config.Settings{
		LowStockThreshold: 3,
		Currency:          "USD",
		Theme:             "Sombre",
		UserRole:          "Vendeur",
	}

	require.NoError(t, config.SaveSettings(path, in))

	out, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadSettings_CamposParcialesCompletanConDefectos(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"low_stock_threshold": 7}`), 0o644))

	s, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 7, s.LowStockThreshold)
	assert.Equal(t, "EUR", s.Currency, "los campos ausentes toman el valor por defecto")
	assert.Equal(t, "Clair", s.Theme)
}

func TestSaveSettings_RechazaValoresNoAdmitidos(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s := config.DefaultSettings()
	s.Currency = "BTC"
	assert.Error(t, config.SaveSettings(path, s))

	s = config.DefaultSettings()
	s.Theme = "Néon"
	assert.Error(t, config.SaveSettings(path, s))

	s = config.DefaultSettings()
	s.LowStockThreshold = -1
	assert.Error(t, config.SaveSettings(path, s))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "una validación fallida no escribe el fichero")
}

func TestDefaultSettings_SonValidos(t *testing.T) {
	assert.NoError(t, config.DefaultSettings().Validate())
}
