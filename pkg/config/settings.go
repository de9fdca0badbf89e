package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

// Settings son los réglages de usuario del módulo de stock, persistidos en
// settings.json dentro del directorio de datos. Solo el diálogo de réglages
// los escribe; el diálogo de alertas lee el umbral.
type Settings struct {
	LowStockThreshold int    `mapstructure:"low_stock_threshold"`
	Currency          string `mapstructure:"currency"`
	Theme             string `mapstructure:"theme"`
	UserRole          string `mapstructure:"user_role"`
}

// Valores admitidos para los campos enumerados.
var (
	Currencies = []string{"EUR", "USD", "GBP", "CAD"}
	Themes     = []string{"Clair", "Sombre"}
	UserRoles  = []string{"Admin", "Vendeur", "Lecture seule"}
)

// DefaultSettings son los valores del primer arranque, antes de que exista
// settings.json.
func DefaultSettings() Settings {
	return Settings{
		LowStockThreshold: 10,
		Currency:          "EUR",
		Theme:             "Clair",
		UserRole:          "Admin",
	}
}

// Validate comprueba los campos enumerados y el umbral.
func (s Settings) Validate() error {
	if s.LowStockThreshold < 0 {
		return fmt.Errorf("low_stock_threshold %d: debe ser >= 0", s.LowStockThreshold)
	}
	if !contains(Currencies, s.Currency) {
		return fmt.Errorf("currency %q: valor no admitido", s.Currency)
	}
	if !contains(Themes, s.Theme) {
		return fmt.Errorf("theme %q: valor no admitido", s.Theme)
	}
	if !contains(UserRoles, s.UserRole) {
		return fmt.Errorf("user_role %q: valor no admitido", s.UserRole)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// LoadSettings lee settings.json de la ruta indicada. Si el fichero no
// existe devuelve los valores por defecto sin error.
func LoadSettings(path string) (Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	defaults := DefaultSettings()
	v.SetDefault("low_stock_threshold", defaults.LowStockThreshold)
	v.SetDefault("currency", defaults.Currency)
	v.SetDefault("theme", defaults.Theme)
	v.SetDefault("user_role", defaults.UserRole)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return defaults, nil
		}
		return Settings{}, fmt.Errorf("leer %s: %w", path, err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("parsear %s: %w", path, err)
	}
	return s, nil
}

// SaveSettings valida y escribe settings.json (reescritura completa).
func SaveSettings(path string, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.Set("low_stock_threshold", s.LowStockThreshold)
	v.Set("currency", s.Currency)
	v.Set("theme", s.Theme)
	v.Set("user_role", s.UserRole)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	return nil
}
