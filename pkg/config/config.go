// Package config agrupa la configuración de arranque (vía Viper desde env)
// y los réglages de usuario persistidos en settings.json.
package config

import (
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Config configuración de arranque de la aplicación.
type Config struct {
	App      AppConfig
	Data     DataConfig
	Mirror   MirrorConfig
	Autosave AutosaveConfig
}

// AppConfig configuración general.
type AppConfig struct {
	Env      string // development, production
	Name     string
	LogLevel string
}

// DataConfig ubicación del directorio de datos (los cuatro JSON y
// settings.json viven ahí).
type DataConfig struct {
	Dir string
}

// MirrorConfig espejo remoto de mejor esfuerzo. URL vacía lo desactiva.
type MirrorConfig struct {
	URL     string
	Timeout time.Duration
}

// AutosaveConfig guardado automático periódico.
type AutosaveConfig struct {
	Interval time.Duration
}

// Load lee la configuración desde variables de entorno, con un fichero
// .env opcional en el directorio de trabajo. Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: fichero .env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "stock-erp"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Data: DataConfig{
			Dir: getString(v, "DATA_DIR", "data"),
		},
		Mirror: MirrorConfig{
			URL:     getString(v, "MIRROR_URL", ""),
			Timeout: time.Duration(getInt(v, "MIRROR_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Autosave: AutosaveConfig{
			Interval: time.Duration(getInt(v, "AUTOSAVE_MINUTES", 5)) * time.Minute,
		},
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
