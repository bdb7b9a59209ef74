package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// URL por defecto del backend de producción, como en el panel original.
const DefaultAPIURL = "https://kaelo-backend.onrender.com"

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App  AppConfig
	API  APIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// APIConfig configuración del backend remoto y de la sesión local.
type APIConfig struct {
	BaseURL        string // raíz del backend; sin barra final
	TimeoutSeconds int    // timeout de red del cliente HTTP; 0 = sin timeout
	TokenFile      string // ruta del archivo de token; vacío = ruta por defecto
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, KAELO_API_URL, KAELO_TOKEN_FILE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "kaelo-admin"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL:        strings.TrimRight(getString(v, "KAELO_API_URL", DefaultAPIURL), "/"),
			TimeoutSeconds: getInt(v, "HTTP_TIMEOUT_SECONDS", 30),
			TokenFile:      getString(v, "KAELO_TOKEN_FILE", ""),
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
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
