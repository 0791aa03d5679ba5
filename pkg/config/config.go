package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Admin   AdminConfig
	Feed    FeedConfig
	Catalog CatalogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de los tokens de sesión.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AdminConfig credenciales del administrador del panel. PasswordHash es un
// hash bcrypt pre-calculado; nunca se configura el password en claro.
type AdminConfig struct {
	Email        string
	PasswordHash string
}

// FeedConfig fuente remota de catálogo (API estilo dummyjson).
type FeedConfig struct {
	BaseURL   string
	PageLimit int // tamaño de página remota por fetch
}

// CatalogConfig parámetros de la vista del catálogo.
type CatalogConfig struct {
	PageSize int // productos por página visible
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// HTTP_PORT, JWT_SECRET, FEED_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "catalogo-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "catalogo-api"),
		},
		Admin: AdminConfig{
			Email:        getString(v, "ADMIN_EMAIL", "admin@gmail.com"),
			PasswordHash: getString(v, "ADMIN_PASSWORD_HASH", ""),
		},
		Feed: FeedConfig{
			BaseURL:   getString(v, "FEED_BASE_URL", "https://dummyjson.com"),
			PageLimit: getInt(v, "FEED_PAGE_LIMIT", 30),
		},
		Catalog: CatalogConfig{
			PageSize: getInt(v, "CATALOG_PAGE_SIZE", 12),
		},
	}

	if cfg.Feed.PageLimit <= 0 {
		return nil, fmt.Errorf("config: FEED_PAGE_LIMIT debe ser positivo")
	}
	if cfg.Catalog.PageSize <= 0 {
		return nil, fmt.Errorf("config: CATALOG_PAGE_SIZE debe ser positivo")
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
