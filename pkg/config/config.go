package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados.
const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Storage string // mongo | memory
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// IsProduction indica si la app corre en producción.
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// MongoConfig configuración de MongoDB.
type MongoConfig struct {
	URI            string // mongodb://... o mongodb+srv://...
	Database       string
	AppName        string
	TimeoutSeconds int
}

// Timeout tiempo máximo de selección de servidor / conexión.
func (c MongoConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RedisConfig configuración de Redis (revocación de tokens). URL vacía = revocación en memoria.
type RedisConfig struct {
	URL string
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host           string
	Port           int
	HTTPSPort      int
	TLSCertFile    string
	TLSKeyFile     string
	AllowedOrigins []string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// TLSAddr devuelve la dirección de escucha HTTPS.
func (c HTTPConfig) TLSAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.HTTPSPort)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, MONGODB_URI, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "candy-store-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Mongo: MongoConfig{
			URI:            getString(v, "MONGODB_URI", ""),
			Database:       getString(v, "MONGODB_DATABASE", "candy_store"),
			AppName:        getString(v, "APP_NAME", "candy-store-api"),
			TimeoutSeconds: getInt(v, "MONGODB_TIMEOUT_SECONDS", 10),
		},
		Redis: RedisConfig{
			URL: getString(v, "REDIS_URL", ""),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "candy-store-api"),
		},
		HTTP: HTTPConfig{
			Host:           getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:           getInt(v, "HTTP_PORT", 8080),
			HTTPSPort:      getInt(v, "HTTPS_PORT", 8443),
			TLSCertFile:    getString(v, "TLS_CERT_FILE", "localhost.pem"),
			TLSKeyFile:     getString(v, "TLS_KEY_FILE", "localhost-key.pem"),
			AllowedOrigins: splitList(getString(v, "CORS_ALLOWED_ORIGINS", "")),
		},
		Storage: strings.ToLower(getString(v, "STORAGE_DRIVER", StorageMongo)),
	}

	if cfg.Storage != StorageMongo && cfg.Storage != StorageMemory {
		return nil, fmt.Errorf("STORAGE_DRIVER inválido: %q (mongo | memory)", cfg.Storage)
	}
	if cfg.Storage == StorageMongo && cfg.Mongo.URI == "" {
		return nil, fmt.Errorf("MONGODB_URI es requerido con STORAGE_DRIVER=mongo")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET es requerido")
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

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
