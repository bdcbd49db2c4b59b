package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del terminal (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	Storage StorageConfig
	DB      DBConfig
	Receipt ReceiptConfig
	Session SessionConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP local que consume la UI.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig API REST remota del negocio.
type BackendConfig struct {
	BaseURL string        // ej. https://api.example.co.ke/api
	Timeout time.Duration // timeout por petición
}

// Drivers de almacenamiento del estado persistido de la sesión.
const (
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// StorageConfig dónde se guardan token, user, business y businessSettings.
type StorageConfig struct {
	Driver        string // file | redis | postgres
	Path          string // ruta del archivo JSON (driver file)
	EncryptionKey string // opcional: 32 bytes en hex; cifra el archivo con secretbox
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// DBConfig configuración de PostgreSQL (driver postgres y diario de recibos).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// Enabled indica si hay suficiente configuración para abrir un pool.
func (c DBConfig) Enabled() bool {
	return c.DatabaseURL != "" || c.Host != ""
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// ReceiptConfig impresión y archivo de recibos.
type ReceiptConfig struct {
	Footer        string
	Journal       bool // registra cada recibo impreso en Postgres
	ArchiveBucket string
	S3Region      string
	S3Endpoint    string
	S3AccessKey   string
	S3SecretKey   string
}

// ArchiveEnabled indica si los PDF se suben a S3.
func (c ReceiptConfig) ArchiveEnabled() bool {
	return c.ArchiveBucket != ""
}

// SessionConfig opciones de la sesión local.
type SessionConfig struct {
	ExpiryCron string // vacío = sin vigilancia de expiración del token
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_URL, STORAGE_DRIVER, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración a partir de una instancia ya cargada.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "bizdash"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8090),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(getString(v, "BACKEND_URL", "http://localhost:8080/api"), "/"),
			Timeout: time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 20)) * time.Second,
		},
		Storage: StorageConfig{
			Driver:        strings.ToLower(getString(v, "STORAGE_DRIVER", StorageFile)),
			Path:          getString(v, "STORAGE_PATH", "./data/state.json"),
			EncryptionKey: getString(v, "STORAGE_ENCRYPTION_KEY", ""),
			RedisAddr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			RedisPassword: getString(v, "REDIS_PASSWORD", ""),
			RedisDB:       getInt(v, "REDIS_DB", 0),
			RedisPrefix:   getString(v, "REDIS_PREFIX", "bizdash:"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", ""),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "bizdash"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Receipt: ReceiptConfig{
			Footer:        getString(v, "RECEIPT_FOOTER", "Thank you for your business!"),
			Journal:       getBool(v, "RECEIPT_JOURNAL", false),
			ArchiveBucket: getString(v, "RECEIPT_ARCHIVE_BUCKET", ""),
			S3Region:      getString(v, "S3_REGION", "af-south-1"),
			S3Endpoint:    getString(v, "S3_ENDPOINT", ""),
			S3AccessKey:   getString(v, "S3_ACCESS_KEY", ""),
			S3SecretKey:   getString(v, "S3_SECRET_KEY", ""),
		},
		Session: SessionConfig{
			ExpiryCron: getString(v, "SESSION_EXPIRY_CRON", ""),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageFile, StorageRedis:
	case StoragePostgres:
		if !c.DB.Enabled() {
			return fmt.Errorf("config: STORAGE_DRIVER=postgres requiere DATABASE_URL o DB_HOST")
		}
	default:
		return fmt.Errorf("config: STORAGE_DRIVER desconocido %q", c.Storage.Driver)
	}
	if c.Receipt.Journal && !c.DB.Enabled() {
		return fmt.Errorf("config: RECEIPT_JOURNAL requiere DATABASE_URL o DB_HOST")
	}
	if _, err := url.ParseRequestURI(c.Backend.BaseURL); err != nil {
		return fmt.Errorf("config: BACKEND_URL inválido: %w", err)
	}
	return nil
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
