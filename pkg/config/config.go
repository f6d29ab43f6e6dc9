package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
// Se construye una sola vez en cmd/api y se pasa por referencia a cada componente.
type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Storage StorageConfig
	Mail    MailConfig
	Account AccountConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL   string
	Host          string
	Port          int
	User          string
	Password      string
	DBName        string
	SSLMode       string
	RunMigrations bool
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

// JWTConfig configuración de JWT. Con Secret vacío el login devuelve el token fijo.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host               string
	Port               int
	CORSAllowOrigins   string
	LoginRatePerMinute int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig configuración del object store (S3 o compatible) y del emisor de URLs firmadas.
type StorageConfig struct {
	Bucket            string
	Region            string
	Endpoint          string
	AccessKey         string
	SecretKey         string
	UseSSL            bool
	Prefix            string
	SignerURL         string // vacío = firma local con las credenciales del bucket
	PresignExpiration int    // segundos
}

// PresignTTL devuelve la expiración por defecto de las URLs firmadas.
func (c StorageConfig) PresignTTL() time.Duration {
	return time.Duration(c.PresignExpiration) * time.Second
}

// MailConfig configuración SMTP para las notificaciones.
type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	FromName string
}

// AccountConfig parámetros del flujo de creación de contraseña.
type AccountConfig struct {
	PasswordLinkBaseURL string
	ResetTokenTTLHours  int
}

// ResetTokenTTL devuelve la vigencia de un token de creación de contraseña.
func (c AccountConfig) ResetTokenTTL() time.Duration {
	return time.Duration(c.ResetTokenTTLHours) * time.Hour
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, S3_BUCKET, EMAIL_HOST, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "docflow-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL:   getString(v, "DATABASE_URL", ""),
			Host:          getString(v, "DB_HOST", "localhost"),
			Port:          getInt(v, "DB_PORT", 5432),
			User:          getString(v, "DB_USER", "postgres"),
			Password:      getString(v, "DB_PASS", "postgres"),
			DBName:        getString(v, "DB_NAME", "onboarding"),
			SSLMode:       getString(v, "DB_SSLMODE", "disable"),
			RunMigrations: getBool(v, "DB_RUN_MIGRATIONS", true),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "docflow"),
		},
		HTTP: HTTPConfig{
			Host:               getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:               getInt(v, "HTTP_PORT", 8080),
			CORSAllowOrigins:   getString(v, "CORS_ALLOW_ORIGINS", "*"),
			LoginRatePerMinute: getInt(v, "LOGIN_RATE_PER_MINUTE", 30),
		},
		Storage: StorageConfig{
			Bucket:            getString(v, "S3_BUCKET", "nome-do-seu-bucket"),
			Region:            getString(v, "S3_REGION", "us-east-1"),
			Endpoint:          getString(v, "S3_ENDPOINT", "s3.amazonaws.com"),
			AccessKey:         getString(v, "S3_ACCESS_KEY", ""),
			SecretKey:         getString(v, "S3_SECRET_KEY", ""),
			UseSSL:            getBool(v, "S3_USE_SSL", true),
			Prefix:            getString(v, "S3_PREFIX", "documentos/"),
			SignerURL:         getString(v, "SIGNER_URL", ""),
			PresignExpiration: getInt(v, "PRESIGN_EXPIRATION_SECONDS", 3600),
		},
		Mail: MailConfig{
			Host:     getString(v, "EMAIL_HOST", "smtp.seudominio.com"),
			Port:     getInt(v, "EMAIL_PORT", 587),
			User:     getString(v, "EMAIL_USER", "no-reply@seudominio.com"),
			Password: getString(v, "EMAIL_PASS", "senha-email"),
			FromName: getString(v, "EMAIL_FROM_NAME", "DocFlow"),
		},
		Account: AccountConfig{
			PasswordLinkBaseURL: getString(v, "PASSWORD_LINK_BASE_URL", "https://sua-plataforma.com/definir-senha"),
			ResetTokenTTLHours:  getInt(v, "RESET_TOKEN_TTL_HOURS", 24),
		},
	}
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
