package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Drivers disponibles para el blob store.
const (
	StoreDriverMemory   = "memory"
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	Store StoreConfig
	Log   LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig configuración del logger.
type LogConfig struct {
	Level string // debug, info, warn, error
}

// StoreConfig configuración del blob store.
// Driver selecciona el adaptador; los demás campos aplican según el driver.
type StoreConfig struct {
	Driver      string // memory, file, postgres, mongo
	Path        string // file: directorio de datos
	DatabaseURL string // postgres: connection string completo (prioridad sobre DB_*)
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MongoURI    string // mongo: URI de conexión
	MongoDB     string // mongo: nombre de la base de datos
}

// DSN devuelve el connection string de PostgreSQL: DATABASE_URL si está
// definido, si no el construido desde los campos DB_*.
func (c StoreConfig) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	var b strings.Builder
	b.WriteString("postgres://")
	b.WriteString(c.User)
	if c.Password != "" {
		b.WriteString(":" + c.Password)
	}
	b.WriteString("@" + c.Host + ":" + strconv.Itoa(c.Port))
	b.WriteString("/" + c.DBName)
	b.WriteString("?sslmode=" + c.SSLMode)
	return b.String()
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo .env).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, STORE_DRIVER, DB_HOST, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "retailmaster"),
		},
		Store: StoreConfig{
			Driver:      getString(v, "STORE_DRIVER", StoreDriverFile),
			Path:        getString(v, "STORE_PATH", "./data"),
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "retailmaster"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MongoURI:    getString(v, "MONGODB_URI", "mongodb://localhost:27017"),
			MongoDB:     getString(v, "MONGODB_DATABASE", "retailmaster"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
