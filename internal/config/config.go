package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DatasetSourceCSV      = "csv"
	DatasetSourcePostgres = "postgres"
	DatasetSourceHTTP     = "http"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Dataset        Dataset        `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Cors           Cors           `mapstructure:",squash"`
	Metrics        Metrics        `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"database_conn_max_idle_time"`
}

type Dataset struct {
	Source string `mapstructure:"dataset_source"`
	Path   string `mapstructure:"dataset_path"`
	Table  string `mapstructure:"dataset_table"`
	URL    string `mapstructure:"dataset_url"`
	Token  string `mapstructure:"dataset_token"`
}

type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

type Auth struct {
	Enabled  bool          `mapstructure:"auth_enabled"`
	Secret   string        `mapstructure:"auth_secret"`
	Users    []string      `mapstructure:"auth_users"` // email|bcrypt-hash|role
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Metrics struct {
	Enabled bool `mapstructure:"metrics_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/funding?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_IDLE_TIME", "5m")

	viper.SetDefault("DATASET_SOURCE", DatasetSourceCSV)
	viper.SetDefault("DATASET_PATH", "startup_cleaned.csv")
	viper.SetDefault("DATASET_TABLE", "funding_rounds")
	viper.SetDefault("DATASET_URL", "")
	viper.SetDefault("DATASET_TOKEN", "")

	viper.SetDefault("DATASET_REFRESH_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)

	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_USERS", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("METRICS_ENABLED", true)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate verifica combinações de configuração que impedem a API de subir
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case DatasetSourceCSV:
		if c.Dataset.Path == "" {
			return fmt.Errorf("DATASET_PATH é obrigatório quando DATASET_SOURCE=%s", DatasetSourceCSV)
		}
	case DatasetSourcePostgres:
		if c.Dataset.Table == "" {
			return fmt.Errorf("DATASET_TABLE é obrigatório quando DATASET_SOURCE=%s", DatasetSourcePostgres)
		}
	case DatasetSourceHTTP:
		if c.Dataset.URL == "" {
			return fmt.Errorf("DATASET_URL é obrigatório quando DATASET_SOURCE=%s", DatasetSourceHTTP)
		}
	default:
		return fmt.Errorf("DATASET_SOURCE inválido: %q", c.Dataset.Source)
	}

	if c.Auth.Enabled && c.Auth.Secret == "" {
		return fmt.Errorf("AUTH_SECRET é obrigatório quando AUTH_ENABLED=true")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
