package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Settings     Settings     `mapstructure:",squash"`
	DailySummary DailySummary `mapstructure:",squash"`
}

type App struct {
	LogLevel string         `mapstructure:"log_level"`
	Timezone string         `mapstructure:"app_timezone"`
	Location *time.Location `mapstructure:"-"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Migrate  bool   `mapstructure:"database_migrate"`
}

type Settings struct {
	DefaultMonthlyTarget decimal.Decimal `mapstructure:"-"`
	RawMonthlyTarget     string          `mapstructure:"default_monthly_target"`
}

type DailySummary struct {
	CronSchedule string `mapstructure:"daily_summary_cron"`
	Enabled      bool   `mapstructure:"daily_summary_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 3000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_TIMEZONE", "America/Sao_Paulo")

	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_URL", "localhost:5432/tiktok_sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MIGRATE", true)

	viper.SetDefault("DEFAULT_MONTHLY_TARGET", "15000")

	viper.SetDefault("DAILY_SUMMARY_CRON", "0 23 * * *") // Todos os dias às 23h
	viper.SetDefault("DAILY_SUMMARY_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	if err := config.resolve(); err != nil {
		return nil, err
	}

	return config, nil
}

// resolve preenche os campos derivados a partir dos valores lidos
func (c *Config) resolve() error {
	switch c.Database.Driver {
	case DriverPostgres:
		c.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			c.Database.Driver,
			c.Database.User,
			c.Database.Password,
			c.Database.URL,
		)
	case DriverSQLite:
		c.Database.DSN = c.Database.URL
	default:
		return fmt.Errorf("driver de banco de dados não suportado: %q", c.Database.Driver)
	}

	target, err := decimal.NewFromString(c.Settings.RawMonthlyTarget)
	if err != nil {
		return fmt.Errorf("DEFAULT_MONTHLY_TARGET inválido: %w", err)
	}
	c.Settings.DefaultMonthlyTarget = target

	location, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		logrus.Warnf("Fuso horário inválido: %s, usando o fuso local", c.App.Timezone)
		location = time.Local
	}
	c.App.Location = location

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
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
