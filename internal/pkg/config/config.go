package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ougirez/regstat/internal/pkg/constants"
	"github.com/spf13/viper"
)

const envPrefix = "REGSTAT"

// Config: снимок настроек viper после Load.
type Config struct {
	HTTPAddr        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	CORSOrigins     []string

	DBDriver          string
	DBDSN             string
	DBConnectAttempts int
	DBMaxConns        int

	LogLevel string
}

// Load читает .env (если есть), файл конфигурации (если задан) и переменные
// окружения REGSTAT_*. Значения из окружения перекрывают файл.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	setDefaults()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{
		HTTPAddr:          viper.GetString(constants.ViperHTTPAddrKey),
		RequestTimeout:    viper.GetDuration(constants.ViperHTTPRequestTimeoutKey),
		ShutdownTimeout:   viper.GetDuration(constants.ViperHTTPShutdownTimeoutKey),
		CORSOrigins:       viper.GetStringSlice(constants.ViperHTTPCORSOriginsKey),
		DBDriver:          viper.GetString(constants.ViperDBDriverKey),
		DBDSN:             viper.GetString(constants.ViperDBDSNKey),
		DBConnectAttempts: viper.GetInt(constants.ViperDBConnectAttemptsKey),
		DBMaxConns:        viper.GetInt(constants.ViperDBMaxConnsKey),
		LogLevel:          viper.GetString(constants.ViperLogLevelKey),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault(constants.ViperHTTPAddrKey, constants.DefaultHTTPAddr)
	viper.SetDefault(constants.ViperHTTPRequestTimeoutKey, constants.DefaultRequestTimeout)
	viper.SetDefault(constants.ViperHTTPShutdownTimeoutKey, constants.DefaultShutdownTimeout)
	viper.SetDefault(constants.ViperHTTPCORSOriginsKey, []string{"*"})
	viper.SetDefault(constants.ViperDBDriverKey, constants.DriverPostgres)
	viper.SetDefault(constants.ViperDBConnectAttemptsKey, constants.DefaultConnectAttempts)
	viper.SetDefault(constants.ViperDBMaxConnsKey, constants.DefaultMaxConns)
	viper.SetDefault(constants.ViperLogLevelKey, constants.DefaultLogLevel)
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case constants.DriverPostgres, constants.DriverSQLite:
	default:
		return fmt.Errorf("unsupported %s %q", constants.ViperDBDriverKey, c.DBDriver)
	}
	if c.DBDSN == "" {
		return fmt.Errorf("%s is required", constants.ViperDBDSNKey)
	}
	if c.DBConnectAttempts < 1 {
		return fmt.Errorf("%s must be positive", constants.ViperDBConnectAttemptsKey)
	}
	return nil
}
