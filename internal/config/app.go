package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port               string `mapstructure:"port"`
	ReadTimeoutSec     int    `mapstructure:"read_timeout_sec"`
	WriteTimeoutSec    int    `mapstructure:"write_timeout_sec"`
	IdleTimeoutSec     int    `mapstructure:"idle_timeout_sec"`
	ShutdownTimeoutSec int    `mapstructure:"shutdown_timeout_sec"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
	Migrate  bool   `mapstructure:"migrate"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type Scheduler struct {
	RefreshIntervalSec int    `mapstructure:"refresh_interval_sec"`
	MaxRetries         uint64 `mapstructure:"max_retries"`
}

type Cache struct {
	MaxItems int64 `mapstructure:"max_items"`
	TTLSec   int   `mapstructure:"ttl_sec"`
}

type Provider struct {
	BaseURL         string `mapstructure:"base_url"`
	APIKey          string `mapstructure:"api_key"`
	APISecret       string `mapstructure:"api_secret"`
	SwapEndpoint    string `mapstructure:"swap_endpoint"`
	TickersEndpoint string `mapstructure:"tickers_endpoint"`
	UserID          string `mapstructure:"user_id"`
}

type Currency struct {
	Symbol    string `mapstructure:"symbol"`
	Name      string `mapstructure:"name"`
	AccountID string `mapstructure:"account_id"`
	Decimals  int32  `mapstructure:"decimals"`
}

// Catalog is a list rather than a map: viper lower-cases map keys.
type Catalog struct {
	LocaleCurrency  string     `mapstructure:"locale_currency"`
	DefaultDecimals int32      `mapstructure:"default_decimals"`
	Currencies      []Currency `mapstructure:"currencies"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	DbServer   DbServer   `mapstructure:"db_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Logging    Logging    `mapstructure:"logging"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
	Cache      Cache      `mapstructure:"cache"`
	Provider   Provider   `mapstructure:"provider"`
	Catalog    Catalog    `mapstructure:"catalog"`
}

// Validate reports settings the service cannot start without.
func (c *AppConfig) Validate() error {
	var errs []error
	if c.Provider.BaseURL == "" {
		errs = append(errs, errors.New("provider.base_url is required"))
	}
	if c.Provider.APIKey == "" {
		errs = append(errs, errors.New("provider api key is required"))
	}
	if c.Provider.APISecret == "" {
		errs = append(errs, errors.New("provider api secret is required"))
	}
	if c.Provider.UserID == "" {
		errs = append(errs, errors.New("provider.user_id is required"))
	}
	if strings.TrimSpace(c.Catalog.LocaleCurrency) == "" {
		errs = append(errs, errors.New("catalog.locale_currency is required"))
	}
	return errors.Join(errs...)
}

func Init() (*AppConfig, error) {
	return Load("config.yaml")
}

// Load reads .env (optional) and the yaml file at path, then overlays env vars.
func Load(path string) (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_server.read_timeout_sec", 10)
	v.SetDefault("http_server.write_timeout_sec", 15)
	v.SetDefault("http_server.idle_timeout_sec", 60)
	v.SetDefault("http_server.shutdown_timeout_sec", 10)
	v.SetDefault("db_server.max_conns", 10)
	v.SetDefault("db_server.migrate", true)
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("scheduler.refresh_interval_sec", 60)
	v.SetDefault("scheduler.max_retries", 3)
	v.SetDefault("cache.max_items", 16)
	v.SetDefault("cache.ttl_sec", 30)
	v.SetDefault("provider.swap_endpoint", "/trade/swap")
	v.SetDefault("provider.tickers_endpoint", "/trade/rates")
	v.SetDefault("catalog.locale_currency", "EUR")
	v.SetDefault("catalog.default_decimals", 2)

	// db server env vars
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")
	_ = v.BindEnv("db_server.migrate", "DB_MIGRATE")

	// http client env vars
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// provider env vars
	_ = v.BindEnv("provider.base_url", "PROVIDER_BASE_URL")
	_ = v.BindEnv("provider.api_key", "PROVIDER_API_KEY")
	_ = v.BindEnv("provider.api_secret", "PROVIDER_API_SECRET")
	_ = v.BindEnv("provider.user_id", "PROVIDER_USER_ID")

	_ = v.BindEnv("logging.level", "LOG_LEVEL")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// account env vars, one per configured currency
	for i := range cfg.Catalog.Currencies {
		cur := &cfg.Catalog.Currencies[i]
		key := "catalog_accounts." + strings.ToLower(strings.TrimSpace(cur.Symbol))
		_ = v.BindEnv(key, AccountEnvVar(cur.Symbol))
		if id := strings.TrimSpace(v.GetString(key)); id != "" {
			cur.AccountID = id
		}
	}

	return &cfg, nil
}

// AccountEnvVar names the env var that overrides a currency's account_id, e.g. CATALOG_ACCOUNT_ETH.
func AccountEnvVar(symbol string) string {
	return "CATALOG_ACCOUNT_" + strings.ToUpper(strings.TrimSpace(symbol))
}
