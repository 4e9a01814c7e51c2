package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	GoogleAds    GoogleAds    `mapstructure:",squash"`
	MetricsSync  MetricsSync  `mapstructure:",squash"`
	Capabilities Capabilities `mapstructure:"-"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host        string `mapstructure:"host"`
	Port        string `mapstructure:"port"`
	FrontendURL string `mapstructure:"frontend_url"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type GoogleAds struct {
	BaseURL         string `mapstructure:"google_ads_base_url"`
	URL             string `mapstructure:"-"`
	Version         string `mapstructure:"google_ads_version"`
	ClientID        string `mapstructure:"google_client_id"`
	ClientSecret    string `mapstructure:"google_client_secret"`
	RefreshToken    string `mapstructure:"google_refresh_token"`
	DeveloperToken  string `mapstructure:"google_developer_token"`
	CustomerID      string `mapstructure:"google_ads_customer_id"`
	LoginCustomerID string `mapstructure:"google_ads_login_customer_id"`
}

type MetricsSync struct {
	CronSchedule        string `mapstructure:"metrics_sync_cron"`
	LookbackDays        int    `mapstructure:"metrics_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"metrics_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"metrics_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"metrics_sync_enabled"`
}

// Capabilities is the typed result of the single startup configuration
// check: each flag gates a degraded mode instead of scattering per-module
// "configured or not" probes through the code.
type Capabilities struct {
	// AdsAPI is false when the Google Ads reporting credentials are
	// incomplete; the integrator then serves a fixed placeholder dataset.
	AdsAPI bool
	// OAuth is false when the Google OAuth client is incomplete; auth
	// endpoints then answer 503 with configuration guidance.
	OAuth bool
}

// IsProduction reports whether missing credentials must abort startup.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 3001)
	viper.SetDefault("FRONTEND_URL", "http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v17")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REFRESH_TOKEN", "")
	viper.SetDefault("GOOGLE_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")

	viper.SetDefault("METRICS_SYNC_CRON", "0 3 * * *")
	viper.SetDefault("METRICS_SYNC_LOOKBACK_DAYS", 30)
	viper.SetDefault("METRICS_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("METRICS_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("METRICS_SYNC_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("no .env readable by viper, relying on environment: ", err)
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

	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.resolveCapabilities(); err != nil {
		return nil, err
	}

	return config, nil
}

// resolveCapabilities runs the single configuration-validation step: in
// production missing credentials are fatal, otherwise the capability is
// switched off with a warning and the service degrades to placeholder data.
func (c *Config) resolveCapabilities() error {
	ads := c.GoogleAds
	c.Capabilities.AdsAPI = ads.ClientID != "" && ads.ClientSecret != "" &&
		ads.RefreshToken != "" && ads.DeveloperToken != ""
	c.Capabilities.OAuth = ads.ClientID != "" && ads.ClientSecret != "" &&
		c.Server.FrontendURL != ""

	if c.Capabilities.AdsAPI && c.Capabilities.OAuth {
		return nil
	}

	if c.IsProduction() {
		return fmt.Errorf("missing Google Ads API configuration: " +
			"GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET, GOOGLE_REFRESH_TOKEN and GOOGLE_DEVELOPER_TOKEN are required")
	}

	if !c.Capabilities.AdsAPI {
		logrus.Warn("Google Ads API credentials are missing; the upstream client will serve placeholder data")
	}
	if !c.Capabilities.OAuth {
		logrus.Warn("Google OAuth credentials are missing; auth endpoints will answer 503")
	}

	return nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug(".env loaded from: ", location)
			return
		}
	}
}
