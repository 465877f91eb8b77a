package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"os"
)

type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger"`
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"db"`
	Sources  SourcesConfig  `mapstructure:"sources"`
	Refresh  RefreshConfig  `mapstructure:"refresh"`
	Search   SearchConfig   `mapstructure:"search"`
	Notifier NotifierConfig `mapstructure:"notifier"`
}

type section interface {
	validate() error
	bindEnvironmentVariables() error
}

var configFile = "./configs/config.yaml"

func Get() *Config {

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("can't load .env file: %v", err)
	}

	file := configFile
	if value, ok := os.LookupEnv("CONFIG_PATH"); ok && value != "" {
		file = value
	}

	config, err := Load(file)
	if err != nil {
		log.Fatal(err)
	}

	return config
}

func Load(file string) (*Config, error) {

	viper.Reset()
	viper.SetConfigFile(file)
	viper.AutomaticEnv()

	setDefaults()

	config := Config{}
	if err := bindEnvironmentVariables(config.sections()); err != nil {
		return nil, err
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", file, err)
	}

	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "10s")
	viper.SetDefault("server.write_timeout", "60s")
	viper.SetDefault("sources.max_concurrency", 4)
	viper.SetDefault("sources.timeout", "10s")
	viper.SetDefault("search.page_size", 20)
	viper.SetDefault("search.max_page_size", 100)
	viper.SetDefault("search.cache_ttl", "15m")
	viper.SetDefault("search.seed_blend.mode", string(SeedBlendFallback))
	viper.SetDefault("search.seed_blend.count", 2)
	viper.SetDefault("refresh.expiration_days", 30)
}

func (config *Config) sections() map[string]section {
	return map[string]section{
		"LoggerConfig":   &config.Logger,
		"ServerConfig":   &config.Server,
		"DBConfig":       &config.DB,
		"SourcesConfig":  &config.Sources,
		"RefreshConfig":  &config.Refresh,
		"SearchConfig":   &config.Search,
		"NotifierConfig": &config.Notifier,
	}
}

func bindEnvironmentVariables(sections map[string]section) error {
	var errs []error

	for name, s := range sections {
		if err := s.bindEnvironmentVariables(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config *Config) validate() error {
	var errs []error

	for name, s := range config.sections() {
		if err := s.validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func bindAll(bindings map[string]string) error {
	var errs []error
	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
