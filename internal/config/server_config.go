package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Port          int           `mapstructure:"port"`
	RefreshSecret string        `mapstructure:"refresh_secret"`
	ReadTimeout   time.Duration `mapstructure:"read_timeout"`
	WriteTimeout  time.Duration `mapstructure:"write_timeout"`
}

func (config *ServerConfig) validate() error {
	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("invalid port: %d", config.Port)
	}
	if config.ReadTimeout <= 0 || config.WriteTimeout <= 0 {
		return fmt.Errorf("read and write timeouts must be positive")
	}
	return nil
}

func (config *ServerConfig) bindEnvironmentVariables() error {
	return bindAll(map[string]string{
		"server.port":           "PORT",
		"server.refresh_secret": "REFRESH_SECRET",
	})
}
