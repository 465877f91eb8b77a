package config

import (
	"fmt"
	"strings"
	"time"
)

type AdzunaConfig struct {
	AppID                string  `mapstructure:"app_id"`
	AppKey               string  `mapstructure:"app_key"`
	Country              string  `mapstructure:"country"`
	MaxRequestsPerSecond float32 `mapstructure:"max_requests_per_second"`
}

type JSearchConfig struct {
	APIKey               string  `mapstructure:"api_key"`
	Host                 string  `mapstructure:"host"`
	MaxRequestsPerSecond float32 `mapstructure:"max_requests_per_second"`
}

type HHConfig struct {
	Enabled              bool    `mapstructure:"enabled"`
	AreaID               string  `mapstructure:"area_id"`
	MaxRequestsPerSecond float32 `mapstructure:"max_requests_per_second"`
}

type SourcesConfig struct {
	Adzuna         AdzunaConfig  `mapstructure:"adzuna"`
	JSearch        JSearchConfig `mapstructure:"jsearch"`
	HH             HHConfig      `mapstructure:"hh"`
	MaxConcurrency int           `mapstructure:"max_concurrency"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

func (config *SourcesConfig) validate() error {

	var invalid []string

	if config.MaxConcurrency < 1 {
		invalid = append(invalid, "max_concurrency")
	}
	if config.Timeout <= 0 {
		invalid = append(invalid, "timeout")
	}
	if config.Adzuna.MaxRequestsPerSecond <= 0 {
		invalid = append(invalid, "adzuna.max_requests_per_second")
	}
	if config.JSearch.MaxRequestsPerSecond <= 0 {
		invalid = append(invalid, "jsearch.max_requests_per_second")
	}
	if config.HH.MaxRequestsPerSecond <= 0 {
		invalid = append(invalid, "hh.max_requests_per_second")
	}

	if len(invalid) > 0 {
		return fmt.Errorf("invalid variables: %s", strings.Join(invalid, ", "))
	}

	return nil
}

func (config *SourcesConfig) bindEnvironmentVariables() error {
	return bindAll(map[string]string{
		"sources.adzuna.app_id":   "ADZUNA_APP_ID",
		"sources.adzuna.app_key":  "ADZUNA_APP_KEY",
		"sources.adzuna.country":  "ADZUNA_COUNTRY",
		"sources.jsearch.api_key": "JSEARCH_API_KEY",
		"sources.hh.enabled":      "HH_ENABLED",
	})
}
