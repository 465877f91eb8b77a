package config

import (
	"errors"
	"fmt"
	"github.com/robfig/cron/v3"
)

type RefreshConfig struct {
	Schedule       string   `mapstructure:"schedule"`
	Queries        []string `mapstructure:"queries"`
	Location       string   `mapstructure:"location"`
	RunOnStart     bool     `mapstructure:"run_on_start"`
	ExpirationDays int      `mapstructure:"expiration_days"`
}

func (config *RefreshConfig) validate() error {
	var errs []error

	if _, err := cron.ParseStandard(config.Schedule); err != nil {
		errs = append(errs, fmt.Errorf("invalid schedule %q: %w", config.Schedule, err))
	}
	if len(config.Queries) == 0 {
		errs = append(errs, fmt.Errorf("missing variable: queries"))
	}
	if config.ExpirationDays <= 0 {
		errs = append(errs, fmt.Errorf("expiration_days must be greater than zero"))
	}

	return errors.Join(errs...)
}

func (config *RefreshConfig) bindEnvironmentVariables() error {
	return bindAll(map[string]string{
		"refresh.schedule":     "REFRESH_SCHEDULE",
		"refresh.run_on_start": "REFRESH_RUN_ON_START",
	})
}
