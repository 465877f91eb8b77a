package config

import (
	"errors"
	"fmt"
	"time"
)

type SeedBlendMode string

const (
	// SeedBlendFallback serves seed jobs only when nothing else was found.
	SeedBlendFallback SeedBlendMode = "fallback"
	// SeedBlendAlways appends a few seed jobs to every result.
	SeedBlendAlways   SeedBlendMode = "always"
	SeedBlendNever    SeedBlendMode = "never"
)

type SeedBlendConfig struct {
	Mode  SeedBlendMode `mapstructure:"mode"`
	Count int           `mapstructure:"count"`
}

type SearchConfig struct {
	PageSize    int             `mapstructure:"page_size"`
	MaxPageSize int             `mapstructure:"max_page_size"`
	CacheTTL    time.Duration   `mapstructure:"cache_ttl"`
	SeedBlend   SeedBlendConfig `mapstructure:"seed_blend"`
}

func (config *SearchConfig) validate() error {
	var errs []error

	if config.PageSize < 1 || config.PageSize > config.MaxPageSize {
		errs = append(errs, fmt.Errorf("page_size must be between 1 and max_page_size"))
	}

	switch config.SeedBlend.Mode {
	case SeedBlendFallback, SeedBlendNever:
	case SeedBlendAlways:
		if config.SeedBlend.Count < 1 {
			errs = append(errs, fmt.Errorf("seed_blend.count must be positive for mode %q", SeedBlendAlways))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown seed_blend.mode %q", config.SeedBlend.Mode))
	}

	return errors.Join(errs...)
}

func (config *SearchConfig) bindEnvironmentVariables() error {
	return bindAll(map[string]string{
		"search.seed_blend.mode": "SEED_BLEND_MODE",
	})
}
