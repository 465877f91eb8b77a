// Package sources adapts third-party job search providers to the common JobListing shape.
package sources

import (
	"context"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
)

type Query struct {
	Text     string
	Location string
	Page     int
	PageSize int
}

type Source interface {
	Name() string
	// IsEnabled is true when the credentials and configuration the source needs are present.
	IsEnabled() bool
	Search(ctx context.Context, query Query) ([]models.JobListing, error)
}

func qualifiedID(source, id string) string {
	return source + ":" + id
}
