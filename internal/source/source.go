package source

import (
	"context"

	"go-sentiment-snapshot/internal/model"
)

// Metadata is the product identity resolved from the scraping source.
type Metadata struct {
	ProductName  string
	Manufacturer string
	Price        float64
}

// ReviewSource is the external scraping collaborator. Reviews may fail per
// page; the caller treats a failed page as contributing zero reviews.
type ReviewSource interface {
	ProductMetadata(ctx context.Context, asin string) (*Metadata, error)
	Reviews(ctx context.Context, asin string, page int) ([]model.RawReview, error)
}
