package snapshot

import (
	"context"

	"go-sentiment-snapshot/internal/model"
	"go-sentiment-snapshot/internal/repository/filter"
)

type IRepository interface {
	Latest(ctx context.Context, userId, asin string) (*model.SentimentSnapshot, error)
	Append(ctx context.Context, data model.SentimentSnapshot) (*model.SentimentSnapshot, error)
	History(ctx context.Context, userId, asin string) ([]model.SentimentSnapshot, error)
	NotifyOnAdded(ctx context.Context, where []filter.Where) <-chan SnapshotEvent
}
