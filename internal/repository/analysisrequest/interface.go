package analysisrequest

import (
	"context"

	"go-sentiment-snapshot/internal/model"
	"go-sentiment-snapshot/internal/repository/filter"
)

type IRepository interface {
	Create(ctx context.Context, userId, asin string) (*model.AnalysisRequest, error)
	MarkProcessed(ctx context.Context, id string) error
	NotifyOnAdded(ctx context.Context, where []filter.Where) <-chan RequestEvent
}
