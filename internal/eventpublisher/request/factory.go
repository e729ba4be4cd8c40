package request

import (
	"context"

	requestRepo "go-sentiment-snapshot/internal/repository/analysisrequest"
	"go-sentiment-snapshot/internal/repository/filter"
	"go-sentiment-snapshot/internal/repository/ops"
)

type Factory interface {
	OnPendingAnalysisRequest() RequestPublisher
}

type factory struct {
	repo requestRepo.IRepository
}

func RequestPublisherFactory(repo requestRepo.IRepository) Factory {
	return &factory{
		repo: repo,
	}
}

func (f *factory) OnPendingAnalysisRequest() RequestPublisher {
	return new(func(ctx context.Context) <-chan requestRepo.RequestEvent {
		return f.repo.NotifyOnAdded(ctx,
			[]filter.Where{{Path: requestRepo.ProcessedFieldPath, Op: ops.Equal, Value: false}})
	})
}
