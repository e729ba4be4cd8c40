package analysisrequest

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go-sentiment-snapshot/internal/database"
	"go-sentiment-snapshot/internal/model"
	"go-sentiment-snapshot/internal/repository/filter"
	"go-sentiment-snapshot/internal/repository/helper"
	"go-sentiment-snapshot/internal/utils"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
)

// RequestEvent is emitted for every analysis request added to the store.
type RequestEvent struct {
	Request model.AnalysisRequest
	Err     error
}

// AnalysisRequestRepository stores the trigger docs that ask the service for
// a snapshot refresh.
type AnalysisRequestRepository struct {
	db database.Client
}

var _ IRepository = AnalysisRequestRepository{}

func New(db database.Client) AnalysisRequestRepository {
	return AnalysisRequestRepository{
		db: db,
	}
}

func (r AnalysisRequestRepository) Create(ctx context.Context, userId, asin string) (*model.AnalysisRequest, error) {

	docRef := r.db.Collection(analysisRequestNode).NewDoc()

	now := time.Now().UTC()
	request := model.AnalysisRequest{
		Id:        utils.StringToPointer(docRef.ID),
		UserId:    utils.StringToPointer(userId),
		Asin:      utils.StringToPointer(asin),
		Processed: utils.BoolToPointer(false),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.db.SetDoc(ctx, docRef, request); err != nil {
		return nil, fmt.Errorf("create analysis request: %w, userId: %s, asin: %s", err, userId, asin)
	}

	return &request, nil
}

func (r AnalysisRequestRepository) MarkProcessed(ctx context.Context, id string) error {

	docRef := r.db.Collection(analysisRequestNode).Doc(id)

	updates := []firestore.Update{
		{Path: ProcessedFieldPath, Value: true},
		{Path: UpdatedAtFieldPath, Value: time.Now().UTC()},
	}

	if _, err := r.db.UpdateDoc(ctx, docRef, updates); err != nil {
		return fmt.Errorf("mark analysis request processed: %w, id: %s", err, id)
	}

	return nil
}

// NotifyOnAdded emits an event for every request doc added to the store that
// matches the given filters.
func (r AnalysisRequestRepository) NotifyOnAdded(ctx context.Context, where []filter.Where) <-chan RequestEvent {

	ch := make(chan RequestEvent)
	var writeFailureCount, writeFailureThreshold int32 = 0, 3

	go func() {
		defer close(ch)

		query := r.db.Collection(analysisRequestNode).Query
		helper.NotifyOnChanges(ctx, r.db, query, where, firestore.DocumentAdded, func(dc firestore.DocumentChange, err error) error {

			if atomic.LoadInt32(&writeFailureCount) > writeFailureThreshold {
				return fmt.Errorf("write failure threshold reached")
			}

			request := model.AnalysisRequest{}

			if err != nil && !(errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
				log.Error().Err(err).Msg("analysis request repo: failed to read request events")
				helper.NonblockingWrite[RequestEvent](ctx, channelWriteTimeout, ch, RequestEvent{Request: request, Err: err})
				return err
			}

			if err := dc.Doc.DataTo(&request); err != nil {
				log.Error().Err(err).Msg("analysis request repo: failed to convert doc to request")
				return nil
			}

			if err := helper.NonblockingWrite[RequestEvent](ctx, channelWriteTimeout, ch, RequestEvent{Request: request}); err != nil {
				atomic.AddInt32(&writeFailureCount, 1)
			}

			return nil
		})
	}()

	return ch
}
