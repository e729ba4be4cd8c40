package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go-sentiment-snapshot/internal/database"
	ierr "go-sentiment-snapshot/internal/errors"
	"go-sentiment-snapshot/internal/model"
	"go-sentiment-snapshot/internal/repository/filter"
	"go-sentiment-snapshot/internal/repository/helper"
	"go-sentiment-snapshot/internal/repository/ops"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
)

// SnapshotEvent is emitted for every snapshot row appended to the store.
type SnapshotEvent struct {
	Snapshot model.SentimentSnapshot
	Err      error
}

// SnapshotRepository persists the append-only snapshot version history.
// Every Append creates a new row; nothing is ever updated in place.
type SnapshotRepository struct {
	db database.Client
}

var _ IRepository = SnapshotRepository{}

func New(db database.Client) SnapshotRepository {
	return SnapshotRepository{
		db: db,
	}
}

// Latest returns the newest snapshot of the (userId, asin) pair, or nil when
// the pair has no history yet. Collection fields of the returned snapshot are
// never nil, even when the stored doc predates one of them.
func (r SnapshotRepository) Latest(ctx context.Context, userId, asin string) (*model.SentimentSnapshot, error) {

	query := r.db.Collection(snapshotNode).Query.
		Where(UserIdFieldPath, ops.Equal, userId).
		Where(AsinFieldPath, ops.Equal, asin).
		OrderBy(TimestampFieldPath, firestore.Desc).
		Limit(1)

	var latest *model.SentimentSnapshot
	var convErr error

	err := r.db.QueryDocs(ctx, query, func(doc *firestore.DocumentSnapshot) {
		s := model.SentimentSnapshot{}
		if err := doc.DataTo(&s); err != nil {
			convErr = err
			return
		}
		s.EnsureDefaults()
		latest = &s
	})
	if err == nil {
		err = convErr
	}
	if err != nil {
		return nil, fmt.Errorf("%w: latest snapshot: %v, userId: %s, asin: %s", ierr.Persistence, err, userId, asin)
	}

	return latest, nil
}

// Append stores the snapshot as a new row and returns the stored value.
func (r SnapshotRepository) Append(ctx context.Context, data model.SentimentSnapshot) (*model.SentimentSnapshot, error) {

	if data.Timestamp.IsZero() {
		data.Timestamp = time.Now().UTC()
	}
	data.EnsureDefaults()

	docRef := r.db.Collection(snapshotNode).NewDoc()
	if _, err := r.db.SetDoc(ctx, docRef, data); err != nil {
		return nil, fmt.Errorf("append snapshot: %w, userId: %s, asin: %s", err, *data.UserId, *data.Asin)
	}

	return &data, nil
}

// History returns all snapshots of the pair, newest first.
func (r SnapshotRepository) History(ctx context.Context, userId, asin string) ([]model.SentimentSnapshot, error) {

	query := r.db.Collection(snapshotNode).Query.
		Where(UserIdFieldPath, ops.Equal, userId).
		Where(AsinFieldPath, ops.Equal, asin).
		OrderBy(TimestampFieldPath, firestore.Desc)

	history := make([]model.SentimentSnapshot, 0)
	err := r.db.QueryDocs(ctx, query, func(doc *firestore.DocumentSnapshot) {
		s := model.SentimentSnapshot{}
		if err := doc.DataTo(&s); err != nil {
			log.Error().Err(err).Msg("snapshot repo: failed to convert history doc")
			return
		}
		s.EnsureDefaults()
		history = append(history, s)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: snapshot history: %v, userId: %s, asin: %s", ierr.Persistence, err, userId, asin)
	}

	return history, nil
}

// NotifyOnAdded emits an event for every snapshot row appended to the store
// that matches the given filters.
func (r SnapshotRepository) NotifyOnAdded(ctx context.Context, where []filter.Where) <-chan SnapshotEvent {

	ch := make(chan SnapshotEvent)
	var writeFailureCount, writeFailureThreshold int32 = 0, 3

	go func() {
		defer close(ch)

		query := r.db.Collection(snapshotNode).Query
		helper.NotifyOnChanges(ctx, r.db, query, where, firestore.DocumentAdded, func(dc firestore.DocumentChange, err error) error {

			if atomic.LoadInt32(&writeFailureCount) > writeFailureThreshold {
				return fmt.Errorf("write failure threshold reached")
			}

			snapshot := model.SentimentSnapshot{}

			if err != nil && !(errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
				log.Error().Err(err).Msg("snapshot repo: failed to read snapshot events")
				helper.NonblockingWrite[SnapshotEvent](ctx, channelWriteTimeout, ch, SnapshotEvent{Snapshot: snapshot, Err: err})
				return err
			}

			if err := dc.Doc.DataTo(&snapshot); err != nil {
				log.Error().Err(err).Msg("snapshot repo: failed to convert doc to snapshot")
				return nil
			}
			snapshot.EnsureDefaults()

			if err := helper.NonblockingWrite[SnapshotEvent](ctx, channelWriteTimeout, ch, SnapshotEvent{Snapshot: snapshot}); err != nil {
				atomic.AddInt32(&writeFailureCount, 1)
			}

			return nil
		})
	}()

	return ch
}
