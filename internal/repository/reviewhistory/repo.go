package reviewhistory

import (
	"context"
	"fmt"
	"time"

	"go-sentiment-snapshot/internal/database"
	"go-sentiment-snapshot/internal/model"
	"go-sentiment-snapshot/internal/utils"
)

// ReviewHistoryRepository records one audit row per fetch that produced a
// snapshot.
type ReviewHistoryRepository struct {
	db database.Client
}

var _ IRepository = ReviewHistoryRepository{}

func New(db database.Client) ReviewHistoryRepository {
	return ReviewHistoryRepository{
		db: db,
	}
}

func (r ReviewHistoryRepository) Append(ctx context.Context, userId, asin string) error {

	row := model.ReviewHistory{
		Asin:      utils.StringToPointer(asin),
		UserId:    utils.StringToPointer(userId),
		CreatedAt: time.Now().UTC(),
	}

	docRef := r.db.Collection(reviewHistoryNode).NewDoc()
	if _, err := r.db.SetDoc(ctx, docRef, row); err != nil {
		return fmt.Errorf("append review history: %w, userId: %s, asin: %s", err, userId, asin)
	}

	return nil
}
