package competitorcache

import (
	"context"
	"fmt"
	"time"

	"go-sentiment-snapshot/internal/database"
	ierr "go-sentiment-snapshot/internal/errors"
	"go-sentiment-snapshot/internal/model"
	"go-sentiment-snapshot/internal/utils"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CompetitorCacheRepository stores the generated competitor-name list per
// (productName, manufacturer) pair. The doc id is a hash of the exact key
// strings, so no normalization or fuzzy matching happens across calls, and
// concurrent Puts for the same key converge on the same doc (last write wins
// instead of a duplicate-key error).
type CompetitorCacheRepository struct {
	db database.Client
}

var _ IRepository = CompetitorCacheRepository{}

func New(db database.Client) CompetitorCacheRepository {
	return CompetitorCacheRepository{
		db: db,
	}
}

func docId(productName, manufacturer string) string {
	return utils.Hash(productName + "|" + manufacturer)
}

// Get returns the cached names of the key, or errors.NotFound on a miss.
func (r CompetitorCacheRepository) Get(ctx context.Context, productName, manufacturer string) ([]string, error) {

	docRef := r.db.Collection(competitorCacheNode).Doc(docId(productName, manufacturer))
	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ierr.NotFound
		}
		return nil, fmt.Errorf("get competitor cache: %w, product: %s", err, productName)
	}

	if !docSnap.Exists() {
		return nil, ierr.NotFound
	}

	entry := model.CompetitorCacheEntry{}
	if err := docSnap.DataTo(&entry); err != nil {
		return nil, fmt.Errorf("get competitor cache: %w, product: %s", err, productName)
	}

	if entry.Names == nil {
		entry.Names = []string{}
	}

	return entry.Names, nil
}

func (r CompetitorCacheRepository) Put(ctx context.Context, productName, manufacturer string, names []string) error {

	entry := model.CompetitorCacheEntry{
		ProductName:  utils.StringToPointer(productName),
		Manufacturer: utils.StringToPointer(manufacturer),
		Names:        names,
		CreatedAt:    time.Now().UTC(),
	}

	docRef := r.db.Collection(competitorCacheNode).Doc(docId(productName, manufacturer))
	if _, err := r.db.SetDoc(ctx, docRef, entry); err != nil {
		return fmt.Errorf("put competitor cache: %w, product: %s", err, productName)
	}

	return nil
}
