package snapshot

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go-sentiment-snapshot/internal/database"
	ierr "go-sentiment-snapshot/internal/errors"

	"cloud.google.com/go/firestore"
)

// fakeDB answers queries from a canned doc list or a canned error.
type fakeDB struct {
	queryErr error
}

var _ database.Client = fakeDB{}

func (db fakeDB) NotifyOnChanges(_ context.Context, _ *firestore.QuerySnapshotIterator, _ firestore.DocumentChangeKind) <-chan database.ChangeEvent {
	ch := make(chan database.ChangeEvent)
	close(ch)
	return ch
}

func (db fakeDB) GetDoc(_ context.Context, _ *firestore.DocumentRef) (*firestore.DocumentSnapshot, error) {
	return nil, fmt.Errorf("not implemented")
}

func (db fakeDB) IterDocs(ctx context.Context, coll *firestore.CollectionRef, fn func(*firestore.DocumentSnapshot)) error {
	return db.QueryDocs(ctx, coll.Query, fn)
}

func (db fakeDB) QueryDocs(_ context.Context, _ firestore.Query, _ func(*firestore.DocumentSnapshot)) error {
	return db.queryErr
}

func (db fakeDB) UpdateDoc(_ context.Context, _ *firestore.DocumentRef, _ []firestore.Update, _ ...firestore.Precondition) (*firestore.WriteResult, error) {
	return nil, fmt.Errorf("not implemented")
}

func (db fakeDB) SetDoc(_ context.Context, _ *firestore.DocumentRef, _ interface{}, _ ...firestore.SetOption) (*firestore.WriteResult, error) {
	return nil, fmt.Errorf("not implemented")
}

func (db fakeDB) SetDocs(_ context.Context, _ []database.DataBatch) ([]*firestore.WriteResult, error) {
	return nil, fmt.Errorf("not implemented")
}

func (db fakeDB) Collection(_ string) *firestore.CollectionRef {
	return &firestore.CollectionRef{}
}

func TestLatestSurfacesQueryFailure(t *testing.T) {
	repo := New(fakeDB{queryErr: fmt.Errorf("rpc error: code = PermissionDenied")})

	latest, err := repo.Latest(context.Background(), "user-1", "B000TEST")

	if !errors.Is(err, ierr.Persistence) {
		t.Errorf("expected persistence failure, got %v", err)
	}
	if latest != nil {
		t.Error("expected no snapshot when the query fails")
	}
}

func TestLatestNoHistoryIsNotAnError(t *testing.T) {
	repo := New(fakeDB{})

	latest, err := repo.Latest(context.Background(), "user-1", "B000TEST")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest != nil {
		t.Error("expected nil snapshot for a pair without history")
	}
}

func TestHistorySurfacesQueryFailure(t *testing.T) {
	repo := New(fakeDB{queryErr: fmt.Errorf("rpc error: code = Unavailable")})

	_, err := repo.History(context.Background(), "user-1", "B000TEST")

	if !errors.Is(err, ierr.Persistence) {
		t.Errorf("expected persistence failure, got %v", err)
	}
}
