package review

import (
	"reflect"
	"testing"

	"go-sentiment-snapshot/internal/model"
	"go-sentiment-snapshot/internal/utils"
)

func rawReview(content string, helpful int) model.RawReview {
	return model.RawReview{
		Content:      content,
		Timestamp:    "Reviewed in Canada on January 5, 2021",
		Title:        "title",
		HelpfulCount: helpful,
	}
}

func TestFilterCollapsesInBatchDuplicates(t *testing.T) {
	dedup := NewDeduplicator(false)

	result := dedup.Filter([]model.RawReview{
		rawReview("great", 1),
		rawReview("bad", 2),
		rawReview("great", 3),
	}, nil)

	if len(result.Reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(result.Reviews))
	}
	if result.Reviews[0].Content != "great" || result.Reviews[1].Content != "bad" {
		t.Errorf("expected first occurrence to win, got %q, %q", result.Reviews[0].Content, result.Reviews[1].Content)
	}
	// The surviving "great" is the first occurrence.
	if result.Reviews[0].HelpfulCount != 1 {
		t.Errorf("expected helpful count 1, got %d", result.Reviews[0].HelpfulCount)
	}
}

func TestFilterSkipsEmptyContent(t *testing.T) {
	dedup := NewDeduplicator(false)

	result := dedup.Filter([]model.RawReview{
		rawReview("  ", 0),
		rawReview("", 0),
		rawReview(" solid product ", 0),
	}, nil)

	if len(result.Reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(result.Reviews))
	}
	if result.Reviews[0].Content != "solid product" {
		t.Errorf("expected trimmed content, got %q", result.Reviews[0].Content)
	}
}

func TestFilterAgainstPriorSnapshotSample(t *testing.T) {
	dedup := NewDeduplicator(false)

	prior := &model.SentimentSnapshot{
		TopHelpfulReviews: []model.HelpfulReview{
			{Content: "great", HelpfulCount: 5},
		},
	}

	result := dedup.Filter([]model.RawReview{
		rawReview("great", 1),
		rawReview("bad", 2),
	}, prior)

	if len(result.Reviews) != 1 {
		t.Fatalf("expected 1 net-new review, got %d", len(result.Reviews))
	}
	if result.Reviews[0].Content != "bad" {
		t.Errorf("expected 'bad' to survive, got %q", result.Reviews[0].Content)
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	dedup := NewDeduplicator(false)
	batch := []model.RawReview{
		rawReview("great", 1),
		rawReview("bad", 2),
		rawReview("great", 3),
	}

	first := dedup.Filter(batch, nil)
	second := dedup.Filter(batch, nil)

	if !reflect.DeepEqual(first.Reviews, second.Reviews) {
		t.Error("expected identical output for identical input")
	}
}

func TestFilterNormalizesFields(t *testing.T) {
	dedup := NewDeduplicator(false)

	result := dedup.Filter([]model.RawReview{rawReview("great", 4)}, nil)

	r := result.Reviews[0]
	if r.Date != "2021-01-05" {
		t.Errorf("expected parsed date, got %s", r.Date)
	}
	if r.Locale != "Canada" {
		t.Errorf("expected locale Canada, got %s", r.Locale)
	}
	if r.ContentFingerprint != utils.Hash("great") {
		t.Error("expected fingerprint of trimmed content")
	}
	if len(result.Meta) != 1 || result.Meta[0].HelpfulCount != 4 {
		t.Error("expected parallel meta entry")
	}
}

func TestFilterPrefersFullFingerprintSet(t *testing.T) {
	dedup := NewDeduplicator(true)

	// "bad" fell outside the stored top-helpful sample but is part of the
	// full fingerprint set; exact mode must still filter it.
	prior := &model.SentimentSnapshot{
		TopHelpfulReviews: []model.HelpfulReview{
			{Content: "great", HelpfulCount: 5},
		},
		Fingerprints: []string{utils.Hash("great"), utils.Hash("bad")},
	}

	result := dedup.Filter([]model.RawReview{
		rawReview("great", 1),
		rawReview("bad", 2),
		rawReview("fresh", 3),
	}, prior)

	if len(result.Reviews) != 1 {
		t.Fatalf("expected 1 net-new review, got %d", len(result.Reviews))
	}
	if result.Reviews[0].Content != "fresh" {
		t.Errorf("expected 'fresh' to survive, got %q", result.Reviews[0].Content)
	}

	want := []string{utils.Hash("great"), utils.Hash("bad"), utils.Hash("fresh")}
	if !reflect.DeepEqual(result.Fingerprints, want) {
		t.Error("expected accumulated fingerprint set in encounter order")
	}
}

func TestFilterSampleModeCanRecountOldReviews(t *testing.T) {
	// Known approximation of the default mode: a review outside the prior
	// top-helpful sample reappears as net-new.
	dedup := NewDeduplicator(false)

	prior := &model.SentimentSnapshot{
		TopHelpfulReviews: []model.HelpfulReview{
			{Content: "great", HelpfulCount: 5},
		},
		Fingerprints: []string{utils.Hash("great"), utils.Hash("bad")},
	}

	result := dedup.Filter([]model.RawReview{rawReview("bad", 2)}, prior)

	if len(result.Reviews) != 1 {
		t.Fatalf("expected the unsampled review to reappear, got %d reviews", len(result.Reviews))
	}
}
