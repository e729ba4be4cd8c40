package review

import (
	"strings"

	"go-sentiment-snapshot/internal/model"
	"go-sentiment-snapshot/internal/utils"
)

// Deduplicator filters a fetched review batch against the fingerprints of a
// prior snapshot and against itself (first occurrence wins within a batch).
//
// By default the prior fingerprint set is derived from the snapshot's stored
// top-helpful review bodies, the only raw content a snapshot retains. That
// 3-item sample is best effort: a review outside the previous top 3 can
// reappear and be counted again. With trackAll set, the full accumulated
// fingerprint set stored on the prior snapshot is used instead and re-fetched
// reviews are filtered exactly.
type Deduplicator struct {
	trackAll bool
}

func NewDeduplicator(trackAllFingerprints bool) Deduplicator {
	return Deduplicator{trackAll: trackAllFingerprints}
}

// FilterResult is the outcome of one deduplication pass.
type FilterResult struct {
	Reviews []model.NormalizedReview
	Meta    []model.HelpfulReview

	// Fingerprints is the accumulated set (prior plus net-new) in encounter
	// order. It is stored on the next snapshot when exact dedup is enabled.
	Fingerprints []string
}

// Filter normalizes the raw batch, dropping empty reviews and duplicates.
func (d Deduplicator) Filter(batch []model.RawReview, prior *model.SentimentSnapshot) FilterResult {

	seen := map[string]struct{}{}
	accumulated := []string{}

	for _, fp := range d.priorFingerprints(prior) {
		if _, ok := seen[fp]; ok {
			continue
		}
		seen[fp] = struct{}{}
		accumulated = append(accumulated, fp)
	}

	result := FilterResult{
		Reviews: []model.NormalizedReview{},
		Meta:    []model.HelpfulReview{},
	}

	for _, raw := range batch {
		content := strings.TrimSpace(raw.Content)
		if content == "" {
			continue
		}

		fingerprint := utils.Hash(content)
		if _, ok := seen[fingerprint]; ok {
			continue
		}
		seen[fingerprint] = struct{}{}
		accumulated = append(accumulated, fingerprint)

		date, locale := ParseTimestamp(raw.Timestamp)

		result.Reviews = append(result.Reviews, model.NormalizedReview{
			Content:            content,
			Date:               date,
			Locale:             locale,
			HelpfulCount:       raw.HelpfulCount,
			ContentFingerprint: fingerprint,
		})
		result.Meta = append(result.Meta, model.HelpfulReview{
			Title:        raw.Title,
			Content:      content,
			HelpfulCount: raw.HelpfulCount,
			Locale:       locale,
		})
	}

	result.Fingerprints = accumulated
	return result
}

func (d Deduplicator) priorFingerprints(prior *model.SentimentSnapshot) []string {
	if prior == nil {
		return nil
	}

	if d.trackAll && len(prior.Fingerprints) > 0 {
		return prior.Fingerprints
	}

	fps := make([]string, 0, len(prior.TopHelpfulReviews))
	for _, rev := range prior.TopHelpfulReviews {
		fps = append(fps, utils.Hash(strings.TrimSpace(rev.Content)))
	}
	return fps
}
