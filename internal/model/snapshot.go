package model

import "time"

// AdjectiveCount is one (word, frequency) pair of the top-adjective list.
// Order in the slice is significant: most frequent first, ties in
// extractor encounter order.
type AdjectiveCount struct {
	Word  string `firestore:"word" json:"word"`
	Count int    `firestore:"count" json:"count"`
}

// LocaleSentiment is the per-locale positive/negative breakdown. Neutral
// reviews do not contribute here.
type LocaleSentiment struct {
	Positive int `firestore:"positive" json:"positive"`
	Negative int `firestore:"negative" json:"negative"`
}

// SentimentSnapshot is one immutable aggregation result for a (user, asin)
// pair. Snapshots form an append-only version history ordered by Timestamp;
// a refresh that finds net-new reviews appends a new snapshot and never
// mutates an existing one.
//
// The three score slices are index-aligned with the normalized review order
// of the batch they describe: at each index exactly one of the three holds
// the review's score (confidence x 10), the other two hold 0.
type SentimentSnapshot struct {
	Asin         *string  `firestore:"asin,omitempty" json:"asin"`
	UserId       *string  `firestore:"userId,omitempty" json:"user_id"`
	ProductName  *string  `firestore:"productName,omitempty" json:"product_name"`
	Manufacturer *string  `firestore:"manufacturer,omitempty" json:"manufacturer"`
	Price        *float64 `firestore:"price,omitempty" json:"price"`

	// MedianScore is the median of all nonzero scores, rounded to 2 decimals.
	// Nil when the batch produced no nonzero score.
	MedianScore *float64 `firestore:"medianScore,omitempty" json:"median_score"`

	TopAdjectives      []AdjectiveCount           `firestore:"topAdjectives" json:"top_adjectives"`
	CompetitorMentions map[string]int             `firestore:"competitorMentions" json:"competitor_mentions"`
	GptCompetitors     []string                   `firestore:"gptCompetitors" json:"gpt_competitors"`
	ReviewDates        []string                   `firestore:"reviewDates" json:"review_dates"`
	PositiveScores     []float64                  `firestore:"positiveScores" json:"positive_scores"`
	NegativeScores     []float64                  `firestore:"negativeScores" json:"negative_scores"`
	NeutralScores      []float64                  `firestore:"neutralScores" json:"neutral_scores"`
	PositivePercentage float64                    `firestore:"positivePercentage" json:"positive_percentage"`
	NegativePercentage float64                    `firestore:"negativePercentage" json:"negative_percentage"`
	NeutralPercentage  float64                    `firestore:"neutralPercentage" json:"neutral_percentage"`
	CountrySentiment   map[string]LocaleSentiment `firestore:"countrySentiment" json:"country_sentiment"`
	TopHelpfulReviews  []HelpfulReview            `firestore:"topHelpfulReviews" json:"top_helpful_reviews"`

	// Fingerprints holds the full accumulated content-fingerprint set when
	// exact deduplication is enabled. Empty otherwise; the deduplicator then
	// falls back to fingerprinting TopHelpfulReviews, a best-effort 3-item
	// sample inherited from the source design.
	Fingerprints []string `firestore:"fingerprints" json:"fingerprints,omitempty"`

	Timestamp time.Time `firestore:"timestamp,omitempty" json:"timestamp"`
}

// EnsureDefaults replaces nil collection fields with empty values so that a
// snapshot loaded from a partially written or legacy doc always serializes
// with empty arrays/objects rather than null.
func (s *SentimentSnapshot) EnsureDefaults() {
	if s.TopAdjectives == nil {
		s.TopAdjectives = []AdjectiveCount{}
	}
	if s.CompetitorMentions == nil {
		s.CompetitorMentions = map[string]int{}
	}
	if s.GptCompetitors == nil {
		s.GptCompetitors = []string{}
	}
	if s.ReviewDates == nil {
		s.ReviewDates = []string{}
	}
	if s.PositiveScores == nil {
		s.PositiveScores = []float64{}
	}
	if s.NegativeScores == nil {
		s.NegativeScores = []float64{}
	}
	if s.NeutralScores == nil {
		s.NeutralScores = []float64{}
	}
	if s.CountrySentiment == nil {
		s.CountrySentiment = map[string]LocaleSentiment{}
	}
	if s.TopHelpfulReviews == nil {
		s.TopHelpfulReviews = []HelpfulReview{}
	}
}

// CompetitorCacheEntry is one durable cache row keyed by the exact
// (productName, manufacturer) pair. Created on the first successful
// name-generation call, read-only thereafter.
type CompetitorCacheEntry struct {
	ProductName  *string   `firestore:"productName,omitempty" json:"product_name"`
	Manufacturer *string   `firestore:"manufacturer,omitempty" json:"manufacturer"`
	Names        []string  `firestore:"names" json:"names"`
	CreatedAt    time.Time `firestore:"createdAt,omitempty" json:"created_at"`
}

// ReviewHistory is one audit row per computed snapshot.
type ReviewHistory struct {
	Asin      *string   `firestore:"asin,omitempty" json:"asin"`
	UserId    *string   `firestore:"userId,omitempty" json:"user_id"`
	CreatedAt time.Time `firestore:"createdAt,omitempty" json:"created_at"`
}

// AnalysisRequest is the trigger doc a client writes to ask for a snapshot
// refresh. The snapshotrefresh handler consumes unprocessed requests.
type AnalysisRequest struct {
	Id        *string   `firestore:"id,omitempty" json:"id"`
	UserId    *string   `firestore:"userId,omitempty" json:"user_id"`
	Asin      *string   `firestore:"asin,omitempty" json:"asin"`
	Processed *bool     `firestore:"processed,omitempty" json:"processed"`
	CreatedAt time.Time `firestore:"createdAt,omitempty" json:"created_at"`
	UpdatedAt time.Time `firestore:"updatedAt,omitempty" json:"updated_at"`
}
