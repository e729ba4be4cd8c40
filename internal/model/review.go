package model

// RawReview is one review record as returned by the external review source.
// It carries no identity beyond its content and is never persisted directly.
type RawReview struct {
	Content      string `json:"content"`
	Timestamp    string `json:"timestamp"`
	Title        string `json:"title"`
	HelpfulCount int    `json:"helpful_count"`
}

// NormalizedReview is a raw review after timestamp parsing and fingerprinting.
// It lives only for the duration of one aggregation run.
type NormalizedReview struct {
	Content            string
	Date               string // ISO-8601 or DateUnknown
	Locale             string
	HelpfulCount       int
	ContentFingerprint string
}

const (
	// DateUnknown marks a review timestamp that could not be parsed.
	DateUnknown = "Unknown"

	// LocaleDefault is assumed when the timestamp carries no origin marker.
	LocaleDefault = "USA"
)

// HelpfulReview is the lightweight review metadata retained on a snapshot for
// the "top helpful" list. Its content also seeds the next run's dedup sample.
type HelpfulReview struct {
	Title        string `firestore:"title" json:"title"`
	Content      string `firestore:"content" json:"content"`
	HelpfulCount int    `firestore:"helpfulCount" json:"helpful_count"`
	Locale       string `firestore:"locale" json:"locale"`
}
