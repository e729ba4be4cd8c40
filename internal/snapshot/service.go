package snapshot

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	ierr "go-sentiment-snapshot/internal/errors"
	"go-sentiment-snapshot/internal/mentions"
	"go-sentiment-snapshot/internal/model"
	"go-sentiment-snapshot/internal/nlp"
	reviewHistoryRepository "go-sentiment-snapshot/internal/repository/reviewhistory"
	snapshotRepository "go-sentiment-snapshot/internal/repository/snapshot"
	"go-sentiment-snapshot/internal/review"
	"go-sentiment-snapshot/internal/sentiment"
	"go-sentiment-snapshot/internal/source"
	"go-sentiment-snapshot/internal/utils"

	"github.com/rs/zerolog/log"
)

const topHelpfulLimit = 3

// CompetitorResolver serves the cached-or-generated competitor-name list.
type CompetitorResolver interface {
	GetOrFetch(ctx context.Context, productName, manufacturer string) []string
}

// Result is the outcome of one refresh: either a snapshot (existing or newly
// appended) or the explicit no-reviews case. Failures are returned as errors
// wrapping one of the typed categories instead.
type Result struct {
	Snapshot       *model.SentimentSnapshot
	NoReviewsFound bool
}

type Config struct {
	Pages                int
	TrackAllFingerprints bool
}

// Service implements the snapshot merge/versioning policy for one
// (userId, asin) pair per call: load the latest snapshot, fetch and dedup the
// review batch, and either return the latest unchanged (nothing net-new) or
// aggregate the net-new reviews into a new snapshot row.
//
// Two concurrent refreshes of the same pair are not coordinated; both may
// observe the same latest snapshot and both append, which yields a redundant
// but harmless duplicate row.
type Service struct {
	cfg         Config
	reviews     source.ReviewSource
	classifier  nlp.Classifier
	extractor   nlp.Extractor
	competitors CompetitorResolver
	snapshots   snapshotRepository.IRepository
	history     reviewHistoryRepository.IRepository
	mapping     sentiment.LabelMapping
	dedup       review.Deduplicator
}

func NewService(
	cfg Config,
	reviews source.ReviewSource,
	classifier nlp.Classifier,
	extractor nlp.Extractor,
	competitors CompetitorResolver,
	snapshots snapshotRepository.IRepository,
	history reviewHistoryRepository.IRepository,
	mapping sentiment.LabelMapping) *Service {

	if cfg.Pages <= 0 {
		cfg.Pages = 5
	}

	return &Service{
		cfg:         cfg,
		reviews:     reviews,
		classifier:  classifier,
		extractor:   extractor,
		competitors: competitors,
		snapshots:   snapshots,
		history:     history,
		mapping:     mapping,
		dedup:       review.NewDeduplicator(cfg.TrackAllFingerprints),
	}
}

// GetOrRefresh returns the current snapshot of the pair, computing and
// appending a new version when the source serves net-new reviews.
func (s *Service) GetOrRefresh(ctx context.Context, userId, asin string) (*Result, error) {

	asin = strings.TrimSpace(asin)
	if asin == "" {
		return nil, fmt.Errorf("%w: asin is required", ierr.InvalidArgument)
	}
	if strings.TrimSpace(userId) == "" {
		return nil, fmt.Errorf("%w: userId is required", ierr.InvalidArgument)
	}

	// Latest already wraps its failures in the persistence category.
	latest, err := s.snapshots.Latest(ctx, userId, asin)
	if err != nil {
		return nil, err
	}

	meta, err := s.reviews.ProductMetadata(ctx, asin)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ierr.MetadataFetch, err)
	}

	batch := s.fetchAllPages(ctx, asin)

	filtered := s.dedup.Filter(batch, latest)
	if len(filtered.Reviews) == 0 {
		if latest != nil {
			return &Result{Snapshot: latest}, nil
		}
		return &Result{NoReviewsFound: true}, nil
	}

	texts := make([]string, len(filtered.Reviews))
	locales := make([]string, len(filtered.Reviews))
	dates := make([]string, len(filtered.Reviews))
	for i, r := range filtered.Reviews {
		texts[i] = r.Content
		locales[i] = r.Locale
		dates[i] = r.Date
	}

	verdicts, err := s.classifier.Classify(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ierr.Nlp, err)
	}
	if len(verdicts) != len(texts) {
		return nil, fmt.Errorf("%w: classifier returned %d verdicts for %d reviews", ierr.Nlp, len(verdicts), len(texts))
	}

	extractions, err := s.extractor.Analyze(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ierr.Nlp, err)
	}
	if len(extractions) != len(texts) {
		return nil, fmt.Errorf("%w: extractor returned %d results for %d reviews", ierr.Nlp, len(extractions), len(texts))
	}

	agg := sentiment.Aggregate(verdicts, locales, s.mapping)

	adjectives := make([][]string, len(extractions))
	orgs := make([][]string, len(extractions))
	for i, e := range extractions {
		adjectives[i] = e.Adjectives
		orgs[i] = e.OrgMentions
	}

	competitors := s.competitors.GetOrFetch(ctx, meta.ProductName, meta.Manufacturer)
	mentionCounts := mentions.MergeCompetitors(mentions.CountMentions(orgs), competitors)

	snapshot := model.SentimentSnapshot{
		Asin:               utils.StringToPointer(asin),
		UserId:             utils.StringToPointer(userId),
		ProductName:        utils.StringToPointer(meta.ProductName),
		Manufacturer:       utils.StringToPointer(meta.Manufacturer),
		Price:              utils.Float64ToPointer(meta.Price),
		MedianScore:        agg.MedianScore,
		TopAdjectives:      mentions.TopAdjectives(adjectives, 10),
		CompetitorMentions: mentionCounts,
		GptCompetitors:     competitors,
		ReviewDates:        dates,
		PositiveScores:     agg.PositiveScores,
		NegativeScores:     agg.NegativeScores,
		NeutralScores:      agg.NeutralScores,
		PositivePercentage: agg.PositivePercentage,
		NegativePercentage: agg.NegativePercentage,
		NeutralPercentage:  agg.NeutralPercentage,
		CountrySentiment:   agg.CountrySentiment,
		TopHelpfulReviews:  topHelpful(filtered.Meta),
		Timestamp:          time.Now().UTC(),
	}

	if s.cfg.TrackAllFingerprints {
		snapshot.Fingerprints = filtered.Fingerprints
	}

	stored, err := s.snapshots.Append(ctx, snapshot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ierr.Persistence, err)
	}

	// The snapshot row is already durable at this point, so a failed audit
	// write is logged rather than turned into a request failure.
	if err := s.history.Append(ctx, userId, asin); err != nil {
		log.Error().Err(err).Msgf("snapshot service: failed to append audit row for %s/%s", userId, asin)
	}

	return &Result{Snapshot: stored}, nil
}

// fetchAllPages collects the review pages, treating each failed page as
// having contributed zero reviews.
func (s *Service) fetchAllPages(ctx context.Context, asin string) []model.RawReview {

	all := []model.RawReview{}
	for page := 1; page <= s.cfg.Pages; page++ {
		reviews, err := s.reviews.Reviews(ctx, asin, page)
		if err != nil {
			log.Error().Err(err).Msgf("snapshot service: failed to fetch page %d for asin %s", page, asin)
			continue
		}
		all = append(all, reviews...)
	}

	return all
}

// topHelpful returns the limit reviews with the highest helpful counts,
// stable on fetch order between equals.
func topHelpful(meta []model.HelpfulReview) []model.HelpfulReview {

	top := make([]model.HelpfulReview, len(meta))
	copy(top, meta)

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].HelpfulCount > top[j].HelpfulCount
	})

	if len(top) > topHelpfulLimit {
		top = top[:topHelpfulLimit]
	}
	return top
}
