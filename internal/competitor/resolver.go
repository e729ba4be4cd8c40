package competitor

import (
	"context"
	"errors"

	ierr "go-sentiment-snapshot/internal/errors"
	competitorCacheRepository "go-sentiment-snapshot/internal/repository/competitorcache"

	"github.com/rs/zerolog/log"
)

// Resolver serves competitor-name lists through the durable cache. On a hit
// the stored list is returned unchanged; on a miss the generator is called
// once and a non-empty result is cached before returning. Generator failures
// and malformed payloads degrade to an empty list and are NOT cached, so a
// later call retries.
type Resolver struct {
	cache     competitorCacheRepository.IRepository
	generator Generator
}

func NewResolver(cache competitorCacheRepository.IRepository, generator Generator) Resolver {
	return Resolver{
		cache:     cache,
		generator: generator,
	}
}

// GetOrFetch returns the competitor names of the exact (productName,
// manufacturer) pair. The returned slice is never nil and may be empty;
// resolution failures never abort the caller's pipeline.
func (r Resolver) GetOrFetch(ctx context.Context, productName, manufacturer string) []string {

	names, err := r.cache.Get(ctx, productName, manufacturer)
	if err == nil {
		return names
	}
	if !errors.Is(err, ierr.NotFound) {
		// Treat an unreadable cache as a miss and fall through to the generator.
		log.Error().Err(err).Msgf("competitor resolver: cache read failed for %s", productName)
	}

	names, err = r.generator.Generate(ctx, productName, manufacturer)
	if err != nil {
		log.Error().Err(err).Msgf("competitor resolver: generation failed for %s", productName)
		return []string{}
	}

	if len(names) == 0 {
		return []string{}
	}

	if err := r.cache.Put(ctx, productName, manufacturer, names); err != nil {
		// The list is still usable; the next miss simply regenerates it.
		log.Error().Err(err).Msgf("competitor resolver: cache write failed for %s", productName)
	}

	return names
}
