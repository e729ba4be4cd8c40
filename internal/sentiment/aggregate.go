package sentiment

import (
	"math"
	"sort"

	"go-sentiment-snapshot/internal/model"
	"go-sentiment-snapshot/internal/nlp"
)

// Aggregation is the numeric summary of one classified review batch.
//
// The three score slices are index-aligned with the input order: at each
// index the slice of the review's class holds its score (confidence x 10)
// and the other two hold 0. Downstream consumers index the three slices in
// lock-step, so this shape is part of the contract.
type Aggregation struct {
	PositiveScores []float64
	NegativeScores []float64
	NeutralScores  []float64

	Counts map[Class]int

	PositivePercentage float64
	NegativePercentage float64
	NeutralPercentage  float64

	// MedianScore is the median of all nonzero scores across the three
	// slices, rounded to 2 decimals. Nil when no score is nonzero.
	MedianScore *float64

	// CountrySentiment counts positive/negative reviews per locale. Neutral
	// reviews do not contribute.
	CountrySentiment map[string]model.LocaleSentiment
}

// Aggregate folds the classifier verdicts of one batch into an Aggregation.
// verdicts and locales are index-aligned with the normalized review order.
func Aggregate(verdicts []nlp.Verdict, locales []string, mapping LabelMapping) Aggregation {

	n := len(verdicts)
	agg := Aggregation{
		PositiveScores:   make([]float64, n),
		NegativeScores:   make([]float64, n),
		NeutralScores:    make([]float64, n),
		Counts:           map[Class]int{Positive: 0, Negative: 0, Neutral: 0},
		CountrySentiment: map[string]model.LocaleSentiment{},
	}

	for i, verdict := range verdicts {
		class := mapping.Resolve(verdict.Label)
		score := verdict.Confidence * 10
		agg.Counts[class]++

		switch class {
		case Positive:
			agg.PositiveScores[i] = score
			locale := localeAt(locales, i)
			ls := agg.CountrySentiment[locale]
			ls.Positive++
			agg.CountrySentiment[locale] = ls
		case Negative:
			agg.NegativeScores[i] = score
			locale := localeAt(locales, i)
			ls := agg.CountrySentiment[locale]
			ls.Negative++
			agg.CountrySentiment[locale] = ls
		default:
			agg.NeutralScores[i] = score
		}
	}

	agg.MedianScore = medianOfNonzero(agg.PositiveScores, agg.NegativeScores, agg.NeutralScores)

	total := agg.Counts[Positive] + agg.Counts[Negative] + agg.Counts[Neutral]
	if total > 0 {
		agg.PositivePercentage = round2(float64(agg.Counts[Positive]) / float64(total) * 100)
		agg.NegativePercentage = round2(float64(agg.Counts[Negative]) / float64(total) * 100)
		agg.NeutralPercentage = round2(float64(agg.Counts[Neutral]) / float64(total) * 100)
	}

	return agg
}

func localeAt(locales []string, i int) string {
	if i < len(locales) && locales[i] != "" {
		return locales[i]
	}
	return model.LocaleDefault
}

func medianOfNonzero(scoreSlices ...[]float64) *float64 {

	nonzero := []float64{}
	for _, scores := range scoreSlices {
		for _, score := range scores {
			if score > 0 {
				nonzero = append(nonzero, score)
			}
		}
	}

	if len(nonzero) == 0 {
		return nil
	}

	sort.Float64s(nonzero)

	var median float64
	mid := len(nonzero) / 2
	if len(nonzero)%2 == 1 {
		median = nonzero[mid]
	} else {
		median = (nonzero[mid-1] + nonzero[mid]) / 2
	}

	median = round2(median)
	return &median
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
