package sentiment

import (
	"testing"

	"go-sentiment-snapshot/internal/nlp"
)

func TestAggregateTwoReviews(t *testing.T) {
	verdicts := []nlp.Verdict{
		{Label: "POSITIVE", Confidence: 0.9},
		{Label: "NEGATIVE", Confidence: 0.8},
	}
	locales := []string{"Canada", "USA"}

	agg := Aggregate(verdicts, locales, DefaultLabelMapping())

	wantPos := []float64{9.0, 0}
	wantNeg := []float64{0, 8.0}
	wantNeu := []float64{0, 0}
	for i := range verdicts {
		if agg.PositiveScores[i] != wantPos[i] || agg.NegativeScores[i] != wantNeg[i] || agg.NeutralScores[i] != wantNeu[i] {
			t.Errorf("index %d: got (%v, %v, %v)", i, agg.PositiveScores[i], agg.NegativeScores[i], agg.NeutralScores[i])
		}
	}

	if agg.MedianScore == nil || *agg.MedianScore != 8.5 {
		t.Errorf("expected median 8.5, got %v", agg.MedianScore)
	}
	if agg.PositivePercentage != 50.0 || agg.NegativePercentage != 50.0 || agg.NeutralPercentage != 0.0 {
		t.Errorf("expected 50/50/0, got %v/%v/%v", agg.PositivePercentage, agg.NegativePercentage, agg.NeutralPercentage)
	}
}

func TestAggregateArraysAreAligned(t *testing.T) {
	verdicts := []nlp.Verdict{
		{Label: "LABEL_4", Confidence: 0.7},
		{Label: "LABEL_0", Confidence: 0.6},
		{Label: "LABEL_2", Confidence: 0.5},
		{Label: "something-new", Confidence: 0.4},
		{Label: "positive", Confidence: 0.95},
	}
	locales := []string{"USA", "USA", "USA", "USA", "USA"}

	agg := Aggregate(verdicts, locales, DefaultLabelMapping())

	if len(agg.PositiveScores) != len(verdicts) || len(agg.NegativeScores) != len(verdicts) || len(agg.NeutralScores) != len(verdicts) {
		t.Fatal("expected all three arrays to match the input length")
	}

	for i := range verdicts {
		nonzero := 0
		if agg.PositiveScores[i] != 0 {
			nonzero++
		}
		if agg.NegativeScores[i] != 0 {
			nonzero++
		}
		if agg.NeutralScores[i] != 0 {
			nonzero++
		}
		if nonzero != 1 {
			t.Errorf("index %d: expected exactly one nonzero entry, got %d", i, nonzero)
		}
	}
}

func TestAggregatePercentagesSum(t *testing.T) {
	verdicts := []nlp.Verdict{
		{Label: "POSITIVE", Confidence: 0.9},
		{Label: "NEGATIVE", Confidence: 0.8},
		{Label: "NEUTRAL", Confidence: 0.7},
	}
	locales := []string{"USA", "USA", "USA"}

	agg := Aggregate(verdicts, locales, DefaultLabelMapping())

	sum := agg.PositivePercentage + agg.NegativePercentage + agg.NeutralPercentage
	if sum < 99.97 || sum > 100.03 {
		t.Errorf("expected percentages to sum to ~100, got %v", sum)
	}
}

func TestAggregateEmptyBatch(t *testing.T) {
	agg := Aggregate(nil, nil, DefaultLabelMapping())

	if agg.MedianScore != nil {
		t.Errorf("expected nil median for empty batch, got %v", *agg.MedianScore)
	}
	if agg.PositivePercentage != 0 || agg.NegativePercentage != 0 || agg.NeutralPercentage != 0 {
		t.Error("expected all percentages to be 0 for empty batch")
	}
	if len(agg.PositiveScores) != 0 {
		t.Error("expected empty score arrays")
	}
}

func TestAggregateCountrySentimentSkipsNeutral(t *testing.T) {
	verdicts := []nlp.Verdict{
		{Label: "POSITIVE", Confidence: 0.9},
		{Label: "NEGATIVE", Confidence: 0.8},
		{Label: "NEUTRAL", Confidence: 0.7},
	}
	locales := []string{"Canada", "Canada", "Japan"}

	agg := Aggregate(verdicts, locales, DefaultLabelMapping())

	canada := agg.CountrySentiment["Canada"]
	if canada.Positive != 1 || canada.Negative != 1 {
		t.Errorf("expected Canada 1/1, got %d/%d", canada.Positive, canada.Negative)
	}
	if _, ok := agg.CountrySentiment["Japan"]; ok {
		t.Error("expected neutral review to leave its locale out of the breakdown")
	}
}

func TestResolveUnmappedLabelDefaultsToNeutral(t *testing.T) {
	mapping := DefaultLabelMapping()

	if got := mapping.Resolve("LABEL_99"); got != Neutral {
		t.Errorf("expected NEUTRAL, got %s", got)
	}
	if got := mapping.Resolve(" positive "); got != Positive {
		t.Errorf("expected POSITIVE, got %s", got)
	}
}

func TestNewLabelMappingOverrides(t *testing.T) {
	mapping := NewLabelMapping(map[string]string{
		"mixed":   "neutral",
		"LABEL_2": "POSITIVE",
		"BOGUS":   "not-a-class",
	})

	if got := mapping.Resolve("MIXED"); got != Neutral {
		t.Errorf("expected override to NEUTRAL, got %s", got)
	}
	if got := mapping.Resolve("LABEL_2"); got != Positive {
		t.Errorf("expected override to POSITIVE, got %s", got)
	}
	if got := mapping.Resolve("BOGUS"); got != Neutral {
		t.Errorf("expected invalid override to be ignored, got %s", got)
	}
}
