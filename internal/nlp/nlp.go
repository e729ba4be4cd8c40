package nlp

import "context"

// Verdict is one classifier result: a model-specific label plus a confidence
// in [0,1]. Label vocabularies vary across model versions; the sentiment
// package maps them onto the canonical classes.
type Verdict struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Extraction is one extractor result per input text.
type Extraction struct {
	Adjectives  []string `json:"adjectives"`
	OrgMentions []string `json:"org_mentions"`
}

// Classifier assigns a sentiment verdict to each text, same length and order
// as the input.
type Classifier interface {
	Classify(ctx context.Context, texts []string) ([]Verdict, error)
}

// Extractor returns descriptive adjectives and organization-like mentions per
// text, same length and order as the input.
type Extractor interface {
	Analyze(ctx context.Context, texts []string) ([]Extraction, error)
}
