package sentiment

import "strings"

// Class is one of the three canonical sentiment classes every classifier
// label is normalized to.
type Class string

const (
	Positive Class = "POSITIVE"
	Negative Class = "NEGATIVE"
	Neutral  Class = "NEUTRAL"
)

// LabelMapping maps classifier-specific label tokens (upper-cased) to
// canonical classes. Labels absent from the mapping resolve to Neutral.
type LabelMapping map[string]Class

// DefaultLabelMapping covers the star-rating style LABEL_0..LABEL_4
// vocabulary and the plain three-class vocabulary.
func DefaultLabelMapping() LabelMapping {
	return LabelMapping{
		"LABEL_0":  Negative,
		"LABEL_1":  Negative,
		"LABEL_2":  Neutral,
		"LABEL_3":  Positive,
		"LABEL_4":  Positive,
		"NEGATIVE": Negative,
		"POSITIVE": Positive,
		"NEUTRAL":  Neutral,
	}
}

// NewLabelMapping layers configured overrides on top of the default mapping.
// Override values that are not a canonical class name are ignored.
func NewLabelMapping(overrides map[string]string) LabelMapping {
	mapping := DefaultLabelMapping()

	for label, class := range overrides {
		switch Class(strings.ToUpper(strings.TrimSpace(class))) {
		case Positive:
			mapping[strings.ToUpper(strings.TrimSpace(label))] = Positive
		case Negative:
			mapping[strings.ToUpper(strings.TrimSpace(label))] = Negative
		case Neutral:
			mapping[strings.ToUpper(strings.TrimSpace(label))] = Neutral
		}
	}

	return mapping
}

// Resolve normalizes a raw classifier label to its canonical class.
func (m LabelMapping) Resolve(label string) Class {
	if class, ok := m[strings.ToUpper(strings.TrimSpace(label))]; ok {
		return class
	}
	return Neutral
}
