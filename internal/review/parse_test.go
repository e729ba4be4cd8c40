package review

import (
	"testing"

	"go-sentiment-snapshot/internal/model"
)

func TestParseTimestampFullFrame(t *testing.T) {
	date, locale := ParseTimestamp("Reviewed in Canada on January 5, 2021")

	if date != "2021-01-05" {
		t.Errorf("expected date 2021-01-05, got %s", date)
	}
	if locale != "Canada" {
		t.Errorf("expected locale Canada, got %s", locale)
	}
}

func TestParseTimestampMultiWordLocale(t *testing.T) {
	date, locale := ParseTimestamp("Reviewed in the United Kingdom on June 1, 2022")

	if date != "2022-06-01" {
		t.Errorf("expected date 2022-06-01, got %s", date)
	}
	if locale != "the United Kingdom" {
		t.Errorf("expected locale 'the United Kingdom', got %q", locale)
	}
}

func TestParseTimestampDateOnly(t *testing.T) {
	// No "Reviewed in" frame; the date pattern alone should still match.
	date, locale := ParseTimestamp("Posted on March 22, 2020")

	if date != "2020-03-22" {
		t.Errorf("expected date 2020-03-22, got %s", date)
	}
	if locale != model.LocaleDefault {
		t.Errorf("expected default locale, got %s", locale)
	}
}

func TestParseTimestampUnparseable(t *testing.T) {
	date, locale := ParseTimestamp("a week ago")

	if date != model.DateUnknown {
		t.Errorf("expected unknown date, got %s", date)
	}
	if locale != model.LocaleDefault {
		t.Errorf("expected default locale, got %s", locale)
	}
}

func TestParseTimestampEmpty(t *testing.T) {
	date, locale := ParseTimestamp("")

	if date != model.DateUnknown || locale != model.LocaleDefault {
		t.Errorf("expected defaults, got %s / %s", date, locale)
	}
}

func TestParseTimestampExtractionsAreIndependent(t *testing.T) {
	// Out-of-range day: the locale must still be extracted.
	date, locale := ParseTimestamp("Reviewed in Germany on February 30, 2021")

	if date != model.DateUnknown {
		t.Errorf("expected unknown date for out-of-range day, got %s", date)
	}
	if locale != "Germany" {
		t.Errorf("expected locale Germany, got %s", locale)
	}
}
