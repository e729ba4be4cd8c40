package review

import (
	"regexp"
	"strings"
	"time"

	"go-sentiment-snapshot/internal/model"
)

const (
	localeMarker = "Reviewed in"
	dateLayout   = "January 2, 2006"
	isoLayout    = "2006-01-02"
)

var datePattern = regexp.MustCompile(`(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},\s+\d{4}`)

// ParseTimestamp extracts an ISO date and an origin locale from a free-text
// review timestamp such as "Reviewed in Canada on January 5, 2021".
//
// The two extractions are independent: a malformed date still yields the
// locale and vice versa. Unparseable input yields model.DateUnknown and
// model.LocaleDefault; this function never fails.
func ParseTimestamp(timestamp string) (date, locale string) {

	date = model.DateUnknown
	locale = model.LocaleDefault

	if match := datePattern.FindString(timestamp); match != "" {
		if t, err := time.Parse(dateLayout, normalizeSpaces(match)); err == nil {
			date = t.Format(isoLayout)
		}
	}

	if idx := strings.Index(timestamp, localeMarker); idx >= 0 {
		rest := timestamp[idx+len(localeMarker):]
		if on := strings.Index(rest, " on "); on >= 0 {
			if extracted := strings.TrimSpace(rest[:on]); extracted != "" {
				locale = extracted
			}
		}
	}

	return date, locale
}

func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
