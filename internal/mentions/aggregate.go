package mentions

import (
	"sort"
	"strings"

	"go-sentiment-snapshot/internal/model"
)

// TopAdjectives counts the extracted adjectives across all reviews
// (lower-cased) and returns the limit most frequent as ordered (word, count)
// pairs. Ties keep first-seen order: the sort is stable on frequency only,
// so the extractor encounter order decides between equal counts.
func TopAdjectives(perReview [][]string, limit int) []model.AdjectiveCount {

	counts := map[string]int{}
	firstSeen := []string{}

	for _, adjectives := range perReview {
		for _, adjective := range adjectives {
			word := strings.ToLower(adjective)
			if word == "" {
				continue
			}
			if _, ok := counts[word]; !ok {
				firstSeen = append(firstSeen, word)
			}
			counts[word]++
		}
	}

	ranked := make([]model.AdjectiveCount, 0, len(firstSeen))
	for _, word := range firstSeen {
		ranked = append(ranked, model.AdjectiveCount{Word: word, Count: counts[word]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// CountMentions accumulates organization-like mentions across all reviews,
// lower-cased and trimmed. Entries that would end up with a zero count are
// dropped; that guards against an extractor returning spurious empty tokens.
func CountMentions(perReview [][]string) map[string]int {

	counts := map[string]int{}
	for _, orgs := range perReview {
		for _, org := range orgs {
			mention := strings.ToLower(strings.TrimSpace(org))
			if mention == "" {
				continue
			}
			counts[mention]++
		}
	}

	for mention, count := range counts {
		if count <= 0 {
			delete(counts, mention)
		}
	}

	return counts
}

// MergeCompetitors folds the resolved competitor-name list into the mention
// mapping: every name is lower-cased and its count incremented by 1, even
// when the name was already mentioned verbatim in review text. Competitor
// names therefore always end up in the mapping with count >= 1.
func MergeCompetitors(counts map[string]int, competitors []string) map[string]int {

	merged := map[string]int{}
	for mention, count := range counts {
		merged[mention] = count
	}

	for _, name := range competitors {
		merged[strings.ToLower(name)]++
	}

	return merged
}
