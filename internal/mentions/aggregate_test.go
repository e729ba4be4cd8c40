package mentions

import (
	"reflect"
	"testing"

	"go-sentiment-snapshot/internal/model"
)

func TestTopAdjectivesCountsAndOrder(t *testing.T) {
	perReview := [][]string{
		{"Great", "solid", "great"},
		{"cheap", "solid", "GREAT"},
	}

	got := TopAdjectives(perReview, 10)

	want := []model.AdjectiveCount{
		{Word: "great", Count: 3},
		{Word: "solid", Count: 2},
		{Word: "cheap", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTopAdjectivesTieKeepsFirstSeenOrder(t *testing.T) {
	perReview := [][]string{
		{"bulky", "sleek", "bulky", "sturdy", "sleek", "sturdy"},
	}

	got := TopAdjectives(perReview, 10)

	want := []model.AdjectiveCount{
		{Word: "bulky", Count: 2},
		{Word: "sleek", Count: 2},
		{Word: "sturdy", Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected first-seen tie order %v, got %v", want, got)
	}
}

func TestTopAdjectivesLimit(t *testing.T) {
	perReview := [][]string{
		{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"},
	}

	if got := TopAdjectives(perReview, 10); len(got) != 10 {
		t.Errorf("expected 10 adjectives, got %d", len(got))
	}
}

func TestCountMentionsNormalizes(t *testing.T) {
	perReview := [][]string{
		{" Acme ", "acme"},
		{"ACME", "Globex", "  "},
	}

	got := CountMentions(perReview)

	want := map[string]int{"acme": 3, "globex": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMergeCompetitors(t *testing.T) {
	counts := map[string]int{"acme": 2}

	got := MergeCompetitors(counts, []string{"Acme", "Globex"})

	want := map[string]int{"acme": 3, "globex": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// The input mapping must stay untouched.
	if counts["acme"] != 2 {
		t.Error("expected MergeCompetitors to leave its input unmodified")
	}
}

func TestMergeCompetitorsEmptyList(t *testing.T) {
	got := MergeCompetitors(map[string]int{"initech": 1}, nil)

	if !reflect.DeepEqual(got, map[string]int{"initech": 1}) {
		t.Errorf("expected passthrough, got %v", got)
	}
}
