package eligibility

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var allYes = map[string]string{
	"age": "yes", "weight": "yes", "health": "yes", "meal": "yes",
	"medication": "yes", "donation_history": "yes",
}

func with(k, v string) map[string]string {
	out := map[string]string{}
	for id, a := range allYes {
		out[id] = a
	}
	out[k] = v
	return out
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		answers  map[string]string
		eligible bool
		err      error
	}{
		{"required yes, optional omitted", allYes, true, nil},
		{"medication no", with("medication", "no"), false, nil},
		{"optional no does not block", with("pregnant", "no"), true, nil},
		{"answers are case insensitive", with("age", " YES "), true, nil},
		{"unknown question", with("tattoo", "yes"), false, ErrUnknownQuestion},
		{"bad answer", with("meal", "maybe"), false, ErrBadAnswer},
		{"incomplete", map[string]string{"age": "yes"}, false, ErrIncomplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := Check(nil, tt.answers)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected err %v, got %v", tt.err, err)
			}
			if ok != tt.eligible {
				t.Errorf("eligible = %v, want %v", ok, tt.eligible)
			}
		})
	}
}

func TestQuestionnaireLifecycle(t *testing.T) {
	q := New(nil)

	if q.IsComplete() {
		t.Fatal("fresh questionnaire reported complete")
	}
	if _, err := q.Evaluate(); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}

	for id := range allYes {
		if id == "donation_history" {
			continue
		}
		if err := q.Answer(id, Yes); err != nil {
			t.Fatalf("answer %s: %v", id, err)
		}
	}
	if diff := cmp.Diff([]string{"donation_history"}, q.Missing()); diff != "" {
		t.Errorf("missing mismatch (-want +got):\n%s", diff)
	}
	if q.IsComplete() {
		t.Error("complete with a required question unanswered")
	}

	_ = q.Answer("donation_history", No)
	ok, err := q.Evaluate()
	if err != nil || ok {
		t.Fatalf("expected not eligible, got %v %v", ok, err)
	}
	if res, done := q.Result(); !done || res {
		t.Errorf("result = %v/%v", res, done)
	}

	// changing an answer clears the stale result
	_ = q.Answer("donation_history", Yes)
	if _, done := q.Result(); done {
		t.Error("result survived an answer change")
	}
	if ok, _ := q.Evaluate(); !ok {
		t.Error("expected eligible")
	}

	q.Reset()
	if q.IsComplete() || len(q.Missing()) != 6 {
		t.Errorf("reset left answers behind: missing=%v", q.Missing())
	}
	if _, done := q.Result(); done {
		t.Error("reset left a result behind")
	}
}

func TestQuestionsOrder(t *testing.T) {
	var got []string
	for _, qu := range New(nil).Questions() {
		got = append(got, qu.ID)
	}
	want := []string{"age", "weight", "health", "meal", "medication", "pregnant", "donation_history"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}
