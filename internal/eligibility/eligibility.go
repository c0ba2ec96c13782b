// Package eligibility reduces the donor questionnaire to a yes/no result.
package eligibility

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIncomplete      = errors.New("questionnaire incomplete")
	ErrUnknownQuestion = errors.New("unknown question")
	ErrBadAnswer       = errors.New("answer must be yes or no")
)

type Question struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Required bool   `json:"required"`
}

type Answer string

const (
	Yes Answer = "yes"
	No  Answer = "no"
)

func ParseAnswer(s string) (Answer, error) {
	switch a := Answer(strings.ToLower(strings.TrimSpace(s))); a {
	case Yes, No:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrBadAnswer, s)
}

// DefaultQuestions in the order they are asked.
var DefaultQuestions = []Question{
	{ID: "age", Text: "Are you between 18 and 65 years of age?", Required: true},
	{ID: "weight", Text: "Do you weigh at least 45 kg (99 lbs)?", Required: true},
	{ID: "health", Text: "Are you in good health and feeling well today?", Required: true},
	{ID: "meal", Text: "Have you eaten in the last 4 hours?", Required: true},
	{ID: "medication", Text: "Are you currently free from antibiotics or other medications for an infection?", Required: true},
	{ID: "pregnant", Text: "For females: Are you not pregnant, and have not been pregnant in the last 6 months?", Required: false},
	{ID: "donation_history", Text: "Has it been at least 3 months since your last blood donation?", Required: true},
}

// Questionnaire holds one pass through the questions. It is not safe for
// concurrent use; each request builds its own.
type Questionnaire struct {
	questions []Question
	answers   map[string]Answer
	result    *bool
}

func New(questions []Question) *Questionnaire {
	if len(questions) == 0 {
		questions = DefaultQuestions
	}
	return &Questionnaire{questions: questions, answers: map[string]Answer{}}
}

func (q *Questionnaire) Questions() []Question {
	out := make([]Question, len(q.questions))
	copy(out, q.questions)
	return out
}

func (q *Questionnaire) lookup(id string) (Question, bool) {
	for _, qu := range q.questions {
		if qu.ID == id {
			return qu, true
		}
	}
	return Question{}, false
}

// Answer records a. Changing an answer drops any earlier result.
func (q *Questionnaire) Answer(id string, a Answer) error {
	if _, ok := q.lookup(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownQuestion, id)
	}
	if a != Yes && a != No {
		return fmt.Errorf("%w: %q", ErrBadAnswer, a)
	}
	q.answers[id] = a
	q.result = nil
	return nil
}

// Missing lists required questions without an answer, in question order.
func (q *Questionnaire) Missing() []string {
	var out []string
	for _, qu := range q.questions {
		if _, ok := q.answers[qu.ID]; qu.Required && !ok {
			out = append(out, qu.ID)
		}
	}
	return out
}

func (q *Questionnaire) IsComplete() bool { return len(q.Missing()) == 0 }

// Evaluate is eligible only when every required answer is yes. Optional
// answers never count against the donor.
func (q *Questionnaire) Evaluate() (bool, error) {
	if !q.IsComplete() {
		return false, ErrIncomplete
	}
	ok := true
	for _, qu := range q.questions {
		if qu.Required && q.answers[qu.ID] != Yes {
			ok = false
			break
		}
	}
	q.result = &ok
	return ok, nil
}

// Result is the last evaluation, if any.
func (q *Questionnaire) Result() (eligible, evaluated bool) {
	if q.result == nil {
		return false, false
	}
	return *q.result, true
}

func (q *Questionnaire) Reset() {
	clear(q.answers)
	q.result = nil
}

// Check is the one-shot form used by the RPC: apply every answer, then evaluate.
func Check(questions []Question, answers map[string]string) (*Questionnaire, bool, error) {
	q := New(questions)
	for id, raw := range answers {
		a, err := ParseAnswer(raw)
		if err != nil {
			return q, false, fmt.Errorf("%s: %w", id, err)
		}
		if err := q.Answer(id, a); err != nil {
			return q, false, err
		}
	}
	ok, err := q.Evaluate()
	return q, ok, err
}
