package handler

import (
	"context"
	"errors"

	"blood-donation-api/internal/api"
	"blood-donation-api/internal/eligibility"
	"blood-donation-api/internal/monitoring"
)

func (h *Handler) ListEligibilityQuestions(context.Context, *api.Empty) (*api.ListEligibilityQuestionsResponse, error) {
	return &api.ListEligibilityQuestionsResponse{Questions: eligibility.New(h.questions).Questions()}, nil
}

func (h *Handler) CheckEligibility(ctx context.Context, req *api.CheckEligibilityRequest) (*api.CheckEligibilityResponse, error) {
	q, ok, err := eligibility.Check(h.questions, req.Answers)
	switch {
	case errors.Is(err, eligibility.ErrIncomplete):
		return nil, incomplete(q.Missing())
	case errors.Is(err, eligibility.ErrUnknownQuestion), errors.Is(err, eligibility.ErrBadAnswer):
		return nil, badAnswers(err)
	case err != nil:
		return nil, h.fail(ctx, "check eligibility", err, "failed to check eligibility")
	}
	monitoring.EligibilityChecked(ok)
	return &api.CheckEligibilityResponse{Eligible: ok}, nil
}
