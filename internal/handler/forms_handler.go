package handler

import (
	"context"

	"blood-donation-api/internal/api"
	"blood-donation-api/internal/auth"
	"blood-donation-api/internal/monitoring"
)

func (h *Handler) SubmitBloodRequest(ctx context.Context, req *api.SubmitBloodRequestRequest) (*api.BloodRequestResponse, error) {
	r, err := h.forms.SubmitBloodRequest(ctx, auth.FromContext(ctx), *req)
	if err != nil {
		return nil, h.fail(ctx, "submit blood request", err, "failed to submit blood request")
	}
	monitoring.BloodRequestSubmitted(r.Urgency)
	return &api.BloodRequestResponse{Request: r}, nil
}

func (h *Handler) GetProfile(ctx context.Context, _ *api.Empty) (*api.ProfileResponse, error) {
	p, err := h.forms.GetProfile(ctx, auth.FromContext(ctx))
	if err != nil {
		return nil, h.fail(ctx, "get profile", err, "failed to load profile")
	}
	return &api.ProfileResponse{Profile: p}, nil
}

func (h *Handler) UpdateProfile(ctx context.Context, req *api.UpdateProfileRequest) (*api.ProfileResponse, error) {
	p, err := h.forms.UpdateProfile(ctx, auth.FromContext(ctx), *req)
	if err != nil {
		return nil, h.fail(ctx, "update profile", err, "failed to update profile")
	}
	return &api.ProfileResponse{Profile: p}, nil
}

func (h *Handler) SubmitFeedback(ctx context.Context, req *api.SubmitFeedbackRequest) (*api.FeedbackResponse, error) {
	fb, err := h.forms.SubmitFeedback(ctx, auth.FromContext(ctx), *req)
	if err != nil {
		return nil, h.fail(ctx, "submit feedback", err, "failed to submit feedback")
	}
	return &api.FeedbackResponse{ID: fb.ID}, nil
}

func (h *Handler) HostCamp(ctx context.Context, req *api.HostCampRequest) (*api.CampResponse, error) {
	c, err := h.forms.HostCamp(ctx, auth.FromContext(ctx), *req)
	if err != nil {
		return nil, h.fail(ctx, "host camp", err, "failed to register camp")
	}
	return &api.CampResponse{Camp: c}, nil
}
