package handler

import (
	"context"

	"blood-donation-api/internal/api"
	"blood-donation-api/internal/validate"
)

func (h *Handler) SearchDonors(ctx context.Context, req *api.SearchRequest) (*api.SearchDonorsResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, h.fail(ctx, "search donors", err, "failed to load donors")
	}
	donors, err := h.dir.SearchDonors(ctx, *req)
	if err != nil {
		return nil, h.fail(ctx, "search donors", err, "failed to load donors")
	}
	return &api.SearchDonorsResponse{Donors: donors}, nil
}

func (h *Handler) SearchBanks(ctx context.Context, req *api.SearchRequest) (*api.SearchBanksResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, h.fail(ctx, "search banks", err, "failed to load blood banks")
	}
	banks, err := h.dir.SearchBanks(ctx, *req)
	if err != nil {
		return nil, h.fail(ctx, "search banks", err, "failed to load blood banks")
	}
	return &api.SearchBanksResponse{Banks: banks}, nil
}

func (h *Handler) BankMap(ctx context.Context, req *api.BankMapRequest) (*api.BankMapResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, h.fail(ctx, "bank map", err, "failed to load map")
	}
	m, err := h.dir.BankMap(ctx, req.Filter, req.Center, req.Zoom)
	if err != nil {
		return nil, h.fail(ctx, "bank map", err, "failed to load map")
	}
	return &m, nil
}

func (h *Handler) BloodInventory(ctx context.Context, _ *api.Empty) (*api.BloodInventoryResponse, error) {
	items, err := h.dir.Inventory(ctx)
	if err != nil {
		return nil, h.fail(ctx, "blood inventory", err, "failed to load inventory")
	}
	return &api.BloodInventoryResponse{Items: items}, nil
}
