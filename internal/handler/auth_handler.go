package handler

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"blood-donation-api/internal/api"
	"blood-donation-api/internal/auth"
	"blood-donation-api/internal/model"
	"blood-donation-api/internal/validate"
)

func (h *Handler) Register(ctx context.Context, req *api.RegisterRequest) (*api.AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return nil, h.fail(ctx, "register", err, "registration failed")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, h.fail(ctx, "register", err, "registration failed")
	}

	u := &model.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
	}
	p := &model.Profile{ID: u.ID, FullName: u.Name}

	if err := h.accounts.CreateUserWithProfile(ctx, u, p); err != nil {
		if errors.Is(err, model.ErrConflict) {
			// dup email, but don't reveal that
			return nil, status.Error(codes.AlreadyExists, "registration failed")
		}
		return nil, h.fail(ctx, "register", err, "registration failed")
	}

	return h.issue(ctx, u)
}

func (h *Handler) Login(ctx context.Context, req *api.LoginRequest) (*api.AuthResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, h.fail(ctx, "login", err, "login failed")
	}

	u, err := h.accounts.UserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if errors.Is(err, model.ErrNotFound) {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}
	if err != nil {
		return nil, h.fail(ctx, "login", err, "login failed")
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}

	return h.issue(ctx, u)
}

// Refresh rotates the refresh token. Presenting a token that was already
// rotated revokes every token the user holds.
func (h *Handler) Refresh(ctx context.Context, req *api.RefreshRequest) (*api.AuthResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, h.fail(ctx, "refresh", err, "refresh failed")
	}

	rt, err := h.accounts.RefreshTokenByHash(ctx, auth.HashRefreshToken(req.RefreshToken))
	if errors.Is(err, model.ErrNotFound) {
		return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
	}
	if err != nil {
		return nil, h.fail(ctx, "refresh", err, "refresh failed")
	}
	if rt.Revoked {
		return nil, h.reuse(ctx, rt.UserID)
	}
	if !h.now().Before(rt.ExpiresAt) {
		return nil, status.Error(codes.Unauthenticated, "refresh token expired")
	}

	u, err := h.accounts.UserByID(ctx, rt.UserID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
	}
	if err != nil {
		return nil, h.fail(ctx, "refresh", err, "refresh failed")
	}

	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, h.fail(ctx, "refresh", err, "refresh failed")
	}
	err = h.accounts.RotateRefreshToken(ctx, rt.ID, uuid.New().String(), u.ID, hash, h.iss.RefreshExpiry())
	if errors.Is(err, model.ErrConflict) {
		// lost a race with another refresh of the same token
		return nil, h.reuse(ctx, u.ID)
	}
	if err != nil {
		return nil, h.fail(ctx, "refresh", err, "refresh failed")
	}

	return h.pair(u, raw)
}

func (h *Handler) Logout(ctx context.Context, _ *api.Empty) (*api.Empty, error) {
	s := auth.FromContext(ctx)
	if err := s.Require(); err != nil {
		return nil, h.fail(ctx, "logout", err, "logout failed")
	}
	if err := h.accounts.RevokeAllRefreshTokens(ctx, s.UserID); err != nil {
		return nil, h.fail(ctx, "logout", err, "logout failed")
	}
	return &api.Empty{}, nil
}

func (h *Handler) reuse(ctx context.Context, userID string) error {
	h.log.Warn("refresh token reuse", zap.String("user", userID))
	if err := h.accounts.RevokeAllRefreshTokens(ctx, userID); err != nil {
		h.log.Error("revoke tokens", zap.String("user", userID), zap.Error(err))
	}
	return status.Error(codes.Unauthenticated, "invalid refresh token")
}

// issue stores a fresh refresh token for u and returns the pair.
func (h *Handler) issue(ctx context.Context, u *model.User) (*api.AuthResponse, error) {
	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, h.fail(ctx, "issue tokens", err, "internal error")
	}
	if _, err := h.accounts.CreateRefreshToken(ctx, u.ID, hash, h.iss.RefreshExpiry()); err != nil {
		return nil, h.fail(ctx, "issue tokens", err, "internal error")
	}
	return h.pair(u, raw)
}

func (h *Handler) pair(u *model.User, refresh string) (*api.AuthResponse, error) {
	tok, err := h.iss.AccessToken(auth.Session{UserID: u.ID, Email: u.Email})
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &api.AuthResponse{
		UserID:       u.ID,
		Name:         u.Name,
		AccessToken:  tok,
		RefreshToken: refresh,
		ExpiresAt:    h.now().Add(h.iss.AccessTTL).UTC(),
	}, nil
}
