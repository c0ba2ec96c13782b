// Package handler implements BloodBankService on top of the domain services.
// Each RPC validates its request, makes one service call and maps the
// outcome to a gRPC status.
package handler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"blood-donation-api/internal/api"
	"blood-donation-api/internal/appointment"
	"blood-donation-api/internal/auth"
	"blood-donation-api/internal/directory"
	"blood-donation-api/internal/eligibility"
	"blood-donation-api/internal/forms"
	"blood-donation-api/internal/model"
)

// Accounts is the store surface used by the auth RPCs.
type Accounts interface {
	CreateUserWithProfile(ctx context.Context, u *model.User, p *model.Profile) error
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	UserByID(ctx context.Context, id string) (*model.User, error)
	CreateRefreshToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) (string, error)
	RefreshTokenByHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error)
	RotateRefreshToken(ctx context.Context, oldID, newID, userID, newHash string, newExpiry time.Time) error
	RevokeAllRefreshTokens(ctx context.Context, userID string) error
}

type Deps struct {
	Accounts     Accounts
	Appointments *appointment.Manager
	Directory    *directory.Service
	Forms        *forms.Service
	Issuer       *auth.Issuer
	Questions    []eligibility.Question
	Log          *zap.Logger
}

type Handler struct {
	api.UnimplementedBloodBankServiceServer
	accounts  Accounts
	appts     *appointment.Manager
	dir       *directory.Service
	forms     *forms.Service
	iss       *auth.Issuer
	questions []eligibility.Question
	log       *zap.Logger
	now       func() time.Time
}

func New(d Deps) *Handler {
	h := &Handler{
		accounts:  d.Accounts,
		appts:     d.Appointments,
		dir:       d.Directory,
		forms:     d.Forms,
		iss:       d.Issuer,
		questions: d.Questions,
		log:       d.Log,
		now:       time.Now,
	}
	if h.dir == nil {
		h.dir = directory.NewService(nil)
	}
	if len(h.questions) == 0 {
		h.questions = eligibility.DefaultQuestions
	}
	if h.log == nil {
		h.log = zap.NewNop()
	}
	return h
}
