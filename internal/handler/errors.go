package handler

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"blood-donation-api/internal/appointment"
	"blood-donation-api/internal/auth"
	"blood-donation-api/internal/forms"
	"blood-donation-api/internal/model"
	"blood-donation-api/internal/validate"
)

// fail maps a service error to a status. Anything unrecognised is logged and
// reported as Internal with msg, so store details never reach the caller.
func (h *Handler) fail(ctx context.Context, op string, err error, msg string) error {
	var fields validate.Errors
	switch {
	case errors.As(err, &fields):
		return invalid(fields)
	case errors.Is(err, auth.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, "sign in required")
	case errors.Is(err, appointment.ErrNotFound):
		return status.Error(codes.NotFound, "appointment not found")
	case errors.Is(err, forms.ErrProfileNotFound), errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, "profile not found")
	case errors.Is(err, appointment.ErrSlotTaken):
		return status.Error(codes.AlreadyExists, "you already have an appointment in this slot")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request cancelled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	h.log.Error(op,
		zap.String("user", auth.FromContext(ctx).UserID),
		zap.Error(err),
	)
	return status.Error(codes.Internal, msg)
}

// invalid carries one BadRequest field violation per failed field.
func invalid(errs validate.Errors) error {
	st := status.New(codes.InvalidArgument, errs.Error())
	br := &errdetails.BadRequest{}
	for _, f := range errs {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       f.Field,
			Description: f.Message,
		})
	}
	if d, err := st.WithDetails(br); err == nil {
		return d.Err()
	}
	return st.Err()
}

// incomplete lists the unanswered questions as precondition violations.
func incomplete(missing []string) error {
	st := status.New(codes.FailedPrecondition, "questionnaire incomplete: missing "+strings.Join(missing, ", "))
	pf := &errdetails.PreconditionFailure{}
	for _, id := range missing {
		pf.Violations = append(pf.Violations, &errdetails.PreconditionFailure_Violation{
			Type:        "UNANSWERED",
			Subject:     id,
			Description: "question has not been answered",
		})
	}
	if d, err := st.WithDetails(pf); err == nil {
		return d.Err()
	}
	return st.Err()
}

func badAnswers(err error) error {
	return invalid(validate.Field("answers", err.Error()))
}
