package handler

import (
	"context"

	"blood-donation-api/internal/api"
	"blood-donation-api/internal/appointment"
	"blood-donation-api/internal/auth"
	"blood-donation-api/internal/monitoring"
)

func (h *Handler) ListAppointments(ctx context.Context, _ *api.Empty) (*api.ListAppointmentsResponse, error) {
	sched, err := h.appts.List(ctx, auth.FromContext(ctx))
	if err != nil {
		return nil, h.fail(ctx, "list appointments", err, "failed to load appointments")
	}
	return &api.ListAppointmentsResponse{
		Today:    h.appts.Today(),
		Upcoming: sched.Upcoming,
		Past:     sched.Past,
	}, nil
}

func (h *Handler) ScheduleAppointment(ctx context.Context, req *api.ScheduleAppointmentRequest) (*api.AppointmentResponse, error) {
	a, err := h.appts.Schedule(ctx, auth.FromContext(ctx), appointment.Booking{
		Date:     req.Date,
		Time:     req.Time,
		Location: req.Location,
	})
	if err != nil {
		return nil, h.fail(ctx, "schedule appointment", err, "failed to schedule appointment")
	}
	monitoring.AppointmentScheduled()
	return &api.AppointmentResponse{Appointment: a}, nil
}

func (h *Handler) CancelAppointment(ctx context.Context, req *api.CancelAppointmentRequest) (*api.Empty, error) {
	if err := h.appts.Cancel(ctx, auth.FromContext(ctx), req.ID); err != nil {
		return nil, h.fail(ctx, "cancel appointment", err, "failed to cancel appointment")
	}
	monitoring.AppointmentCancelled()
	return &api.Empty{}, nil
}

func (h *Handler) ListFacilities(context.Context, *api.Empty) (*api.ListFacilitiesResponse, error) {
	return &api.ListFacilitiesResponse{
		Facilities:     h.appts.Facilities(),
		Slots:          h.appts.Slots(),
		ClosedOnSunday: h.appts.ClosedOnSunday(),
	}, nil
}
