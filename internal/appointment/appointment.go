// Package appointment books, lists and cancels donation appointments.
//
// Classification into upcoming and past is computed on every read from the
// appointment's calendar date and the current local date; it is never stored.
package appointment

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"blood-donation-api/internal/auth"
	"blood-donation-api/internal/model"
	"blood-donation-api/internal/validate"
)

var (
	ErrNotFound  = errors.New("appointment not found")
	ErrSlotTaken = errors.New("slot already booked")
)

// DefaultFacilities are the donation centres offered for booking.
var DefaultFacilities = []string{
	"Apollo Blood Bank, Hyderabad",
	"Max Healthcare Blood Bank, Delhi",
	"Tata Memorial Blood Bank, Mumbai",
	"Fortis Blood Donation Centre, Bengaluru",
	"AIIMS Blood Center, New Delhi",
	"Sahyadri Blood Bank, Pune",
	"Jankalyan Blood Bank, Pune",
	"Rotary Blood Bank, Chandigarh",
	"CMC Blood Bank, Vellore",
	"PGI Blood Bank, Lucknow",
}

// DefaultSlots are hourly slots from 09:00 to 17:00.
var DefaultSlots = []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}

// Repo is the data collaborator for appointment rows.
type Repo interface {
	ListAppointments(ctx context.Context, userID string) ([]model.Appointment, error)
	HasBooking(ctx context.Context, userID string, date model.Date, slot string) (bool, error)
	CreateAppointment(ctx context.Context, a *model.Appointment) error
	// DeleteAppointment reports whether a row owned by userID was removed.
	DeleteAppointment(ctx context.Context, id, userID string) (bool, error)
}

type Options struct {
	Facilities     []string
	Slots          []string
	ClosedOnSunday bool
	Location       *time.Location
	Now            func() time.Time
}

type Manager struct {
	repo           Repo
	facilities     []string
	slots          []string
	closedOnSunday bool
	loc            *time.Location
	now            func() time.Time
}

func NewManager(repo Repo, opts Options) *Manager {
	m := &Manager{
		repo:           repo,
		facilities:     opts.Facilities,
		slots:          opts.Slots,
		closedOnSunday: opts.ClosedOnSunday,
		loc:            opts.Location,
		now:            opts.Now,
	}
	if len(m.facilities) == 0 {
		m.facilities = DefaultFacilities
	}
	if len(m.slots) == 0 {
		m.slots = DefaultSlots
	}
	if m.loc == nil {
		m.loc = time.Local
	}
	if m.now == nil {
		m.now = time.Now
	}
	return m
}

func (m *Manager) Facilities() []string { return slices.Clone(m.facilities) }
func (m *Manager) Slots() []string      { return slices.Clone(m.slots) }
func (m *Manager) ClosedOnSunday() bool { return m.closedOnSunday }

// Today is the current calendar date in the manager's location.
func (m *Manager) Today() model.Date { return model.Today(m.now(), m.loc) }

type Schedule struct {
	Upcoming []model.Appointment `json:"upcoming"`
	Past     []model.Appointment `json:"past"`
}

// List fetches all of the caller's appointments and splits them at today.
func (m *Manager) List(ctx context.Context, s auth.Session) (Schedule, error) {
	if err := s.Require(); err != nil {
		return Schedule{}, err
	}
	rows, err := m.repo.ListAppointments(ctx, s.UserID)
	if err != nil {
		return Schedule{}, fmt.Errorf("list appointments: %w", err)
	}
	return Classify(rows, m.Today()), nil
}

// Classify sorts by date (slot as tie-break) and partitions at today:
// anything dated today or later is upcoming.
func Classify(rows []model.Appointment, today model.Date) Schedule {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b model.Appointment) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		}
		return 0
	})

	out := Schedule{Upcoming: []model.Appointment{}, Past: []model.Appointment{}}
	for _, a := range sorted {
		if a.Date.Compare(today) >= 0 {
			out.Upcoming = append(out.Upcoming, a)
		} else {
			out.Past = append(out.Past, a)
		}
	}
	return out
}

type Booking struct {
	Date     model.Date `json:"date"`
	Time     string     `json:"time"`
	Location string     `json:"location"`
}

// Check validates a booking against today, the facility list and the slot list.
// It does not touch the repo.
func (m *Manager) Check(b Booking) error {
	var errs validate.Errors
	today := m.Today()
	switch {
	case b.Date.IsZero():
		errs = append(errs, validate.FieldError{Field: "date", Message: "is required"})
	case b.Date.Before(today):
		errs = append(errs, validate.FieldError{Field: "date", Message: "must be today or later"})
	case m.closedOnSunday && b.Date.Weekday() == time.Sunday:
		errs = append(errs, validate.FieldError{Field: "date", Message: "centres are closed on Sundays"})
	}
	if !slices.Contains(m.slots, b.Time) {
		errs = append(errs, validate.FieldError{Field: "time", Message: "must be one of the offered slots"})
	}
	if !slices.Contains(m.facilities, b.Location) {
		errs = append(errs, validate.FieldError{Field: "location", Message: "must be one of the offered facilities"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Schedule books a confirmed appointment for the caller.
func (m *Manager) Schedule(ctx context.Context, s auth.Session, b Booking) (*model.Appointment, error) {
	if err := s.Require(); err != nil {
		return nil, err
	}
	if err := m.Check(b); err != nil {
		return nil, err
	}

	// app-level duplicate check
	if dup, err := m.repo.HasBooking(ctx, s.UserID, b.Date, b.Time); err != nil {
		return nil, fmt.Errorf("check booking: %w", err)
	} else if dup {
		return nil, ErrSlotTaken
	}

	a := &model.Appointment{
		ID:       uuid.New().String(),
		UserID:   s.UserID,
		Date:     b.Date,
		Time:     b.Time,
		Location: b.Location,
		Status:   model.StatusConfirmed,
	}
	if err := m.repo.CreateAppointment(ctx, a); err != nil {
		// unique index caught a concurrent booking
		if errors.Is(err, model.ErrConflict) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return a, nil
}

// Cancel deletes the caller's appointment. Rows owned by anyone else are
// reported as not found.
func (m *Manager) Cancel(ctx context.Context, s auth.Session, id string) error {
	if err := s.Require(); err != nil {
		return err
	}
	if id == "" {
		return validate.Field("id", "is required")
	}
	ok, err := m.repo.DeleteAppointment(ctx, id, s.UserID)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
