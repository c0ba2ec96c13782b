// Package forms accepts the write-once submissions (blood requests, feedback,
// camps) and the caller's profile edits. Each call validates its form and
// then makes a single store call.
package forms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"blood-donation-api/internal/auth"
	"blood-donation-api/internal/model"
	"blood-donation-api/internal/validate"
)

var ErrProfileNotFound = errors.New("profile not found")

type Repo interface {
	CreateBloodRequest(ctx context.Context, r *model.BloodRequest) error
	GetProfile(ctx context.Context, userID string) (*model.Profile, error)
	// UpdateProfile overwrites the editable columns; model.ErrNotFound when
	// the user has no profile row.
	UpdateProfile(ctx context.Context, p *model.Profile) error
	CreateFeedback(ctx context.Context, f *model.Feedback) error
	CreateCamp(ctx context.Context, c *model.Camp) error
}

type Options struct {
	Location *time.Location
	Now      func() time.Time
}

type Service struct {
	repo Repo
	loc  *time.Location
	now  func() time.Time
}

func NewService(repo Repo, opts Options) *Service {
	s := &Service{repo: repo, loc: opts.Location, now: opts.Now}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *Service) today() model.Date { return model.Today(s.now(), s.loc) }

type BloodRequestForm struct {
	FullName              string          `json:"fullName" validate:"required,min=2,max=100"`
	ContactNumber         string          `json:"contactNumber" validate:"required,min=10,max=20"`
	BloodType             model.BloodType `json:"bloodType" validate:"required,bloodtype"`
	UnitsNeeded           int             `json:"unitsNeeded" validate:"required,min=1,max=10"`
	Hospital              string          `json:"hospital" validate:"required,min=2,max=200"`
	Urgency               string          `json:"urgency" validate:"required,oneof=critical urgent standard scheduled"`
	IsSubscription        bool            `json:"isSubscription"`
	SubscriptionFrequency string          `json:"subscriptionFrequency,omitempty" validate:"omitempty,oneof=monthly quarterly semi-annual custom"`
	AdditionalInfo        string          `json:"additionalInfo,omitempty" validate:"max=1000"`
}

func (s *Service) SubmitBloodRequest(ctx context.Context, sess auth.Session, f BloodRequestForm) (*model.BloodRequest, error) {
	if err := sess.Require(); err != nil {
		return nil, err
	}
	if err := validate.Struct(f); err != nil {
		return nil, err
	}
	r := &model.BloodRequest{
		ID:                    uuid.New().String(),
		UserID:                sess.UserID,
		FullName:              strings.TrimSpace(f.FullName),
		ContactNumber:         strings.TrimSpace(f.ContactNumber),
		BloodType:             f.BloodType,
		UnitsNeeded:           f.UnitsNeeded,
		Hospital:              strings.TrimSpace(f.Hospital),
		Urgency:               f.Urgency,
		IsSubscription:        f.IsSubscription,
		SubscriptionFrequency: f.SubscriptionFrequency,
		AdditionalInfo:        f.AdditionalInfo,
		Status:                model.RequestPending,
	}
	if err := s.repo.CreateBloodRequest(ctx, r); err != nil {
		return nil, fmt.Errorf("create blood request: %w", err)
	}
	return r, nil
}

func (s *Service) GetProfile(ctx context.Context, sess auth.Session) (*model.Profile, error) {
	if err := sess.Require(); err != nil {
		return nil, err
	}
	p, err := s.repo.GetProfile(ctx, sess.UserID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// ProfileForm replaces the editable profile fields. Empty fields are stored
// as empty.
type ProfileForm struct {
	FullName             string          `json:"fullName" validate:"omitempty,min=2,max=100"`
	PhoneNumber          string          `json:"phoneNumber" validate:"omitempty,min=10,max=20"`
	DateOfBirth          model.Date      `json:"dateOfBirth"`
	BloodType            model.BloodType `json:"bloodType" validate:"omitempty,bloodtype"`
	EmergencyContact     string          `json:"emergencyContact" validate:"omitempty,min=10,max=20"`
	EmergencyContactName string          `json:"emergencyContactName" validate:"max=100"`
	Weight               float64         `json:"weight" validate:"gte=0,lte=500"`
	Height               float64         `json:"height" validate:"gte=0,lte=300"`
	MedicalInfo          string          `json:"medicalInfo" validate:"max=2000"`
}

func (s *Service) UpdateProfile(ctx context.Context, sess auth.Session, f ProfileForm) (*model.Profile, error) {
	if err := sess.Require(); err != nil {
		return nil, err
	}
	var dob error
	if !f.DateOfBirth.IsZero() && !f.DateOfBirth.Before(s.today()) {
		dob = validate.Field("dateOfBirth", "must be in the past")
	}
	if err := validate.Merge(validate.Struct(f), dob); err != nil {
		return nil, err
	}

	p := &model.Profile{
		ID:                   sess.UserID,
		FullName:             strings.TrimSpace(f.FullName),
		PhoneNumber:          strings.TrimSpace(f.PhoneNumber),
		DateOfBirth:          f.DateOfBirth,
		BloodType:            f.BloodType,
		EmergencyContact:     strings.TrimSpace(f.EmergencyContact),
		EmergencyContactName: strings.TrimSpace(f.EmergencyContactName),
		Weight:               f.Weight,
		Height:               f.Height,
		MedicalInfo:          f.MedicalInfo,
		UpdatedAt:            s.now(),
	}
	err := s.repo.UpdateProfile(ctx, p)
	if errors.Is(err, model.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return p, nil
}

type FeedbackForm struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Subject  string `json:"subject" validate:"required,max=200"`
	Category string `json:"category" validate:"required,max=50"`
	Message  string `json:"message" validate:"required,min=10,max=5000"`
}

// SubmitFeedback accepts anonymous feedback; a signed-in caller is recorded.
func (s *Service) SubmitFeedback(ctx context.Context, sess auth.Session, f FeedbackForm) (*model.Feedback, error) {
	if err := validate.Struct(f); err != nil {
		return nil, err
	}
	fb := &model.Feedback{
		ID:       uuid.New().String(),
		UserID:   sess.UserID,
		Name:     strings.TrimSpace(f.Name),
		Email:    strings.TrimSpace(f.Email),
		Subject:  strings.TrimSpace(f.Subject),
		Category: f.Category,
		Message:  f.Message,
	}
	if err := s.repo.CreateFeedback(ctx, fb); err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	return fb, nil
}

type CampForm struct {
	Name          string     `json:"name" validate:"required,min=3,max=200"`
	Organizer     string     `json:"organizer" validate:"required,min=2,max=200"`
	Location      string     `json:"location" validate:"required,min=5,max=300"`
	Date          model.Date `json:"date"`
	StartTime     string     `json:"startTime" validate:"required,clock"`
	EndTime       string     `json:"endTime" validate:"required,clock"`
	ContactNumber string     `json:"contactNumber" validate:"required,min=10,max=20"`
	Description   string     `json:"description" validate:"required,min=20,max=5000"`
	Requirements  string     `json:"requirements,omitempty" validate:"max=2000"`
}

func (s *Service) HostCamp(ctx context.Context, sess auth.Session, f CampForm) (*model.Camp, error) {
	if err := sess.Require(); err != nil {
		return nil, err
	}
	var extra validate.Errors
	switch {
	case f.Date.IsZero():
		extra = append(extra, validate.FieldError{Field: "date", Message: "is required"})
	case f.Date.Before(s.today()):
		extra = append(extra, validate.FieldError{Field: "date", Message: "must be today or later"})
	}
	// HH:MM compares correctly as a string once both are well formed
	if f.StartTime != "" && f.EndTime != "" && f.EndTime <= f.StartTime {
		extra = append(extra, validate.FieldError{Field: "endTime", Message: "must be after startTime"})
	}
	var extraErr error
	if len(extra) > 0 {
		extraErr = extra
	}
	if err := validate.Merge(validate.Struct(f), extraErr); err != nil {
		return nil, err
	}

	c := &model.Camp{
		ID:            uuid.New().String(),
		UserID:        sess.UserID,
		Name:          strings.TrimSpace(f.Name),
		Organizer:     strings.TrimSpace(f.Organizer),
		Location:      strings.TrimSpace(f.Location),
		Date:          f.Date,
		StartTime:     f.StartTime,
		EndTime:       f.EndTime,
		ContactNumber: strings.TrimSpace(f.ContactNumber),
		Description:   f.Description,
		Requirements:  f.Requirements,
		Status:        model.CampPending,
	}
	if err := s.repo.CreateCamp(ctx, c); err != nil {
		return nil, fmt.Errorf("create camp: %w", err)
	}
	return c, nil
}
