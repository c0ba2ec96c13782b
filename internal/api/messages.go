package api

import (
	"time"

	"blood-donation-api/internal/directory"
	"blood-donation-api/internal/eligibility"
	"blood-donation-api/internal/forms"
	"blood-donation-api/internal/model"
)

type Empty struct{}

// auth

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type AuthResponse struct {
	UserID       string    `json:"userId"`
	Name         string    `json:"name,omitempty"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// appointments

type ListAppointmentsResponse struct {
	Today    model.Date          `json:"today"`
	Upcoming []model.Appointment `json:"upcoming"`
	Past     []model.Appointment `json:"past"`
}

type ScheduleAppointmentRequest struct {
	Date     model.Date `json:"date"`
	Time     string     `json:"time"`
	Location string     `json:"location"`
}

type AppointmentResponse struct {
	Appointment *model.Appointment `json:"appointment"`
}

type CancelAppointmentRequest struct {
	ID string `json:"id"`
}

type ListFacilitiesResponse struct {
	Facilities     []string `json:"facilities"`
	Slots          []string `json:"slots"`
	ClosedOnSunday bool     `json:"closedOnSunday"`
}

// directory

type SearchRequest = directory.Filter

type SearchDonorsResponse struct {
	Donors []model.Donor `json:"donors"`
}

type SearchBanksResponse struct {
	Banks []model.Bank `json:"banks"`
}

type BankMapRequest struct {
	directory.Filter
	Center *model.LatLng `json:"center,omitempty"`
	Zoom   int           `json:"zoom,omitempty" validate:"gte=0,lte=21"`
}

type BankMapResponse = directory.MapData

type BloodInventoryResponse struct {
	Items []directory.Stock `json:"items"`
}

// eligibility

type ListEligibilityQuestionsResponse struct {
	Questions []eligibility.Question `json:"questions"`
}

type CheckEligibilityRequest struct {
	Answers map[string]string `json:"answers"`
}

type CheckEligibilityResponse struct {
	Eligible bool `json:"eligible"`
}

// submissions

type (
	SubmitBloodRequestRequest = forms.BloodRequestForm
	UpdateProfileRequest      = forms.ProfileForm
	SubmitFeedbackRequest     = forms.FeedbackForm
	HostCampRequest           = forms.CampForm
)

type BloodRequestResponse struct {
	Request *model.BloodRequest `json:"request"`
}

type ProfileResponse struct {
	Profile *model.Profile `json:"profile"`
}

type FeedbackResponse struct {
	ID string `json:"id"`
}

type CampResponse struct {
	Camp *model.Camp `json:"camp"`
}
