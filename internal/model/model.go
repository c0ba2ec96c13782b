package model

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RefreshToken struct {
	ID         string
	UserID     string
	TokenHash  string
	ExpiresAt  time.Time
	Revoked    bool
	ReplacedBy *string
	CreatedAt  time.Time
}

type Appointment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Date      Date      `json:"date"`
	Time      string    `json:"time"`
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

type Donor struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	BloodType     BloodType `json:"bloodType"`
	Location      string    `json:"location"`
	LastDonation  Date      `json:"lastDonation"`
	DonationCount int       `json:"donationCount"`
	Available     bool      `json:"available"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p LatLng) IsZero() bool { return p.Lat == 0 && p.Lng == 0 }

type Bank struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Address      string              `json:"address"`
	Phone        string              `json:"phone"`
	Hours        string              `json:"hours"`
	Position     LatLng              `json:"position"`
	Availability map[BloodType]Level `json:"availability"`
}

type InventoryItem struct {
	BloodType BloodType `json:"bloodType"`
	Stock     int       `json:"stock"`
	Capacity  int       `json:"capacity"`
}

type BloodRequest struct {
	ID                    string    `json:"id"`
	UserID                string    `json:"userId"`
	FullName              string    `json:"fullName"`
	ContactNumber         string    `json:"contactNumber"`
	BloodType             BloodType `json:"bloodType"`
	UnitsNeeded           int       `json:"unitsNeeded"`
	Hospital              string    `json:"hospital"`
	Urgency               string    `json:"urgency"`
	IsSubscription        bool      `json:"isSubscription"`
	SubscriptionFrequency string    `json:"subscriptionFrequency,omitempty"`
	AdditionalInfo        string    `json:"additionalInfo,omitempty"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"createdAt,omitzero"`
}

// Profile is keyed by the owning user's id; one row per user.
type Profile struct {
	ID                   string    `json:"id"`
	FullName             string    `json:"fullName"`
	PhoneNumber          string    `json:"phoneNumber,omitempty"`
	DateOfBirth          Date      `json:"dateOfBirth"`
	BloodType            BloodType `json:"bloodType,omitempty"`
	EmergencyContact     string    `json:"emergencyContact,omitempty"`
	EmergencyContactName string    `json:"emergencyContactName,omitempty"`
	Weight               float64   `json:"weight,omitempty"`
	Height               float64   `json:"height,omitempty"`
	MedicalInfo          string    `json:"medicalInfo,omitempty"`
	UpdatedAt            time.Time `json:"updatedAt,omitzero"`
}

type Feedback struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

type Camp struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Name          string    `json:"name"`
	Organizer     string    `json:"organizer"`
	Location      string    `json:"location"`
	Date          Date      `json:"date"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	ContactNumber string    `json:"contactNumber"`
	Description   string    `json:"description"`
	Requirements  string    `json:"requirements,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt,omitzero"`
}
