package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"blood-donation-api/internal/model"
)

func (s *Store) CreateBloodRequest(ctx context.Context, r *model.BloodRequest) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO blood_requests (id, user_id, full_name, contact_number, blood_type,
		        units_needed, hospital, urgency, is_subscription, subscription_frequency,
		        additional_info, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		 RETURNING created_at`,
		r.ID, r.UserID, r.FullName, r.ContactNumber, string(r.BloodType),
		r.UnitsNeeded, r.Hospital, r.Urgency, r.IsSubscription, nullText(r.SubscriptionFrequency),
		nullText(r.AdditionalInfo), r.Status,
	).Scan(&r.CreatedAt)
	return mapErr(err)
}

const profileColumns = `id, COALESCE(full_name, ''), COALESCE(phone_number, ''), date_of_birth,
	COALESCE(blood_type, ''), COALESCE(emergency_contact, ''), COALESCE(emergency_contact_name, ''),
	COALESCE(weight, 0)::float8, COALESCE(height, 0)::float8, COALESCE(medical_info, ''), updated_at`

func scanProfile(row interface{ Scan(...any) error }) (*model.Profile, error) {
	var (
		p   model.Profile
		dob pgtype.Date
		bt  string
	)
	if err := row.Scan(&p.ID, &p.FullName, &p.PhoneNumber, &dob, &bt,
		&p.EmergencyContact, &p.EmergencyContactName, &p.Weight, &p.Height,
		&p.MedicalInfo, &p.UpdatedAt); err != nil {
		return nil, mapErr(err)
	}
	p.DateOfBirth = fromPgDate(dob)
	p.BloodType = model.BloodType(bt)
	return &p, nil
}

func (s *Store) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	return scanProfile(s.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, userID))
}

// UpdateProfile overwrites the editable columns; empty values are stored as NULL.
func (s *Store) UpdateProfile(ctx context.Context, p *model.Profile) error {
	var weight, height pgtype.Float8
	if p.Weight > 0 {
		weight = pgtype.Float8{Float64: p.Weight, Valid: true}
	}
	if p.Height > 0 {
		height = pgtype.Float8{Float64: p.Height, Valid: true}
	}
	got, err := scanProfile(s.pool.QueryRow(ctx,
		`UPDATE profiles
		 SET full_name = $2, phone_number = $3, date_of_birth = $4, blood_type = $5,
		     emergency_contact = $6, emergency_contact_name = $7, weight = $8, height = $9,
		     medical_info = $10, updated_at = $11
		 WHERE id = $1
		 RETURNING `+profileColumns,
		p.ID, nullText(p.FullName), nullText(p.PhoneNumber), toPgDate(p.DateOfBirth),
		nullText(string(p.BloodType)), nullText(p.EmergencyContact), nullText(p.EmergencyContactName),
		weight, height, nullText(p.MedicalInfo), p.UpdatedAt,
	))
	if err != nil {
		return err
	}
	*p = *got
	return nil
}

func (s *Store) CreateFeedback(ctx context.Context, f *model.Feedback) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO feedback (id, user_id, name, email, subject, category, message)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 RETURNING created_at`,
		f.ID, nullText(f.UserID), f.Name, f.Email, f.Subject, f.Category, f.Message,
	).Scan(&f.CreatedAt)
	return mapErr(err)
}

func (s *Store) CreateCamp(ctx context.Context, c *model.Camp) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO blood_donation_camps (id, user_id, name, organizer, location, date,
		        start_time, end_time, contact_number, description, requirements, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		 RETURNING created_at`,
		c.ID, c.UserID, c.Name, c.Organizer, c.Location, toPgDate(c.Date),
		c.StartTime, c.EndTime, c.ContactNumber, c.Description, c.Requirements, c.Status,
	).Scan(&c.CreatedAt)
	return mapErr(err)
}
