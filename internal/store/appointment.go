package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"blood-donation-api/internal/model"
)

func (s *Store) ListAppointments(ctx context.Context, userID string) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, appointment_date, appointment_time, location, status, created_at, updated_at
		 FROM appointments
		 WHERE user_id = $1
		 ORDER BY appointment_date, appointment_time`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var (
			a model.Appointment
			d pgtype.Date
		)
		if err := rows.Scan(
			&a.ID, &a.UserID, &d, &a.Time, &a.Location, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		a.Date = fromPgDate(d)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) HasBooking(ctx context.Context, userID string, date model.Date, slot string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM appointments
			WHERE user_id = $1 AND appointment_date = $2 AND appointment_time = $3)`,
		userID, toPgDate(date), slot,
	).Scan(&exists)
	return exists, err
}

// CreateAppointment relies on the appointments_user_slot unique index to
// catch a booking that raced the HasBooking check.
func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO appointments (id, user_id, appointment_date, appointment_time, location, status)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 RETURNING created_at, updated_at`,
		a.ID, a.UserID, toPgDate(a.Date), a.Time, a.Location, a.Status,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	return mapErr(err)
}

func (s *Store) DeleteAppointment(ctx context.Context, id, userID string) (bool, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM appointments WHERE id = $1 AND user_id = $2`, id, userID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
