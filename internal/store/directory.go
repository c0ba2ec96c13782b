package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"blood-donation-api/internal/model"
)

func (s *Store) Donors(ctx context.Context) ([]model.Donor, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, blood_type, location, last_donation, donation_count, available
		 FROM donors ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Donor, error) {
		var (
			d    model.Donor
			last pgtype.Date
			bt   string
		)
		err := row.Scan(&d.ID, &d.Name, &bt, &d.Location, &last, &d.DonationCount, &d.Available)
		d.BloodType = model.BloodType(bt)
		d.LastDonation = fromPgDate(last)
		return d, err
	})
}

// Banks decodes availability from a jsonb object of blood type to level.
func (s *Store) Banks(ctx context.Context) ([]model.Bank, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, address, phone, hours,
		        COALESCE(lat, 0)::float8, COALESCE(lng, 0)::float8, availability
		 FROM banks ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Bank, error) {
		var b model.Bank
		err := row.Scan(&b.ID, &b.Name, &b.Address, &b.Phone, &b.Hours,
			&b.Position.Lat, &b.Position.Lng, &b.Availability)
		return b, err
	})
}

func (s *Store) Inventory(ctx context.Context) ([]model.InventoryItem, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT blood_type, stock, capacity FROM blood_inventory ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.InventoryItem, error) {
		var (
			it model.InventoryItem
			bt string
		)
		err := row.Scan(&bt, &it.Stock, &it.Capacity)
		it.BloodType = model.BloodType(bt)
		return it, err
	})
}
