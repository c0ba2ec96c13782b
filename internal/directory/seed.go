package directory

import (
	"context"
	"time"

	"blood-donation-api/internal/model"
)

// Static serves the built-in seed records. It backs local runs and the
// memory store.
type Static struct{}

func (Static) Donors(context.Context) ([]model.Donor, error) { return SeedDonors(), nil }
func (Static) Banks(context.Context) ([]model.Bank, error)   { return SeedBanks(), nil }
func (Static) Inventory(context.Context) ([]model.InventoryItem, error) {
	return SeedInventory(), nil
}

func d(y int, m time.Month, day int) model.Date { return model.Date{Year: y, Month: m, Day: day} }

func SeedDonors() []model.Donor {
	return []model.Donor{
		{ID: "1", Name: "Rajesh Kumar", BloodType: model.OPos, Location: "Mumbai, Maharashtra", LastDonation: d(2026, time.July, 12), DonationCount: 12, Available: true},
		{ID: "2", Name: "Priya Sharma", BloodType: model.ABNeg, Location: "Delhi, NCR", LastDonation: d(2026, time.April, 3), DonationCount: 8, Available: true},
		{ID: "3", Name: "Amit Patel", BloodType: model.APos, Location: "Ahmedabad, Gujarat", LastDonation: d(2026, time.September, 20), DonationCount: 20, Available: false},
		{ID: "4", Name: "Sunita Reddy", BloodType: model.BPos, Location: "Bangalore, Karnataka", LastDonation: d(2026, time.August, 8), DonationCount: 15, Available: true},
		{ID: "5", Name: "Karthik Iyer", BloodType: model.ONeg, Location: "Chennai, Tamil Nadu", LastDonation: d(2025, time.October, 2), DonationCount: 5, Available: true},
		{ID: "6", Name: "Ananya Desai", BloodType: model.ANeg, Location: "Pune, Maharashtra", LastDonation: d(2026, time.June, 15), DonationCount: 10, Available: true},
	}
}

func SeedBanks() []model.Bank {
	return []model.Bank{
		{
			ID: "1", Name: "City General Hospital Blood Bank",
			Address: "123 Medical Center Dr, New York, NY 10001", Phone: "(212) 555-1234",
			Hours:    "Mon-Fri: 8AM-6PM, Sat: 9AM-2PM, Sun: Closed",
			Position: model.LatLng{Lat: 40.7506, Lng: -73.9971},
			Availability: map[model.BloodType]model.Level{
				model.APos: model.LevelHigh, model.ANeg: model.LevelMedium, model.BPos: model.LevelLow, model.BNeg: model.LevelCritical,
				model.ABPos: model.LevelMedium, model.ABNeg: model.LevelCritical, model.OPos: model.LevelHigh, model.ONeg: model.LevelMedium,
			},
		},
		{
			ID: "2", Name: "Downtown Blood Donation Center",
			Address: "456 Community Blvd, New York, NY 10002", Phone: "(212) 555-5678",
			Hours:    "Mon-Sat: 9AM-7PM, Sun: 10AM-4PM",
			Position: model.LatLng{Lat: 40.7157, Lng: -73.9863},
			Availability: map[model.BloodType]model.Level{
				model.APos: model.LevelHigh, model.ANeg: model.LevelHigh, model.BPos: model.LevelMedium, model.BNeg: model.LevelMedium,
				model.ABPos: model.LevelLow, model.ABNeg: model.LevelLow, model.OPos: model.LevelCritical, model.ONeg: model.LevelCritical,
			},
		},
		{
			ID: "3", Name: "University Medical Blood Services",
			Address: "789 University Ave, New York, NY 10003", Phone: "(212) 555-9012",
			Hours:    "Mon-Fri: 8:30AM-5PM, Sat-Sun: Closed",
			Position: model.LatLng{Lat: 40.7317, Lng: -73.9892},
			Availability: map[model.BloodType]model.Level{
				model.APos: model.LevelMedium, model.ANeg: model.LevelLow, model.BPos: model.LevelHigh, model.BNeg: model.LevelMedium,
				model.ABPos: model.LevelHigh, model.ABNeg: model.LevelMedium, model.OPos: model.LevelLow, model.ONeg: model.LevelCritical,
			},
		},
		{
			ID: "4", Name: "Central Blood Bank",
			Address: "101 Main Street, New York, NY 10004", Phone: "(212) 555-3456",
			Hours:    "Mon-Sun: 24 Hours",
			Position: model.LatLng{Lat: 40.7033, Lng: -74.0170},
			Availability: map[model.BloodType]model.Level{
				model.APos: model.LevelHigh, model.ANeg: model.LevelMedium, model.BPos: model.LevelHigh, model.BNeg: model.LevelHigh,
				model.ABPos: model.LevelMedium, model.ABNeg: model.LevelLow, model.OPos: model.LevelMedium, model.ONeg: model.LevelMedium,
			},
		},
	}
}

func SeedInventory() []model.InventoryItem {
	return []model.InventoryItem{
		{BloodType: model.APos, Stock: 78, Capacity: 100},
		{BloodType: model.ANeg, Stock: 45, Capacity: 100},
		{BloodType: model.BPos, Stock: 56, Capacity: 100},
		{BloodType: model.BNeg, Stock: 23, Capacity: 100},
		{BloodType: model.ABPos, Stock: 12, Capacity: 100},
		{BloodType: model.ABNeg, Stock: 8, Capacity: 100},
		{BloodType: model.OPos, Stock: 34, Capacity: 100},
		{BloodType: model.ONeg, Stock: 12, Capacity: 100},
	}
}
