// Package directory searches the read-only donor and blood bank lists and
// derives the map view and stock summary from them.
package directory

import (
	"context"
	"fmt"
	"math"
	"strings"

	"blood-donation-api/internal/model"
)

// Filter narrows a search. Zero-value fields match everything.
type Filter struct {
	BloodType model.BloodType `json:"bloodType,omitempty" validate:"omitempty,bloodtype"`
	Location  string          `json:"location,omitempty" validate:"max=200"`
	Name      string          `json:"name,omitempty" validate:"max=200"`
}

func (f Filter) IsZero() bool { return f == Filter{} }

func contains(s, sub string) bool {
	if sub == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(strings.TrimSpace(sub)))
}

// Donors keeps donors matching f, preserving input order. It never returns nil.
func Donors(list []model.Donor, f Filter) []model.Donor {
	out := make([]model.Donor, 0, len(list))
	for _, d := range list {
		if f.BloodType != "" && d.BloodType != f.BloodType {
			continue
		}
		if !contains(d.Location, f.Location) || !contains(d.Name, f.Name) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Banks keeps banks matching f. A blood type filter keeps banks holding that
// exact type above Critical.
func Banks(list []model.Bank, f Filter) []model.Bank {
	out := make([]model.Bank, 0, len(list))
	for _, b := range list {
		if f.BloodType != "" {
			lvl, ok := b.Availability[f.BloodType]
			if !ok || lvl.Rank() <= model.LevelCritical.Rank() {
				continue
			}
		}
		if !contains(b.Address, f.Location) || !contains(b.Name, f.Name) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Source provides the seeded records.
type Source interface {
	Donors(ctx context.Context) ([]model.Donor, error)
	Banks(ctx context.Context) ([]model.Bank, error)
	Inventory(ctx context.Context) ([]model.InventoryItem, error)
}

type Service struct {
	src Source
}

func NewService(src Source) *Service {
	if src == nil {
		src = Static{}
	}
	return &Service{src: src}
}

func (s *Service) SearchDonors(ctx context.Context, f Filter) ([]model.Donor, error) {
	list, err := s.src.Donors(ctx)
	if err != nil {
		return nil, fmt.Errorf("load donors: %w", err)
	}
	return Donors(list, f), nil
}

func (s *Service) SearchBanks(ctx context.Context, f Filter) ([]model.Bank, error) {
	list, err := s.src.Banks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load banks: %w", err)
	}
	return Banks(list, f), nil
}

// BankMap builds the map view for the banks matching f.
func (s *Service) BankMap(ctx context.Context, f Filter, center *model.LatLng, zoom int) (MapData, error) {
	banks, err := s.SearchBanks(ctx, f)
	if err != nil {
		return MapData{}, err
	}
	return MapView(banks, center, zoom), nil
}

func (s *Service) Inventory(ctx context.Context) ([]Stock, error) {
	items, err := s.src.Inventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	return Inventory(items), nil
}

var DefaultCenter = model.LatLng{Lat: 18.5204, Lng: 73.8567}

const DefaultZoom = 12

type Marker struct {
	Position model.LatLng `json:"position"`
	Title    string       `json:"title"`
	Info     string       `json:"info,omitempty"`
}

type MapData struct {
	Center  model.LatLng `json:"center"`
	Zoom    int          `json:"zoom"`
	Markers []Marker     `json:"markers"`
}

// MapView places one marker per bank that has coordinates.
func MapView(banks []model.Bank, center *model.LatLng, zoom int) MapData {
	out := MapData{Center: DefaultCenter, Zoom: DefaultZoom, Markers: []Marker{}}
	if center != nil {
		out.Center = *center
	}
	if zoom > 0 {
		out.Zoom = zoom
	}
	for _, b := range banks {
		if b.Position.IsZero() {
			continue
		}
		info := b.Address
		if b.Phone != "" {
			info += " | " + b.Phone
		}
		out.Markers = append(out.Markers, Marker{Position: b.Position, Title: b.Name, Info: info})
	}
	return out
}

type Stock struct {
	BloodType model.BloodType `json:"bloodType"`
	Stock     int             `json:"stock"`
	Capacity  int             `json:"capacity"`
	Percent   int             `json:"percent"`
	Level     model.Level     `json:"level"`
}

// Inventory computes the fill percentage and level band per blood type.
func Inventory(items []model.InventoryItem) []Stock {
	out := make([]Stock, 0, len(items))
	for _, it := range items {
		pct := 0
		if it.Capacity > 0 {
			pct = int(math.Round(float64(it.Stock) / float64(it.Capacity) * 100))
		}
		out = append(out, Stock{
			BloodType: it.BloodType,
			Stock:     it.Stock,
			Capacity:  it.Capacity,
			Percent:   pct,
			Level:     LevelFor(pct),
		})
	}
	return out
}

func LevelFor(pct int) model.Level {
	switch {
	case pct < 15:
		return model.LevelCritical
	case pct < 30:
		return model.LevelLow
	case pct < 70:
		return model.LevelMedium
	}
	return model.LevelHigh
}
