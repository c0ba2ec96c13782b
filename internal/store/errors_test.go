package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"blood-donation-api/internal/model"
)

func TestMapErr(t *testing.T) {
	other := errors.New("connection reset")
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", pgx.ErrNoRows, model.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), model.ErrNotFound},
		{"unique", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, model.ErrConflict},
		{"other pg error", &pgconn.PgError{Code: "23503"}, nil},
		{"other", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapErr(tt.in)
			if tt.want == nil {
				if tt.in == nil && got != nil {
					t.Errorf("expected nil, got %v", got)
				}
				if errors.Is(got, model.ErrConflict) || errors.Is(got, model.ErrNotFound) {
					t.Errorf("unexpected mapping %v", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPgDate(t *testing.T) {
	if toPgDate(model.Date{}).Valid {
		t.Error("zero date should be NULL")
	}
	d := model.Date{Year: 2026, Month: time.October, Day: 18}
	if got := fromPgDate(toPgDate(d)); got != d {
		t.Errorf("round trip = %v", got)
	}
	if !fromPgDate(pgtype.Date{}).IsZero() {
		t.Error("NULL should read as zero date")
	}
}

func TestVerb(t *testing.T) {
	if got := verb("\n\t SELECT 1"); got != "select" {
		t.Errorf("verb = %q", got)
	}
	if got := verb(""); got != "query" {
		t.Errorf("verb = %q", got)
	}
}
