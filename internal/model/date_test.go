package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-09")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d != (Date{2026, time.March, 9}) {
		t.Errorf("got %+v", d)
	}
	if d.String() != "2026-03-09" {
		t.Errorf("string: %s", d.String())
	}

	for _, bad := range []string{"", "09/03/2026", "2026-13-01", "2026-02-30"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestDateCompare(t *testing.T) {
	a := Date{2026, time.January, 31}
	b := Date{2026, time.February, 1}

	if !a.Before(b) || b.Before(a) {
		t.Error("jan 31 should be before feb 1")
	}
	if !b.After(a) {
		t.Error("feb 1 should be after jan 31")
	}
	if a.Compare(a) != 0 {
		t.Error("date should equal itself")
	}
	if got := a.AddDays(1); got != b {
		t.Errorf("AddDays: got %s", got)
	}
	if (Date{2027, time.January, 1}).Compare(Date{2026, time.December, 31}) != 1 {
		t.Error("year should dominate")
	}
}

func TestToday(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*3600+1800)
	// 20:00 UTC is already the next day in India.
	now := time.Date(2026, time.May, 10, 20, 0, 0, 0, time.UTC)

	if got := Today(now, time.UTC); got != (Date{2026, time.May, 10}) {
		t.Errorf("utc today: %s", got)
	}
	if got := Today(now, kolkata); got != (Date{2026, time.May, 11}) {
		t.Errorf("ist today: %s", got)
	}
}

func TestDateWeekday(t *testing.T) {
	if wd := (Date{2026, time.October, 18}).Weekday(); wd != time.Sunday {
		t.Errorf("expected Sunday, got %s", wd)
	}
}

func TestDateJSON(t *testing.T) {
	type wrap struct {
		D Date `json:"d"`
	}

	b, err := json.Marshal(wrap{D: Date{2026, time.July, 4}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"d":"2026-07-04"}` {
		t.Errorf("marshal: %s", b)
	}

	var w wrap
	if err := json.Unmarshal([]byte(`{"d":null}`), &w); err != nil || !w.D.IsZero() {
		t.Errorf("null should decode to zero date: %v %+v", err, w.D)
	}
	if err := json.Unmarshal([]byte(`{"d":"not-a-date"}`), &w); err == nil {
		t.Error("expected error for bad date")
	}
}
