package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.September, 1)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2026-09-01"` {
		t.Fatalf("marshal = %s, want %q", b, "2026-09-01")
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("round trip = %v, want %v", back, d)
	}
}

func TestDateUnmarshalNull(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !d.IsZero() {
		t.Fatalf("null should leave zero date, got %v", d)
	}
}

func TestParseDateRejectsBadInput(t *testing.T) {
	for _, s := range []string{"01-09-2026", "2026/09/01", "not-a-date", ""} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) expected error", s)
		}
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time.Time: %v", err)
	}
	if d.Format("2006-01-02") != "2026-09-01" {
		t.Fatalf("scan = %v", d)
	}

	if err := d.Scan("2026-09-02"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if d.Format("2006-01-02") != "2026-09-02" {
		t.Fatalf("scan string = %v", d)
	}

	if err := d.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if !d.IsZero() {
		t.Fatalf("nil should reset date, got %v", d)
	}

	if err := d.Scan(42); err == nil {
		t.Fatal("scan int should fail")
	}
}
