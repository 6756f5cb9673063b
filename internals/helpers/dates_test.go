package helper

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, err := ParseDate("2026-02-09")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, time.February, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if _, err := ParseDate("09/02/2026"); err == nil {
		t.Fatal("non ISO layout must be rejected")
	}
}

func TestParseDateQuery(t *testing.T) {
	t.Parallel()

	got, err := ParseDateQuery("")
	if err != nil || got != nil {
		t.Fatalf("empty query must yield nil without error, got %v err %v", got, err)
	}

	got, err = ParseDateQuery("2026-06-30")
	if err != nil || got == nil {
		t.Fatalf("valid query failed: %v", err)
	}
	if got.Format("2006-01-02") != "2026-06-30" {
		t.Fatalf("got %v", got)
	}

	if _, err := ParseDateQuery("junio"); err == nil {
		t.Fatal("malformed query must error")
	}
}

func TestDateOnly(t *testing.T) {
	t.Parallel()

	in := time.Date(2026, time.April, 3, 18, 30, 12, 99, time.Local)
	out := DateOnly(in)
	if out.Hour() != 0 || out.Minute() != 0 || out.Location() != time.UTC {
		t.Fatalf("got %v, want UTC midnight", out)
	}
	if out.Year() != 2026 || out.Month() != time.April || out.Day() != 3 {
		t.Fatalf("calendar day changed: %v", out)
	}
}
