package service

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseWeekdayNames(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input []string
		want  []time.Weekday
	}{
		{
			name:  "catalan lowercase",
			input: []string{"dilluns", "dimecres"},
			want:  []time.Weekday{time.Monday, time.Wednesday},
		},
		{
			name:  "spanish with accents and casing",
			input: []string{"MIÉRCOLES", "Sábado"},
			want:  []time.Weekday{time.Wednesday, time.Saturday},
		},
		{
			name:  "surrounding whitespace",
			input: []string{"  dijous ", "divendres"},
			want:  []time.Weekday{time.Thursday, time.Friday},
		},
		{
			name:  "duplicates across languages collapse",
			input: []string{"dilluns", "lunes", "Dilluns"},
			want:  []time.Weekday{time.Monday},
		},
		{
			name:  "unrecognized names dropped",
			input: []string{"monday", "franc", "dimarts"},
			want:  []time.Weekday{time.Tuesday},
		},
		{
			name:  "all unrecognized yields empty",
			input: []string{"foo", "bar"},
			want:  []time.Weekday{},
		},
		{
			name:  "result sorted sunday first",
			input: []string{"dissabte", "diumenge", "dimecres"},
			want:  []time.Weekday{time.Sunday, time.Wednesday, time.Saturday},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ParseWeekdayNames(tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestGenerateDatesWeeklyFallback(t *testing.T) {
	t.Parallel()

	// 2026-01-13 is a Tuesday
	start := date(2026, time.January, 13)

	got := GenerateDates(start, nil, 3)

	want := []time.Time{
		date(2026, time.January, 13),
		date(2026, time.January, 20),
		date(2026, time.January, 27),
	}
	assertDates(t, got, want)

	for _, d := range got {
		if d.Weekday() != time.Tuesday {
			t.Errorf("fallback cadence must keep the start weekday, got %v on %s", d.Weekday(), d.Format("2006-01-02"))
		}
	}
}

func TestGenerateDatesWeekdaySet(t *testing.T) {
	t.Parallel()

	start := date(2026, time.January, 13) // Tuesday

	got := GenerateDates(start, []time.Weekday{time.Monday, time.Wednesday}, 3)

	want := []time.Time{
		date(2026, time.January, 14), // Wed
		date(2026, time.January, 19), // Mon
		date(2026, time.January, 21), // Wed
	}
	assertDates(t, got, want)
}

func TestGenerateDatesStartInclusive(t *testing.T) {
	t.Parallel()

	start := date(2026, time.January, 13) // Tuesday

	got := GenerateDates(start, []time.Weekday{time.Tuesday}, 2)

	want := []time.Time{
		date(2026, time.January, 13),
		date(2026, time.January, 20),
	}
	assertDates(t, got, want)
}

func TestGenerateDatesUnreachableWeekdayTerminates(t *testing.T) {
	t.Parallel()

	start := date(2026, time.January, 13)

	// out-of-range weekday value can never match a real date; the bounded
	// scan must give up after total*7+extraScanDays days instead of looping
	got := GenerateDates(start, []time.Weekday{time.Weekday(9)}, 5)
	if len(got) != 0 {
		t.Fatalf("unreachable weekday yielded %v, want empty partial list", got)
	}

	// a reachable day mixed with an unreachable one still collects what
	// exists inside the window
	got = GenerateDates(start, []time.Weekday{time.Tuesday, time.Weekday(9)}, 5)
	if len(got) != 5 {
		t.Fatalf("got %d dates, want 5 tuesdays inside the scan window", len(got))
	}
	for _, d := range got {
		if d.Weekday() != time.Tuesday {
			t.Fatalf("collected %s, only tuesdays are reachable", d.Format("2006-01-02"))
		}
	}
}

func TestGenerateDatesZeroTotal(t *testing.T) {
	t.Parallel()

	start := date(2026, time.January, 13)

	if got := GenerateDates(start, []time.Weekday{time.Monday}, 0); len(got) != 0 {
		t.Fatalf("total 0 must yield no dates, got %v", got)
	}
	if got := GenerateDates(start, nil, -1); len(got) != 0 {
		t.Fatalf("negative total must yield no dates, got %v", got)
	}
}

func TestGenerateDatesNormalizesTimeOfDay(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, time.January, 13, 17, 45, 3, 0, time.UTC)

	got := GenerateDates(start, nil, 1)

	if len(got) != 1 || !got[0].Equal(date(2026, time.January, 13)) {
		t.Fatalf("got %v, want midnight UTC of start day", got)
	}
}

func TestGenerateDatesDeterministic(t *testing.T) {
	t.Parallel()

	start := date(2026, time.March, 2)
	weekdays := []time.Weekday{time.Tuesday, time.Thursday}

	first := GenerateDates(start, weekdays, 10)
	second := GenerateDates(start, weekdays, 10)

	assertDates(t, second, first)
}

func assertDates(t *testing.T, got, want []time.Time) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d dates %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range got {
		if !got[i].Equal(want[i]) {
			t.Fatalf("date[%d] = %s, want %s", i, got[i].Format("2006-01-02"), want[i].Format("2006-01-02"))
		}
	}
}
