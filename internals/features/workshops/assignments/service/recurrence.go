// Recurrence date generation for workshop assignments.
//
// A workshop template carries weekly slots whose weekday names come from the
// legacy admin UI in Catalan or Spanish, in whatever casing and accenting the
// operator used. Everything here is pure: same inputs, same output.
package service

import (
	"sort"
	"strings"
	"time"
)

// extraScanDays bounds the forward scan beyond the theoretical minimum, so a
// bad weekday set cannot loop forever; the scan then yields a partial
// (possibly empty) list.
const extraScanDays = 14

var weekdayNames = map[string]time.Weekday{
	// Catalan
	"diumenge":  time.Sunday,
	"dilluns":   time.Monday,
	"dimarts":   time.Tuesday,
	"dimecres":  time.Wednesday,
	"dijous":    time.Thursday,
	"divendres": time.Friday,
	"dissabte":  time.Saturday,
	// Spanish
	"domingo":   time.Sunday,
	"lunes":     time.Monday,
	"martes":    time.Tuesday,
	"miercoles": time.Wednesday,
	"jueves":    time.Thursday,
	"viernes":   time.Friday,
	"sabado":    time.Saturday,
}

var accentReplacer = strings.NewReplacer(
	"à", "a", "á", "a",
	"è", "e", "é", "e",
	"ì", "i", "í", "i",
	"ò", "o", "ó", "o",
	"ù", "u", "ú", "u", "ü", "u",
)

// ParseWeekdayNames maps localized weekday names (Catalan/Spanish,
// case-insensitive, diacritics ignored) to weekdays. Unrecognized names are
// dropped; the result is sorted and deduplicated.
func ParseWeekdayNames(names []string) []time.Weekday {
	seen := map[time.Weekday]bool{}
	out := make([]time.Weekday, 0, len(names))
	for _, raw := range names {
		key := accentReplacer.Replace(strings.ToLower(strings.TrimSpace(raw)))
		wd, ok := weekdayNames[key]
		if !ok || seen[wd] {
			continue
		}
		seen[wd] = true
		out = append(out, wd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// GenerateDates derives the concrete session dates for an assignment.
//
// With an empty weekday set it falls back to a pure weekly cadence: session i
// lands exactly i weeks after start. With a non-empty set it scans forward
// day by day from start (inclusive), collecting dates whose weekday is in the
// set until total dates are found or the bounded scan window runs out.
func GenerateDates(start time.Time, weekdays []time.Weekday, total int) []time.Time {
	if total <= 0 {
		return []time.Time{}
	}
	dates := make([]time.Time, 0, total)
	day := dateOnly(start)

	if len(weekdays) == 0 {
		for i := 0; i < total; i++ {
			dates = append(dates, day.AddDate(0, 0, i*7))
		}
		return dates
	}

	wanted := map[time.Weekday]bool{}
	for _, wd := range weekdays {
		wanted[wd] = true
	}

	maxDays := total*7 + extraScanDays
	for i := 0; i < maxDays && len(dates) < total; i++ {
		d := day.AddDate(0, 0, i)
		if wanted[d.Weekday()] {
			dates = append(dates, d)
		}
	}
	return dates
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
