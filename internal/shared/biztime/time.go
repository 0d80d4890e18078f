// Package biztime keeps storage in UTC and applies the office timezone only
// when a calendar date matters (deadlines, dates printed in filings).
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is used when the configuration leaves server.timezone empty.
const DefaultTimezone = "America/Sao_Paulo"

var (
	bizLocation *time.Location
	locationMu  sync.RWMutex
)

// Init sets the business timezone. Safe to call more than once.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", tz, err)
	}
	locationMu.Lock()
	bizLocation = loc
	locationMu.Unlock()
	return nil
}

// Location returns the business timezone, defaulting to America/Sao_Paulo.
func Location() *time.Location {
	locationMu.RLock()
	loc := bizLocation
	locationMu.RUnlock()
	if loc != nil {
		return loc
	}
	if err := Init(""); err != nil {
		return time.UTC
	}
	return Location()
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToBizTimezone converts t to the business timezone.
func ToBizTimezone(t time.Time) time.Time {
	return t.In(Location())
}

// AddCalendarDays adds whole calendar days without any business-day adjustment.
// The wall clock in the business timezone is preserved across DST changes.
func AddCalendarDays(t time.Time, days int) time.Time {
	return ToBizTimezone(t).AddDate(0, 0, days).UTC()
}

// FormatDate renders t as dd/mm/yyyy in the business timezone.
func FormatDate(t time.Time) string {
	return ToBizTimezone(t).Format("02/01/2006")
}

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatLongDate renders t as "16 de outubro de 2026".
func FormatLongDate(t time.Time) string {
	local := ToBizTimezone(t)
	return fmt.Sprintf("%d de %s de %d", local.Day(), monthNames[local.Month()-1], local.Year())
}
