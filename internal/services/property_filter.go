package services

import (
	"strings"
	"time"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/models"
)

// PropertyFilter is the dashboard's filter panel. A zero-value field
// (or the literal "all" on select fields) is a no-op that matches
// every record; all active predicates are ANDed.
type PropertyFilter struct {
	Status        string // possession status
	PropertyType  string
	ListingIntent string

	MinPrice *float64
	MaxPrice *float64

	// Minimum thresholds, not exact counts.
	Bedrooms  int
	Bathrooms int

	PublishedBy string // case-insensitive substring

	// Inclusive bounds on createdAt. Either side may be nil for a
	// single-ended range.
	DateFrom *time.Time
	DateTo   *time.Time

	// ExactDate narrows to records created on the same calendar day
	// (UTC). It layers on top of the date range: both apply when set.
	ExactDate *time.Time

	// Case-insensitive substring across title/address/city/publishedBy.
	SearchQuery string
}

// IsZero reports whether no predicate is active.
func (f PropertyFilter) IsZero() bool {
	return !selectActive(f.Status) &&
		!selectActive(f.PropertyType) &&
		!selectActive(f.ListingIntent) &&
		f.MinPrice == nil && f.MaxPrice == nil &&
		f.Bedrooms == 0 && f.Bathrooms == 0 &&
		f.PublishedBy == "" &&
		f.DateFrom == nil && f.DateTo == nil && f.ExactDate == nil &&
		f.SearchQuery == ""
}

// FilterProperties returns the subset of list matching every active
// predicate. The input slice is never mutated; the result is always a
// freshly allocated slice, so filtering is idempotent and re-runnable
// on every filter change.
func FilterProperties(list []*models.Property, f PropertyFilter) []*models.Property {
	out := make([]*models.Property, 0, len(list))
	for _, p := range list {
		if p == nil {
			continue
		}
		if matchesFilter(p, f) {
			out = append(out, p)
		}
	}
	return out
}

func matchesFilter(p *models.Property, f PropertyFilter) bool {
	if selectActive(f.Status) && !strings.EqualFold(p.PossessStatus, f.Status) {
		return false
	}
	if selectActive(f.PropertyType) && !strings.EqualFold(p.PropertyType, f.PropertyType) {
		return false
	}
	if selectActive(f.ListingIntent) && !strings.EqualFold(p.ListingIntent, f.ListingIntent) {
		return false
	}

	// Missing price compares as 0.
	if f.MinPrice != nil && p.StartingPrice < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.StartingPrice > *f.MaxPrice {
		return false
	}

	if f.Bedrooms > 0 && p.Bedrooms < f.Bedrooms {
		return false
	}
	if f.Bathrooms > 0 && p.Bathrooms < f.Bathrooms {
		return false
	}

	if f.PublishedBy != "" &&
		!strings.Contains(strings.ToLower(p.PublishedBy), strings.ToLower(f.PublishedBy)) {
		return false
	}

	if f.DateFrom != nil && p.CreatedAt.Before(dayStart(*f.DateFrom)) {
		return false
	}
	if f.DateTo != nil && p.CreatedAt.After(dayEnd(*f.DateTo)) {
		return false
	}
	if f.ExactDate != nil && !sameDay(p.CreatedAt, *f.ExactDate) {
		return false
	}

	if q := strings.ToLower(strings.TrimSpace(f.SearchQuery)); q != "" {
		hit := strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Address), q) ||
			strings.Contains(strings.ToLower(p.City), q) ||
			strings.Contains(strings.ToLower(p.PublishedBy), q)
		if !hit {
			return false
		}
	}

	return true
}

// Select fields treat "" and "all" as unset.
func selectActive(v string) bool {
	return v != "" && !strings.EqualFold(v, "all")
}

func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func dayEnd(t time.Time) time.Time {
	return dayStart(t).Add(24*time.Hour - time.Nanosecond)
}

func sameDay(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
