package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/models"
)

func fixtureProperties() []*models.Property {
	day := func(d int) time.Time {
		return time.Date(2025, 6, d, 10, 30, 0, 0, time.UTC)
	}
	return []*models.Property{
		{
			Title:         "Sea View Residency",
			PropertyType:  "apartment",
			ListingIntent: models.IntentSell,
			PossessStatus: models.PossessReadyToMove,
			StartingPrice: 7500000,
			Bedrooms:      3,
			Bathrooms:     2,
			Address:       "12 Marine Drive",
			City:          "Mumbai",
			PublishedBy:   "Amey",
			CreatedAt:     day(1),
		},
		{
			Title:         "Hilltop Villa",
			PropertyType:  "villa",
			ListingIntent: models.IntentSell,
			PossessStatus: models.PossessUnderConstruction,
			StartingPrice: 21000000,
			Bedrooms:      4,
			Bathrooms:     4,
			Address:       "3 Hill Road",
			City:          "Lonavala",
			PublishedBy:   "Priya",
			CreatedAt:     day(5),
		},
		{
			Title:         "Metro Heights",
			PropertyType:  "apartment",
			ListingIntent: models.IntentRent,
			PossessStatus: models.PossessReadyToMove,
			// StartingPrice left at zero: unpriced listing.
			Bedrooms:  2,
			Bathrooms: 1,
			Address:   "45 Station Road",
			City:      "Pune",
			CreatedAt: day(12),
		},
		{
			Title:         "Green Acres Phase II",
			PropertyType:  "plot",
			ListingIntent: models.IntentNewProject,
			PossessStatus: models.PossessPreLaunch,
			StartingPrice: 3200000,
			Address:       "NH-48 Service Road",
			City:          "Nashik",
			PublishedBy:   "Amey",
			CreatedAt:     day(20),
		},
	}
}

func TestFilterPropertiesZeroFilterReturnsAll(t *testing.T) {
	list := fixtureProperties()

	out := FilterProperties(list, PropertyFilter{})

	require.Len(t, out, len(list))
	for i := range list {
		require.Same(t, list[i], out[i])
	}
}

func TestFilterPropertiesAllSentinelIsUnset(t *testing.T) {
	list := fixtureProperties()

	out := FilterProperties(list, PropertyFilter{
		Status:        "All",
		PropertyType:  "all",
		ListingIntent: "ALL",
	})

	require.Len(t, out, len(list))
}

func TestFilterPropertiesResultIsSubset(t *testing.T) {
	list := fixtureProperties()
	min := 1000000.0

	out := FilterProperties(list, PropertyFilter{MinPrice: &min, Bedrooms: 2})

	require.NotEmpty(t, out)
	members := map[*models.Property]bool{}
	for _, p := range list {
		members[p] = true
	}
	for _, p := range out {
		require.True(t, members[p], "result contains a property not in the input")
	}
}

func TestFilterPropertiesIsIdempotent(t *testing.T) {
	list := fixtureProperties()
	f := PropertyFilter{PropertyType: "apartment", Bedrooms: 2}

	once := FilterProperties(list, f)
	twice := FilterProperties(once, f)

	require.Equal(t, once, twice)
}

func TestFilterPropertiesDoesNotMutateInput(t *testing.T) {
	list := fixtureProperties()
	titles := make([]string, len(list))
	for i, p := range list {
		titles[i] = p.Title
	}

	min := 5000000.0
	_ = FilterProperties(list, PropertyFilter{MinPrice: &min, SearchQuery: "hill"})

	require.Len(t, list, len(titles))
	for i, p := range list {
		require.Equal(t, titles[i], p.Title)
	}
}

func TestFilterPropertiesPriceBounds(t *testing.T) {
	list := fixtureProperties()

	min, max := 3000000.0, 10000000.0
	out := FilterProperties(list, PropertyFilter{MinPrice: &min, MaxPrice: &max})

	require.Len(t, out, 2)
	require.Equal(t, "Sea View Residency", out[0].Title)
	require.Equal(t, "Green Acres Phase II", out[1].Title)
}

func TestFilterPropertiesMissingPriceComparesAsZero(t *testing.T) {
	list := fixtureProperties()

	// Unpriced "Metro Heights" must pass a max-only filter...
	max := 100.0
	out := FilterProperties(list, PropertyFilter{MaxPrice: &max})
	require.Len(t, out, 1)
	require.Equal(t, "Metro Heights", out[0].Title)

	// ...and fail any positive min.
	min := 1.0
	out = FilterProperties(list, PropertyFilter{MinPrice: &min})
	for _, p := range out {
		require.NotEqual(t, "Metro Heights", p.Title)
	}
}

func TestFilterPropertiesBedroomsAreMinimums(t *testing.T) {
	list := fixtureProperties()

	out := FilterProperties(list, PropertyFilter{Bedrooms: 3})

	require.Len(t, out, 2)
	for _, p := range out {
		require.GreaterOrEqual(t, p.Bedrooms, 3)
	}
}

func TestFilterPropertiesSearchIsCaseInsensitiveSubstring(t *testing.T) {
	list := fixtureProperties()

	out := FilterProperties(list, PropertyFilter{SearchQuery: "hill"})
	require.Len(t, out, 1)
	require.Equal(t, "Hilltop Villa", out[0].Title)

	// Search also covers address, city and publisher.
	out = FilterProperties(list, PropertyFilter{SearchQuery: "MARINE"})
	require.Len(t, out, 1)
	require.Equal(t, "Sea View Residency", out[0].Title)

	out = FilterProperties(list, PropertyFilter{SearchQuery: "amey"})
	require.Len(t, out, 2)
}

func TestFilterPropertiesDateRangeInclusive(t *testing.T) {
	list := fixtureProperties()

	from := time.Date(2025, 6, 5, 23, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

	// Bounds are whole calendar days: a record created at 10:30 on the
	// "to" day is still inside the range.
	out := FilterProperties(list, PropertyFilter{DateFrom: &from, DateTo: &to})
	require.Len(t, out, 2)
	require.Equal(t, "Hilltop Villa", out[0].Title)
	require.Equal(t, "Metro Heights", out[1].Title)
}

func TestFilterPropertiesSingleEndedDateRange(t *testing.T) {
	list := fixtureProperties()

	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	out := FilterProperties(list, PropertyFilter{DateFrom: &from})
	require.Len(t, out, 2)

	to := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	out = FilterProperties(list, PropertyFilter{DateTo: &to})
	require.Len(t, out, 1)
	require.Equal(t, "Sea View Residency", out[0].Title)
}

func TestFilterPropertiesExactDateLayersOnRange(t *testing.T) {
	list := fixtureProperties()

	exact := time.Date(2025, 6, 5, 18, 45, 0, 0, time.UTC)
	out := FilterProperties(list, PropertyFilter{ExactDate: &exact})
	require.Len(t, out, 1)
	require.Equal(t, "Hilltop Villa", out[0].Title)

	// An exact date outside the range yields nothing: both apply.
	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	out = FilterProperties(list, PropertyFilter{DateFrom: &from, ExactDate: &exact})
	require.Empty(t, out)
}

func TestFilterPropertiesCombinedScenario(t *testing.T) {
	list := fixtureProperties()

	out := FilterProperties(list, PropertyFilter{
		PropertyType:  "apartment",
		Status:        models.PossessReadyToMove,
		ListingIntent: models.IntentSell,
		PublishedBy:   "ame",
	})

	require.Len(t, out, 1)
	require.Equal(t, "Sea View Residency", out[0].Title)
}

func TestPropertyFilterIsZero(t *testing.T) {
	require.True(t, PropertyFilter{}.IsZero())
	require.True(t, PropertyFilter{Status: "all", PropertyType: "All"}.IsZero())
	require.False(t, PropertyFilter{Bedrooms: 1}.IsZero())

	min := 0.0
	require.False(t, PropertyFilter{MinPrice: &min}.IsZero())
}
