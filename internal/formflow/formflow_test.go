package formflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/models"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

func validBasic(d *Draft) {
	d.Property.Title = "Sea View Residency"
	d.Property.PropertyType = "apartment"
	d.Property.Purpose = models.IntentSell
	d.Property.ListingIntent = models.IntentSell
}

func validDetails(d *Draft) {
	d.Property.Description = "Three towers facing the bay."
	d.Property.PossessStatus = models.PossessReadyToMove
	d.Property.StartingPrice = 7500000
}

func validLocation(d *Draft) {
	d.Property.Address = "12 Marine Drive"
	d.Property.City = "Mumbai"
}

func TestNavigateForwardBlockedOnEmptyBasic(t *testing.T) {
	d := NewDraft()

	err := d.NavigateTab(TabDetails)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, TabBasic, vErr.Tab)
	require.Equal(t, []string{"title", "propertyType", "purpose", "listingIntent"}, vErr.Missing)
	require.Equal(t, TabBasic, d.ActiveTab(), "active tab must not move on a failed gate")
}

func TestNavigateForwardPassesWhenTabValid(t *testing.T) {
	d := NewDraft()
	validBasic(d)

	require.NoError(t, d.NavigateTab(TabDetails))
	require.Equal(t, TabDetails, d.ActiveTab())
}

func TestNavigateBackwardIsUnconditional(t *testing.T) {
	d := NewDraft()
	validBasic(d)
	require.NoError(t, d.NavigateTab(TabDetails))

	// Details is empty, but going back never validates.
	require.NoError(t, d.NavigateTab(TabBasic))
	require.Equal(t, TabBasic, d.ActiveTab())
}

func TestNavigateValidatesOnlyCurrentTab(t *testing.T) {
	d := NewDraft()
	validBasic(d)
	validDetails(d)
	require.NoError(t, d.NavigateTab(TabDetails))

	// Jumping ahead past features checks details only: location may
	// still be empty.
	require.NoError(t, d.NavigateTab(TabLocation))
	require.Equal(t, TabLocation, d.ActiveTab())
}

func TestNavigateUnknownTab(t *testing.T) {
	d := NewDraft()

	require.ErrorIs(t, d.NavigateTab(Tab("pricing")), ErrUnknownTab)

	// The building tab only exists on new-project drafts.
	require.ErrorIs(t, d.NavigateTab(TabBuilding), ErrUnknownTab)
}

func TestBuildingTabOnlyForNewProjects(t *testing.T) {
	d := NewDraft()
	require.Equal(t, []Tab{TabBasic, TabDetails, TabFeatures, TabLocation, TabMedia}, d.Tabs())

	d.Property.Purpose = models.IntentNewProject
	require.Equal(t, []Tab{TabBasic, TabDetails, TabBuilding, TabFeatures, TabLocation, TabMedia}, d.Tabs())
}

func TestAddItemRejectsEmptyValue(t *testing.T) {
	d := NewDraft()

	require.ErrorIs(t, d.AddItem(SectionAmenities, "   "), utils.ErrEmptyValue)
	require.Empty(t, d.Property.Amenities)
}

func TestAddItemTrimsAndAppends(t *testing.T) {
	d := NewDraft()

	require.NoError(t, d.AddItem(SectionAmenities, "  Clubhouse "))
	require.NoError(t, d.AddItem(SectionAmenities, "Pool"))
	require.Equal(t, []string{"Clubhouse", "Pool"}, d.Property.Amenities)
}

func TestRemoveItemShiftsIndexes(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.AddItem(SectionHighlights, "a"))
	require.NoError(t, d.AddItem(SectionHighlights, "b"))

	require.NoError(t, d.RemoveItem(SectionHighlights, 0))
	require.Equal(t, []string{"b"}, d.Property.Highlights)
}

func TestRemoveItemOutOfRange(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.AddItem(SectionKeyFeatures, "corner plot"))

	require.ErrorIs(t, d.RemoveItem(SectionKeyFeatures, 1), utils.ErrIndexOutOfRange)
	require.ErrorIs(t, d.RemoveItem(SectionKeyFeatures, -1), utils.ErrIndexOutOfRange)
	require.Equal(t, []string{"corner plot"}, d.Property.KeyFeatures)
}

func TestAddThenRemoveRestoresState(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.AddItem(SectionPaymentPlans, "10:90"))
	before := append([]string(nil), d.Property.PaymentPlans...)

	require.NoError(t, d.AddItem(SectionPaymentPlans, "20:80"))
	require.NoError(t, d.RemoveItem(SectionPaymentPlans, 1))

	require.Equal(t, before, d.Property.PaymentPlans)
}

func TestNearbyPlaceAndUnitTypeSections(t *testing.T) {
	d := NewDraft()

	require.ErrorIs(t, d.AddNearbyPlace(models.NearbyPlace{Distance: "2 km"}), utils.ErrEmptyValue)
	require.NoError(t, d.AddNearbyPlace(models.NearbyPlace{Name: "Metro Station", Distance: "2 km"}))

	require.ErrorIs(t, d.AddUnitType(models.UnitType{Bedrooms: 2}), utils.ErrEmptyValue)
	require.NoError(t, d.AddUnitType(models.UnitType{Type: "2BHK", Bedrooms: 2, Price: 5400000}))

	require.NoError(t, d.RemoveUnitType(0))
	require.Empty(t, d.Property.UnitTypes)
	require.ErrorIs(t, d.RemoveNearbyPlace(5), utils.ErrIndexOutOfRange)
}

func TestAssembleValidatesEveryTab(t *testing.T) {
	d := NewDraft()
	validBasic(d)
	validDetails(d)

	_, err := d.Assemble()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, TabLocation, vErr.Tab)

	validLocation(d)
	p, err := d.Assemble()
	require.NoError(t, err)
	require.Equal(t, "Sea View Residency", p.Title)
	require.NotNil(t, p.Images)
	require.NotNil(t, p.UnitTypes)
}

func TestAssembleNewProjectRequiresBuilding(t *testing.T) {
	d := NewDraft()
	validBasic(d)
	d.Property.Purpose = models.IntentNewProject
	validDetails(d)
	validLocation(d)

	_, err := d.Assemble()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, TabBuilding, vErr.Tab)
	require.Equal(t, []string{"totalFloors", "totalTowers"}, vErr.Missing)

	d.Property.TotalFloors = 22
	d.Property.TotalTowers = 3
	_, err = d.Assemble()
	require.NoError(t, err)
}

func TestEditDraftStartsFromExistingProperty(t *testing.T) {
	p := models.Property{Title: "Hilltop Villa", Amenities: []string{"Garden"}}
	d := EditDraft(p)

	require.Equal(t, TabBasic, d.ActiveTab())
	require.Equal(t, []string{"Garden"}, d.Property.Amenities)
	require.NotNil(t, d.Property.Images, "arrays are normalized on load")
}

func TestAttachImageAndBrochure(t *testing.T) {
	d := NewDraft()

	d.AttachImage("https://cdn.example.com/properties/x/1_a.jpg")
	d.SetBrochure("https://cdn.example.com/properties/x/2_b.pdf")

	require.Len(t, d.Property.Images, 1)
	require.Equal(t, "https://cdn.example.com/properties/x/2_b.pdf", d.Property.BrochureURL)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Tab: TabBasic, Missing: []string{"title"}}
	require.Contains(t, err.Error(), "basic")
	require.Contains(t, err.Error(), "title")
	require.True(t, errors.As(error(err), new(*ValidationError)))
}
