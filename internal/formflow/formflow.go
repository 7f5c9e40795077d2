// Package formflow models the multi-step property form: a linear tab
// sequence with per-tab validation gates and locally staged array
// sections, assembled into one flat Property document on submit.
package formflow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/models"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

type Tab string

const (
	TabBasic    Tab = "basic"
	TabDetails  Tab = "details"
	TabBuilding Tab = "building"
	TabFeatures Tab = "features"
	TabLocation Tab = "location"
	TabMedia    Tab = "media"
)

var ErrUnknownTab = errors.New("unknown_tab")

// ValidationError reports the fields that blocked a forward transition.
type ValidationError struct {
	Tab     Tab
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("tab %q invalid: missing %s", e.Tab, strings.Join(e.Missing, ", "))
}

type StringSection string

const (
	SectionAmenities    StringSection = "amenities"
	SectionHighlights   StringSection = "highlights"
	SectionKeyFeatures  StringSection = "keyFeatures"
	SectionPaymentPlans StringSection = "paymentPlans"
	SectionVideoLinks   StringSection = "videoLinks"
)

// Draft holds the form state for one property being created or edited.
type Draft struct {
	Property models.Property
	active   Tab
}

func NewDraft() *Draft {
	d := &Draft{active: TabBasic}
	d.Property.Normalize()
	return d
}

// EditDraft starts a draft from an existing property.
func EditDraft(p models.Property) *Draft {
	p.Normalize()
	return &Draft{Property: p, active: TabBasic}
}

func (d *Draft) ActiveTab() Tab {
	return d.active
}

// Tabs returns the tab sequence for the draft. The building tab is
// present only for new-project listings.
func (d *Draft) Tabs() []Tab {
	if d.Property.Purpose == models.IntentNewProject {
		return []Tab{TabBasic, TabDetails, TabBuilding, TabFeatures, TabLocation, TabMedia}
	}
	return []Tab{TabBasic, TabDetails, TabFeatures, TabLocation, TabMedia}
}

// NavigateTab moves the active tab. Forward transitions validate only
// the fields declared for the current tab and leave the active tab
// unchanged when any fail; backward transitions are unconditional.
func (d *Draft) NavigateTab(target Tab) error {
	tabs := d.Tabs()
	from, to := indexOf(tabs, d.active), indexOf(tabs, target)
	if to < 0 {
		return ErrUnknownTab
	}
	if to > from {
		if missing := d.missingFields(d.active); len(missing) > 0 {
			return &ValidationError{Tab: d.active, Missing: missing}
		}
	}
	d.active = target
	return nil
}

func indexOf(tabs []Tab, t Tab) int {
	for i, v := range tabs {
		if v == t {
			return i
		}
	}
	return -1
}

func (d *Draft) missingFields(tab Tab) []string {
	p := &d.Property
	var missing []string
	require := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	switch tab {
	case TabBasic:
		require("title", p.Title)
		require("propertyType", p.PropertyType)
		require("purpose", p.Purpose)
		require("listingIntent", p.ListingIntent)
	case TabDetails:
		require("description", p.Description)
		require("possessStatus", p.PossessStatus)
		if p.StartingPrice <= 0 {
			missing = append(missing, "startingPrice")
		}
	case TabBuilding:
		if p.TotalFloors <= 0 {
			missing = append(missing, "totalFloors")
		}
		if p.TotalTowers <= 0 {
			missing = append(missing, "totalTowers")
		}
	case TabLocation:
		require("address", p.Address)
		require("city", p.City)
	}
	return missing
}

/* ------------------------------------------------------------------
   Array sections
------------------------------------------------------------------ */

// AddItem appends a staged value to a string-valued section. Empty
// (all-whitespace) staging input is rejected, leaving the section
// untouched.
func (d *Draft) AddItem(section StringSection, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return utils.ErrEmptyValue
	}
	s := d.section(section)
	if s == nil {
		return fmt.Errorf("unknown section %q", section)
	}
	*s = append(*s, value)
	return nil
}

// RemoveItem removes the element at index, shifting later elements
// down so no stale index survives.
func (d *Draft) RemoveItem(section StringSection, index int) error {
	s := d.section(section)
	if s == nil {
		return fmt.Errorf("unknown section %q", section)
	}
	if index < 0 || index >= len(*s) {
		return utils.ErrIndexOutOfRange
	}
	*s = append((*s)[:index], (*s)[index+1:]...)
	return nil
}

func (d *Draft) section(section StringSection) *[]string {
	switch section {
	case SectionAmenities:
		return &d.Property.Amenities
	case SectionHighlights:
		return &d.Property.Highlights
	case SectionKeyFeatures:
		return &d.Property.KeyFeatures
	case SectionPaymentPlans:
		return &d.Property.PaymentPlans
	case SectionVideoLinks:
		return &d.Property.VideoLinks
	}
	return nil
}

func (d *Draft) AddNearbyPlace(np models.NearbyPlace) error {
	if strings.TrimSpace(np.Name) == "" {
		return utils.ErrEmptyValue
	}
	d.Property.NearbyPlaces = append(d.Property.NearbyPlaces, np)
	return nil
}

func (d *Draft) RemoveNearbyPlace(index int) error {
	s := d.Property.NearbyPlaces
	if index < 0 || index >= len(s) {
		return utils.ErrIndexOutOfRange
	}
	d.Property.NearbyPlaces = append(s[:index], s[index+1:]...)
	return nil
}

func (d *Draft) AddUnitType(u models.UnitType) error {
	if strings.TrimSpace(u.Type) == "" {
		return utils.ErrEmptyValue
	}
	d.Property.UnitTypes = append(d.Property.UnitTypes, u)
	return nil
}

func (d *Draft) RemoveUnitType(index int) error {
	s := d.Property.UnitTypes
	if index < 0 || index >= len(s) {
		return utils.ErrIndexOutOfRange
	}
	d.Property.UnitTypes = append(s[:index], s[index+1:]...)
	return nil
}

/* ------------------------------------------------------------------
   Uploaded media
------------------------------------------------------------------ */

// AttachImage records an uploaded image URL. Callers must only invoke
// this after the blob write succeeded, so a failed upload leaves the
// draft untouched.
func (d *Draft) AttachImage(url string) {
	d.Property.Images = append(d.Property.Images, url)
}

func (d *Draft) SetBrochure(url string) {
	d.Property.BrochureURL = url
}

// Assemble validates every tab and returns the flat document ready
// for the add/update mutation.
func (d *Draft) Assemble() (models.Property, error) {
	for _, tab := range d.Tabs() {
		if missing := d.missingFields(tab); len(missing) > 0 {
			return models.Property{}, &ValidationError{Tab: tab, Missing: missing}
		}
	}
	p := d.Property
	p.Normalize()
	return p, nil
}
