package pricing

import (
	"hexadigitall/internal/services/catalog"
)

// Contact is the buyer contact block collected by the wizard.
type Contact struct {
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// Selection is the wizard's working state: at most one platform plus
// any number of features and add-ons, referenced by catalog id.
// FeatureIDs and AddonIDs keep insertion order so itemized quotes are
// reproducible.
type Selection struct {
	PlatformID string   `json:"platformId,omitempty"`
	FeatureIDs []string `json:"featureIds"`
	AddonIDs   []string `json:"addonIds"`
	Contact    Contact  `json:"contact"`
}

// NewSelection returns an empty selection.
func NewSelection() Selection {
	return Selection{
		FeatureIDs: []string{},
		AddonIDs:   []string{},
	}
}

// HasPlatform reports whether a platform base has been chosen.
func (s Selection) HasPlatform() bool {
	return s.PlatformID != ""
}

// Breakdown is the itemized result of pricing a selection. All amounts
// are USD; conversion and discounting happen downstream.
type Breakdown struct {
	PlatformCost float64 `json:"platformCost"`
	FeaturesCost float64 `json:"featuresCost"`
	AddonsCost   float64 `json:"addonsCost"`
	Total        float64 `json:"total"`

	Platform *catalog.PlatformBase  `json:"platform"`
	Features []catalog.TechFeature  `json:"features"`
	Addons   []catalog.ServiceAddon `json:"addons"`
}
