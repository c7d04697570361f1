// Package catalog holds the static product data of the showcase demo:
// display style series, wizard steps, count tiers, add-ons, and the
// recommendation templates. The data is fixed at compile time; nothing
// here is persisted.
package catalog

// Series is one entry of the style catalog. Post.SeriesID refers to
// Series.ID but the reference is deliberately not validated.
type Series struct {
	ID          string
	Name        string
	Description string
}

var SeriesCatalog = []Series{
	{ID: "minimal", Name: "Minimal Clean", Description: "Less is more. Pure geometry."},
	{ID: "wood", Name: "Warm Wood", Description: "Natural textures and cozy lighting."},
	{ID: "museum", Name: "Museum Gallery", Description: "High contrast, spotlight focused."},
	{ID: "cyber", Name: "Cyber LED", Description: "Neon lights and acrylics."},
	{ID: "luxury", Name: "Luxury Dark", Description: "Velvet, gold accents, deep shadows."},
	{ID: "pop", Name: "Pop Color", Description: "Vibrant, energetic arrangements."},
	{ID: "industrial", Name: "Industrial Metal", Description: "Raw steel and concrete."},
	{ID: "wabi", Name: "Japanese Wabi-Sabi", Description: "Imperfect beauty, earthenware."},
	{ID: "collector", Name: "Collector Dense", Description: "Maximizing space for collections."},
	{ID: "store", Name: "Storefront Display", Description: "Retail-focused, high visibility."},
}

// BuildStep labels one station of the four-step build flow.
type BuildStep struct {
	ID    int
	Label string
}

var BuildSteps = []BuildStep{
	{ID: 1, Label: "Prepare"},
	{ID: 2, Label: "Collect"},
	{ID: 3, Label: "Size"},
	{ID: 4, Label: "Display"},
}

// Addon is an accessory that can be attached to a configuration.
type Addon struct {
	ID    string
	Name  string
	Price string
}

var Addons = []Addon{
	{ID: "led", Name: "LED Lighting Kit", Price: "$45"},
	{ID: "acrylic", Name: "Acrylic Dust Cover", Price: "$30"},
	{ID: "mount", Name: "Wall Mount Brackets", Price: "$15"},
	{ID: "lock", Name: "Security Lock", Price: "$10"},
}

// CollectTypes are the intake choices offered by the concierge chat.
var CollectTypes = []string{"LEGO", "Mini Figures", "HotWheels", "Other"}

// CountTiers are the four sizing tiers of wizard step 3.
var CountTiers = []string{"1-10 (Small)", "10-30 (Medium)", "30-60 (Large)", "60+ (Gallery)"}

// Recommendations are the configuration templates offered at the final step.
var Recommendations = []string{"Modular Tower", "Gallery Grid", "Showcase Cabinet"}

// ValidCollectType reports whether t is one of the intake choices.
func ValidCollectType(t string) bool {
	return contains(CollectTypes, t)
}

// ValidCountTier reports whether tier is one of the four sizing tiers.
func ValidCountTier(tier string) bool {
	return contains(CountTiers, tier)
}

// ValidRecommendation reports whether name is one of the offered templates.
func ValidRecommendation(name string) bool {
	return contains(Recommendations, name)
}

// AddonByID returns the accessory with the given id.
func AddonByID(id string) (Addon, bool) {
	for _, a := range Addons {
		if a.ID == id {
			return a, true
		}
	}
	return Addon{}, false
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
