package physical

import "github.com/sells-group/comps-engine/internal/model"

// siteSpecs prices the 6 site-improvement characteristics.
func siteSpecs() []Spec {
	return []Spec{
		{
			Name: "site_utilities", Category: model.CategorySite, Kind: KindOrdinal,
			RateKey: "site_utilities", Unit: "%/level", Scale: &model.ScaleUtilities, PctOfPrice: true,
			Ord: func(c *model.Characteristics) *string { return c.Site.Utilities },
		},
		{
			Name: "paved_parking_spaces", Category: model.CategorySite, Kind: KindContinuous,
			RateKey: "paved_parking_spaces", Unit: "per space",
			Num: func(c *model.Characteristics) *float64 { return c.Site.PavedParkingSpaces },
		},
		{
			Name: "perimeter_fencing", Category: model.CategorySite, Kind: KindBoolean,
			RateKey: "perimeter_fencing", Unit: "lump sum",
			Flag: func(c *model.Characteristics) *bool { return c.Site.PerimeterFencing },
		},
		{
			// Flat dollars per level rather than % of price: landscaping value
			// does not scale with the building.
			Name: "landscaping_quality", Category: model.CategorySite, Kind: KindOrdinal,
			RateKey: "landscaping_quality", Unit: "$/level", Scale: &model.ScaleLandscaping,
			Ord: func(c *model.Characteristics) *string { return c.Site.LandscapingQuality },
		},
		{
			Name: "site_access_points", Category: model.CategorySite, Kind: KindContinuous,
			RateKey: "site_access_points", Unit: "per access point",
			Num: func(c *model.Characteristics) *float64 { return c.Site.AccessPoints },
		},
		{
			Name: "pylon_signage", Category: model.CategorySite, Kind: KindBoolean,
			RateKey: "pylon_signage", Unit: "lump sum",
			Flag: func(c *model.Characteristics) *bool { return c.Site.PylonSignage },
		},
	}
}
