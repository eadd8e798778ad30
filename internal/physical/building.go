package physical

import "github.com/sells-group/comps-engine/internal/model"

// buildingSpecs prices the 6 building characteristics common to all property
// types.
func buildingSpecs() []Spec {
	return []Spec{
		{
			Name: "building_size_sf", Category: model.CategoryBuildingGeneral, Kind: KindContinuous,
			RateKey: "building_size_sf", Unit: "per SF",
			Num: func(c *model.Characteristics) *float64 { return c.Building.SizeSF },
		},
		{
			// Older is inferior: a subject older than the comparable adjusts
			// the comparable downward.
			Name: "effective_age_years", Category: model.CategoryBuildingGeneral, Kind: KindContinuous,
			RateKey: "effective_age_years", Unit: "per year", Invert: true,
			Num: func(c *model.Characteristics) *float64 { return c.Building.EffectiveAgeYears },
		},
		{
			Name: "building_class", Category: model.CategoryBuildingGeneral, Kind: KindOrdinal,
			RateKey: "building_class", Unit: "%/level", Scale: &model.ScaleBuildingClass, PctOfPrice: true,
			Ord: func(c *model.Characteristics) *string { return c.Building.BuildingClass },
		},
		{
			Name: "construction_quality", Category: model.CategoryBuildingGeneral, Kind: KindOrdinal,
			RateKey: "construction_quality", Unit: "%/level", Scale: &model.ScaleConstructionQuality, PctOfPrice: true,
			Ord: func(c *model.Characteristics) *string { return c.Building.ConstructionQuality },
		},
		{
			Name: "building_condition", Category: model.CategoryBuildingGeneral, Kind: KindOrdinal,
			RateKey: "building_condition", Unit: "%/level", Scale: &model.ScaleCondition, PctOfPrice: true,
			Ord: func(c *model.Characteristics) *string { return c.Building.Condition },
		},
		{
			Name: "layout_efficiency", Category: model.CategoryBuildingGeneral, Kind: KindOrdinal,
			RateKey: "layout_efficiency", Unit: "%/level", Scale: &model.ScaleLayoutEfficiency, PctOfPrice: true,
			Ord: func(c *model.Characteristics) *string { return c.Building.LayoutEfficiency },
		},
	}
}
