package physical

import "github.com/sells-group/comps-engine/internal/model"

// landSpecs prices the 8 land characteristics.
func landSpecs() []Spec {
	return []Spec{
		{
			Name: "lot_size_acres", Category: model.CategoryLand, Kind: KindContinuous,
			RateKey: "lot_size_acres", Unit: "per acre",
			Num: func(c *model.Characteristics) *float64 { return c.Land.LotSizeAcres },
		},
		{
			Name: "topography", Category: model.CategoryLand, Kind: KindOrdinal,
			RateKey: "topography", Unit: "%/level", Scale: &model.ScaleTopography, PctOfPrice: true,
			Ord: func(c *model.Characteristics) *string { return c.Land.Topography },
		},
		{
			Name: "drainage", Category: model.CategoryLand, Kind: KindOrdinal,
			RateKey: "drainage", Unit: "%/level", Scale: &model.ScaleDrainage, PctOfPrice: true,
			Ord: func(c *model.Characteristics) *string { return c.Land.Drainage },
		},
		{
			Name: "soil_conditions", Category: model.CategoryLand, Kind: KindOrdinal,
			RateKey: "soil_conditions", Unit: "%/level", Scale: &model.ScaleSoil, PctOfPrice: true,
			Ord: func(c *model.Characteristics) *string { return c.Land.SoilConditions },
		},
		{
			Name: "flood_zone", Category: model.CategoryLand, Kind: KindOrdinal,
			RateKey: "flood_zone", Unit: "%/level", Scale: &model.ScaleFloodZone, PctOfPrice: true,
			Ord: func(c *model.Characteristics) *string { return c.Land.FloodZone },
		},
		{
			Name: "environmental", Category: model.CategoryLand, Kind: KindOrdinal,
			RateKey: "environmental", Unit: "%/level", Scale: &model.ScaleEnvironmental, PctOfPrice: true,
			Ord: func(c *model.Characteristics) *string { return c.Land.Environmental },
		},
		{
			Name: "excess_land_acres", Category: model.CategoryLand, Kind: KindContinuous,
			RateKey: "excess_land_acres", Unit: "per acre",
			Num: func(c *model.Characteristics) *float64 { return c.Land.ExcessLandAcres },
		},
		{
			Name: "corner_lot", Category: model.CategoryLand, Kind: KindBoolean,
			RateKey: "corner_lot", Unit: "lump sum",
			Flag: func(c *model.Characteristics) *bool { return c.Land.CornerLot },
		},
	}
}
