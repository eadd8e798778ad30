package physical

import "github.com/sells-group/comps-engine/internal/model"

// featureSpecs prices the 6 special features.
func featureSpecs() []Spec {
	return []Spec{
		{
			Name: "sprinkler_system", Category: model.CategorySpecialFeatures, Kind: KindBoolean,
			RateKey: "sprinkler_system", Unit: "% of price", PctOfPrice: true,
			Flag: func(c *model.Characteristics) *bool { return c.Features.SprinklerSystem },
		},
		{
			Name: "security_system", Category: model.CategorySpecialFeatures, Kind: KindBoolean,
			RateKey: "security_system", Unit: "lump sum",
			Flag: func(c *model.Characteristics) *bool { return c.Features.SecuritySystem },
		},
		{
			Name: "backup_generator", Category: model.CategorySpecialFeatures, Kind: KindBoolean,
			RateKey: "backup_generator", Unit: "lump sum",
			Flag: func(c *model.Characteristics) *bool { return c.Features.BackupGenerator },
		},
		{
			Name: "solar_array", Category: model.CategorySpecialFeatures, Kind: KindBoolean,
			RateKey: "solar_array", Unit: "lump sum",
			Flag: func(c *model.Characteristics) *bool { return c.Features.SolarArray },
		},
		{
			Name: "ev_charging", Category: model.CategorySpecialFeatures, Kind: KindBoolean,
			RateKey: "ev_charging", Unit: "lump sum",
			Flag: func(c *model.Characteristics) *bool { return c.Features.EVCharging },
		},
		{
			Name: "cold_storage", Category: model.CategorySpecialFeatures, Kind: KindBoolean,
			RateKey: "cold_storage", Unit: "% of price", PctOfPrice: true,
			Flag: func(c *model.Characteristics) *bool { return c.Features.ColdStorage },
		},
	}
}
