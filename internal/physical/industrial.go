package physical

import "github.com/sells-group/comps-engine/internal/model"

// industrialSpecs prices the 10 industrial characteristics. Runs only for
// industrial properties; a nil attribute group reads as all-absent.
func industrialSpecs() []Spec {
	num := func(get func(*model.IndustrialAttributes) *float64) func(*model.Characteristics) *float64 {
		return func(c *model.Characteristics) *float64 {
			if c.Industrial == nil {
				return nil
			}
			return get(c.Industrial)
		}
	}
	flag := func(get func(*model.IndustrialAttributes) *bool) func(*model.Characteristics) *bool {
		return func(c *model.Characteristics) *bool {
			if c.Industrial == nil {
				return nil
			}
			return get(c.Industrial)
		}
	}

	return []Spec{
		{
			// Rate quoted in $ per foot of clear height per SF of building.
			Name: "clear_height_ft", Category: model.CategoryIndustrial, Kind: KindContinuous,
			RateKey: "clear_height_ft", Unit: "per ft per SF", ScaleByBuildingSF: true,
			Num: num(func(a *model.IndustrialAttributes) *float64 { return a.ClearHeightFt }),
		},
		{
			Name: "dock_doors", Category: model.CategoryIndustrial, Kind: KindContinuous,
			RateKey: "dock_doors", Unit: "per door",
			Num: num(func(a *model.IndustrialAttributes) *float64 { return a.DockDoors }),
		},
		{
			Name: "drive_in_doors", Category: model.CategoryIndustrial, Kind: KindContinuous,
			RateKey: "drive_in_doors", Unit: "per door",
			Num: num(func(a *model.IndustrialAttributes) *float64 { return a.DriveInDoors }),
		},
		{
			Name: "rail_spur", Category: model.CategoryIndustrial, Kind: KindBoolean,
			RateKey: "rail_spur", Unit: "lump sum",
			Flag: flag(func(a *model.IndustrialAttributes) *bool { return a.RailSpur }),
		},
		{
			Name: "crane_system", Category: model.CategoryIndustrial, Kind: KindBoolean,
			RateKey: "crane_system", Unit: "lump sum",
			Flag: flag(func(a *model.IndustrialAttributes) *bool { return a.CraneSystem }),
		},
		{
			Name: "power_capacity_amps", Category: model.CategoryIndustrial, Kind: KindContinuous,
			RateKey: "power_capacity_amps", Unit: "per amp",
			Num: num(func(a *model.IndustrialAttributes) *float64 { return a.PowerCapacityAmps }),
		},
		{
			Name: "office_finish_pct", Category: model.CategoryIndustrial, Kind: KindContinuous,
			RateKey: "office_finish_pct", Unit: "per point",
			Num: num(func(a *model.IndustrialAttributes) *float64 { return a.OfficeFinishPct }),
		},
		{
			Name: "truck_court_depth_ft", Category: model.CategoryIndustrial, Kind: KindContinuous,
			RateKey: "truck_court_depth_ft", Unit: "per ft",
			Num: num(func(a *model.IndustrialAttributes) *float64 { return a.TruckCourtDepthFt }),
		},
		{
			Name: "trailer_parking", Category: model.CategoryIndustrial, Kind: KindBoolean,
			RateKey: "trailer_parking", Unit: "lump sum",
			Flag: flag(func(a *model.IndustrialAttributes) *bool { return a.TrailerParking }),
		},
		{
			Name: "floor_thickness_in", Category: model.CategoryIndustrial, Kind: KindContinuous,
			RateKey: "floor_thickness_in", Unit: "per inch",
			Num: num(func(a *model.IndustrialAttributes) *float64 { return a.FloorThicknessIn }),
		},
	}
}
