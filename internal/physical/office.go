package physical

import "github.com/sells-group/comps-engine/internal/model"

// officeSpecs prices the 8 office characteristics. Runs only for office
// properties; a nil attribute group reads as all-absent.
func officeSpecs() []Spec {
	num := func(get func(*model.OfficeAttributes) *float64) func(*model.Characteristics) *float64 {
		return func(c *model.Characteristics) *float64 {
			if c.Office == nil {
				return nil
			}
			return get(c.Office)
		}
	}
	ord := func(get func(*model.OfficeAttributes) *string) func(*model.Characteristics) *string {
		return func(c *model.Characteristics) *string {
			if c.Office == nil {
				return nil
			}
			return get(c.Office)
		}
	}
	flag := func(get func(*model.OfficeAttributes) *bool) func(*model.Characteristics) *bool {
		return func(c *model.Characteristics) *bool {
			if c.Office == nil {
				return nil
			}
			return get(c.Office)
		}
	}

	return []Spec{
		{
			Name: "parking_ratio", Category: model.CategoryOffice, Kind: KindContinuous,
			RateKey: "parking_ratio", Unit: "per space/1000 SF",
			Num: num(func(a *model.OfficeAttributes) *float64 { return a.ParkingRatio }),
		},
		{
			Name: "elevator_count", Category: model.CategoryOffice, Kind: KindContinuous,
			RateKey: "elevator_count", Unit: "per elevator",
			Num: num(func(a *model.OfficeAttributes) *float64 { return a.ElevatorCount }),
		},
		{
			Name: "lobby_finish", Category: model.CategoryOffice, Kind: KindOrdinal,
			RateKey: "lobby_finish", Unit: "%/level", Scale: &model.ScaleLobbyFinish, PctOfPrice: true,
			Ord: ord(func(a *model.OfficeAttributes) *string { return a.LobbyFinish }),
		},
		{
			Name: "hvac_system", Category: model.CategoryOffice, Kind: KindOrdinal,
			RateKey: "hvac_system", Unit: "%/level", Scale: &model.ScaleHVACSystem, PctOfPrice: true,
			Ord: ord(func(a *model.OfficeAttributes) *string { return a.HVACSystem }),
		},
		{
			Name: "floor_plate_efficiency_pct", Category: model.CategoryOffice, Kind: KindContinuous,
			RateKey: "floor_plate_efficiency_pct", Unit: "per point",
			Num: num(func(a *model.OfficeAttributes) *float64 { return a.FloorPlateEfficiency }),
		},
		{
			Name: "tenant_buildout_quality", Category: model.CategoryOffice, Kind: KindOrdinal,
			RateKey: "tenant_buildout_quality", Unit: "%/level", Scale: &model.ScaleBuildoutQuality, PctOfPrice: true,
			Ord: ord(func(a *model.OfficeAttributes) *string { return a.TenantBuildoutQuality }),
		},
		{
			Name: "conference_center", Category: model.CategoryOffice, Kind: KindBoolean,
			RateKey: "conference_center", Unit: "lump sum",
			Flag: flag(func(a *model.OfficeAttributes) *bool { return a.ConferenceCenter }),
		},
		{
			Name: "fiber_connectivity", Category: model.CategoryOffice, Kind: KindBoolean,
			RateKey: "fiber_connectivity", Unit: "lump sum",
			Flag: flag(func(a *model.OfficeAttributes) *bool { return a.FiberConnectivity }),
		},
	}
}
