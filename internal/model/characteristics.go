package model

// Characteristics is the fixed, typed record of physical attributes carried by
// both the subject and every comparable. Optional attributes are pointers; a
// nil pointer means the data was not provided and the corresponding adjustment
// is skipped as incomplete rather than treated as an error.
//
// Industrial and Office are mutually exclusive attribute groups; only the one
// matching the property type is consulted by the physical sub-engine.
type Characteristics struct {
	Land       LandAttributes        `json:"land"`
	Site       SiteAttributes        `json:"site"`
	Building   BuildingAttributes    `json:"building"`
	Features   FeatureAttributes     `json:"features"`
	Zoning     ZoningAttributes      `json:"zoning"`
	Industrial *IndustrialAttributes `json:"industrial,omitempty"`
	Office     *OfficeAttributes     `json:"office,omitempty"`
}

// LandAttributes covers the underlying land.
type LandAttributes struct {
	LotSizeAcres    *float64 `json:"lot_size_acres,omitempty"`
	Topography      *string  `json:"topography,omitempty"`
	Drainage        *string  `json:"drainage,omitempty"`
	SoilConditions  *string  `json:"soil_conditions,omitempty"`
	FloodZone       *string  `json:"flood_zone,omitempty"`
	Environmental   *string  `json:"environmental,omitempty"`
	ExcessLandAcres *float64 `json:"excess_land_acres,omitempty"`
	CornerLot       *bool    `json:"corner_lot,omitempty"`
}

// SiteAttributes covers site improvements.
type SiteAttributes struct {
	Utilities          *string  `json:"utilities,omitempty"`
	PavedParkingSpaces *float64 `json:"paved_parking_spaces,omitempty"`
	PerimeterFencing   *bool    `json:"perimeter_fencing,omitempty"`
	LandscapingQuality *string  `json:"landscaping_quality,omitempty"`
	AccessPoints       *float64 `json:"access_points,omitempty"`
	PylonSignage       *bool    `json:"pylon_signage,omitempty"`
}

// BuildingAttributes covers the improvements common to all property types.
type BuildingAttributes struct {
	SizeSF              *float64 `json:"size_sf,omitempty"`
	EffectiveAgeYears   *float64 `json:"effective_age_years,omitempty"`
	BuildingClass       *string  `json:"building_class,omitempty"`
	ConstructionQuality *string  `json:"construction_quality,omitempty"`
	Condition           *string  `json:"condition,omitempty"`
	LayoutEfficiency    *string  `json:"layout_efficiency,omitempty"`
}

// FeatureAttributes covers special features priced independently of use.
type FeatureAttributes struct {
	SprinklerSystem *bool `json:"sprinkler_system,omitempty"`
	SecuritySystem  *bool `json:"security_system,omitempty"`
	BackupGenerator *bool `json:"backup_generator,omitempty"`
	SolarArray      *bool `json:"solar_array,omitempty"`
	EVCharging      *bool `json:"ev_charging,omitempty"`
	ColdStorage     *bool `json:"cold_storage,omitempty"`
}

// ZoningAttributes covers zoning and legal encumbrances.
type ZoningAttributes struct {
	ZoningFlexibility     *string  `json:"zoning_flexibility,omitempty"`
	ConformingUse         *bool    `json:"conforming_use,omitempty"`
	UnusedFAR             *float64 `json:"unused_far,omitempty"`
	EasementEncumbrance   *bool    `json:"easement_encumbrance,omitempty"`
	TransferableDevRights *bool    `json:"transferable_dev_rights,omitempty"`
}

// IndustrialAttributes applies only to industrial properties.
type IndustrialAttributes struct {
	ClearHeightFt     *float64 `json:"clear_height_ft,omitempty"`
	DockDoors         *float64 `json:"dock_doors,omitempty"`
	DriveInDoors      *float64 `json:"drive_in_doors,omitempty"`
	RailSpur          *bool    `json:"rail_spur,omitempty"`
	CraneSystem       *bool    `json:"crane_system,omitempty"`
	PowerCapacityAmps *float64 `json:"power_capacity_amps,omitempty"`
	OfficeFinishPct   *float64 `json:"office_finish_pct,omitempty"`
	TruckCourtDepthFt *float64 `json:"truck_court_depth_ft,omitempty"`
	TrailerParking    *bool    `json:"trailer_parking,omitempty"`
	FloorThicknessIn  *float64 `json:"floor_thickness_in,omitempty"`
}

// OfficeAttributes applies only to office properties.
type OfficeAttributes struct {
	ParkingRatio          *float64 `json:"parking_ratio,omitempty"` // spaces per 1000 SF
	ElevatorCount         *float64 `json:"elevator_count,omitempty"`
	LobbyFinish           *string  `json:"lobby_finish,omitempty"`
	HVACSystem            *string  `json:"hvac_system,omitempty"`
	FloorPlateEfficiency  *float64 `json:"floor_plate_efficiency_pct,omitempty"`
	TenantBuildoutQuality *string  `json:"tenant_buildout_quality,omitempty"`
	ConferenceCenter      *bool    `json:"conference_center,omitempty"`
	FiberConnectivity     *bool    `json:"fiber_connectivity,omitempty"`
}
