package model

// OrdinalScale is an explicitly ordered set of category labels, worst first.
// Rank distance between two labels drives ordinal adjustments; a label outside
// the scale is an UnrecognizedValueError, never silently coerced.
type OrdinalScale struct {
	Name   string
	Levels []string // ascending: Levels[0] is the worst, last is the best
}

// Rank returns the position of label on the scale (0 = worst).
func (s OrdinalScale) Rank(label string) (int, error) {
	for i, l := range s.Levels {
		if l == label {
			return i, nil
		}
	}
	return 0, &UnrecognizedValueError{Scale: s.Name, Value: label, Allowed: s.Levels}
}

// Ordinal scales referenced by the physical characteristic catalog.
var (
	ScaleTopography = OrdinalScale{Name: "topography", Levels: []string{
		"severely_sloped", "moderately_sloped", "gently_sloped", "level",
	}}
	ScaleDrainage = OrdinalScale{Name: "drainage", Levels: []string{
		"poor", "adequate", "good", "excellent",
	}}
	ScaleSoil = OrdinalScale{Name: "soil_conditions", Levels: []string{
		"problematic", "moderate", "stable",
	}}
	ScaleFloodZone = OrdinalScale{Name: "flood_zone", Levels: []string{
		"floodway", "zone_a", "zone_b", "zone_x",
	}}
	ScaleEnvironmental = OrdinalScale{Name: "environmental", Levels: []string{
		"active_contamination", "monitored_remediation", "phase1_clear", "clean",
	}}
	ScaleUtilities = OrdinalScale{Name: "utilities", Levels: []string{
		"well_septic", "partial_municipal", "full_municipal",
	}}
	ScaleLandscaping = OrdinalScale{Name: "landscaping_quality", Levels: []string{
		"minimal", "standard", "extensive",
	}}
	ScaleBuildingClass = OrdinalScale{Name: "building_class", Levels: []string{
		"class_c", "class_b", "class_a",
	}}
	ScaleConstructionQuality = OrdinalScale{Name: "construction_quality", Levels: []string{
		"fair", "average", "good", "excellent",
	}}
	ScaleCondition = OrdinalScale{Name: "condition", Levels: []string{
		"poor", "fair", "average", "good", "excellent",
	}}
	ScaleLayoutEfficiency = OrdinalScale{Name: "layout_efficiency", Levels: []string{
		"challenged", "adequate", "efficient",
	}}
	ScaleLobbyFinish = OrdinalScale{Name: "lobby_finish", Levels: []string{
		"basic", "standard", "premium",
	}}
	ScaleHVACSystem = OrdinalScale{Name: "hvac_system", Levels: []string{
		"packaged_aged", "packaged_modern", "vav",
	}}
	ScaleBuildoutQuality = OrdinalScale{Name: "tenant_buildout_quality", Levels: []string{
		"shell", "standard", "premium",
	}}
	ScaleZoningFlexibility = OrdinalScale{Name: "zoning_flexibility", Levels: []string{
		"restrictive", "standard", "permissive",
	}}
)
