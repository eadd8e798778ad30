package physical

import "github.com/sells-group/comps-engine/internal/model"

// zoningSpecs prices the 5 zoning and legal characteristics.
func zoningSpecs() []Spec {
	return []Spec{
		{
			Name: "zoning_flexibility", Category: model.CategoryZoningLegal, Kind: KindOrdinal,
			RateKey: "zoning_flexibility", Unit: "%/level", Scale: &model.ScaleZoningFlexibility, PctOfPrice: true,
			Ord: func(c *model.Characteristics) *string { return c.Zoning.ZoningFlexibility },
		},
		{
			Name: "conforming_use", Category: model.CategoryZoningLegal, Kind: KindBoolean,
			RateKey: "conforming_use", Unit: "% of price", PctOfPrice: true,
			Flag: func(c *model.Characteristics) *bool { return c.Zoning.ConformingUse },
		},
		{
			Name: "unused_far", Category: model.CategoryZoningLegal, Kind: KindContinuous,
			RateKey: "unused_far", Unit: "per 0.01 FAR",
			Num: func(c *model.Characteristics) *float64 { return c.Zoning.UnusedFAR },
		},
		{
			// An encumbered title is inferior.
			Name: "easement_encumbrance", Category: model.CategoryZoningLegal, Kind: KindBoolean,
			RateKey: "easement_encumbrance", Unit: "% of price", PctOfPrice: true, Invert: true,
			Flag: func(c *model.Characteristics) *bool { return c.Zoning.EasementEncumbrance },
		},
		{
			Name: "transferable_dev_rights", Category: model.CategoryZoningLegal, Kind: KindBoolean,
			RateKey: "transferable_dev_rights", Unit: "lump sum",
			Flag: func(c *model.Characteristics) *bool { return c.Zoning.TransferableDevRights },
		},
	}
}
