package model

// Stage names, in execution order. Later stages price percentage adjustments
// against the output of earlier stages, so the order is load-bearing.
const (
	StagePropertyRights   = "property_rights"
	StageFinancing        = "financing"
	StageConditionsOfSale = "conditions_of_sale"
	StageMarketConditions = "market_conditions"
	StageLocation         = "location"
	StagePhysical         = "physical_characteristics"
)

// Physical adjustment categories produced by the stage-6 sub-engine.
const (
	CategoryLand            = "land"
	CategorySite            = "site"
	CategoryBuildingGeneral = "building_general"
	CategorySpecialFeatures = "special_features"
	CategoryZoningLegal     = "zoning_legal"
	CategoryIndustrial      = "industrial"
	CategoryOffice          = "office"
)

// AdjustmentRecord is one priced (or skipped) difference between the subject
// and a comparable. Produced by exactly one stage or category module and never
// mutated. RateKey names the market parameter the amount was priced from and
// is empty for adjustments priced purely from transaction data; the
// sensitivity analyzer only perturbs records with a rate key.
type AdjustmentRecord struct {
	Category        string  `json:"category"`
	Characteristic  string  `json:"characteristic"`
	SubjectValue    string  `json:"subject_value,omitempty"`
	ComparableValue string  `json:"comparable_value,omitempty"`
	Amount          float64 `json:"amount"`
	Explanation     string  `json:"explanation"`
	Incomplete      bool    `json:"incomplete,omitempty"`
	RateKey         string  `json:"-"`
}

// StageResult is the output of one stage for one comparable.
type StageResult struct {
	Stage       int                `json:"stage"` // 1-6
	Name        string             `json:"name"`
	Records     []AdjustmentRecord `json:"records"`
	PriceBefore float64            `json:"price_before"`
	PriceAfter  float64            `json:"price_after"`
}

// Validation statuses assigned by the gross/net adjustment thresholds.
type ValidationStatus string

const (
	StatusAcceptable ValidationStatus = "ACCEPTABLE"
	StatusCaution    ValidationStatus = "CAUTION"
	StatusReject     ValidationStatus = "REJECT"
)

// ComparableResult is the fully evaluated, validated outcome for one
// comparable: its six stage results, adjustment totals, and the weight it
// carries into reconciliation.
type ComparableResult struct {
	Comparable         ComparableSale   `json:"comparable"`
	Stages             []StageResult    `json:"stages"`
	FinalAdjustedPrice float64          `json:"final_adjusted_price"`
	GrossAdjustment    float64          `json:"gross_adjustment"`
	GrossAdjustmentPct float64          `json:"gross_adjustment_pct"`
	NetAdjustment      float64          `json:"net_adjustment"`
	NetAdjustmentPct   float64          `json:"net_adjustment_pct"`
	Status             ValidationStatus `json:"status"`
	Weight             float64          `json:"weight"`
	WeightedValue      float64          `json:"weighted_value"`
}

// ValueRange is the [low, high] span of final adjusted prices over the
// included set.
type ValueRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// DescriptiveStats summarizes the included set's final adjusted prices.
// StdDev is the population standard deviation.
type DescriptiveStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Q1     float64 `json:"q1"`
	Q3     float64 `json:"q3"`
}

// ReconciliationResult aggregates the weighted comparables into one indicated
// value. Statistics cover only comparables with weight > 0.
type ReconciliationResult struct {
	IncludedCount   int              `json:"included_count"`
	ReconciledValue float64          `json:"reconciled_value"`
	ValueRange      ValueRange       `json:"value_range"`
	Statistics      DescriptiveStats `json:"statistics"`
}

// SensitivityResult reports the reconciled value under a ±10% perturbation of
// one material adjustment rate, holding all other rates fixed.
type SensitivityResult struct {
	RateKey         string  `json:"rate_key"`
	Characteristic  string  `json:"characteristic"`
	BaselineValue   float64 `json:"baseline_value"`
	LowValue        float64 `json:"low_value"`  // rate x 0.9
	HighValue       float64 `json:"high_value"` // rate x 1.1
	LowPctChange    float64 `json:"low_pct_change"`
	HighPctChange   float64 `json:"high_pct_change"`
	MaxAbsPctChange float64 `json:"max_abs_pct_change"`
}

// ExcludedComparable records a comparable dropped from the run and why, so the
// calling layer can present exclusions before any value conclusion.
type ExcludedComparable struct {
	Comparable string `json:"comparable"`
	Reason     string `json:"reason"`
}

// AnalysisResult is the engine's full output contract for one run.
type AnalysisResult struct {
	AnalysisID     string                `json:"analysis_id"`
	ValuationDate  Date                  `json:"valuation_date"`
	Comparables    []ComparableResult    `json:"comparables"`
	Excluded       []ExcludedComparable  `json:"excluded,omitempty"`
	Reconciliation *ReconciliationResult `json:"reconciliation"`
	Sensitivity    []SensitivityResult   `json:"sensitivity,omitempty"`
}
