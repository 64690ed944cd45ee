package domain

// AdjustmentKind discriminates how a price adjustment modifies the base price
type AdjustmentKind string

const (
	AdjustmentNone       AdjustmentKind = "none"
	AdjustmentPercentage AdjustmentKind = "percentage"
	AdjustmentFixed      AdjustmentKind = "fixed"
)

// IsValid returns true for a known adjustment kind
func (k AdjustmentKind) IsValid() bool {
	return k == AdjustmentNone || k == AdjustmentPercentage || k == AdjustmentFixed
}

// PriceAdjustment is a tagged variant: the kind decides how Value is applied.
// A zero-value adjustment (empty kind) means no modification.
type PriceAdjustment struct {
	Kind   AdjustmentKind
	Value  float64
	Reason string
}

// NoAdjustment returns the "no modification" variant
func NoAdjustment() PriceAdjustment {
	return PriceAdjustment{Kind: AdjustmentNone}
}

// IsNone returns true if the adjustment does not modify the price
func (a PriceAdjustment) IsNone() bool {
	return a.Kind == AdjustmentNone || a.Kind == ""
}

// Apply returns the effective price for the given base price.
// Percentage multiplies by (1 + Value/100), fixed adds Value (may be negative).
func (a PriceAdjustment) Apply(basePrice float64) float64 {
	switch a.Kind {
	case AdjustmentPercentage:
		return basePrice * (1 + a.Value/100)
	case AdjustmentFixed:
		return basePrice + a.Value
	default:
		return basePrice
	}
}
