package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceAdjustment_Apply(t *testing.T) {
	tests := []struct {
		name       string
		adjustment PriceAdjustment
		basePrice  float64
		want       float64
	}{
		{
			name:       "percentage increase",
			adjustment: PriceAdjustment{Kind: AdjustmentPercentage, Value: 10},
			basePrice:  100,
			want:       110,
		},
		{
			name:       "percentage discount",
			adjustment: PriceAdjustment{Kind: AdjustmentPercentage, Value: -25},
			basePrice:  200,
			want:       150,
		},
		{
			name:       "fixed surcharge",
			adjustment: PriceAdjustment{Kind: AdjustmentFixed, Value: 50},
			basePrice:  100,
			want:       150,
		},
		{
			name:       "fixed discount",
			adjustment: PriceAdjustment{Kind: AdjustmentFixed, Value: -20},
			basePrice:  100,
			want:       80,
		},
		{
			name:       "no adjustment",
			adjustment: NoAdjustment(),
			basePrice:  100,
			want:       100,
		},
		{
			name:       "zero value adjustment",
			adjustment: PriceAdjustment{},
			basePrice:  100,
			want:       100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.adjustment.Apply(tt.basePrice), 1e-9)
		})
	}
}

func TestPriceAdjustment_IsNone(t *testing.T) {
	assert.True(t, NoAdjustment().IsNone())
	assert.True(t, PriceAdjustment{}.IsNone())
	assert.False(t, PriceAdjustment{Kind: AdjustmentFixed, Value: 0}.IsNone())
}

func TestAdjustmentKind_IsValid(t *testing.T) {
	assert.True(t, AdjustmentNone.IsValid())
	assert.True(t, AdjustmentPercentage.IsValid())
	assert.True(t, AdjustmentFixed.IsValid())
	assert.False(t, AdjustmentKind("discount").IsValid())
}
