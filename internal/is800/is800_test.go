package is800

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFactors(t *testing.T) {
	f := DefaultFactors()

	assert.Equal(t, 200000.0, f.E)
	assert.Equal(t, 1.1, f.GammaM0)
	assert.Equal(t, 1.0, f.SectionFactor)
	assert.Equal(t, 250.0, f.DeflectionRatio)
	assert.Equal(t, 1.2, f.MomentLimitFactor)
	assert.Equal(t, 0.6, f.ShearStressFactor)
	require.NoError(t, f.Validate())
}

func TestFactorsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Factors)
	}{
		{"zero modulus", func(f *Factors) { f.E = 0 }},
		{"zero gamma", func(f *Factors) { f.GammaM0 = 0 }},
		{"negative deflection ratio", func(f *Factors) { f.DeflectionRatio = -250 }},
		{"negative section factor", func(f *Factors) { f.SectionFactor = -1 }},
		{"zero shear factor", func(f *Factors) { f.ShearStressFactor = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := DefaultFactors()
			tt.mutate(&f)
			assert.Error(t, f.Validate())
		})
	}
}

func TestCalculateFactoredMoment(t *testing.T) {
	moments := LoadMoments{Dead: 50, Live: 30, Wind: 20}

	assert.InDelta(t, 120.0, LoadCombinations[0].CalculateFactoredMoment(moments), 1e-9)
	assert.InDelta(t, 120.0, LoadCombinations[1].CalculateFactoredMoment(moments), 1e-9)
	assert.InDelta(t, 75.0, LoadCombinations[5].CalculateFactoredMoment(moments), 1e-9)
}

func TestCalculateGoverningMoment(t *testing.T) {
	moments := LoadMoments{Dead: 50, Live: 10, Wind: 60}

	mu, combo := CalculateGoverningMoment(moments, LoadCombinations)

	// 1.5*50 + 1.5*60 = 165 beats 1.2*(50+10+60) = 144
	assert.InDelta(t, 165.0, mu, 1e-9)
	assert.Equal(t, "4", combo.ID)
}

func TestCalculateGoverningMomentUplift(t *testing.T) {
	// Every combination negative: the least negative still governs
	moments := LoadMoments{Dead: 10, Wind: -100}

	mu, combo := CalculateGoverningMoment(moments, []LoadCombination{LoadCombinations[3], LoadCombinations[5]})

	assert.InDelta(t, -135.0, mu, 1e-9)
	assert.Equal(t, "4", combo.ID)
}

func TestLoadMomentsIsZero(t *testing.T) {
	assert.True(t, LoadMoments{}.IsZero())
	assert.False(t, LoadMoments{Earthquake: 1}.IsZero())
}
