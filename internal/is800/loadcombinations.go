package is800

// LoadCombination represents an IS 800 load combination
// Based on IS 800:2007 Table 4 - Partial Safety Factors for Loads (Limit State of Strength)
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // DL - Dead load
	Live       float64 // LL - Imposed load
	Wind       float64 // WL - Wind load
	Earthquake float64 // EL - Earthquake load
}

// IS 800:2007 Table 4 - Limit state of strength
// Wind and earthquake are never assumed to act together.
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.5DL + 1.5LL",
		Dead:        1.5,
		Live:        1.5,
	},
	{
		ID:          "2",
		Description: "1.2DL + 1.2LL + 1.2WL",
		Dead:        1.2,
		Live:        1.2,
		Wind:        1.2,
	},
	{
		ID:          "3",
		Description: "1.2DL + 1.2LL + 1.2EL",
		Dead:        1.2,
		Live:        1.2,
		Earthquake:  1.2,
	},
	{
		ID:          "4",
		Description: "1.5DL + 1.5WL",
		Dead:        1.5,
		Wind:        1.5,
	},
	{
		ID:          "5",
		Description: "1.5DL + 1.5EL",
		Dead:        1.5,
		Earthquake:  1.5,
	},
	{
		ID:          "6",
		Description: "0.9DL + 1.5WL",
		Dead:        0.9,
		Wind:        1.5,
	},
	{
		ID:          "7",
		Description: "0.9DL + 1.5EL",
		Dead:        0.9,
		Earthquake:  1.5,
	},
}

// SimplifiedCombinations covers gravity-only beams
var SimplifiedCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.5DL + 1.5LL",
		Dead:        1.5,
		Live:        1.5,
	},
}

// LoadMoments holds unfactored moments from different load types
type LoadMoments struct {
	Dead       float64 // kN-m
	Live       float64 // kN-m
	Wind       float64 // kN-m
	Earthquake float64 // kN-m
}

// IsZero reports whether no load moment was given
func (m LoadMoments) IsZero() bool {
	return m.Dead == 0 && m.Live == 0 && m.Wind == 0 && m.Earthquake == 0
}

// CalculateFactoredMoment calculates the factored moment for a given load combination
func (lc LoadCombination) CalculateFactoredMoment(moments LoadMoments) float64 {
	return lc.Dead*moments.Dead +
		lc.Live*moments.Live +
		lc.Wind*moments.Wind +
		lc.Earthquake*moments.Earthquake
}

// CalculateGoverningMoment finds the maximum factored moment from all combinations.
// The first combination wins ties.
func CalculateGoverningMoment(moments LoadMoments, combinations []LoadCombination) (float64, LoadCombination) {
	var maxMoment float64
	var governingCombo LoadCombination

	for i, combo := range combinations {
		mu := combo.CalculateFactoredMoment(moments)
		if i == 0 || mu > maxMoment {
			maxMoment = mu
			governingCombo = combo
		}
	}

	return maxMoment, governingCombo
}
