package ranges

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCredit(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected int
		known    bool
	}{
		{"Mid band", "620-659", 640, true},
		{"Bottom band", "under-580", 540, true},
		{"Top band", "740-plus", 760, true},
		{"Not sure", "not-sure", 0, false},
		{"Empty", "", 0, false},
		{"Unrecognized", "850-900", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, known := ResolveCredit(tt.token)
			assert.Equal(t, tt.known, known)
			if tt.known {
				assert.Equal(t, tt.expected, score)
			}
		})
	}
}

func TestResolveDefaults(t *testing.T) {
	assert.Equal(t, DefaultAnnualIncome, ResolveAnnualIncome(""))
	assert.Equal(t, DefaultAnnualIncome, ResolveAnnualIncome("lots"))
	assert.Equal(t, DefaultTargetPrice, ResolvePrice(""))
	assert.Equal(t, DefaultCashSaved, ResolveSavings(""))
	assert.Equal(t, DefaultMonthlyDebts, ResolveMonthlyDebts(""))
}

func TestResolveMidpoints(t *testing.T) {
	assert.Equal(t, 125000.0, ResolveAnnualIncome("100k-150k"))
	assert.Equal(t, 550000.0, ResolvePrice("500k-600k"))
	assert.Equal(t, 62500.0, ResolveSavings("50k-75k"))
	assert.Equal(t, 750.0, ResolveMonthlyDebts("500-1000"))
	assert.Equal(t, 0.0, ResolveMonthlyDebts("none"))
}

// Every defined token must survive a resolve-then-bucket round trip: the
// inverse bands share their boundaries with the forward table.
func TestRoundTripIdempotence(t *testing.T) {
	creditTokens := []string{"under-580", "580-619", "620-659", "660-699", "700-739", "740-plus"}
	for _, token := range creditTokens {
		score, known := ResolveCredit(token)
		assert.True(t, known)
		assert.Equal(t, token, CreditRangeFromScore(score), "credit %s", token)
	}

	incomeTokens := []string{"under-40k", "40k-60k", "60k-80k", "80k-100k", "100k-150k", "150k-plus"}
	for _, token := range incomeTokens {
		assert.Equal(t, token, IncomeRangeFromAmount(ResolveAnnualIncome(token)), "income %s", token)
	}

	priceTokens := []string{"under-300k", "300k-400k", "400k-500k", "500k-600k", "600k-750k", "750k-1m", "1m-plus"}
	for _, token := range priceTokens {
		assert.Equal(t, token, PriceRangeFromAmount(ResolvePrice(token)), "price %s", token)
	}

	savingsTokens := []string{"under-10k", "10k-25k", "25k-50k", "50k-75k", "75k-100k", "100k-plus"}
	for _, token := range savingsTokens {
		assert.Equal(t, token, SavingsRangeFromAmount(ResolveSavings(token)), "savings %s", token)
	}

	debtTokens := []string{"none", "under-500", "500-1000", "1000-2000", "2000-plus"}
	for _, token := range debtTokens {
		assert.Equal(t, token, DebtRangeFromAmount(ResolveMonthlyDebts(token)), "debt %s", token)
	}
}

// Bucketing is deliberately lossy: any price inside a band maps to that
// band's token, so re-resolving returns the band midpoint, not the input.
func TestPriceBucketingIsLossy(t *testing.T) {
	tests := []struct {
		price    float64
		token    string
		midpoint float64
	}{
		{485000, "400k-500k", 450000},
		{500000, "500k-600k", 550000}, // boundary lands in the upper band
		{599999, "500k-600k", 550000},
		{2500000, "1m-plus", 1250000},
		{0, "under-300k", 250000},
	}

	for _, tt := range tests {
		token := PriceRangeFromAmount(tt.price)
		assert.Equal(t, tt.token, token, "price %.0f", tt.price)
		assert.Equal(t, tt.midpoint, ResolvePrice(token))
	}
}
