package mortgage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyPayment(t *testing.T) {
	calc := NewCalculator(DefaultTerms())

	// 550k at 3.5% down: P&I on a 530,750 loan at 6%/360mo plus 1.2%/yr
	// tax, $100 insurance, and 0.8%/yr mortgage insurance.
	payment := calc.MonthlyPayment(550000, 0.035)
	assert.InDelta(t, 4186, payment, 1.0)

	// Zero downPct falls back to the 3.5% default.
	assert.Equal(t, payment, calc.MonthlyPayment(550000, 0))

	// Degenerate price.
	assert.Equal(t, 0.0, calc.MonthlyPayment(0, 0.035))
	assert.Equal(t, 0.0, calc.MonthlyPayment(-100, 0.035))
}

func TestMonthlyPaymentMonotonic(t *testing.T) {
	calc := NewCalculator(DefaultTerms())

	prev := 0.0
	for _, price := range []float64{100000, 250000, 550000, 1000000, 2000000} {
		payment := calc.MonthlyPayment(price, 0)
		assert.Greater(t, payment, prev, "price %.0f", price)
		prev = payment
	}
}

func TestMaxPriceForDTI(t *testing.T) {
	calc := NewCalculator(DefaultTerms())

	tests := []struct {
		name     string
		income   float64
		debts    float64
		dti      float64
		expected float64
	}{
		{"Stretch ceiling", 10416.67, 750, 43, 485000},
		{"Comfortable ceiling", 10416.67, 750, 36, 390000},
		{"Debts exceed ceiling", 2500, 2500, 43, 0},
		{"Zero income", 0, 0, 43, 0},
		{"Negative income", -100, 0, 43, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calc.MaxPriceForDTI(tt.income, tt.debts, tt.dti, 0))
		})
	}
}

// The inverted price, fed back through the payment model, must land just
// below the requested ceiling: never above it, and within the DTI width of
// one $5,000 rounding step below it.
func TestMaxPriceForDTIInversion(t *testing.T) {
	calc := NewCalculator(DefaultTerms())

	cases := []struct {
		income float64
		debts  float64
		dti    float64
	}{
		{4000, 0, 43},
		{6000, 750, 43},
		{10416.67, 750, 43},
		{15000, 3000, 36},
		{15000, 0, 43},
	}

	for _, c := range cases {
		price := calc.MaxPriceForDTI(c.income, c.debts, c.dti, 0)
		assert.Greater(t, price, 0.0)
		assert.Equal(t, 0.0, math.Mod(price, 5000), "income %.0f", c.income)
		assert.GreaterOrEqual(t, price, MinSearchPrice)
		assert.LessOrEqual(t, price, MaxSearchPrice)

		dti := (calc.MonthlyPayment(price, 0) + c.debts) / c.income * 100
		assert.LessOrEqual(t, dti, c.dti+0.01, "income %.0f", c.income)
		assert.GreaterOrEqual(t, dti, c.dti-1.0, "income %.0f", c.income)
	}
}

func TestDTIPercent(t *testing.T) {
	calc := NewCalculator(DefaultTerms())

	dti := calc.DTIPercent(550000, 10416.67, 750)
	assert.InDelta(t, 47.4, dti, 0.1)

	// Zero income reports the unaffordable sentinel.
	assert.Equal(t, 999.0, calc.DTIPercent(550000, 0, 750))
}

// DTI is non-decreasing in debts at fixed income, so the DTI sub-score is
// non-increasing.
func TestDTIPercentMonotonicInDebts(t *testing.T) {
	calc := NewCalculator(DefaultTerms())

	prev := -1.0
	for _, debts := range []float64{0, 250, 750, 1500, 2500} {
		dti := calc.DTIPercent(550000, 10416.67, debts)
		assert.Greater(t, dti, prev)
		prev = dti
	}
}

func TestTermsFromConfigOverride(t *testing.T) {
	terms := DefaultTerms()
	terms.AnnualRate = 0.05

	lower := NewCalculator(terms).MonthlyPayment(550000, 0)
	standard := NewCalculator(DefaultTerms()).MonthlyPayment(550000, 0)
	assert.Less(t, lower, standard)
}
