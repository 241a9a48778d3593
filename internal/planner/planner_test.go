package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nestready/server/config"
	"nestready/server/internal/models"
	"nestready/server/internal/mortgage"
)

func newPlanner(t *testing.T) *Planner {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	return NewPlanner(cfg, mortgage.NewCalculator(mortgage.TermsFromConfig(cfg)))
}

// fixedRescore stands in for the engine's depth-limited re-score.
func fixedRescore(total int) RescoreFunc {
	return func(price float64) (int, models.Status, string) {
		return total, models.StatusGettingClose, "3-6 months"
	}
}

func exampleProfile() models.Profile {
	return models.Profile{
		AnnualIncome:  125000,
		MonthlyIncome: 125000.0 / 12,
		TargetPrice:   550000,
		CashSaved:     62500,
		MonthlyDebts:  750,
	}
}

func TestAffordability(t *testing.T) {
	pl := newPlanner(t)
	result := pl.Affordability(exampleProfile())

	assert.Equal(t, 390000.0, result.Comfortable.Price)
	assert.Equal(t, 485000.0, result.Stretch.Price)
	assert.Equal(t, 550000.0, result.AtTarget.Price)
	assert.Equal(t, 0.06, result.AnnualRate)

	assert.InDelta(t, 47.4, result.AtTarget.DTIPercent, 0.1)
	assert.Less(t, result.Comfortable.MonthlyPayment, result.Stretch.MonthlyPayment)
}

func TestSweetSpotTargetWithinComfortable(t *testing.T) {
	pl := newPlanner(t)

	p := models.Profile{
		AnnualIncome:  150000,
		MonthlyIncome: 12500,
		TargetPrice:   350000,
		CashSaved:     40000,
		MonthlyDebts:  0,
	}

	sweet := pl.SweetSpot(p, 80, fixedRescore(80))
	require.NotNil(t, sweet)
	assert.Equal(t, 350000.0, sweet.RecommendedPrice)
	assert.Equal(t, 0.0, sweet.Diff.PriceDelta)
	assert.Equal(t, 0.0, sweet.Diff.PaymentDelta)

	// Target already conservative: nothing to solve.
	assert.Nil(t, pl.PathToGoal(p, sweet))
}

func TestSweetSpotTargetWithinStretch(t *testing.T) {
	pl := newPlanner(t)

	// 450k sits between the 390k comfortable and 485k stretch ceilings, so
	// the recommendation drops to comfortable.
	p := exampleProfile()
	p.TargetPrice = 450000

	sweet := pl.SweetSpot(p, 69, fixedRescore(72))
	require.NotNil(t, sweet)
	assert.Equal(t, 390000.0, sweet.RecommendedPrice)
	assert.Equal(t, 60000.0, sweet.Diff.PriceDelta)
	assert.Equal(t, 3, sweet.Diff.ScoreDelta)

	// The gap is over the threshold, but at 450k the DTI is already under
	// 43% and savings cover the minimum, so no changes are required.
	assert.Nil(t, pl.PathToGoal(p, sweet))
}

func TestSweetSpotTargetBeyondStretch(t *testing.T) {
	pl := newPlanner(t)
	p := exampleProfile()

	sweet := pl.SweetSpot(p, 61, fixedRescore(69))
	require.NotNil(t, sweet)
	assert.Equal(t, 485000.0, sweet.RecommendedPrice)
	assert.LessOrEqual(t, sweet.RecommendedPrice, p.TargetPrice)
	assert.Equal(t, 69, sweet.Score)
	assert.Equal(t, models.StatusGettingClose, sweet.Status)
	assert.InDelta(t, 42.7, sweet.DTIPercent, 0.1)
	assert.InDelta(t, 3703, sweet.MonthlyPayment, 2)

	assert.Equal(t, 65000.0, sweet.Diff.PriceDelta)
	assert.Equal(t, 8, sweet.Diff.ScoreDelta)
	assert.InDelta(t, 483, sweet.Diff.PaymentDelta, 2)
}

func TestPathToGoalChanges(t *testing.T) {
	pl := newPlanner(t)

	// Over the stretch ceiling and short of the 3.5% minimum.
	p := exampleProfile()
	p.CashSaved = 5000

	sweet := pl.SweetSpot(p, 50, fixedRescore(60))
	path := pl.PathToGoal(p, sweet)
	require.NotNil(t, path)
	assert.Equal(t, 550000.0, path.TargetPrice)
	require.Len(t, path.RequiredChanges, 3)

	debt := path.RequiredChanges[0]
	assert.Equal(t, models.ChangeDebtReduction, debt.Type)
	assert.InDelta(t, 457, debt.Amount, 2)

	income := path.RequiredChanges[1]
	assert.Equal(t, models.ChangeIncomeIncrease, income.Type)
	assert.InDelta(t, 1062, income.Amount, 2)

	savings := path.RequiredChanges[2]
	assert.Equal(t, models.ChangeSavingsIncrease, savings.Type)
	assert.Equal(t, 14250.0, savings.Amount)

	// The 14,250 savings gap at $500/month dominates the timeline.
	assert.Equal(t, "12+ months", path.Timeline)
}

func TestPathToGoalNilWithinThreshold(t *testing.T) {
	pl := newPlanner(t)
	p := exampleProfile()

	sweet := &models.SweetSpot{RecommendedPrice: 545000}
	assert.Nil(t, pl.PathToGoal(p, sweet))

	// Target below the recommendation is already conservative.
	sweet = &models.SweetSpot{RecommendedPrice: 600000}
	assert.Nil(t, pl.PathToGoal(p, sweet))

	assert.Nil(t, pl.PathToGoal(p, nil))
}

func TestTimelineBucket(t *testing.T) {
	tests := []struct {
		months   float64
		expected string
	}{
		{1, "1-3 months"},
		{3, "1-3 months"},
		{5.5, "3-6 months"},
		{6, "3-6 months"},
		{10, "6-12 months"},
		{28.5, "12+ months"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, timelineBucket(tt.months), "months %.1f", tt.months)
	}
}
