// Package planner derives the affordability sweet spot and, when the
// stated target materially exceeds it, the ordered path of changes needed
// to close the distance.
package planner

import (
	"fmt"
	"math"

	"nestready/server/config"
	"nestready/server/internal/format"
	"nestready/server/internal/models"
	"nestready/server/internal/mortgage"
	"nestready/server/internal/scoring"
)

// RescoreFunc re-runs the scorer at a different price. The caller supplies
// it so the planner never re-enters itself: the re-score is depth 1 and
// produces no sweet spot or path of its own.
type RescoreFunc func(price float64) (total int, status models.Status, timeline string)

// priceStep matches the affordability inverter's rounding granularity.
const priceStep = 5000.0

// incomeIncreaseMonths is the flat timeline assumed for raising income.
const incomeIncreaseMonths = 6.0

// Planner computes sweet spots and paths against one calculator.
type Planner struct {
	calc          *mortgage.Calculator
	comfortDTI    float64
	stretchDTI    float64
	savingsRate   float64
	pathThreshold float64
}

// NewPlanner creates a Planner from configuration.
func NewPlanner(cfg *config.Config, calc *mortgage.Calculator) *Planner {
	return &Planner{
		calc:          calc,
		comfortDTI:    cfg.DTI.ComfortablePct,
		stretchDTI:    cfg.DTI.StretchPct,
		savingsRate:   cfg.Planner.MonthlySavingsRate,
		pathThreshold: cfg.Planner.PathThreshold,
	}
}

// Affordability computes the comfortable/stretch/at-target views for a
// resolved profile.
func (pl *Planner) Affordability(p models.Profile) models.AffordabilityResult {
	comfortable := pl.calc.MaxPriceForDTI(p.MonthlyIncome, p.MonthlyDebts, pl.comfortDTI, 0)
	stretch := pl.calc.MaxPriceForDTI(p.MonthlyIncome, p.MonthlyDebts, pl.stretchDTI, 0)

	view := func(price float64) models.AffordabilityView {
		return models.AffordabilityView{
			Price:          price,
			MonthlyPayment: round2(pl.calc.MonthlyPayment(price, 0)),
			DTIPercent:     round1(pl.calc.DTIPercent(price, p.MonthlyIncome, p.MonthlyDebts)),
		}
	}

	return models.AffordabilityResult{
		Comfortable: view(comfortable),
		Stretch:     view(stretch),
		AtTarget:    view(p.TargetPrice),
		AnnualRate:  pl.calc.Terms().AnnualRate,
	}
}

// SweetSpot recommends the highest sustainable price, never above the
// stated target, and re-scores the profile there via rescore.
func (pl *Planner) SweetSpot(p models.Profile, originalTotal int, rescore RescoreFunc) *models.SweetSpot {
	comfortable := pl.calc.MaxPriceForDTI(p.MonthlyIncome, p.MonthlyDebts, pl.comfortDTI, 0)
	stretch := pl.calc.MaxPriceForDTI(p.MonthlyIncome, p.MonthlyDebts, pl.stretchDTI, 0)

	var recommended float64
	switch {
	case p.TargetPrice <= comfortable:
		recommended = p.TargetPrice
	case p.TargetPrice <= stretch:
		recommended = comfortable
	default:
		recommended = stretch
	}
	recommended = math.Round(recommended/priceStep) * priceStep
	if recommended > p.TargetPrice {
		recommended = p.TargetPrice
	}

	total := 0
	status, _, timeline := scoring.StatusFor(0)
	if recommended > 0 {
		total, status, timeline = rescore(recommended)
	}

	payment := pl.calc.MonthlyPayment(recommended, 0)
	targetPayment := pl.calc.MonthlyPayment(p.TargetPrice, 0)

	return &models.SweetSpot{
		RecommendedPrice: recommended,
		Score:            total,
		Status:           status,
		Timeline:         timeline,
		MonthlyPayment:   round2(payment),
		DTIPercent:       round1(pl.calc.DTIPercent(recommended, p.MonthlyIncome, p.MonthlyDebts)),
		Diff: models.SweetSpotDiff{
			PriceDelta:   p.TargetPrice - recommended,
			ScoreDelta:   total - originalTotal,
			PaymentDelta: round2(targetPayment - payment),
		},
	}
}

// PathToGoal lists the changes required to afford the stated target price.
// Nil when the target is within the threshold of the recommendation, below
// it, or when no changes are actually needed.
func (pl *Planner) PathToGoal(p models.Profile, sweet *models.SweetSpot) *models.PathToGoal {
	if sweet == nil || p.TargetPrice-sweet.RecommendedPrice < pl.pathThreshold {
		return nil
	}

	// Changes are sized at the stated target, not the sweet spot.
	payment := pl.calc.MonthlyPayment(p.TargetPrice, 0)
	dti := pl.calc.DTIPercent(p.TargetPrice, p.MonthlyIncome, p.MonthlyDebts)

	var changes []models.RequiredChange
	var worstMonths float64

	if dti > pl.stretchDTI {
		debtReduction := payment + p.MonthlyDebts - p.MonthlyIncome*pl.stretchDTI/100
		if debtReduction > 0 && debtReduction <= p.MonthlyDebts {
			months := debtReduction * 12 / 1000
			worstMonths = math.Max(worstMonths, months)
			changes = append(changes, models.RequiredChange{
				Type:        models.ChangeDebtReduction,
				Amount:      round2(debtReduction),
				Description: fmt.Sprintf("Reduce monthly debt payments by %s", format.Currency(debtReduction)),
				Impact:      fmt.Sprintf("Brings DTI at %s down to %.0f%%", format.Currency(p.TargetPrice), pl.stretchDTI),
			})
		}

		incomeIncrease := (payment+p.MonthlyDebts)/(pl.stretchDTI/100) - p.MonthlyIncome
		if incomeIncrease > 0 {
			worstMonths = math.Max(worstMonths, incomeIncreaseMonths)
			changes = append(changes, models.RequiredChange{
				Type:        models.ChangeIncomeIncrease,
				Amount:      round2(incomeIncrease),
				Description: fmt.Sprintf("Increase gross monthly income by %s", format.Currency(incomeIncrease)),
				Impact:      fmt.Sprintf("Qualifies the full %s price on income alone", format.Currency(p.TargetPrice)),
			})
		}
	}

	minDown := p.TargetPrice * pl.calc.Terms().DefaultDownPaymentPct
	if p.CashSaved < minDown {
		shortfall := minDown - p.CashSaved
		if pl.savingsRate > 0 {
			worstMonths = math.Max(worstMonths, shortfall/pl.savingsRate)
		}
		changes = append(changes, models.RequiredChange{
			Type:        models.ChangeSavingsIncrease,
			Amount:      round2(shortfall),
			Description: fmt.Sprintf("Save %s more toward the down payment", format.Currency(shortfall)),
			Impact:      fmt.Sprintf("Meets the %.1f%% minimum at %s", pl.calc.Terms().DefaultDownPaymentPct*100, format.Currency(p.TargetPrice)),
		})
	}

	if len(changes) == 0 {
		return nil
	}

	return &models.PathToGoal{
		TargetPrice:     p.TargetPrice,
		RequiredChanges: changes,
		Timeline:        timelineBucket(worstMonths),
	}
}

// timelineBucket maps the largest single change onto a coarse estimate.
func timelineBucket(months float64) string {
	switch {
	case months <= 3:
		return "1-3 months"
	case months <= 6:
		return "3-6 months"
	case months <= 12:
		return "6-12 months"
	default:
		return "12+ months"
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
