// Package scoring implements the point-allocation model: five independent
// sub-scores plus bonus modifiers, summed and clamped to the 0-100
// headline score, and the status tier derived from it.
package scoring

import (
	"nestready/server/internal/models"
	"nestready/server/internal/mortgage"
)

// Sub-score caps. The total before clamping is the sum of the five caps
// plus bonuses.
const (
	CreditCap      = 30
	DTICap         = 25
	DownPaymentCap = 20
	EmploymentCap  = 15
	ReservesCap    = 10
)

// UnknownCreditPoints is the neutral estimate used when the applicant does
// not know their score.
const UnknownCreditPoints = 15

// employmentPoints is fixed: the simplified intake flow does not collect
// employment history and assumes stable 2+ year employment. Kept as an
// explicit extension point, not removed from the breakdown.
const employmentPoints = 12

// Bonus modifiers. Individually uncapped; the total score is clamped.
const (
	veteranBonus        = 10
	firstTimeBuyerBonus = 5
)

// Scorer computes score breakdowns against one payment calculator.
type Scorer struct {
	calc *mortgage.Calculator
}

// NewScorer creates a Scorer using the given calculator for payment and
// DTI estimates.
func NewScorer(calc *mortgage.Calculator) *Scorer {
	return &Scorer{calc: calc}
}

// CreditPoints scores a credit score known (0-30) or unknown (neutral 15).
func (s *Scorer) CreditPoints(score *int) int {
	if score == nil {
		return UnknownCreditPoints
	}
	switch c := *score; {
	case c >= 740:
		return 30
	case c >= 720:
		return 27
	case c >= 700:
		return 24
	case c >= 680:
		return 20
	case c >= 660:
		return 17
	case c >= 640:
		return 14
	case c >= 620:
		return 10
	case c >= 580:
		return 5
	case c >= 500:
		return 2
	default:
		return 0
	}
}

// DTIPoints scores the debt-to-income ratio at the target price (0-25).
// Zero income scores 0: obligations are unbounded relative to income.
func (s *Scorer) DTIPoints(dtiPercent float64) int {
	switch {
	case dtiPercent < 28:
		return 25
	case dtiPercent < 36:
		return 22
	case dtiPercent < 41:
		return 18
	case dtiPercent < 44:
		return 14
	case dtiPercent < 50:
		return 10
	case dtiPercent < 57:
		return 5
	default:
		return 0
	}
}

// DownPaymentPoints scores cash saved as a percentage of the target price
// (0-20). VA-qualifying profiles short-circuit to 15: no down payment is
// required, so the saved amount is not a readiness signal for them.
func (s *Scorer) DownPaymentPoints(saved, price float64, veteran models.VeteranStatus) int {
	if veteran.QualifiesForVA() {
		return 15
	}
	if price <= 0 {
		return 1
	}
	switch pct := saved / price; {
	case pct >= 0.20:
		return 20
	case pct >= 0.15:
		return 17
	case pct >= 0.10:
		return 14
	case pct >= 0.05:
		return 10
	case pct >= 0.035:
		return 7
	case pct >= 0.03:
		return 5
	case pct >= 0.01:
		return 3
	default:
		// Some credit for any savings at all.
		return 1
	}
}

// ReservesPoints scores months of reserves left after a 3.5% down payment
// (0-10).
func (s *Scorer) ReservesPoints(saved, price, monthlyPayment float64) int {
	if monthlyPayment <= 0 {
		return 0
	}
	remaining := saved - price*s.calc.Terms().DefaultDownPaymentPct
	if remaining < 0 {
		remaining = 0
	}
	switch months := remaining / monthlyPayment; {
	case months >= 6:
		return 10
	case months >= 4:
		return 8
	case months >= 3:
		return 6
	case months >= 2:
		return 4
	case months >= 1:
		return 2
	default:
		return 0
	}
}

// Breakdown computes the full point breakdown for a resolved profile.
func (s *Scorer) Breakdown(p models.Profile) models.ScoreBreakdown {
	payment := s.calc.MonthlyPayment(p.TargetPrice, 0)
	dti := s.calc.DTIPercent(p.TargetPrice, p.MonthlyIncome, p.MonthlyDebts)

	bonus := 0
	if p.VeteranStatus.QualifiesForVA() {
		bonus += veteranBonus
	}
	if p.FirstTimeBuyer {
		bonus += firstTimeBuyerBonus
	}

	return models.ScoreBreakdown{
		Credit:      s.CreditPoints(p.CreditScore),
		DTI:         s.DTIPoints(dti),
		DownPayment: s.DownPaymentPoints(p.CashSaved, p.TargetPrice, p.VeteranStatus),
		Employment:  employmentPoints,
		Reserves:    s.ReservesPoints(p.CashSaved, p.TargetPrice, payment),
		Bonus:       bonus,
		Penalty:     0,
	}
}

// Total sums a breakdown and clamps it to [0, 100].
func Total(b models.ScoreBreakdown) int {
	total := b.Credit + b.DTI + b.DownPayment + b.Employment + b.Reserves + b.Bonus - b.Penalty
	if total < 0 {
		return 0
	}
	if total > 100 {
		return 100
	}
	return total
}
