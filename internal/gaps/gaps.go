// Package gaps derives shortfall gaps from the score breakdown and turns
// each into one recommendation. Gaps are ranked by the realistic points
// recoverable, not by the theoretical cap.
package gaps

import (
	"fmt"
	"sort"

	"nestready/server/internal/format"
	"nestready/server/internal/models"
	"nestready/server/internal/scoring"
)

// Emission thresholds: a gap appears only when the sub-score sits below
// its comfortable tier.
const (
	creditGapBelow      = 20
	downPaymentGapBelow = 10
	dtiGapBelow         = 14
)

// Potential-gain caps model realistic near-term improvement rather than
// the full sub-score cap.
const (
	creditGainCap      = 10
	downPaymentGainCap = 7
	dtiGainCap         = 10
)

// Derive produces the ordered gap list for a breakdown. The order is
// descending by potential gain; equal gains keep emission order (credit,
// down payment, DTI).
func Derive(p models.Profile, b models.ScoreBreakdown, dtiPercent float64) []models.Gap {
	var out []models.Gap

	if b.Credit < creditGapBelow {
		current := "Unknown"
		if p.CreditScore != nil {
			current = fmt.Sprintf("%d", *p.CreditScore)
		}
		out = append(out, models.Gap{
			Factor:         models.GapCredit,
			Severity:       severity(b.Credit, scoring.CreditCap),
			Current:        current,
			Target:         "680 or higher",
			ActionRequired: "Raise your credit score",
			PointsLost:     scoring.CreditCap - b.Credit,
			PotentialGain:  capGain(scoring.CreditCap-b.Credit, creditGainCap),
		})
	}

	if b.DownPayment < downPaymentGapBelow {
		pct := 0.0
		if p.TargetPrice > 0 {
			pct = p.CashSaved / p.TargetPrice * 100
		}
		out = append(out, models.Gap{
			Factor:         models.GapDownPayment,
			Severity:       severity(b.DownPayment, scoring.DownPaymentCap),
			Current:        fmt.Sprintf("%s saved (%.1f%% of price)", format.Currency(p.CashSaved), pct),
			Target:         "10% of the target price",
			ActionRequired: "Grow your down payment savings",
			PointsLost:     scoring.DownPaymentCap - b.DownPayment,
			PotentialGain:  capGain(scoring.DownPaymentCap-b.DownPayment, downPaymentGainCap),
		})
	}

	if b.DTI < dtiGapBelow {
		out = append(out, models.Gap{
			Factor:         models.GapDTI,
			Severity:       severity(b.DTI, scoring.DTICap),
			Current:        fmt.Sprintf("%.1f%% debt-to-income", dtiPercent),
			Target:         "Below 41%",
			ActionRequired: "Lower your monthly debt load",
			PointsLost:     scoring.DTICap - b.DTI,
			PotentialGain:  capGain(scoring.DTICap-b.DTI, dtiGainCap),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PotentialGain > out[j].PotentialGain
	})
	return out
}

// Recommend generates one recommendation per gap, preserving gap order.
func Recommend(list []models.Gap) []models.Recommendation {
	var out []models.Recommendation
	for _, g := range list {
		rec := models.Recommendation{
			Factor: g.Factor,
			Impact: fmt.Sprintf("Up to +%d points", g.PotentialGain),
		}
		switch g.Factor {
		case models.GapCredit:
			rec.Title = "Improve your credit score"
			rec.Description = "Pay every account on time, keep card balances under 30% of their limits, and dispute any reporting errors. Most buyers see movement within 3-6 months."
		case models.GapDownPayment:
			rec.Title = "Build your down payment"
			rec.Description = "Set up an automatic transfer to a dedicated savings account and look into down payment assistance programs you may already qualify for."
		case models.GapDTI:
			rec.Title = "Reduce your monthly debt"
			rec.Description = "Pay down the highest-payment accounts first; each recurring payment you retire frees up borrowing power at the same income."
		default:
			rec.Title = "Close the gap"
			rec.Description = g.ActionRequired
		}
		out = append(out, rec)
	}
	return out
}

// severity grades a sub-score by the fraction of its cap achieved.
func severity(points, limit int) models.GapSeverity {
	switch {
	case points*3 <= limit:
		return models.GapSeverityHigh
	case points*3 <= limit*2:
		return models.GapSeverityMedium
	default:
		return models.GapSeverityLow
	}
}

func capGain(lost, limit int) int {
	if lost < limit {
		return lost
	}
	return limit
}
