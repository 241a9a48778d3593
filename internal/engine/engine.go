// Package engine is the top-level orchestration: it resolves categorical
// input, runs the scorer, and assembles the eligibility, gap, blocker, and
// planning views into one aggregate result. Every public method is a pure
// function of its arguments; repeated calls with identical input produce
// identical output.
package engine

import (
	"os"

	"github.com/sirupsen/logrus"

	"nestready/server/config"
	"nestready/server/internal/blockers"
	"nestready/server/internal/gaps"
	"nestready/server/internal/models"
	"nestready/server/internal/mortgage"
	"nestready/server/internal/planner"
	"nestready/server/internal/programs"
	"nestready/server/internal/ranges"
	"nestready/server/internal/scoring"
)

// Engine wires the calculators together for one configuration.
type Engine struct {
	cfg      *config.Config
	logger   *logrus.Logger
	calc     *mortgage.Calculator
	scorer   *scoring.Scorer
	matcher  *programs.Matcher
	detector *blockers.Detector
	planner  *planner.Planner
}

// New creates an Engine. A nil logger gets a default JSON logger to stdout.
func New(cfg *config.Config, logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	calc := mortgage.NewCalculator(mortgage.TermsFromConfig(cfg))
	matcher := programs.NewMatcher(cfg)

	return &Engine{
		cfg:      cfg,
		logger:   logger,
		calc:     calc,
		scorer:   scoring.NewScorer(calc),
		matcher:  matcher,
		detector: blockers.NewDetector(cfg, calc, matcher),
		planner:  planner.NewPlanner(cfg, calc),
	}
}

// EstimateMonthlyPayment exposes the payment model. A non-positive downPct
// uses the configured default.
func (e *Engine) EstimateMonthlyPayment(price, downPct float64) float64 {
	return e.calc.MonthlyPayment(price, downPct)
}

// MaxPriceForDTI exposes the affordability inverter at the default down
// payment.
func (e *Engine) MaxPriceForDTI(monthlyIncome, monthlyDebts, targetDTIPercent float64) float64 {
	return e.calc.MaxPriceForDTI(monthlyIncome, monthlyDebts, targetDTIPercent, 0)
}

// CalculateAffordability resolves the income/debt/price tokens and reports
// the comfortable, stretch, and at-target views.
func (e *Engine) CalculateAffordability(incomeRange, debtsRange, priceRange string) models.AffordabilityResult {
	annual := ranges.ResolveAnnualIncome(incomeRange)
	p := models.Profile{
		AnnualIncome:  annual,
		MonthlyIncome: annual / 12,
		MonthlyDebts:  ranges.ResolveMonthlyDebts(debtsRange),
		TargetPrice:   ranges.ResolvePrice(priceRange),
	}
	return e.planner.Affordability(p)
}

// CalculateScore is the main entry point: full evaluation of a categorical
// intake form.
func (e *Engine) CalculateScore(in models.ScoreInput) models.ScoreResult {
	return e.evaluate(resolve(in))
}

// CalculateScoreAtPrice re-scores the same intake with the target price
// substituted.
func (e *Engine) CalculateScoreAtPrice(in models.ScoreInput, price float64) models.ScoreResult {
	p := resolve(in)
	p.TargetPrice = price
	return e.evaluate(p)
}

// CalculateScoreFromValues evaluates exact numeric values, merging optional
// co-borrower fields, by converting to range tokens and delegating to
// CalculateScore. The bucket quantization is accepted.
func (e *Engine) CalculateScoreFromValues(in models.ScoreValuesInput) models.ScoreResult {
	credit := mergeCredit(in.CreditScore, in.CoBorrowerCreditScore)
	income := in.AnnualIncome + in.CoBorrowerAnnualIncome
	debts := in.MonthlyDebts + in.CoBorrowerMonthlyDebts

	creditRange := ranges.CreditNotSure
	if credit != nil {
		creditRange = ranges.CreditRangeFromScore(*credit)
	}

	return e.CalculateScore(models.ScoreInput{
		CreditRange:    creditRange,
		IncomeRange:    ranges.IncomeRangeFromAmount(income),
		PriceRange:     ranges.PriceRangeFromAmount(in.TargetPrice),
		SavingsRange:   ranges.SavingsRangeFromAmount(in.CashSaved),
		DebtRange:      ranges.DebtRangeFromAmount(debts),
		FirstTimeBuyer: in.FirstTimeBuyer,
		VeteranStatus:  in.VeteranStatus,
	})
}

// evaluate runs the full pipeline on a resolved profile.
func (e *Engine) evaluate(p models.Profile) models.ScoreResult {
	result := e.scoreCore(p)

	result.PrimaryBlocker = e.detector.Detect(p, result.Breakdown)

	affordability := e.planner.Affordability(p)
	result.Affordability = &affordability

	result.SweetSpot = e.planner.SweetSpot(p, result.Total, e.rescoreAt(p))
	result.PathToGoal = e.planner.PathToGoal(p, result.SweetSpot)

	e.logger.WithFields(logrus.Fields{
		"total":  result.Total,
		"status": result.Status,
	}).Debug("Evaluated readiness profile")

	return result
}

// scoreCore computes the score, programs, gaps, and recommendations
// without the blocker or planning views. The planner's re-score lands
// here, so recursion depth is exactly one.
func (e *Engine) scoreCore(p models.Profile) models.ScoreResult {
	breakdown := e.scorer.Breakdown(p)
	total := scoring.Total(breakdown)
	status, color, timeline := scoring.StatusFor(total)

	dti := e.calc.DTIPercent(p.TargetPrice, p.MonthlyIncome, p.MonthlyDebts)
	rows, eligible := e.matcher.Match(p)
	gapList := gaps.Derive(p, breakdown, dti)

	return models.ScoreResult{
		Total:            total,
		Breakdown:        breakdown,
		Status:           status,
		StatusColor:      color,
		Timeline:         timeline,
		Profile:          p,
		MonthlyPayment:   e.calc.MonthlyPayment(p.TargetPrice, 0),
		DTIPercent:       dti,
		Programs:         rows,
		EligiblePrograms: eligible,
		Gaps:             gapList,
		Recommendations:  gaps.Recommend(gapList),
	}
}

// rescoreAt builds the planner's depth-limited re-score callback: the
// price is bucketed back into a range token before scoring, the same
// quantization the main path applies.
func (e *Engine) rescoreAt(p models.Profile) planner.RescoreFunc {
	return func(price float64) (int, models.Status, string) {
		at := p
		at.TargetPrice = ranges.ResolvePrice(ranges.PriceRangeFromAmount(price))
		result := e.scoreCore(at)
		return result.Total, result.Status, result.Timeline
	}
}

// resolve maps the categorical intake onto numeric facts.
func resolve(in models.ScoreInput) models.Profile {
	annual := ranges.ResolveAnnualIncome(in.IncomeRange)

	var credit *int
	if score, known := ranges.ResolveCredit(in.CreditRange); known {
		credit = &score
	}

	return models.Profile{
		CreditScore:    credit,
		AnnualIncome:   annual,
		MonthlyIncome:  annual / 12,
		TargetPrice:    ranges.ResolvePrice(in.PriceRange),
		CashSaved:      ranges.ResolveSavings(in.SavingsRange),
		MonthlyDebts:   ranges.ResolveMonthlyDebts(in.DebtRange),
		FirstTimeBuyer: in.FirstTimeBuyer,
		VeteranStatus:  in.VeteranStatus,
	}
}

// mergeCredit takes the lower of two known scores, or whichever is known.
func mergeCredit(a, b *int) *int {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case *a <= *b:
		return a
	default:
		return b
	}
}
