// Package blockers implements the primary blocker decision tree. The
// branches run in strict priority order and the first match wins; every
// remediation option is checked for numeric sense before it is attached.
package blockers

import (
	"fmt"
	"math"

	"nestready/server/config"
	"nestready/server/internal/format"
	"nestready/server/internal/models"
	"nestready/server/internal/mortgage"
	"nestready/server/internal/programs"
)

// DTI branch thresholds.
const (
	severeDTIPercent   = 50.0
	criticalDTIPercent = 57.0
)

// Down payment branch thresholds.
const (
	severeShortfall   = 20000.0
	minSensiblePrice  = 200000.0
	comfortCushionPct = 0.05
	thinScorePoints   = 7
	weakScorePoints   = 3
)

// Credit branch thresholds.
const (
	fhaMinCredit          = 580
	conventionalMinCredit = 620
)

// Detector walks the decision tree for one resolved profile.
type Detector struct {
	calc        *mortgage.Calculator
	matcher     *programs.Matcher
	stretchDTI  float64
	comfortDTI  float64
	savingsRate float64
}

// NewDetector creates a Detector wired to the shared calculator and
// program matcher.
func NewDetector(cfg *config.Config, calc *mortgage.Calculator, matcher *programs.Matcher) *Detector {
	return &Detector{
		calc:        calc,
		matcher:     matcher,
		stretchDTI:  cfg.DTI.StretchPct,
		comfortDTI:  cfg.DTI.ComfortablePct,
		savingsRate: cfg.Planner.MonthlySavingsRate,
	}
}

// Detect returns the single most urgent obstacle, or nil when no factor
// dominates. Branch order: severe DTI, moderate DTI, down payment
// shortfall, thin down payment, poor credit, fair credit.
func (d *Detector) Detect(p models.Profile, b models.ScoreBreakdown) *models.Blocker {
	dti := d.calc.DTIPercent(p.TargetPrice, p.MonthlyIncome, p.MonthlyDebts)

	if dti > severeDTIPercent {
		return d.severeDTI(p, dti)
	}
	if dti > d.stretchDTI {
		return d.moderateDTI(p, dti)
	}

	minDown := p.TargetPrice * d.calc.Terms().DefaultDownPaymentPct
	if p.VeteranStatus.QualifiesForVA() {
		minDown = 0
	}
	if p.CashSaved < minDown {
		return d.downPaymentShortfall(p, minDown)
	}
	if b.DownPayment <= thinScorePoints && !p.VeteranStatus.QualifiesForVA() {
		return d.thinDownPayment(p, b)
	}

	if p.CreditScore != nil && *p.CreditScore < conventionalMinCredit {
		return d.poorCredit(p, *p.CreditScore)
	}
	if p.CreditScore != nil && *p.CreditScore < d.matcher.MinCredit() {
		return d.fairCredit(p, *p.CreditScore)
	}

	return nil
}

func (d *Detector) severeDTI(p models.Profile, dti float64) *models.Blocker {
	severity := models.SeveritySignificant
	if dti > criticalDTIPercent {
		severity = models.SeverityCritical
	}

	blocker := &models.Blocker{
		Type:        models.BlockerDTI,
		Severity:    severity,
		Headline:    "Your debt load is too high for this price",
		Subheadline: "Lenders cap total monthly obligations against income; this price point pushes you well past that ceiling.",
		Current:     fmt.Sprintf("%.1f%% debt-to-income", dti),
		Target:      fmt.Sprintf("%.0f%% or below", d.stretchDTI),
	}

	if price := d.calc.MaxPriceForDTI(p.MonthlyIncome, p.MonthlyDebts, d.stretchDTI, 0); price > 0 {
		payment := d.calc.MonthlyPayment(price, 0)
		blocker.Solutions = append(blocker.Solutions, models.Solution{
			Type:        models.SolutionAdjustPrice,
			Description: fmt.Sprintf("Shop at %s instead, the highest price your income supports at %.0f%% DTI", format.Currency(price), d.stretchDTI),
			Impact:      fmt.Sprintf("Monthly payment drops to about %s", format.Currency(payment)),
			Action:      "Lower your target price",
			Detail:      models.PriceAdjustment{NewPrice: price, NewPayment: round2(payment)},
		})
	}

	payment := d.calc.MonthlyPayment(p.TargetPrice, 0)
	debtReduction := payment + p.MonthlyDebts - p.MonthlyIncome*d.stretchDTI/100
	if debtReduction > 0 && debtReduction <= p.MonthlyDebts {
		blocker.Solutions = append(blocker.Solutions, models.Solution{
			Type:        models.SolutionPayDownDebt,
			Description: fmt.Sprintf("Retire %s of monthly debt payments to reach %.0f%% DTI at this price", format.Currency(debtReduction), d.stretchDTI),
			Impact:      "Keeps your target price within lender limits",
			Action:      "Pay down debt",
			Detail:      models.DebtReduction{MonthlyAmount: round2(debtReduction), TargetDTI: d.stretchDTI},
		})
	}

	incomeIncrease := (payment+p.MonthlyDebts)/(d.stretchDTI/100) - p.MonthlyIncome
	if incomeIncrease > 0 {
		blocker.Solutions = append(blocker.Solutions, models.Solution{
			Type:        models.SolutionIncreaseIncome,
			Description: fmt.Sprintf("Add %s of gross monthly income to reach %.0f%% DTI at this price", format.Currency(incomeIncrease), d.stretchDTI),
			Impact:      "A raise, second earner, or documented side income all count",
			Action:      "Increase income",
			Detail:      models.IncomeIncrease{MonthlyAmount: round2(incomeIncrease), TargetDTI: d.stretchDTI},
		})
	}

	return blocker
}

func (d *Detector) moderateDTI(p models.Profile, dti float64) *models.Blocker {
	blocker := &models.Blocker{
		Type:        models.BlockerDTI,
		Severity:    models.SeverityMinor,
		Headline:    "Your debt-to-income is above the conventional ceiling",
		Subheadline: "You are past the standard qualification line but still within reach of flexible programs.",
		Current:     fmt.Sprintf("%.1f%% debt-to-income", dti),
		Target:      fmt.Sprintf("%.0f%% or below", d.stretchDTI),
	}

	if fhaEligible(p.CreditScore) {
		blocker.Solutions = append(blocker.Solutions, models.Solution{
			Type:        models.SolutionCombination,
			Description: fmt.Sprintf("FHA underwriting tolerates DTI up to %.0f%%, so this price can still work with an FHA loan", severeDTIPercent),
			Impact:      "You may qualify today without changing anything",
			Action:      "Ask about FHA",
		})
	}

	if price := d.calc.MaxPriceForDTI(p.MonthlyIncome, p.MonthlyDebts, d.comfortDTI, 0); price > 0 && price < p.TargetPrice*0.9 {
		payment := d.calc.MonthlyPayment(price, 0)
		blocker.Solutions = append(blocker.Solutions, models.Solution{
			Type:        models.SolutionAdjustPrice,
			Description: fmt.Sprintf("A more comfortable budget at %.0f%% DTI would be %s", d.comfortDTI, format.Currency(price)),
			Impact:      fmt.Sprintf("Monthly payment of about %s leaves breathing room", format.Currency(payment)),
			Action:      "Consider a lower price",
			Detail:      models.PriceAdjustment{NewPrice: price, NewPayment: round2(payment)},
		})
	}

	return blocker
}

func (d *Detector) downPaymentShortfall(p models.Profile, minDown float64) *models.Blocker {
	shortfall := minDown - p.CashSaved
	severity := models.SeverityMinor
	if shortfall > severeShortfall {
		severity = models.SeveritySignificant
	}

	blocker := &models.Blocker{
		Type:        models.BlockerDownPayment,
		Severity:    severity,
		Headline:    "You are short of the minimum down payment",
		Subheadline: fmt.Sprintf("This price needs at least %s down and you have %s saved.", format.Currency(minDown), format.Currency(p.CashSaved)),
		Current:     fmt.Sprintf("%s saved", format.Currency(p.CashSaved)),
		Target:      fmt.Sprintf("%s minimum", format.Currency(minDown)),
	}

	blocker.Solutions = d.downPaymentSolutions(p, shortfall, d.calc.Terms().DefaultDownPaymentPct)
	return blocker
}

func (d *Detector) thinDownPayment(p models.Profile, b models.ScoreBreakdown) *models.Blocker {
	severity := models.SeverityMinor
	if b.DownPayment <= weakScorePoints {
		severity = models.SeveritySignificant
	}

	cushion := p.TargetPrice * comfortCushionPct
	blocker := &models.Blocker{
		Type:        models.BlockerDownPayment,
		Severity:    severity,
		Headline:    "Your down payment is thin for this price",
		Subheadline: "You clear the technical minimum, but a thicker cushion means lower payments and stronger offers.",
		Current:     fmt.Sprintf("%s saved", format.Currency(p.CashSaved)),
		Target:      fmt.Sprintf("%s for a 5%% cushion", format.Currency(cushion)),
	}

	blocker.Solutions = d.downPaymentSolutions(p, cushion-p.CashSaved, comfortCushionPct)
	return blocker
}

// downPaymentSolutions builds the three-option shape shared by both down
// payment branches: a price matching current savings at targetPct down, a
// savings plan for the shortfall, and the best assistance route.
func (d *Detector) downPaymentSolutions(p models.Profile, shortfall, targetPct float64) []models.Solution {
	var out []models.Solution

	if targetPct > 0 {
		price := math.Round(p.CashSaved/targetPct/5000) * 5000
		if price >= minSensiblePrice {
			payment := d.calc.MonthlyPayment(price, 0)
			out = append(out, models.Solution{
				Type:        models.SolutionAdjustPrice,
				Description: fmt.Sprintf("Your current savings fully cover %.1f%% down at %s", targetPct*100, format.Currency(price)),
				Impact:      "Buy sooner without waiting on savings",
				Action:      "Lower your target price",
				Detail:      models.PriceAdjustment{NewPrice: price, NewPayment: round2(payment)},
			})
		}
	}

	if shortfall > 0 && d.savingsRate > 0 {
		months := int(math.Ceil(shortfall / d.savingsRate))
		out = append(out, models.Solution{
			Type:        models.SolutionSaveMore,
			Description: fmt.Sprintf("Save %s more; at %s/month that takes about %d months", format.Currency(shortfall), format.Currency(d.savingsRate), months),
			Impact:      "Closes the gap on your current target",
			Action:      "Start a savings plan",
			Detail:      models.SavingsPlan{Amount: round2(shortfall), MonthlyRate: d.savingsRate, Months: months},
		})
	}

	out = append(out, d.assistanceSolution(p))
	return out
}

// assistanceSolution picks the best assistance route by eligibility
// priority: FirstHome, then HomeAgain, then FHA with an explanation of
// exactly why the state programs are out of reach.
func (d *Detector) assistanceSolution(p models.Profile) models.Solution {
	rows, _ := d.matcher.Match(p)
	byID := make(map[models.ProgramID]models.ProgramEligibility, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	if row := byID[models.ProgramFirstHome]; row.Eligible {
		return models.Solution{
			Type:        models.SolutionDPAPrograms,
			Description: fmt.Sprintf("Utah Housing FirstHome can cover your down payment: %s", row.Benefit),
			Impact:      "You may need far less cash than you think",
			Action:      "Apply for FirstHome",
		}
	}
	if row := byID[models.ProgramHomeAgain]; row.Eligible {
		return models.Solution{
			Type:        models.SolutionDPAPrograms,
			Description: fmt.Sprintf("Utah Housing HomeAgain can cover your down payment: %s", row.Benefit),
			Impact:      "You may need far less cash than you think",
			Action:      "Apply for HomeAgain",
		}
	}

	return models.Solution{
		Type:        models.SolutionDPAPrograms,
		Description: fmt.Sprintf("State assistance is out of reach right now (%s), but FHA keeps the cash needed at 3.5%% of the price", d.assistanceBarrier(p)),
		Impact:      "FHA remains the lowest-cash conventional route",
		Action:      "Ask about FHA",
	}
}

// assistanceBarrier names every reason the state DPA programs are
// unavailable. Both the income and credit barriers are cited when both
// apply.
func (d *Detector) assistanceBarrier(p models.Profile) string {
	credit := programs.DefaultCreditEstimate
	if p.CreditScore != nil {
		credit = *p.CreditScore
	}

	overIncome := p.AnnualIncome > d.matcher.IncomeLimit()
	underCredit := credit < d.matcher.MinCredit()

	switch {
	case overIncome && underCredit:
		return fmt.Sprintf("income above %s and credit below %d", format.CurrencyWhole(d.matcher.IncomeLimit()), d.matcher.MinCredit())
	case overIncome:
		return fmt.Sprintf("income above %s", format.CurrencyWhole(d.matcher.IncomeLimit()))
	case underCredit:
		return fmt.Sprintf("credit below %d", d.matcher.MinCredit())
	default:
		return "program requirements not met"
	}
}

func (d *Detector) poorCredit(p models.Profile, credit int) *models.Blocker {
	severity := models.SeveritySignificant
	if credit < fhaMinCredit {
		severity = models.SeverityCritical
	}

	blocker := &models.Blocker{
		Type:        models.BlockerCredit,
		Severity:    severity,
		Headline:    "Your credit score is holding you back",
		Subheadline: "Most loan programs price from the credit score; this is the single biggest lever you control.",
		Current:     fmt.Sprintf("%d", credit),
		Target:      fmt.Sprintf("%d+", conventionalMinCredit),
	}

	if credit >= fhaMinCredit {
		blocker.Solutions = append(blocker.Solutions, models.Solution{
			Type:        models.SolutionCombination,
			Description: fmt.Sprintf("You already clear FHA's %d minimum, so buying today is possible", fhaMinCredit),
			Impact:      "No waiting required if the rest of your profile holds",
			Action:      "Ask about FHA",
		})
	}

	blocker.Solutions = append(blocker.Solutions, d.creditImprovement(p))
	return blocker
}

func (d *Detector) fairCredit(p models.Profile, credit int) *models.Blocker {
	blocker := &models.Blocker{
		Type:        models.BlockerCredit,
		Severity:    models.SeverityMinor,
		Headline:    "A modest credit bump would open more doors",
		Subheadline: "You qualify today; a higher score mostly buys you cheaper money and assistance eligibility.",
		Current:     fmt.Sprintf("%d", credit),
		Target:      fmt.Sprintf("%d+", d.matcher.MinCredit()),
	}

	blocker.Solutions = append(blocker.Solutions, models.Solution{
		Type:        models.SolutionCombination,
		Description: fmt.Sprintf("You already qualify for a conventional loan (%d minimum)", conventionalMinCredit),
		Impact:      "Nothing blocks you from starting now",
		Action:      "Get pre-approved",
	})
	blocker.Solutions = append(blocker.Solutions, d.creditImprovement(p))
	return blocker
}

// creditImprovement frames the payoff of a higher score: assistance value
// when income-eligible, better rates otherwise.
func (d *Detector) creditImprovement(p models.Profile) models.Solution {
	target := d.matcher.MinCredit()
	if p.AnnualIncome <= d.matcher.IncomeLimit() {
		value := p.TargetPrice * 0.06
		return models.Solution{
			Type:        models.SolutionImproveCredit,
			Description: fmt.Sprintf("Reaching %d unlocks state down payment assistance worth up to %s on this price", target, format.Currency(value)),
			Impact:      fmt.Sprintf("Up to %s toward your down payment", format.Currency(value)),
			Action:      "Work on your credit",
			Detail:      models.CreditImprovement{TargetScore: target, AssistanceValue: round2(value)},
		}
	}
	return models.Solution{
		Type:        models.SolutionImproveCredit,
		Description: fmt.Sprintf("Reaching %d earns meaningfully better rates and lower mortgage insurance", target),
		Impact:      "Lower payment for the life of the loan",
		Action:      "Work on your credit",
		Detail:      models.CreditImprovement{TargetScore: target},
	}
}

func fhaEligible(credit *int) bool {
	if credit == nil {
		return programs.DefaultCreditEstimate >= fhaMinCredit
	}
	return *credit >= fhaMinCredit
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
