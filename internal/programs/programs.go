// Package programs evaluates the fixed catalog of loan and assistance
// programs against a resolved profile. Every program is checked
// independently; eligibility for one never excludes another.
package programs

import (
	"fmt"

	"nestready/server/config"
	"nestready/server/internal/format"
	"nestready/server/internal/models"
)

// DefaultCreditEstimate stands in for an unknown credit score during
// program matching only; the scorer keeps its own neutral handling.
const DefaultCreditEstimate = 650

// Thresholds for the national programs.
const (
	fhaMinCredit          = 580
	conventionalMinCredit = 620
)

// Matcher evaluates the program catalog with the configured DPA limits.
type Matcher struct {
	dpaIncomeLimit float64
	dpaMinCredit   int
}

// NewMatcher creates a Matcher from configuration.
func NewMatcher(cfg *config.Config) *Matcher {
	return &Matcher{
		dpaIncomeLimit: cfg.Programs.DPAIncomeLimit,
		dpaMinCredit:   cfg.Programs.DPAMinCredit,
	}
}

// IncomeLimit returns the DPA household income ceiling in effect.
func (m *Matcher) IncomeLimit() float64 {
	return m.dpaIncomeLimit
}

// MinCredit returns the DPA minimum credit score in effect.
func (m *Matcher) MinCredit() int {
	return m.dpaMinCredit
}

// creditOrDefault resolves an unknown score to the matching estimate.
func creditOrDefault(score *int) int {
	if score == nil {
		return DefaultCreditEstimate
	}
	return *score
}

// Match evaluates every catalog program and returns the full detail rows
// in fixed catalog order plus the short list of eligible program IDs.
func (m *Matcher) Match(p models.Profile) ([]models.ProgramEligibility, []models.ProgramID) {
	credit := creditOrDefault(p.CreditScore)
	dpaBenefit := fmt.Sprintf("Up to 6%% of the price (%s) toward down payment and closing costs", format.Currency(p.TargetPrice*0.06))

	rows := []models.ProgramEligibility{
		m.va(p),
		m.fha(credit),
		m.conventional(credit),
		m.firstHome(p, credit, dpaBenefit),
		m.homeAgain(p, credit, dpaBenefit),
	}

	var eligible []models.ProgramID
	for _, row := range rows {
		if row.Eligible {
			eligible = append(eligible, row.ID)
		}
	}
	return rows, eligible
}

func (m *Matcher) va(p models.Profile) models.ProgramEligibility {
	row := models.ProgramEligibility{
		ID:      models.ProgramVA,
		Name:    "VA Loan",
		Benefit: "0% down, no PMI",
	}
	if p.VeteranStatus.QualifiesForVA() {
		row.Eligible = true
		row.Reason = "Qualifying military service"
	} else {
		row.Reason = "Requires qualifying military service"
	}
	return row
}

func (m *Matcher) fha(credit int) models.ProgramEligibility {
	row := models.ProgramEligibility{
		ID:      models.ProgramFHA,
		Name:    "FHA Loan",
		Benefit: "3.5% down with flexible credit requirements",
	}
	if credit >= fhaMinCredit {
		row.Eligible = true
		row.Reason = fmt.Sprintf("Credit score %d meets the %d minimum", credit, fhaMinCredit)
	} else {
		row.Reason = fmt.Sprintf("Credit score %d is below the %d minimum", credit, fhaMinCredit)
	}
	return row
}

func (m *Matcher) conventional(credit int) models.ProgramEligibility {
	row := models.ProgramEligibility{
		ID:      models.ProgramConventional,
		Name:    "Conventional Loan",
		Benefit: "As little as 3% down with good credit",
	}
	if credit >= conventionalMinCredit {
		row.Eligible = true
		row.Reason = fmt.Sprintf("Credit score %d meets the %d minimum", credit, conventionalMinCredit)
	} else {
		row.Reason = fmt.Sprintf("Credit score %d is below the %d minimum", credit, conventionalMinCredit)
	}
	return row
}

func (m *Matcher) firstHome(p models.Profile, credit int, benefit string) models.ProgramEligibility {
	row := models.ProgramEligibility{
		ID:      models.ProgramFirstHome,
		Name:    "Utah Housing FirstHome",
		Benefit: benefit,
	}
	switch {
	case !p.FirstTimeBuyer:
		row.Reason = "First-time buyers only"
	case credit < m.dpaMinCredit:
		row.Reason = fmt.Sprintf("Credit score %d is below the %d minimum", credit, m.dpaMinCredit)
	case p.AnnualIncome > m.dpaIncomeLimit:
		row.Reason = fmt.Sprintf("Household income exceeds the %s limit", format.CurrencyWhole(m.dpaIncomeLimit))
	default:
		row.Eligible = true
		row.Reason = "First-time buyer within the credit and income limits"
	}
	return row
}

func (m *Matcher) homeAgain(p models.Profile, credit int, benefit string) models.ProgramEligibility {
	row := models.ProgramEligibility{
		ID:      models.ProgramHomeAgain,
		Name:    "Utah Housing HomeAgain",
		Benefit: benefit,
	}
	switch {
	case credit < m.dpaMinCredit:
		row.Reason = fmt.Sprintf("Credit score %d is below the %d minimum", credit, m.dpaMinCredit)
	case p.AnnualIncome > m.dpaIncomeLimit:
		row.Reason = fmt.Sprintf("Household income exceeds the %s limit", format.CurrencyWhole(m.dpaIncomeLimit))
	default:
		row.Eligible = true
		row.Reason = "Within the credit and income limits; no first-time requirement"
	}
	return row
}
