package models

// VeteranStatus is the military-service category collected by the intake flow.
type VeteranStatus string

const (
	VeteranNone         VeteranStatus = "none"
	VeteranActive       VeteranStatus = "active"
	VeteranVeteran      VeteranStatus = "veteran"
	VeteranGuardReserve VeteranStatus = "guard-reserve"
	VeteranSpouse       VeteranStatus = "spouse"
)

// QualifiesForVA reports whether the status qualifies for VA-backed financing.
func (v VeteranStatus) QualifiesForVA() bool {
	switch v {
	case VeteranActive, VeteranVeteran, VeteranGuardReserve, VeteranSpouse:
		return true
	}
	return false
}

// ScoreInput is the raw categorical intake form. All range fields are
// free-form tokens ("500k-600k", "not-sure", ...); empty or unrecognized
// tokens resolve to documented defaults rather than failing.
type ScoreInput struct {
	CreditRange    string        `json:"credit_range"`
	IncomeRange    string        `json:"income_range"`
	PriceRange     string        `json:"price_range"`
	SavingsRange   string        `json:"savings_range"`
	DebtRange      string        `json:"debt_range"`
	FirstTimeBuyer bool          `json:"first_time_buyer"`
	VeteranStatus  VeteranStatus `json:"veteran_status"`
}

// ScoreValuesInput carries exact numeric values instead of range tokens,
// for precise what-if sliders. Optional co-borrower fields are merged
// before scoring: credit takes the lower of the two known scores, income
// and debts are summed.
type ScoreValuesInput struct {
	CreditScore    *int          `json:"credit_score"`
	AnnualIncome   float64       `json:"annual_income"`
	TargetPrice    float64       `json:"target_price"`
	CashSaved      float64       `json:"cash_saved"`
	MonthlyDebts   float64       `json:"monthly_debts"`
	FirstTimeBuyer bool          `json:"first_time_buyer"`
	VeteranStatus  VeteranStatus `json:"veteran_status"`

	CoBorrowerCreditScore  *int    `json:"co_borrower_credit_score,omitempty"`
	CoBorrowerAnnualIncome float64 `json:"co_borrower_annual_income,omitempty"`
	CoBorrowerMonthlyDebts float64 `json:"co_borrower_monthly_debts,omitempty"`
}

// Profile is the resolved numeric view of one applicant. CreditScore is nil
// when the applicant does not know their score; downstream consumers treat
// nil as "unknown", never as zero.
type Profile struct {
	CreditScore    *int          `json:"credit_score"`
	AnnualIncome   float64       `json:"annual_income"`
	MonthlyIncome  float64       `json:"monthly_income"`
	TargetPrice    float64       `json:"target_price"`
	CashSaved      float64       `json:"cash_saved"`
	MonthlyDebts   float64       `json:"monthly_debts"`
	FirstTimeBuyer bool          `json:"first_time_buyer"`
	VeteranStatus  VeteranStatus `json:"veteran_status"`
}
