package models

// BlockerType tags the single most urgent obstacle found by the detector.
type BlockerType string

const (
	BlockerDTI         BlockerType = "dti"
	BlockerDownPayment BlockerType = "down_payment"
	BlockerCredit      BlockerType = "credit"
)

// BlockerSeverity grades the urgency of the blocker.
type BlockerSeverity string

const (
	SeverityCritical    BlockerSeverity = "critical"
	SeveritySignificant BlockerSeverity = "significant"
	SeverityMinor       BlockerSeverity = "minor"
)

// Blocker is the single dominant obstacle and its remediation options.
// At most one is produced per evaluation; a nil Blocker means no single
// factor dominates.
type Blocker struct {
	Type        BlockerType     `json:"type"`
	Severity    BlockerSeverity `json:"severity"`
	Headline    string          `json:"headline"`
	Subheadline string          `json:"subheadline"`
	Current     string          `json:"current"`
	Target      string          `json:"target"`
	Solutions   []Solution      `json:"solutions"`
}

// SolutionType tags one remediation option.
type SolutionType string

const (
	SolutionAdjustPrice    SolutionType = "adjust_price"
	SolutionPayDownDebt    SolutionType = "pay_down_debt"
	SolutionIncreaseIncome SolutionType = "increase_income"
	SolutionSaveMore       SolutionType = "save_more"
	SolutionImproveCredit  SolutionType = "improve_credit"
	SolutionDPAPrograms    SolutionType = "dpa_programs"
	SolutionCombination    SolutionType = "combination"
)

// SolutionDetail is the variant-specific payload of a Solution. Each
// variant has its own struct so a price adjustment can never carry a
// debt-reduction amount. Payloads are marshal-only; the engine never
// decodes them.
type SolutionDetail interface {
	isSolutionDetail()
}

// PriceAdjustment proposes shopping at a different price point.
type PriceAdjustment struct {
	NewPrice   float64 `json:"new_price"`
	NewPayment float64 `json:"new_payment"`
}

// DebtReduction proposes paying down recurring monthly debt.
type DebtReduction struct {
	MonthlyAmount float64 `json:"monthly_amount"`
	TargetDTI     float64 `json:"target_dti"`
}

// IncomeIncrease proposes raising gross monthly income.
type IncomeIncrease struct {
	MonthlyAmount float64 `json:"monthly_amount"`
	TargetDTI     float64 `json:"target_dti"`
}

// SavingsPlan proposes saving toward a down-payment shortfall.
type SavingsPlan struct {
	Amount      float64 `json:"amount"`
	MonthlyRate float64 `json:"monthly_rate"`
	Months      int     `json:"months"`
}

// CreditImprovement proposes raising the credit score to a target tier.
type CreditImprovement struct {
	TargetScore     int     `json:"target_score"`
	AssistanceValue float64 `json:"assistance_value,omitempty"`
}

func (PriceAdjustment) isSolutionDetail()   {}
func (DebtReduction) isSolutionDetail()     {}
func (IncomeIncrease) isSolutionDetail()    {}
func (SavingsPlan) isSolutionDetail()       {}
func (CreditImprovement) isSolutionDetail() {}

// Solution is one concrete remediation option attached to a Blocker.
// Detail is nil for purely informational options (e.g. an FHA note).
type Solution struct {
	Type        SolutionType   `json:"type"`
	Description string         `json:"description"`
	Impact      string         `json:"impact"`
	Action      string         `json:"action"`
	Detail      SolutionDetail `json:"detail,omitempty"`
}
