package models

// AffordabilityView is one (price, payment, DTI) triple at a given ceiling.
type AffordabilityView struct {
	Price          float64 `json:"price"`
	MonthlyPayment float64 `json:"monthly_payment"`
	DTIPercent     float64 `json:"dti_percent"`
}

// AffordabilityResult summarizes what the profile can carry at the
// comfortable and stretch DTI ceilings, alongside the stated target.
type AffordabilityResult struct {
	Comfortable AffordabilityView `json:"comfortable"`
	Stretch     AffordabilityView `json:"stretch"`
	AtTarget    AffordabilityView `json:"at_target"`
	AnnualRate  float64           `json:"annual_rate"`
}

// SweetSpotDiff is the structured delta between the stated target and the
// recommended price.
type SweetSpotDiff struct {
	PriceDelta   float64 `json:"price_delta"`
	ScoreDelta   int     `json:"score_delta"`
	PaymentDelta float64 `json:"payment_delta"`
}

// SweetSpot is the recommended lender-sustainable price, never above the
// stated target, with the profile re-scored at that price.
type SweetSpot struct {
	RecommendedPrice float64       `json:"recommended_price"`
	Score            int           `json:"score"`
	Status           Status        `json:"status"`
	Timeline         string        `json:"timeline"`
	MonthlyPayment   float64       `json:"monthly_payment"`
	DTIPercent       float64       `json:"dti_percent"`
	Diff             SweetSpotDiff `json:"diff"`
}

// RequiredChangeType tags one change needed to reach the stated target.
type RequiredChangeType string

const (
	ChangeDebtReduction   RequiredChangeType = "debt_reduction"
	ChangeIncomeIncrease  RequiredChangeType = "income_increase"
	ChangeSavingsIncrease RequiredChangeType = "savings_increase"
)

// RequiredChange is one step on the path from the recommended price to the
// stated target.
type RequiredChange struct {
	Type        RequiredChangeType `json:"type"`
	Amount      float64            `json:"amount"`
	Description string             `json:"description"`
	Impact      string             `json:"impact"`
}

// PathToGoal lists the changes required to afford the stated target price,
// with a coarse timeline from the largest single change. Nil when the
// target is already within reach of the recommendation.
type PathToGoal struct {
	TargetPrice     float64          `json:"target_price"`
	RequiredChanges []RequiredChange `json:"required_changes"`
	Timeline        string           `json:"timeline"`
}
