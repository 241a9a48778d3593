package models

// ScoreBreakdown holds the named point buckets behind the headline score.
// Employment is fixed at 12 and Penalty at 0 by the current intake flow;
// both stay in the output shape as extension points.
type ScoreBreakdown struct {
	Credit      int `json:"credit"`
	DTI         int `json:"dti"`
	DownPayment int `json:"down_payment"`
	Employment  int `json:"employment"`
	Reserves    int `json:"reserves"`
	Bonus       int `json:"bonus"`
	Penalty     int `json:"penalty"`
}

// Status is the readiness tier derived from the total score.
type Status string

const (
	StatusReadyNow      Status = "READY_NOW"
	StatusAlmostReady   Status = "ALMOST_READY"
	StatusGettingClose  Status = "GETTING_CLOSE"
	StatusBuilding      Status = "BUILDING"
	StatusEarlyStage    Status = "EARLY_STAGE"
	StatusJustExploring Status = "JUST_EXPLORING"
)

// GapFactor identifies the underperforming dimension a Gap describes.
type GapFactor string

const (
	GapCredit      GapFactor = "credit"
	GapDownPayment GapFactor = "down_payment"
	GapDTI         GapFactor = "dti"
)

// GapSeverity grades how far below par the factor sits.
type GapSeverity string

const (
	GapSeverityHigh   GapSeverity = "high"
	GapSeverityMedium GapSeverity = "medium"
	GapSeverityLow    GapSeverity = "low"
)

// Gap is one underperforming factor with the points it costs and the
// realistic near-term gain available.
type Gap struct {
	Factor         GapFactor   `json:"factor"`
	Severity       GapSeverity `json:"severity"`
	Current        string      `json:"current"`
	Target         string      `json:"target"`
	ActionRequired string      `json:"action_required"`
	PointsLost     int         `json:"points_lost"`
	PotentialGain  int         `json:"potential_gain"`
}

// Recommendation is the user-facing advice generated for one Gap.
type Recommendation struct {
	Factor      GapFactor `json:"factor"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Impact      string    `json:"impact"`
}

// ProgramID identifies one catalog loan or assistance program.
type ProgramID string

const (
	ProgramVA           ProgramID = "va"
	ProgramFHA          ProgramID = "fha"
	ProgramConventional ProgramID = "conventional"
	ProgramFirstHome    ProgramID = "utah_firsthome"
	ProgramHomeAgain    ProgramID = "utah_homeagain"
)

// ProgramEligibility is one catalog row evaluated against the profile.
type ProgramEligibility struct {
	ID       ProgramID `json:"id"`
	Name     string    `json:"name"`
	Eligible bool      `json:"eligible"`
	Reason   string    `json:"reason"`
	Benefit  string    `json:"benefit"`
}

// ScoreResult is the aggregate produced by one evaluation.
type ScoreResult struct {
	Total       int            `json:"total"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
	Status      Status         `json:"status"`
	StatusColor string         `json:"status_color"`
	Timeline    string         `json:"timeline"`

	Profile        Profile `json:"profile"`
	MonthlyPayment float64 `json:"monthly_payment"`
	DTIPercent     float64 `json:"dti_percent"`

	Programs         []ProgramEligibility `json:"programs"`
	EligiblePrograms []ProgramID          `json:"eligible_programs"`
	Gaps             []Gap                `json:"gaps"`
	Recommendations  []Recommendation     `json:"recommendations"`

	PrimaryBlocker *Blocker             `json:"primary_blocker,omitempty"`
	Affordability  *AffordabilityResult `json:"affordability,omitempty"`
	SweetSpot      *SweetSpot           `json:"sweet_spot,omitempty"`
	PathToGoal     *PathToGoal          `json:"path_to_goal,omitempty"`
}
