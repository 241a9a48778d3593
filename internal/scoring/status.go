package scoring

import "nestready/server/internal/models"

// statusTier fixes the display color and timeline for one readiness tier.
type statusTier struct {
	MinScore int
	Status   models.Status
	Color    string
	Timeline string
}

// statusTiers is ordered highest first; the first tier whose MinScore the
// total reaches wins. Status, color, and timeline are pure functions of
// the total score.
var statusTiers = []statusTier{
	{85, models.StatusReadyNow, "#22c55e", "0-3 months"},
	{70, models.StatusAlmostReady, "#84cc16", "1-3 months"},
	{55, models.StatusGettingClose, "#eab308", "3-6 months"},
	{40, models.StatusBuilding, "#f97316", "6-12 months"},
	{25, models.StatusEarlyStage, "#ef4444", "1-2 years"},
	{0, models.StatusJustExploring, "#6b7280", "2+ years"},
}

// StatusFor maps a total score onto its readiness tier.
func StatusFor(total int) (models.Status, string, string) {
	for _, t := range statusTiers {
		if total >= t.MinScore {
			return t.Status, t.Color, t.Timeline
		}
	}
	last := statusTiers[len(statusTiers)-1]
	return last.Status, last.Color, last.Timeline
}
