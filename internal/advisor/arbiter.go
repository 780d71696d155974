package advisor

// Activity labels and icons for the recommendation banner.
const (
	ActivitySurf    = "Surf"
	ActivityPhoto   = "Sunrise Photos"
	ActivityCycle   = "Cycle"
	ActivitySleepIn = "Sleep In"

	iconSurf    = "🏄"
	iconPhoto   = "📷"
	iconCycle   = "🚴"
	iconSleepIn = "😴"
)

// sleepInThreshold: a winning score below this is not worth the alarm clock.
const sleepInThreshold = 4

// Recommendation is the arbiter's verdict. Score is the winner's numeric
// score, kept for testability; the rendering contract only needs the rest.
type Recommendation struct {
	Activity string `json:"activity"`
	Detail   string `json:"detail"`
	Icon     string `json:"icon"`
	Score    int    `json:"score"`
}

// Recommend ranks the three activities by score, breaking ties in input
// order (surf, photo, cycle), and overrides with a sleep-in verdict when
// even the best morning is a bad one.
func Recommend(surf SurfResult, photo PhotoResult, cycle CycleResult) Recommendation {
	candidates := []Recommendation{
		{Activity: ActivitySurf, Detail: surf.Details, Icon: iconSurf, Score: surf.Score},
		{Activity: ActivityPhoto, Detail: "find your spot", Icon: iconPhoto, Score: photo.Score},
		{Activity: ActivityCycle, Detail: cycle.DirectionText, Icon: iconCycle, Score: cycle.Score},
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > best.Score {
			best = c
		}
	}

	if best.Score < sleepInThreshold {
		return Recommendation{
			Activity: ActivitySleepIn,
			Detail:   "nothing worth waking up for",
			Icon:     iconSleepIn,
			Score:    best.Score,
		}
	}
	return best
}
