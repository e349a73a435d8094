package virtual

import "github.com/imadgeboyega/twogether-backend/internal/recommend"

const (
	durationFit        = 25.0
	durationNear       = 10.0
	durationOverrun    = -15.0
	durationGrace      = 30 // minutes
	activityTypeBonus  = 20.0
	flexibleBonus      = 15.0
	inflexiblePenalty  = -10.0
	moodTypeBonus      = 15.0
	timeOfDayTypeBonus = 10.0
)

// ScoreVirtualDate scores a long-distance date for the couple. Timezone
// flexibility only matters when the partners live in different zones.
func ScoreVirtualDate(date VirtualDate, user, partner Preferences, rctx *recommend.Context) int {
	score := 0.0

	if rctx.HasAvailableTime() {
		switch {
		case date.Duration <= rctx.AvailableTime:
			score += durationFit
		case date.Duration <= rctx.AvailableTime+durationGrace:
			score += durationNear
		default:
			score += durationOverrun
		}
	}

	if recommend.Contains(user.ActivityTypes, date.Type) || recommend.Contains(partner.ActivityTypes, date.Type) {
		score += activityTypeBonus
	}

	if user.Timezone != partner.Timezone {
		if date.TimezoneFlexible {
			score += flexibleBonus
		} else {
			score += inflexiblePenalty
		}
	}

	if recommend.MoodVirtualTypes.Matches(date.Type, rctx.CoupleMoods()...) {
		score += moodTypeBonus
	}

	if rctx != nil && recommend.TimeOfDayVirtualTypes.Matches(date.Type, rctx.TimeOfDay) {
		score += timeOfDayTypeBonus
	}

	return recommend.Clamp(score)
}
