package movies

import (
	"github.com/imadgeboyega/twogether-backend/internal/recommend"
)

const (
	genreWeight    = 40.0
	ratingBonus    = 20.0
	durationBonus  = 20.0
	streamingBonus = 20.0
	moodGenreBonus = 5.0
)

// CalculateScore scores one movie against both profiles. The returned score
// is clamped to [0, 100]; factors hold the raw terms.
func CalculateScore(movie Movie, user, partner Preferences, rctx *recommend.Context) (int, ScoreFactors) {
	factors := ScoreFactors{
		Genre:     genreScore(movie.Genres, user.FavoriteGenres, partner.FavoriteGenres),
		Rating:    ratingScore(movie.Rating, user.PreferredRating, partner.PreferredRating),
		Duration:  durationScore(BucketFor(movie.Duration), user.PreferredDuration, partner.PreferredDuration),
		Streaming: streamingScore(movie.StreamingAvailability, user.StreamingServices, partner.StreamingServices),
	}

	if moods := rctx.CoupleMoods(); len(moods) > 0 {
		factors.Mood = float64(recommend.MoodGenres.CountMatches(movie.Genres, moods...)) * moodGenreBonus
	}

	return recommend.Clamp(factors.Total()), factors
}

// genreScore weights the share of the movie's genres that either partner
// lists as a favorite. Dislikes do not subtract here.
func genreScore(genres, userFavorites, partnerFavorites []string) float64 {
	if len(genres) == 0 {
		return 0
	}
	matched := 0
	for _, genre := range genres {
		if recommend.Contains(userFavorites, genre) || recommend.Contains(partnerFavorites, genre) {
			matched++
		}
	}
	return float64(matched) / float64(len(genres)) * genreWeight
}

func ratingScore(rating, userPref, partnerPref Rating) float64 {
	accepts := func(pref Rating) bool { return pref == RatingAny || pref == rating }
	if accepts(userPref) && accepts(partnerPref) {
		return ratingBonus
	}
	return 0
}

func durationScore(bucket, userPref, partnerPref DurationBucket) float64 {
	accepts := func(pref DurationBucket) bool { return pref == DurationAny || pref == bucket }
	if accepts(userPref) && accepts(partnerPref) {
		return durationBonus
	}
	return 0
}

// streamingScore pays out when a service both partners subscribe to carries
// the movie as part of the subscription.
func streamingScore(availability []StreamingAvailability, userServices, partnerServices []StreamingService) float64 {
	shared := sharedSubscriptions(userServices, partnerServices)
	for _, offer := range availability {
		if offer.Type == AvailabilitySubscription && shared[offer.ServiceID] {
			return streamingBonus
		}
	}
	return 0
}

func sharedSubscriptions(userServices, partnerServices []StreamingService) map[string]bool {
	partner := make(map[string]bool, len(partnerServices))
	for _, s := range partnerServices {
		if s.IsSubscribed {
			partner[s.ID] = true
		}
	}
	shared := make(map[string]bool)
	for _, s := range userServices {
		if s.IsSubscribed && partner[s.ID] {
			shared[s.ID] = true
		}
	}
	return shared
}
