package movies

// Rating is an MPAA content rating, or "any" in a preference profile
type Rating string

const (
	RatingG    Rating = "G"
	RatingPG   Rating = "PG"
	RatingPG13 Rating = "PG-13"
	RatingR    Rating = "R"
	RatingNC17 Rating = "NC-17"
	RatingAny  Rating = "any"
)

// DurationBucket groups runtimes: short < 90, medium 90-150, long > 150 minutes
type DurationBucket string

const (
	DurationShort  DurationBucket = "short"
	DurationMedium DurationBucket = "medium"
	DurationLong   DurationBucket = "long"
	DurationAny    DurationBucket = "any"
)

// AvailabilityType is how a service offers a title
type AvailabilityType string

const (
	AvailabilityFree         AvailabilityType = "free"
	AvailabilitySubscription AvailabilityType = "subscription"
	AvailabilityRent         AvailabilityType = "rent"
	AvailabilityBuy          AvailabilityType = "buy"
)

type StreamingService struct {
	ID           string `json:"id" validate:"required"`
	Name         string `json:"name"`
	IsSubscribed bool   `json:"is_subscribed"`
	Logo         string `json:"logo,omitempty"`
}

type StreamingAvailability struct {
	ServiceID string           `json:"service"`
	Type      AvailabilityType `json:"type"`
	Price     float64          `json:"price,omitempty"`
	URL       string           `json:"url,omitempty"`
}

type Snack struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"` // sweet, salty, spicy, healthy
	Description string   `json:"description,omitempty"`
	Allergens   []string `json:"allergens"`
	Image       string   `json:"image,omitempty"`
	Recipe      string   `json:"recipe,omitempty"`
}

type Movie struct {
	ID                    string                  `json:"id"`
	Title                 string                  `json:"title"`
	Genres                []string                `json:"genres"`
	Rating                Rating                  `json:"rating"`
	Duration              int                     `json:"duration"` // minutes
	Description           string                  `json:"description"`
	Poster                string                  `json:"poster,omitempty"`
	Trailer               string                  `json:"trailer,omitempty"`
	ReleaseYear           int                     `json:"release_year"`
	IMDbRating            float64                 `json:"imdb_rating,omitempty"`
	StreamingAvailability []StreamingAvailability `json:"streaming_availability"`
	RecommendedSnacks     []string                `json:"recommended_snacks,omitempty"`

	// Set only on scored copies
	MatchScore *int          `json:"match_score,omitempty"`
	Factors    *ScoreFactors `json:"factors,omitempty"`
}

type SnackPreferences struct {
	Sweet     bool     `json:"sweet"`
	Salty     bool     `json:"salty"`
	Spicy     bool     `json:"spicy"`
	Healthy   bool     `json:"healthy"`
	Allergies []string `json:"allergies"`
}

// Preferences is one partner's movie profile
type Preferences struct {
	FavoriteGenres    []string           `json:"favorite_genres"`
	DislikedGenres    []string           `json:"disliked_genres"`
	PreferredRating   Rating             `json:"preferred_rating" validate:"omitempty,oneof=G PG PG-13 R NC-17 any"`
	PreferredDuration DurationBucket     `json:"preferred_duration" validate:"omitempty,oneof=short medium long any"`
	StreamingServices []StreamingService `json:"streaming_services" validate:"dive"`
	SnackPreferences  SnackPreferences   `json:"snack_preferences"`
}

// ScoreFactors breaks a movie's match score down by term
type ScoreFactors struct {
	Genre     float64 `json:"genre"`
	Rating    float64 `json:"rating"`
	Duration  float64 `json:"duration"`
	Streaming float64 `json:"streaming"`
	Mood      float64 `json:"mood"`
}

// Total is the raw, unclamped sum of all terms
func (f ScoreFactors) Total() float64 {
	return f.Genre + f.Rating + f.Duration + f.Streaming + f.Mood
}

// Catalog is the seed data for this domain
type Catalog struct {
	StreamingServices []StreamingService `json:"streaming_services"`
	Snacks            []Snack            `json:"snacks"`
	Movies            []Movie            `json:"movies"`
}

// BucketFor returns the duration bucket of a runtime in minutes
func BucketFor(minutes int) DurationBucket {
	switch {
	case minutes < 90:
		return DurationShort
	case minutes <= 150:
		return DurationMedium
	default:
		return DurationLong
	}
}
