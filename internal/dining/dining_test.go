package dining

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imadgeboyega/twogether-backend/internal/common/utils"
	"github.com/imadgeboyega/twogether-backend/internal/recommend"
)

var (
	downtown = recommend.Location{City: "New York", Latitude: 40.7128, Longitude: -74.0060}
	midtown  = recommend.Location{City: "New York", Latitude: 40.7549, Longitude: -73.9840}
)

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func testCatalog() Catalog {
	return Catalog{Restaurants: []Restaurant{
		{
			ID: "rest-1", Name: "Trattoria Luna", CuisineType: "Italian", PriceRange: PriceModerate,
			Atmosphere: []string{"romantic", "quiet"}, Rating: 4.5, Location: downtown,
			DietaryAccommodations: []string{"vegetarian options", "gluten-free pasta"},
			Menu: []MenuItem{
				{ID: "m1", Name: "Margherita Pizza", Description: "Wood fired", DietaryTags: []string{"vegetarian"}, Allergens: []string{"dairy", "gluten"}},
				{ID: "m2", Name: "Garden Salad", Description: "Seasonal greens", DietaryTags: []string{"vegan", "gluten-free"}},
				{ID: "m3", Name: "Chicken Parm", Description: "Breaded cutlet", Allergens: []string{"dairy"}},
				{ID: "m4", Name: "Mushroom Risotto", Description: "Arborio rice", DietaryTags: []string{"vegetarian", "gluten-free"}},
			},
			AvailableReservations: []ReservationSlot{
				{ID: "slot-1", Date: day(15), Time: "19:00", PartySize: 2, Available: true},
				{ID: "slot-2", Date: day(15), Time: "20:00", PartySize: 4, Available: true},
				{ID: "slot-3", Date: day(15), Time: "21:00", PartySize: 6, Available: false},
				{ID: "slot-4", Date: day(16), Time: "19:00", PartySize: 4, Available: true},
			},
		},
		{
			ID: "rest-2", Name: "Thai Garden", CuisineType: "Thai", PriceRange: PriceModerate,
			Atmosphere: []string{"casual"}, Rating: 4.0, Location: midtown,
		},
		{
			ID: "rest-3", Name: "Taco Spot", CuisineType: "Mexican", PriceRange: PriceModerate,
			Atmosphere: []string{"casual"}, Rating: 4.0, Location: midtown,
		},
	}}
}

func couple() (Preferences, Preferences) {
	user := Preferences{
		CuisineTypes:         []string{"Italian"},
		PriceRange:           PriceModerate,
		AtmospherePreference: "romantic",
		DietaryRestrictions:  []DietaryRestriction{{Type: "vegetarian"}},
		MaxDistance:          10,
	}
	partner := Preferences{
		CuisineTypes:         []string{"Italian"},
		DislikedCuisines:     []string{"Mexican"},
		PriceRange:           PriceModerate,
		AtmospherePreference: "quiet",
		DietaryRestrictions:  []DietaryRestriction{{Type: "gluten-free", Strict: true}},
		Allergies:            []string{"dairy"},
		MaxDistance:          5,
	}
	return user, partner
}

func newService() Service {
	return NewService(NewMemoryRepository(testCatalog()))
}

func TestCalculateScore_AllTerms(t *testing.T) {
	user, partner := couple()
	restaurant := testCatalog().Restaurants[0]

	score, factors, distance := CalculateScore(restaurant, user, partner, nil, nil)

	assert.Equal(t, 30.0, factors.Cuisine)
	assert.Equal(t, 25.0, factors.Price)
	assert.Equal(t, 20.0, factors.Atmosphere)
	assert.Equal(t, 15.0, factors.Dietary)
	assert.Equal(t, 9.0, factors.Rating)
	assert.Zero(t, factors.Distance)
	assert.Zero(t, factors.Mood)
	assert.Nil(t, distance)
	assert.Equal(t, 99, score)
}

func TestCalculateScore_MoodClamped(t *testing.T) {
	user, partner := couple()
	rctx := &recommend.Context{
		UserMood:    &recommend.MoodEntry{Mood: recommend.MoodRomantic},
		PartnerMood: &recommend.MoodEntry{Mood: recommend.MoodRomantic},
	}

	score, factors, _ := CalculateScore(testCatalog().Restaurants[0], user, partner, nil, rctx)

	assert.Equal(t, 10.0, factors.Mood)
	assert.Equal(t, 100, score)
}

func TestCalculateScore_MoodNeedsBothPartners(t *testing.T) {
	user, partner := couple()
	restaurant := testCatalog().Restaurants[0]

	for name, rctx := range map[string]*recommend.Context{
		"user only":    {UserMood: &recommend.MoodEntry{Mood: recommend.MoodRomantic}},
		"partner only": {PartnerMood: &recommend.MoodEntry{Mood: recommend.MoodRomantic}},
	} {
		t.Run(name, func(t *testing.T) {
			score, factors, _ := CalculateScore(restaurant, user, partner, nil, rctx)
			assert.Zero(t, factors.Mood)
			assert.Equal(t, 99, score)
		})
	}
}

func TestCalculateScore_Distance(t *testing.T) {
	user, partner := couple()
	restaurant := testCatalog().Restaurants[0]

	_, factors, distance := CalculateScore(restaurant, user, partner, &downtown, nil)
	require.NotNil(t, distance)
	assert.InDelta(t, 0, *distance, 1e-9)
	assert.InDelta(t, 10, factors.Distance, 1e-9)

	_, _, distance = CalculateScore(restaurant, user, partner, &midtown, nil)
	require.NotNil(t, distance)
	assert.InDelta(t, 3.1, *distance, 0.2)
}

func TestCuisineScore(t *testing.T) {
	tests := []struct {
		name    string
		user    Preferences
		partner Preferences
		want    float64
	}{
		{name: "both like", user: Preferences{CuisineTypes: []string{"Thai"}}, partner: Preferences{CuisineTypes: []string{"Thai"}}, want: 30},
		{name: "one likes", user: Preferences{CuisineTypes: []string{"Thai"}}, want: 15},
		{name: "neutral", want: 0},
		{name: "disliked", partner: Preferences{DislikedCuisines: []string{"Thai"}}, want: -50},
		{name: "liked and disliked", user: Preferences{CuisineTypes: []string{"Thai"}}, partner: Preferences{DislikedCuisines: []string{"Thai"}}, want: -35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cuisineScore("Thai", tt.user, tt.partner))
		})
	}
}

func TestPriceScore(t *testing.T) {
	assert.Equal(t, 25.0, priceScore(PriceModerate, PriceModerate, PriceModerate))
	assert.Equal(t, 17.0, priceScore(PriceModerate, PriceBudget, PriceUpscale))
	assert.Equal(t, 5.0, priceScore(PriceFineDining, PriceBudget, PriceModerate))
	assert.Equal(t, 1.0, priceScore(PriceFineDining, PriceBudget, PriceBudget))
}

func TestDietaryScore_DistinctRestrictions(t *testing.T) {
	veggie := Preferences{DietaryRestrictions: []DietaryRestriction{{Type: "vegetarian"}}}
	both := Preferences{DietaryRestrictions: []DietaryRestriction{{Type: "vegetarian"}, {Type: "gluten-free"}}}

	assert.Equal(t, 15.0, dietaryScore([]string{"vegetarian options"}, veggie, veggie))
	assert.Equal(t, 7.5, dietaryScore([]string{"vegetarian options"}, veggie, both))
	assert.Equal(t, 0.0, dietaryScore(nil, Preferences{}, Preferences{}))
}

func TestDistanceScore(t *testing.T) {
	assert.Equal(t, 7.5, distanceScore(2.5, 10))
	assert.Equal(t, 0.0, distanceScore(15, 10))
	assert.Equal(t, 0.0, distanceScore(1, 0))
}

func TestGetRecommendations_DislikedRanksBelow(t *testing.T) {
	user, partner := couple()

	ranked := newService().GetRecommendations(user, partner, nil, nil)

	require.Len(t, ranked, 3)
	assert.Equal(t, "rest-1", ranked[0].ID)
	assert.Equal(t, "rest-2", ranked[1].ID)
	assert.Equal(t, "rest-3", ranked[2].ID)
	assert.Equal(t, 33, *ranked[1].MatchScore)
	assert.Equal(t, 0, *ranked[2].MatchScore)
}

func TestGetRecommendations_DistanceOnCopiesOnly(t *testing.T) {
	user, partner := couple()
	svc := newService()

	ranked := svc.GetRecommendations(user, partner, &downtown, nil)
	for _, r := range ranked {
		assert.NotNil(t, r.Distance, r.ID)
	}

	stored, ok := svc.GetRestaurant("rest-1")
	require.True(t, ok)
	assert.Nil(t, stored.Distance)
	assert.Nil(t, stored.MatchScore)
}

func TestFilterMenu(t *testing.T) {
	user, partner := couple()

	items := newService().GetMenuRecommendations("rest-1", user, partner)

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
		require.NotNil(t, item.MatchesPreferences)
	}
	assert.Equal(t, []string{"m2", "m4", "m1", "m3"}, ids)
	assert.True(t, *items[0].MatchesPreferences)
	assert.True(t, *items[1].MatchesPreferences)
	assert.False(t, *items[2].MatchesPreferences)
	assert.False(t, *items[3].MatchesPreferences)

	assert.Empty(t, newService().GetMenuRecommendations("nope", user, partner))
}

func TestGetAvailableReservations(t *testing.T) {
	svc := newService()
	evening := time.Date(2024, time.January, 15, 18, 30, 0, 0, time.UTC)

	slots := svc.GetAvailableReservations("rest-1", evening, 3)
	require.Len(t, slots, 1)
	assert.Equal(t, "slot-2", slots[0].ID)

	slots = svc.GetAvailableReservations("rest-1", day(15), 2)
	assert.Len(t, slots, 2)

	assert.Empty(t, svc.GetAvailableReservations("rest-1", day(17), 2))
	assert.Empty(t, svc.GetAvailableReservations("nope", day(15), 2))
}

func TestReserve(t *testing.T) {
	svc := newService()

	slot, err := svc.Reserve("rest-1", "slot-2", 3)
	require.NoError(t, err)
	assert.False(t, slot.Available)
	assert.Equal(t, 3, slot.PartySize)

	_, err = svc.Reserve("rest-1", "slot-2", 4)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	stored, _ := svc.GetRestaurant("rest-1")
	assert.Equal(t, 3, stored.AvailableReservations[1].PartySize)
	assert.False(t, stored.AvailableReservations[1].Available)

	_, err = svc.Reserve("nope", "slot-1", 2)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	_, err = svc.Reserve("rest-1", "slot-99", 2)
	assert.ErrorIs(t, err, ErrSlotNotFound)

	_, err = svc.Reserve("rest-1", "slot-1", 0)
	assert.ErrorIs(t, err, ErrInvalidPartySize)
}

func TestMakeReservation_BookedSlotUnchanged(t *testing.T) {
	svc := newService()

	assert.False(t, svc.MakeReservation("rest-1", "slot-3", 2))

	stored, _ := svc.GetRestaurant("rest-1")
	assert.Equal(t, 6, stored.AvailableReservations[2].PartySize)

	assert.True(t, svc.MakeReservation("rest-1", "slot-1", 2))
	assert.False(t, svc.MakeReservation("rest-1", "slot-1", 2))
}

func TestRepository_IsolatedFromCatalog(t *testing.T) {
	catalog := testCatalog()
	repo := NewMemoryRepository(catalog)

	_, err := repo.Reserve("rest-1", "slot-1", 2)
	require.NoError(t, err)

	assert.True(t, catalog.Restaurants[0].AvailableReservations[0].Available)

	fresh := NewMemoryRepository(catalog)
	restaurant, _ := fresh.GetRestaurant("rest-1")
	assert.True(t, restaurant.AvailableReservations[0].Available)
}

func TestSearch(t *testing.T) {
	svc := newService()

	results := svc.Search("risotto")
	require.Len(t, results, 1)
	assert.Equal(t, "rest-1", results[0].ID)

	results = svc.Search("THAI")
	require.Len(t, results, 1)
	assert.Equal(t, "rest-2", results[0].ID)

	assert.Len(t, svc.Search(""), 3)
	assert.NotNil(t, svc.Search("sushi"))
	assert.Empty(t, svc.Search("sushi"))
}

func TestHandler_Reserve(t *testing.T) {
	router := mux.NewRouter()
	RegisterRoutes(router, NewHandler(newService()))

	book := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"party_size":2}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusCreated, book("/restaurants/rest-1/reservations/slot-1").Code)
	assert.Equal(t, http.StatusConflict, book("/restaurants/rest-1/reservations/slot-1").Code)
	assert.Equal(t, http.StatusNotFound, book("/restaurants/nope/reservations/slot-1").Code)
	assert.Equal(t, http.StatusNotFound, book("/restaurants/rest-1/reservations/slot-99").Code)
}

func TestHandler_GetReservations(t *testing.T) {
	router := mux.NewRouter()
	RegisterRoutes(router, NewHandler(newService()))

	req := httptest.NewRequest(http.MethodGet, "/restaurants/rest-1/reservations?date=2024-01-15&party_size=3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)

	req = httptest.NewRequest(http.MethodGet, "/restaurants/rest-1/reservations?date=15-01-2024", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
