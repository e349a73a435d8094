package home

import "github.com/imadgeboyega/twogether-backend/internal/recommend"

// Kind names one of the stay-at-home catalogs
type Kind string

const (
	KindRecipes Kind = "recipes"
	KindGames   Kind = "games"
	KindDIY     Kind = "diy"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

var skillLevels = []SkillLevel{SkillBeginner, SkillIntermediate, SkillAdvanced}

type Ingredient struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Unit     string `json:"unit"`
	Optional bool   `json:"optional,omitempty"`
}

type NutritionInfo struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Fiber    int `json:"fiber"`
	Sugar    int `json:"sugar"`
}

type Recipe struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	Cuisine       string               `json:"cuisine"`
	Difficulty    recommend.Difficulty `json:"difficulty"`
	CookTime      int                  `json:"cook_time"` // minutes
	Servings      int                  `json:"servings"`
	Ingredients   []Ingredient         `json:"ingredients"`
	Instructions  []string             `json:"instructions"`
	DietaryTags   []string             `json:"dietary_tags"`
	Allergens     []string             `json:"allergens"`
	Image         string               `json:"image,omitempty"`
	NutritionInfo *NutritionInfo       `json:"nutrition_info,omitempty"`
	MatchScore    *int                 `json:"match_score,omitempty"`
}

type Game struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Type        string               `json:"type"`    // board, card, video, party, trivia
	Players     string               `json:"players"` // "2", "2-4", "2+"
	Duration    int                  `json:"duration"`
	Difficulty  recommend.Difficulty `json:"difficulty"`
	Description string               `json:"description"`
	Equipment   []string             `json:"equipment"`
	Platform    string               `json:"platform,omitempty"`
	AgeRating   string               `json:"age_rating,omitempty"`
	Image       string               `json:"image,omitempty"`
	MatchScore  *int                 `json:"match_score,omitempty"`
}

// Activity is a DIY or craft project
type Activity struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Duration      int        `json:"duration"`
	SkillLevel    SkillLevel `json:"skill_level"`
	Materials     []string   `json:"materials"`
	Instructions  []string   `json:"instructions,omitempty"`
	EstimatedCost float64    `json:"estimated_cost"`
	Image         string     `json:"image,omitempty"`
	MatchScore    *int       `json:"match_score,omitempty"`
}

type CookingPreferences struct {
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Allergies           []string `json:"allergies"`
}

type GamePreferences struct {
	GameTypes []string `json:"game_types" validate:"dive,oneof=board card video party trivia"`
}

type CraftPreferences struct {
	SkillLevel SkillLevel `json:"skill_level" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// Preferences is one partner's stay-at-home profile
type Preferences struct {
	Cooking CookingPreferences `json:"cooking"`
	Games   GamePreferences    `json:"games"`
	Craft   CraftPreferences   `json:"craft"`
}

// Catalog is the seed data for this domain
type Catalog struct {
	Recipes       []Recipe   `json:"recipes"`
	Games         []Game     `json:"games"`
	DIYActivities []Activity `json:"diy_activities"`
}
