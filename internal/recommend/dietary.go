package recommend

const (
	Vegetarian = "vegetarian"
	Vegan      = "vegan"
)

// HasAllergen reports whether any allergen appears in either allergy list
func HasAllergen(allergens []string, allergies ...[]string) bool {
	for _, list := range allergies {
		for _, allergy := range list {
			if Contains(allergens, allergy) {
				return true
			}
		}
	}
	return false
}

// SatisfiesRestriction reports whether an item tagged with tags honors a
// single dietary restriction. A vegan tag also satisfies vegetarian; the
// reverse does not hold.
func SatisfiesRestriction(tags []string, restriction string) bool {
	if Contains(tags, restriction) {
		return true
	}
	return restriction == Vegetarian && Contains(tags, Vegan)
}

// SatisfiesRestrictions reports whether every restriction is honored.
// No restrictions is always satisfied.
func SatisfiesRestrictions(tags []string, restrictions []string) bool {
	for _, restriction := range restrictions {
		if !SatisfiesRestriction(tags, restriction) {
			return false
		}
	}
	return true
}
