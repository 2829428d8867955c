package domain

type DietaryTag string

const (
	DietaryVegetarian DietaryTag = "vegetarian"
	DietaryVegan      DietaryTag = "vegan"
	DietaryGlutenFree DietaryTag = "gluten-free"
	DietaryDairyFree  DietaryTag = "dairy-free"
	DietaryNutFree    DietaryTag = "nut-free"
)

// Category groups menu items for browsing. Catalog-seeded, read-only.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ItemCount    int    `json:"itemCount"`
	IsActive     bool   `json:"isActive"`
	DisplayOrder int    `json:"displayOrder"`
	Slug         string `json:"slug"`
}

// MenuItem is a catalog entry. Never mutated at runtime; cart lines carry
// their own copy taken at add time.
type MenuItem struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Price           float64      `json:"price"`
	Category        string       `json:"category"`
	Dietary         []DietaryTag `json:"dietary"`
	SpiceLevel      int          `json:"spiceLevel,omitempty"` // 1-5, 0 when not applicable
	IsAvailable     bool         `json:"isAvailable"`
	PreparationTime int          `json:"preparationTime"` // minutes
	Ingredients     []string     `json:"ingredients,omitempty"`
	Calories        int          `json:"calories,omitempty"`
	Rating          float64      `json:"rating,omitempty"`
	ReviewCount     int          `json:"reviewCount,omitempty"`
}

// HasDietary reports whether the item carries the given tag.
func (m MenuItem) HasDietary(tag DietaryTag) bool {
	for _, t := range m.Dietary {
		if t == tag {
			return true
		}
	}
	return false
}
