package catalog

import "github.com/savoria/storefront/internal/core/domain"

var seedCategories = []domain.Category{
	{
		ID:           "appetizers",
		Name:         "Appetizers",
		Description:  "Start your meal with these delicious appetizers",
		ItemCount:    3,
		IsActive:     true,
		DisplayOrder: 1,
		Slug:         "appetizers",
	},
	{
		ID:           "mains",
		Name:         "Main Courses",
		Description:  "Hearty and satisfying main dishes",
		ItemCount:    3,
		IsActive:     true,
		DisplayOrder: 2,
		Slug:         "mains",
	},
	{
		ID:           "desserts",
		Name:         "Desserts",
		Description:  "Sweet endings to your perfect meal",
		ItemCount:    2,
		IsActive:     true,
		DisplayOrder: 3,
		Slug:         "desserts",
	},
	{
		ID:           "beverages",
		Name:         "Beverages",
		Description:  "Refreshing drinks and specialty coffees",
		ItemCount:    2,
		IsActive:     true,
		DisplayOrder: 4,
		Slug:         "beverages",
	},
}

var seedItems = []domain.MenuItem{
	{
		ID:              "app-001",
		Name:            "Truffle Arancini",
		Description:     "Crispy risotto balls stuffed with mozzarella and truffle oil, served with marinara sauce",
		Price:           14.99,
		Category:        "appetizers",
		Dietary:         []domain.DietaryTag{domain.DietaryVegetarian},
		SpiceLevel:      1,
		IsAvailable:     true,
		PreparationTime: 12,
		Ingredients:     []string{"Arborio rice", "Mozzarella", "Truffle oil", "Parmesan", "Breadcrumbs"},
		Calories:        320,
		Rating:          4.8,
		ReviewCount:     156,
	},
	{
		ID:              "app-002",
		Name:            "Korean BBQ Wings",
		Description:     "Crispy chicken wings glazed with gochujang sauce, sesame seeds, and scallions",
		Price:           16.99,
		Category:        "appetizers",
		Dietary:         []domain.DietaryTag{},
		SpiceLevel:      3,
		IsAvailable:     true,
		PreparationTime: 15,
		Ingredients:     []string{"Chicken wings", "Gochujang", "Soy sauce", "Sesame oil", "Green onions"},
		Calories:        420,
		Rating:          4.7,
		ReviewCount:     203,
	},
	{
		ID:              "app-003",
		Name:            "Burrata Caprese",
		Description:     "Fresh burrata cheese with heirloom tomatoes, basil, and aged balsamic reduction",
		Price:           18.99,
		Category:        "appetizers",
		Dietary:         []domain.DietaryTag{domain.DietaryVegetarian, domain.DietaryGlutenFree},
		SpiceLevel:      1,
		IsAvailable:     true,
		PreparationTime: 8,
		Ingredients:     []string{"Burrata cheese", "Heirloom tomatoes", "Fresh basil", "Balsamic vinegar", "Extra virgin olive oil"},
		Calories:        280,
		Rating:          4.9,
		ReviewCount:     89,
	},
	{
		ID:              "main-001",
		Name:            "Wagyu Ribeye Steak",
		Description:     "12oz premium wagyu ribeye with roasted garlic mashed potatoes and seasonal vegetables",
		Price:           89.99,
		Category:        "mains",
		Dietary:         []domain.DietaryTag{domain.DietaryGlutenFree},
		SpiceLevel:      1,
		IsAvailable:     true,
		PreparationTime: 25,
		Ingredients:     []string{"Wagyu ribeye", "Yukon potatoes", "Roasted garlic", "Seasonal vegetables", "Herb butter"},
		Calories:        820,
		Rating:          4.9,
		ReviewCount:     312,
	},
	{
		ID:              "main-002",
		Name:            "Pan-Seared Salmon",
		Description:     "Atlantic salmon with quinoa pilaf, roasted asparagus, and lemon herb sauce",
		Price:           32.99,
		Category:        "mains",
		Dietary:         []domain.DietaryTag{domain.DietaryGlutenFree, domain.DietaryDairyFree},
		SpiceLevel:      1,
		IsAvailable:     true,
		PreparationTime: 18,
		Ingredients:     []string{"Atlantic salmon", "Quinoa", "Asparagus", "Lemon", "Fresh herbs"},
		Calories:        520,
		Rating:          4.6,
		ReviewCount:     178,
	},
	{
		ID:              "main-003",
		Name:            "Mushroom Risotto",
		Description:     "Creamy arborio rice with wild mushrooms, truffle oil, and parmesan cheese",
		Price:           26.99,
		Category:        "mains",
		Dietary:         []domain.DietaryTag{domain.DietaryVegetarian, domain.DietaryGlutenFree},
		SpiceLevel:      1,
		IsAvailable:     true,
		PreparationTime: 22,
		Ingredients:     []string{"Arborio rice", "Wild mushrooms", "Parmesan", "White wine", "Truffle oil"},
		Calories:        480,
		Rating:          4.7,
		ReviewCount:     145,
	},
	{
		ID:              "dess-001",
		Name:            "Chocolate Lava Cake",
		Description:     "Warm chocolate cake with molten center, vanilla ice cream, and berry compote",
		Price:           12.99,
		Category:        "desserts",
		Dietary:         []domain.DietaryTag{domain.DietaryVegetarian},
		IsAvailable:     true,
		PreparationTime: 14,
		Ingredients:     []string{"Dark chocolate", "Butter", "Eggs", "Sugar", "Vanilla ice cream"},
		Calories:        420,
		Rating:          4.8,
		ReviewCount:     267,
	},
	{
		ID:              "dess-002",
		Name:            "Tiramisu",
		Description:     "Classic Italian dessert with espresso-soaked ladyfingers and mascarpone cream",
		Price:           10.99,
		Category:        "desserts",
		Dietary:         []domain.DietaryTag{domain.DietaryVegetarian},
		IsAvailable:     true,
		PreparationTime: 5,
		Ingredients:     []string{"Mascarpone", "Ladyfingers", "Espresso", "Cocoa powder", "Eggs"},
		Calories:        380,
		Rating:          4.6,
		ReviewCount:     198,
	},
	{
		ID:              "bev-001",
		Name:            "Craft Cold Brew",
		Description:     "House-made cold brew coffee with optional vanilla or caramel syrup",
		Price:           5.99,
		Category:        "beverages",
		Dietary:         []domain.DietaryTag{domain.DietaryVegan, domain.DietaryGlutenFree},
		IsAvailable:     true,
		PreparationTime: 3,
		Ingredients:     []string{"Cold brew concentrate", "Filtered water", "Optional syrups"},
		Calories:        5,
		Rating:          4.5,
		ReviewCount:     89,
	},
	{
		ID:              "bev-002",
		Name:            "Fresh Fruit Smoothie",
		Description:     "Blend of seasonal fruits with coconut milk and honey",
		Price:           8.99,
		Category:        "beverages",
		Dietary:         []domain.DietaryTag{domain.DietaryVegetarian, domain.DietaryGlutenFree},
		IsAvailable:     true,
		PreparationTime: 4,
		Ingredients:     []string{"Seasonal fruits", "Coconut milk", "Honey", "Ice"},
		Calories:        180,
		Rating:          4.4,
		ReviewCount:     112,
	},
}
