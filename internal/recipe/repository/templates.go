package repository

import "github.com/salesavor/salesavor/internal/recipe/domain"

type pool struct {
	templates []domain.Recipe
}

func Provide() domain.Pool {
	return &pool{templates: buildTemplates()}
}

func (p *pool) Templates() []domain.Recipe {
	out := make([]domain.Recipe, len(p.templates))
	copy(out, p.templates)
	return out
}

func buildTemplates() []domain.Recipe {
	return []domain.Recipe{
		{
			Name:        "Hearty Beef and Potato Stew",
			Description: "A filling one-pot stew built around sale-priced ground beef and potatoes",
			Ingredients: []domain.Ingredient{
				{Name: "Ground Beef", Quantity: "1", Unit: "lb", EstimatedPrice: 4.99},
				{Name: "Potatoes", Quantity: "3", Unit: "medium", EstimatedPrice: 1.79},
				{Name: "Carrots", Quantity: "2", Unit: "each", EstimatedPrice: 0.99},
				{Name: "Onions", Quantity: "1", Unit: "medium", EstimatedPrice: 1.00},
				{Name: "Canned Tomatoes", Quantity: "1", Unit: "can", EstimatedPrice: 1.29},
			},
			Instructions: []string{
				"Brown the ground beef in a large pot over medium-high heat",
				"Add diced onions and cook until translucent",
				"Stir in chopped potatoes, carrots and canned tomatoes",
				"Cover with water, bring to a boil, then simmer for 30 minutes",
				"Season with salt and pepper before serving",
			},
			PrepTime:      15,
			CookTime:      40,
			Servings:      4,
			DietaryTags:   []string{},
			EstimatedCost: 10.06,
		},
		{
			Name:        "Lemon Garlic Chicken with Rice",
			Description: "Pan-seared chicken breast over fluffy rice with a bright lemon finish",
			Ingredients: []domain.Ingredient{
				{Name: "Chicken Breast", Quantity: "1", Unit: "lb", EstimatedPrice: 5.99},
				{Name: "Rice", Quantity: "2", Unit: "cups", EstimatedPrice: 1.50},
				{Name: "Garlic", Quantity: "3", Unit: "cloves", EstimatedPrice: 0.30},
				{Name: "Lemon", Quantity: "1", Unit: "each", EstimatedPrice: 0.79},
			},
			Instructions: []string{
				"Cook rice according to package directions",
				"Season chicken and sear in a hot pan until golden on both sides",
				"Add minced garlic and a squeeze of lemon, cook until chicken is done",
				"Slice chicken and serve over rice with pan juices",
			},
			PrepTime:      10,
			CookTime:      25,
			Servings:      4,
			DietaryTags:   []string{"gluten-free"},
			EstimatedCost: 8.58,
		},
		{
			Name:        "Pasta Primavera with Garden Vegetables",
			Description: "Sale-priced pasta tossed with bell peppers, tomatoes and carrots",
			Ingredients: []domain.Ingredient{
				{Name: "Pasta", Quantity: "1", Unit: "package", EstimatedPrice: 1.49},
				{Name: "Bell Peppers", Quantity: "2", Unit: "each", EstimatedPrice: 3.98},
				{Name: "Tomatoes", Quantity: "1", Unit: "lb", EstimatedPrice: 2.49},
				{Name: "Carrots", Quantity: "2", Unit: "each", EstimatedPrice: 0.99},
			},
			Instructions: []string{
				"Boil pasta until al dente, reserving a cup of pasta water",
				"Saute sliced peppers and carrots until just tender",
				"Add chopped tomatoes and cook down into a light sauce",
				"Toss pasta with the vegetables, loosening with pasta water as needed",
			},
			PrepTime:      10,
			CookTime:      20,
			Servings:      4,
			DietaryTags:   []string{"vegetarian"},
			EstimatedCost: 8.95,
		},
		{
			Name:        "Roasted Vegetable Rice Bowl",
			Description: "A plant-based bowl of roasted produce over seasoned rice",
			Ingredients: []domain.Ingredient{
				{Name: "Rice", Quantity: "2", Unit: "cups", EstimatedPrice: 1.50},
				{Name: "Bell Peppers", Quantity: "2", Unit: "each", EstimatedPrice: 3.98},
				{Name: "Carrots", Quantity: "3", Unit: "each", EstimatedPrice: 1.49},
				{Name: "Onions", Quantity: "1", Unit: "medium", EstimatedPrice: 1.00},
			},
			Instructions: []string{
				"Roast chopped peppers, carrots and onions at 425F for 25 minutes",
				"Cook rice according to package directions",
				"Pile the roasted vegetables over the rice",
				"Finish with olive oil, salt and pepper",
			},
			PrepTime:      15,
			CookTime:      30,
			Servings:      4,
			DietaryTags:   []string{"vegetarian", "vegan", "gluten-free"},
			EstimatedCost: 7.97,
		},
		{
			Name:        "Three Cheese Baked Pasta",
			Description: "A comforting baked pasta layered with a trio of melted cheeses",
			Ingredients: []domain.Ingredient{
				{Name: "Pasta", Quantity: "1", Unit: "package", EstimatedPrice: 1.49},
				{Name: "Canned Tomatoes", Quantity: "2", Unit: "cans", EstimatedPrice: 2.58},
				{Name: "Mixed Cheese", Quantity: "2", Unit: "cups", EstimatedPrice: 4.50},
			},
			Instructions: []string{
				"Boil pasta until just shy of al dente",
				"Mix pasta with crushed canned tomatoes and half the cheese",
				"Transfer to a baking dish and top with remaining cheese",
				"Bake at 375F until bubbling and golden, about 20 minutes",
			},
			PrepTime:      10,
			CookTime:      25,
			Servings:      4,
			DietaryTags:   []string{"vegetarian"},
			EstimatedCost: 8.57,
		},
		{
			Name:        "One-Pot Meat Lovers Chili",
			Description: "A thick chili that stretches sale-priced beef across two meals",
			Ingredients: []domain.Ingredient{
				{Name: "Ground Beef", Quantity: "1", Unit: "lb", EstimatedPrice: 4.99},
				{Name: "Onions", Quantity: "1", Unit: "medium", EstimatedPrice: 1.00},
				{Name: "Canned Tomatoes", Quantity: "2", Unit: "cans", EstimatedPrice: 2.58},
				{Name: "Bell Peppers", Quantity: "1", Unit: "each", EstimatedPrice: 1.99},
			},
			Instructions: []string{
				"Brown the beef with diced onions in a heavy pot",
				"Add chopped peppers and cook for 5 minutes",
				"Stir in canned tomatoes and chili seasoning",
				"Simmer uncovered for 35 minutes, stirring occasionally",
			},
			PrepTime:      10,
			CookTime:      45,
			Servings:      6,
			DietaryTags:   []string{},
			EstimatedCost: 10.56,
		},
	}
}
