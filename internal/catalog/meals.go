package catalog

func builtinMeals() map[Diet][]Meal {
	return map[Diet][]Meal{
		DietVeg: {
			{
				Name:        "Vegetable Stir Fry",
				Description: "Fresh seasonal vegetables stir-fried with garlic, ginger, and light soy sauce. Low calorie, high fiber.",
				Emoji:       "🥗",
				Diet:        DietVeg,
				Calories:    180,
				Plans:       []PlanTag{PlanWeightLoss, PlanFatLoss},
				Allergens:   []string{"soy"},
			},
			{
				Name:        "Chana Masala",
				Description: "Spiced chickpeas cooked in a tangy tomato-based gravy, rich in protein. Perfect for muscle building.",
				Emoji:       "🍲",
				Diet:        DietVeg,
				Calories:    350,
				Plans:       []PlanTag{PlanMuscleBuilding, PlanWeightGain},
			},
			{
				Name:        "Paneer Tikka",
				Description: "Marinated cottage cheese cubes grilled to perfection. High protein, moderate calories.",
				Emoji:       "🍢",
				Diet:        DietVeg,
				Calories:    320,
				Plans:       []PlanTag{PlanMuscleBuilding, PlanWeightGain, PlanFatLoss},
				Allergens:   []string{"dairy"},
			},
			{
				Name:        "Vegetable Biryani",
				Description: "Aromatic basmati rice cooked with mixed vegetables, spices, and herbs. A complete meal packed with nutrients.",
				Emoji:       "🍛",
				Diet:        DietVeg,
				Calories:    450,
				Plans:       []PlanTag{PlanWeightGain, PlanMuscleBuilding},
			},
			{
				Name:        "Dal Makhani",
				Description: "Creamy black lentils cooked with butter and spices. High protein, good for muscle building.",
				Emoji:       "🥘",
				Diet:        DietVeg,
				Calories:    280,
				Plans:       []PlanTag{PlanMuscleBuilding, PlanWeightGain},
				Allergens:   []string{"dairy"},
			},
			{
				Name:        "Vegetable Pulao",
				Description: "Fragrant rice cooked with vegetables and whole spices. Balanced meal for weight maintenance.",
				Emoji:       "🍚",
				Diet:        DietVeg,
				Calories:    380,
				Plans:       []PlanTag{PlanWeightGain, PlanMuscleBuilding},
			},
			{
				Name:        "Green Salad Bowl",
				Description: "Fresh mixed greens with vegetables, nuts, and light dressing. Perfect for weight loss.",
				Emoji:       "🥬",
				Diet:        DietVeg,
				Calories:    150,
				Plans:       []PlanTag{PlanWeightLoss, PlanFatLoss},
				Allergens:   []string{"nuts"},
			},
		},
		DietNonVeg: {
			{
				Name:        "Grilled Chicken Breast",
				Description: "Tender chicken breast marinated in herbs and spices, grilled to perfection. High in protein, low in fat.",
				Emoji:       "🍗",
				Diet:        DietNonVeg,
				Calories:    250,
				Plans:       []PlanTag{PlanWeightLoss, PlanFatLoss, PlanMuscleBuilding},
			},
			{
				Name:        "Prawn Stir Fry",
				Description: "Fresh prawns stir-fried with vegetables, garlic, and ginger in a light sauce. Low calorie, high protein.",
				Emoji:       "🦐",
				Diet:        DietNonVeg,
				Calories:    200,
				Plans:       []PlanTag{PlanWeightLoss, PlanFatLoss},
				Allergens:   []string{"shellfish"},
			},
			{
				Name:        "Fish Curry",
				Description: "Fresh fish cooked in a spicy coconut-based curry with aromatic spices. Omega-3 rich, good for fat loss.",
				Emoji:       "🐟",
				Diet:        DietNonVeg,
				Calories:    320,
				Plans:       []PlanTag{PlanFatLoss, PlanMuscleBuilding},
				Allergens:   []string{"fish"},
			},
			{
				Name:        "Mutton Biryani",
				Description: "Fragrant basmati rice layered with tender mutton, spices, and fried onions. High calorie for weight gain.",
				Emoji:       "🍛",
				Diet:        DietNonVeg,
				Calories:    550,
				Plans:       []PlanTag{PlanWeightGain, PlanMuscleBuilding},
			},
			{
				Name:        "Chicken Tikka Masala",
				Description: "Tender chicken pieces in a creamy tomato-based curry with aromatic spices. Protein-rich meal.",
				Emoji:       "🍗",
				Diet:        DietNonVeg,
				Calories:    420,
				Plans:       []PlanTag{PlanMuscleBuilding, PlanWeightGain},
				Allergens:   []string{"dairy"},
			},
			{
				Name:        "Egg Curry",
				Description: "Hard-boiled eggs in a spicy onion-tomato gravy, rich in protein. Perfect for muscle building.",
				Emoji:       "🥚",
				Diet:        DietNonVeg,
				Calories:    280,
				Plans:       []PlanTag{PlanMuscleBuilding, PlanWeightGain, PlanFatLoss},
				Allergens:   []string{"egg"},
			},
			{
				Name:        "Grilled Salmon",
				Description: "Omega-3 rich salmon grilled with herbs. Excellent for fat loss and muscle building.",
				Emoji:       "🐟",
				Diet:        DietNonVeg,
				Calories:    300,
				Plans:       []PlanTag{PlanFatLoss, PlanMuscleBuilding},
				Allergens:   []string{"fish"},
			},
		},
		DietVegan: {
			{
				Name:        "Chickpea Salad",
				Description: "Fresh chickpeas mixed with vegetables, herbs, and a lemon-olive oil dressing. Low calorie, high fiber.",
				Emoji:       "🥙",
				Diet:        DietVegan,
				Calories:    220,
				Plans:       []PlanTag{PlanWeightLoss, PlanFatLoss},
			},
			{
				Name:        "Lentil Curry",
				Description: "Protein-rich red lentils cooked with tomatoes, onions, and aromatic spices. Great for muscle building.",
				Emoji:       "🍲",
				Diet:        DietVegan,
				Calories:    250,
				Plans:       []PlanTag{PlanMuscleBuilding, PlanWeightGain, PlanFatLoss},
			},
			{
				Name:        "Quinoa Buddha Bowl",
				Description: "Nutritious quinoa topped with roasted vegetables, chickpeas, and tahini dressing. Complete protein source.",
				Emoji:       "🥗",
				Diet:        DietVegan,
				Calories:    380,
				Plans:       []PlanTag{PlanMuscleBuilding, PlanWeightGain},
				Allergens:   []string{"sesame"},
			},
			{
				Name:        "Vegan Pad Thai",
				Description: "Rice noodles stir-fried with tofu, vegetables, and a tangy tamarind sauce. High calorie for weight gain.",
				Emoji:       "🍜",
				Diet:        DietVegan,
				Calories:    420,
				Plans:       []PlanTag{PlanWeightGain, PlanMuscleBuilding},
				Allergens:   []string{"soy", "peanut"},
			},
			{
				Name:        "Tofu Scramble",
				Description: "Scrambled tofu with vegetables, turmeric, and spices - a protein-packed breakfast.",
				Emoji:       "🍳",
				Diet:        DietVegan,
				Calories:    200,
				Plans:       []PlanTag{PlanWeightLoss, PlanFatLoss, PlanMuscleBuilding},
				Allergens:   []string{"soy"},
			},
			{
				Name:        "Vegan Pasta",
				Description: "Whole wheat pasta with marinara sauce, vegetables, and nutritional yeast. Good for weight gain.",
				Emoji:       "🍝",
				Diet:        DietVegan,
				Calories:    350,
				Plans:       []PlanTag{PlanWeightGain, PlanMuscleBuilding},
				Allergens:   []string{"gluten"},
			},
			{
				Name:        "Green Smoothie Bowl",
				Description: "Nutrient-dense smoothie bowl with fruits, greens, and plant-based protein. Low calorie option.",
				Emoji:       "🥤",
				Diet:        DietVegan,
				Calories:    180,
				Plans:       []PlanTag{PlanWeightLoss, PlanFatLoss},
			},
		},
	}
}
