package catalog

func builtinExercises() map[PlanTag][]Exercise {
	return map[PlanTag][]Exercise{
		PlanWeightLoss: {
			{
				Name:        "Cardio Running",
				Description: "Moderate to high-intensity running helps burn calories and improve cardiovascular health. Start with 20-30 minutes.",
				Emoji:       "🏃",
				Sets:        "N/A",
				Reps:        "N/A",
				Duration:    "20-45 minutes",
				Frequency:   "4-5 times/week",
			},
			{
				Name:        "HIIT Workout",
				Description: "High-Intensity Interval Training alternates between intense bursts and recovery periods. Very effective for weight loss.",
				Emoji:       "⚡",
				Sets:        "4-6 rounds",
				Reps:        "30-60 sec intervals",
				Duration:    "20-30 minutes",
				Frequency:   "3-4 times/week",
			},
			{
				Name:        "Cycling",
				Description: "Low-impact cardio exercise that burns calories while being gentle on joints. Great for beginners.",
				Emoji:       "🚴",
				Sets:        "N/A",
				Reps:        "N/A",
				Duration:    "30-60 minutes",
				Frequency:   "4-5 times/week",
			},
			{
				Name:        "Jump Rope",
				Description: "Simple yet effective cardio exercise that burns calories quickly. Can be done anywhere.",
				Emoji:       "🦘",
				Sets:        "5-10 sets",
				Reps:        "30-60 seconds",
				Duration:    "15-20 minutes",
				Frequency:   "5-6 times/week",
			},
			{
				Name:        "Swimming",
				Description: "Full-body workout that burns calories while being easy on joints. Excellent for weight loss.",
				Emoji:       "🏊",
				Sets:        "N/A",
				Reps:        "N/A",
				Duration:    "30-45 minutes",
				Frequency:   "3-4 times/week",
			},
			{
				Name:        "Bodyweight Circuit",
				Description: "Combination of push-ups, squats, lunges, and planks. No equipment needed, burns calories effectively.",
				Emoji:       "💪",
				Sets:        "3-4 rounds",
				Reps:        "10-15 each",
				Duration:    "20-30 minutes",
				Frequency:   "4-5 times/week",
			},
		},
		PlanWeightGain: {
			{
				Name:        "Compound Lifts",
				Description: "Squats, deadlifts, and bench presses work multiple muscle groups. Essential for building mass.",
				Emoji:       "🏋️",
				Sets:        "4-5 sets",
				Reps:        "6-10 reps",
				Duration:    "45-60 minutes",
				Frequency:   "3-4 times/week",
			},
			{
				Name:        "Progressive Overload",
				Description: "Gradually increase weight or reps over time. Key principle for muscle and weight gain.",
				Emoji:       "📈",
				Sets:        "3-5 sets",
				Reps:        "8-12 reps",
				Duration:    "60 minutes",
				Frequency:   "4-5 times/week",
			},
			{
				Name:        "Isolation Exercises",
				Description: "Target specific muscle groups with bicep curls, tricep extensions, and leg curls.",
				Emoji:       "🎯",
				Sets:        "3-4 sets",
				Reps:        "10-15 reps",
				Duration:    "30-45 minutes",
				Frequency:   "4-5 times/week",
			},
			{
				Name:        "Resistance Training",
				Description: "Use weights, resistance bands, or bodyweight to build muscle mass and strength.",
				Emoji:       "🏋️‍♀️",
				Sets:        "3-5 sets",
				Reps:        "8-12 reps",
				Duration:    "45-60 minutes",
				Frequency:   "4-5 times/week",
			},
			{
				Name:        "Full Body Workout",
				Description: "Work all major muscle groups in one session. Great for overall muscle development.",
				Emoji:       "🔥",
				Sets:        "3-4 sets",
				Reps:        "8-12 reps",
				Duration:    "60 minutes",
				Frequency:   "3-4 times/week",
			},
		},
		PlanFatLoss: {
			{
				Name:        "Strength Training",
				Description: "Build muscle to increase metabolism. More muscle means more calories burned at rest.",
				Emoji:       "💪",
				Sets:        "3-4 sets",
				Reps:        "8-12 reps",
				Duration:    "45 minutes",
				Frequency:   "3-4 times/week",
			},
			{
				Name:        "Circuit Training",
				Description: "Combine strength and cardio exercises in quick succession. Burns fat while building muscle.",
				Emoji:       "🔄",
				Sets:        "3-5 rounds",
				Reps:        "10-15 each",
				Duration:    "30-40 minutes",
				Frequency:   "4-5 times/week",
			},
			{
				Name:        "Rowing",
				Description: "Full-body cardio exercise that builds strength while burning calories. Excellent for fat loss.",
				Emoji:       "🚣",
				Sets:        "N/A",
				Reps:        "N/A",
				Duration:    "20-30 minutes",
				Frequency:   "4-5 times/week",
			},
			{
				Name:        "Stair Climbing",
				Description: "High-intensity exercise that targets legs and glutes while burning significant calories.",
				Emoji:       "📶",
				Sets:        "5-10 sets",
				Reps:        "2-3 minutes",
				Duration:    "20-30 minutes",
				Frequency:   "4-5 times/week",
			},
			{
				Name:        "Kettlebell Swings",
				Description: "Explosive full-body movement that builds power and burns fat effectively.",
				Emoji:       "⚖️",
				Sets:        "4-5 sets",
				Reps:        "15-20 reps",
				Duration:    "20-30 minutes",
				Frequency:   "3-4 times/week",
			},
			{
				Name:        "Yoga Flow",
				Description: "Dynamic yoga sequences that build strength, flexibility, and burn calories.",
				Emoji:       "🧘",
				Sets:        "N/A",
				Reps:        "N/A",
				Duration:    "30-45 minutes",
				Frequency:   "4-5 times/week",
			},
		},
		PlanMuscleBuilding: {
			{
				Name:        "Heavy Lifting",
				Description: "Focus on compound movements with heavy weights. Squats, deadlifts, bench press, and rows.",
				Emoji:       "🏋️",
				Sets:        "4-6 sets",
				Reps:        "4-8 reps",
				Duration:    "60-90 minutes",
				Frequency:   "4-5 times/week",
			},
			{
				Name:        "Progressive Overload",
				Description: "Systematically increase weight, reps, or sets over time. Essential for muscle growth.",
				Emoji:       "📈",
				Sets:        "3-5 sets",
				Reps:        "6-12 reps",
				Duration:    "60 minutes",
				Frequency:   "4-6 times/week",
			},
			{
				Name:        "Split Training",
				Description: "Focus on different muscle groups each day. Allows for better recovery and growth.",
				Emoji:       "🎯",
				Sets:        "4-5 sets",
				Reps:        "8-12 reps",
				Duration:    "60 minutes",
				Frequency:   "5-6 times/week",
			},
			{
				Name:        "Isolation Exercises",
				Description: "Target specific muscles with focused movements. Bicep curls, tricep extensions, leg curls.",
				Emoji:       "🎯",
				Sets:        "3-4 sets",
				Reps:        "10-15 reps",
				Duration:    "30-45 minutes",
				Frequency:   "5-6 times/week",
			},
			{
				Name:        "Pull-Ups & Dips",
				Description: "Bodyweight exercises that build upper body strength. Excellent for muscle building.",
				Emoji:       "🤸",
				Sets:        "3-5 sets",
				Reps:        "8-12 reps",
				Duration:    "20-30 minutes",
				Frequency:   "3-4 times/week",
			},
			{
				Name:        "Leg Day Focus",
				Description: "Dedicated leg training with squats, lunges, and leg presses. Builds lower body mass.",
				Emoji:       "🦵",
				Sets:        "4-5 sets",
				Reps:        "8-12 reps",
				Duration:    "60 minutes",
				Frequency:   "2 times/week",
			},
		},
	}
}
