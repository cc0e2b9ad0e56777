package seed

import "github.com/example/travel-planner/internal/persistence"

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

// tokyoAttractions returns the starter catalog. Opening hours follow the
// weekly text format the hours evaluator understands; a few entries are
// deliberately left without hours since real catalog data is often missing
// them.
func tokyoAttractions() []persistence.Attraction {
	return []persistence.Attraction{
		{
			Name:            "Shibuya Sky Deck",
			Destination:     "Tokyo",
			Category:        "Observation",
			Rating:          4.8,
			ReviewCount:     2140,
			PricePoint:      strPtr("$$"),
			ImageURL:        strPtr("https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=800&q=80"),
			Description:     strPtr("Stunning 360-degree views of Tokyo from the rooftop observation deck. Perfect for sunset and night photography."),
			ScoutTip:        strPtr("Best sunset view is at 5pm. Book tickets in advance to avoid long queues."),
			IsLocalFavorite: true,
			Lat:             floatPtr(35.6586),
			Lng:             floatPtr(139.7034),
			OpeningHours: []string{
				"Monday: 10:00 AM – 10:30 PM",
				"Tuesday: 10:00 AM – 10:30 PM",
				"Wednesday: 10:00 AM – 10:30 PM",
				"Thursday: 10:00 AM – 10:30 PM",
				"Friday: 10:00 AM – 10:30 PM",
				"Saturday: 10:00 AM – 10:30 PM",
				"Sunday: 10:00 AM – 10:30 PM",
			},
		},
		{
			Name:            "Tsukiji Outer Market",
			Destination:     "Tokyo",
			Category:        "Food & Drink",
			Rating:          4.7,
			ReviewCount:     8500,
			PricePoint:      strPtr("$$"),
			ImageURL:        strPtr("https://images.unsplash.com/photo-1559339352-11d035aa65de?w=800&q=80"),
			Description:     strPtr("Famous fish market with incredible fresh sushi, street food, and traditional Japanese breakfast options."),
			ScoutTip:        strPtr("Arrive early (before 9 AM) for the freshest seafood. Most stalls only accept cash."),
			IsLocalFavorite: true,
			Lat:             floatPtr(35.6654),
			Lng:             floatPtr(139.7699),
			OpeningHours: []string{
				"Monday: 5:00 AM – 2:00 PM",
				"Tuesday: 5:00 AM – 2:00 PM",
				"Wednesday: Closed",
				"Thursday: 5:00 AM – 2:00 PM",
				"Friday: 5:00 AM – 2:00 PM",
				"Saturday: 5:00 AM – 2:00 PM",
				"Sunday: Closed",
			},
		},
		{
			Name:            "Senso-ji Temple",
			Destination:     "Tokyo",
			Category:        "Adventure",
			Rating:          4.6,
			ReviewCount:     32000,
			PricePoint:      strPtr("Free"),
			ImageURL:        strPtr("https://images.unsplash.com/photo-1545569341-9eb8b30979d9?w=800&q=80"),
			Description:     strPtr("Tokyo's oldest temple with a vibrant shopping street leading to the main hall. A must-see cultural experience."),
			ScoutTip:        strPtr("Visit early morning or late evening to avoid crowds. The temple is beautifully lit at night."),
			Lat:             floatPtr(35.7148),
			Lng:             floatPtr(139.7967),
			OpeningHours: []string{
				"Monday: 6:00 AM – 5:00 PM",
				"Tuesday: 6:00 AM – 5:00 PM",
				"Wednesday: 6:00 AM – 5:00 PM",
				"Thursday: 6:00 AM – 5:00 PM",
				"Friday: 6:00 AM – 5:00 PM",
				"Saturday: 6:00 AM – 5:00 PM",
				"Sunday: 6:00 AM – 5:00 PM",
			},
		},
		{
			Name:            "TeamLab Borderless",
			Destination:     "Tokyo",
			Category:        "Adventure",
			Rating:          4.9,
			ReviewCount:     15200,
			PricePoint:      strPtr("$$$"),
			ImageURL:        strPtr("https://images.unsplash.com/photo-1567427017947-545c5f8d16ad?w=800&q=80"),
			Description:     strPtr("Immersive digital art museum where boundaries dissolve between artwork and visitors. A truly unique experience."),
			ScoutTip:        strPtr("Wear white or light-colored clothing to fully experience the interactive installations. Allow 2-3 hours."),
			IsLocalFavorite: true,
			Lat:             floatPtr(35.6262),
			Lng:             floatPtr(139.7764),
			OpeningHours: []string{
				"Monday: 10:00 AM – 7:00 PM",
				"Tuesday: Closed",
				"Wednesday: 10:00 AM – 7:00 PM",
				"Thursday: 10:00 AM – 7:00 PM",
				"Friday: 10:00 AM – 9:00 PM",
				"Saturday: 10:00 AM – 9:00 PM",
				"Sunday: 10:00 AM – 7:00 PM",
			},
		},
		{
			Name:            "Afuri Ramen",
			Destination:     "Tokyo",
			Category:        "Food & Drink",
			Rating:          4.6,
			ReviewCount:     4250,
			PricePoint:      strPtr("$"),
			ImageURL:        strPtr("https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=800&q=80"),
			Description:     strPtr("Famous for their Yuzu Shio Ramen. Light, refreshing, and perfectly balanced. A Tokyo favorite."),
			ScoutTip:        strPtr("Order via the vending machine at the entrance. The yuzu ramen is their signature dish."),
			Lat:             floatPtr(35.6580),
			Lng:             floatPtr(139.7016),
			OpeningHours: []string{
				"Monday: 11:00 AM – 11:00 PM",
				"Tuesday: 11:00 AM – 11:00 PM",
				"Wednesday: 11:00 AM – 11:00 PM",
				"Thursday: 11:00 AM – 11:00 PM",
				"Friday: 11:00 AM – 11:00 PM",
				"Saturday: 11:00 AM – 11:00 PM",
				"Sunday: 11:00 AM – 11:00 PM",
			},
		},
		{
			Name:            "Tokyo Skytree",
			Destination:     "Tokyo",
			Category:        "Observation",
			Rating:          4.5,
			ReviewCount:     28000,
			PricePoint:      strPtr("$$$"),
			ImageURL:        strPtr("https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e?w=800&q=80"),
			Description:     strPtr("World's tallest freestanding tower with panoramic views of Tokyo and beyond. Two observation decks available."),
			ScoutTip:        strPtr("Book Fast Skytree tickets online to skip the queue. Weather can affect visibility, check forecast."),
			Lat:             floatPtr(35.7101),
			Lng:             floatPtr(139.8107),
			OpeningHours: []string{
				"Monday: 9:00 AM – 10:00 PM",
				"Tuesday: 9:00 AM – 10:00 PM",
				"Wednesday: 9:00 AM – 10:00 PM",
				"Thursday: 9:00 AM – 10:00 PM",
				"Friday: 9:00 AM – 10:00 PM",
				"Saturday: 9:00 AM – 10:00 PM",
				"Sunday: 9:00 AM – 10:00 PM",
			},
		},
		{
			Name:            "Meiji Shrine",
			Destination:     "Tokyo",
			Category:        "Adventure",
			Rating:          4.7,
			ReviewCount:     18200,
			PricePoint:      strPtr("Free"),
			ImageURL:        strPtr("https://images.unsplash.com/photo-1528164344705-47542687000d?w=800&q=80"),
			Description:     strPtr("Serene Shinto shrine surrounded by forest in the heart of the city. Peaceful escape from the urban bustle."),
			ScoutTip:        strPtr("Enter through the massive torii gate from Harajuku. Early mornings are quietest."),
			Lat:             floatPtr(35.6764),
			Lng:             floatPtr(139.6993),
			OpeningHours: []string{
				"Monday: 5:00 AM – 6:00 PM",
				"Tuesday: 5:00 AM – 6:00 PM",
				"Wednesday: 5:00 AM – 6:00 PM",
				"Thursday: 5:00 AM – 6:00 PM",
				"Friday: 5:00 AM – 6:00 PM",
				"Saturday: 5:00 AM – 6:00 PM",
				"Sunday: 5:00 AM – 6:00 PM",
			},
		},
		{
			Name:            "Shibuya Crossing",
			Destination:     "Tokyo",
			Category:        "Adventure",
			Rating:          4.5,
			ReviewCount:     40000,
			PricePoint:      strPtr("Free"),
			ImageURL:        strPtr("https://images.unsplash.com/photo-1542051841857-5f90071e7989?w=800&q=80"),
			Description:     strPtr("The world's busiest pedestrian crossing. An iconic Tokyo moment, best viewed from above at night."),
			ScoutTip:        strPtr("The Starbucks overlooking the crossing is a classic viewing spot, or use the Shibuya Sky deck."),
			IsLocalFavorite: true,
			Lat:             floatPtr(35.6595),
			Lng:             floatPtr(139.7004),
			OpeningHours: []string{
				"Monday: Open 24 hours",
				"Tuesday: Open 24 hours",
				"Wednesday: Open 24 hours",
				"Thursday: Open 24 hours",
				"Friday: Open 24 hours",
				"Saturday: Open 24 hours",
				"Sunday: Open 24 hours",
			},
		},
		{
			Name:            "Ueno Park",
			Destination:     "Tokyo",
			Category:        "Relaxation",
			Rating:          4.5,
			ReviewCount:     21000,
			PricePoint:      strPtr("Free"),
			ImageURL:        strPtr("https://images.unsplash.com/photo-1522093007474-d86e9bf7ba6f?w=800&q=80"),
			Description:     strPtr("Spacious public park home to museums, a zoo, and seasonal cherry blossoms."),
			ScoutTip:        strPtr("Combine with the Tokyo National Museum next door for a full day."),
			Lat:             floatPtr(35.7156),
			Lng:             floatPtr(139.7745),
		},
		{
			Name:            "Tokyo National Museum",
			Destination:     "Tokyo",
			Category:        "Adventure",
			Rating:          4.6,
			ReviewCount:     12500,
			PricePoint:      strPtr("$"),
			ImageURL:        strPtr("https://images.unsplash.com/photo-1554797589-7241bb691973?w=800&q=80"),
			Description:     strPtr("Japan's oldest and largest museum, housing a vast collection of art and antiquities."),
			ScoutTip:        strPtr("The Honkan (Japanese Gallery) is a must-see. Allow at least 3 hours to properly explore."),
			Lat:             floatPtr(35.7188),
			Lng:             floatPtr(139.7765),
			OpeningHours: []string{
				"Monday: Closed",
				"Tuesday: 9:30 AM – 5:00 PM",
				"Wednesday: 9:30 AM – 5:00 PM",
				"Thursday: 9:30 AM – 5:00 PM",
				"Friday: 9:30 AM – 8:00 PM",
				"Saturday: 9:30 AM – 8:00 PM",
				"Sunday: 9:30 AM – 5:00 PM",
			},
		},
		{
			Name:            "Yoyogi Park",
			Destination:     "Tokyo",
			Category:        "Relaxation",
			Rating:          4.5,
			ReviewCount:     13000,
			PricePoint:      strPtr("Free"),
			ImageURL:        strPtr("https://images.unsplash.com/photo-1522093007474-d86e9bf7ba6f?w=800&q=80"),
			Description:     strPtr("Large park perfect for picnics, jogging, or people-watching. Popular on weekends with festivals and events."),
			ScoutTip:        strPtr("Sunday afternoons often feature live music and dance performances. Bring a blanket for a picnic."),
			Lat:             floatPtr(35.6697),
			Lng:             floatPtr(139.6980),
		},
		{
			Name:            "Hamarikyu Gardens",
			Destination:     "Tokyo",
			Category:        "Relaxation",
			Rating:          4.6,
			ReviewCount:     9100,
			PricePoint:      strPtr("$"),
			ImageURL:        strPtr("https://images.unsplash.com/photo-1549144511-f099e773c147?w=800&q=80"),
			Description:     strPtr("Beautiful Japanese landscape garden with a tidal pond and traditional tea house. Peaceful oasis in central Tokyo."),
			ScoutTip:        strPtr("Visit the tea house on the island in the pond. Best time is autumn when the garden features special illuminations."),
			Lat:             floatPtr(35.6586),
			Lng:             floatPtr(139.7744),
			OpeningHours: []string{
				"Monday: 9:00 AM – 5:00 PM",
				"Tuesday: 9:00 AM – 5:00 PM",
				"Wednesday: 9:00 AM – 5:00 PM",
				"Thursday: 9:00 AM – 5:00 PM",
				"Friday: 9:00 AM – 5:00 PM",
				"Saturday: 9:00 AM – 5:00 PM",
				"Sunday: 9:00 AM – 5:00 PM",
			},
		},
		{
			Name:            "Tokyo DisneySea",
			Destination:     "Tokyo",
			Category:        "Adventure",
			Rating:          4.7,
			ReviewCount:     45000,
			PricePoint:      strPtr("$$$"),
			ImageURL:        strPtr("https://images.unsplash.com/photo-1519689680058-324335c77eba?w=800&q=80"),
			Description:     strPtr("Unique theme park with nautical exploration theme. Themed lands like Mysterious Island and Mermaid Lagoon."),
			ScoutTip:        strPtr("Buy tickets online in advance. Arrive 30 minutes before opening. Use FastPass for popular rides."),
			Lat:             floatPtr(35.6273),
			Lng:             floatPtr(139.8889),
			OpeningHours: []string{
				"Monday: 9:00 AM – 9:00 PM",
				"Tuesday: 9:00 AM – 9:00 PM",
				"Wednesday: 9:00 AM – 9:00 PM",
				"Thursday: 9:00 AM – 9:00 PM",
				"Friday: 9:00 AM – 10:00 PM",
				"Saturday: 8:00 AM – 10:00 PM",
				"Sunday: 8:00 AM – 10:00 PM",
			},
		},
	}
}
