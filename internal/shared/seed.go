package shared

import "cairo_tours/internal/domain"

// Initial Cairo catalog loaded by cmd/seeder. Rows already present in
// the store (matched by name) are skipped.

var SeedHotels = []domain.Hotel{
	{Name: "Nile Grand Palace", Location: "Garden City, Cairo", Price: 350, Rating: 4.7,
		Description: "Colonial-era palace hotel with Nile-front terraces and three restaurants.",
		Amenities:   "Pool, Spa, Nile view, Airport shuttle"},
	{Name: "Pyramids View Inn", Location: "Giza", Price: 120, Rating: 4.2,
		Description: "Family-run inn with rooftop breakfast facing the Giza plateau.",
		Amenities:   "Rooftop terrace, Free breakfast, WiFi"},
	{Name: "Khan El Khalili Boutique", Location: "Islamic Cairo", Price: 180, Rating: 4.4,
		Description: "Restored 19th-century house steps from the bazaar.",
		Amenities:   "Courtyard, Tea lounge, WiFi"},
	{Name: "Zamalek Riverside", Location: "Zamalek, Cairo", Price: 260, Rating: 4.5,
		Description: "Quiet island address with felucca moorings and a garden cafe.",
		Amenities:   "Garden, River deck, Gym"},
	{Name: "Downtown Heliopolis Suites", Location: "Heliopolis, Cairo", Price: 95, Rating: 3.9,
		Description: "Serviced suites near the airport road, popular with transit stays.",
		Amenities:   "Kitchenette, Parking, WiFi"},
}

var SeedRestaurants = []domain.Restaurant{
	{Name: "Abou El Sid", Location: "Zamalek, Cairo", Cuisine: "Egyptian", Price: 35, Rating: 4.6,
		Description: "Classic Egyptian dishes in a salon hung with lanterns and portraits."},
	{Name: "Sequoia", Location: "Zamalek, Cairo", Cuisine: "Mediterranean", Price: 60, Rating: 4.3,
		Description: "Open-air Nile-side dining at the island's northern tip."},
	{Name: "Felfela", Location: "Downtown Cairo", Cuisine: "Egyptian", Price: 15, Rating: 4.1,
		Description: "Downtown institution for koshary, taameya and fresh juices."},
	{Name: "Citadel View", Location: "Al Azhar Park", Cuisine: "Middle Eastern", Price: 45, Rating: 4.4,
		Description: "Grills and mezze overlooking the Citadel from the park terraces."},
	{Name: "Kadoura", Location: "Mohandessin, Cairo", Cuisine: "Seafood", Price: 40, Rating: 4.2,
		Description: "Pick-your-own seafood grilled Alexandrian style."},
}

var SeedSightseeing = []domain.Sightseeing{
	{Name: "Pyramids of Giza", Location: "Giza Plateau", Type: domain.SiteHistorical, TicketPrice: 540, Rating: 4.9,
		Description: "The last standing wonder of the ancient world, with the Great Sphinx."},
	{Name: "Egyptian Museum", Location: "Tahrir Square, Cairo", Type: domain.SiteHistorical, TicketPrice: 450, Rating: 4.7,
		Description: "A century of excavated treasures, including the Tutankhamun galleries."},
	{Name: "Citadel of Saladin", Location: "Mokattam Hill, Cairo", Type: domain.SiteHistorical, TicketPrice: 300, Rating: 4.6,
		Description: "Medieval fortress crowned by the alabaster Muhammad Ali Mosque."},
	{Name: "Al-Azhar Mosque", Location: "Islamic Cairo", Type: domain.SiteReligious, TicketPrice: 0, Rating: 4.8,
		Description: "Founded in 970 AD and still a working center of learning."},
	{Name: "Hanging Church", Location: "Coptic Cairo", Type: domain.SiteReligious, TicketPrice: 0, Rating: 4.5,
		Description: "Basilica suspended over the gatehouse of the Babylon fortress."},
	{Name: "Al Azhar Park", Location: "Darb al-Ahmar, Cairo", Type: domain.SiteNatural, TicketPrice: 40, Rating: 4.6,
		Description: "Thirty hectares of gardens reclaimed from a medieval rubble mound."},
}
