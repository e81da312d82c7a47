// Package places answers "what is near me for this kind of errand" from a
// fixed lookup table. There is no geolocation; the data is static.
package places

import "github.com/sakethrapaka/remind/internal/model"

var locationTable = map[string][]model.NearbyLocation{
	"medicine": {
		{ID: "l1", Name: "Apollo Pharmacy", Category: "Pharmacy", Address: "123 Main Street, Downtown", Distance: "0.5 km", Rating: 4.5, IsOpen: true},
		{ID: "l2", Name: "MedPlus", Category: "Pharmacy", Address: "456 Park Avenue", Distance: "1.2 km", Rating: 4.3, IsOpen: true},
		{ID: "l3", Name: "HealthCare Pharmacy", Category: "Pharmacy", Address: "789 Oak Road", Distance: "2.0 km", Rating: 4.7, IsOpen: false},
	},
	"groceries": {
		{ID: "l4", Name: "Fresh Mart", Category: "Supermarket", Address: "321 Market Street", Distance: "0.8 km", Rating: 4.4, IsOpen: true},
		{ID: "l5", Name: "Big Bazaar", Category: "Hypermarket", Address: "654 Shopping Complex", Distance: "1.5 km", Rating: 4.2, IsOpen: true},
		{ID: "l6", Name: "Organic Store", Category: "Grocery Store", Address: "987 Green Lane", Distance: "3.0 km", Rating: 4.8, IsOpen: true},
	},
	"medical": {
		{ID: "l7", Name: "City Hospital", Category: "Hospital", Address: "147 Health Avenue", Distance: "2.5 km", Rating: 4.6, IsOpen: true},
		{ID: "l8", Name: "Care Clinic", Category: "Clinic", Address: "258 Medical Plaza", Distance: "1.0 km", Rating: 4.5, IsOpen: true},
	},
}

var defaultLocations = []model.NearbyLocation{
	{ID: "l9", Name: "General Store", Category: "Store", Address: "369 Central Road", Distance: "0.7 km", Rating: 4.0, IsOpen: true},
}

// Nearby returns the suggestion list for a category, falling back to the
// default list for categories without dedicated entries.
func Nearby(category string) []model.NearbyLocation {
	if locations, ok := locationTable[category]; ok {
		return locations
	}
	return defaultLocations
}
