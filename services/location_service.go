package services

import (
	"EmberHouse/models"
	"math"
	"sort"

	"github.com/mmcloughlin/geohash"
)

const earthRadiusKm = 6371.0 // Radius of Earth in km

// Haversine formula to calculate distance between two lat/lng points
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1 = lat1 * (math.Pi / 180.0)
	lat2 = lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// emberHouseLocations is the static locations directory. A marketing site
// with four restaurants does not need a database for this.
var emberHouseLocations = []models.Location{
	{
		ID:      "downtown",
		Name:    "Ember House Downtown",
		Address: "412 Mercer Street, Seattle, WA 98109",
		Phone:   "(206) 555-0134",
		Hours:   "Mon-Sun 11:00-23:00",
		Location: models.GeoLocation{
			Latitude:  47.6249,
			Longitude: -122.3482,
		},
	},
	{
		ID:      "ballard",
		Name:    "Ember House Ballard",
		Address: "5301 Ballard Avenue NW, Seattle, WA 98107",
		Phone:   "(206) 555-0177",
		Hours:   "Tue-Sun 12:00-23:00",
		Location: models.GeoLocation{
			Latitude:  47.6664,
			Longitude: -122.3846,
		},
	},
	{
		ID:      "bellevue",
		Name:    "Ember House Bellevue",
		Address: "700 Bellevue Way NE, Bellevue, WA 98004",
		Phone:   "(425) 555-0121",
		Hours:   "Mon-Sun 11:00-22:00",
		Location: models.GeoLocation{
			Latitude:  47.6154,
			Longitude: -122.2030,
		},
	},
	{
		ID:      "tacoma",
		Name:    "Ember House Tacoma",
		Address: "1938 Pacific Avenue, Tacoma, WA 98402",
		Phone:   "(253) 555-0189",
		Hours:   "Wed-Sun 12:00-22:00",
		Location: models.GeoLocation{
			Latitude:  47.2454,
			Longitude: -122.4380,
		},
	},
}

// LocationService serves the locations directory.
type LocationService struct {
	locations []models.Location
}

// NewLocationService initializes LocationService and derives a geohash key
// for every location.
func NewLocationService() *LocationService {
	locations := make([]models.Location, len(emberHouseLocations))
	copy(locations, emberHouseLocations)
	for i := range locations {
		locations[i].Geohash = geohash.Encode(
			locations[i].Location.Latitude,
			locations[i].Location.Longitude,
		)
	}
	return &LocationService{locations: locations}
}

// GetAllLocations returns every location in directory order.
func (s *LocationService) GetAllLocations() []models.Location {
	locations := make([]models.Location, len(s.locations))
	copy(locations, s.locations)
	return locations
}

// GetNearestLocations returns all locations with their distance from the
// given point, closest first.
func (s *LocationService) GetNearestLocations(latitude, longitude float64) []models.NearbyLocation {
	nearby := make([]models.NearbyLocation, 0, len(s.locations))
	for _, location := range s.locations {
		nearby = append(nearby, models.NearbyLocation{
			Location: location,
			Distance: haversine(latitude, longitude, location.Location.Latitude, location.Location.Longitude),
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].Distance < nearby[j].Distance
	})
	return nearby
}
