package models

type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is one Ember House restaurant in the locations directory.
// Geohash is derived from the coordinates at startup and doubles as a stable
// area key for the frontend.
type Location struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Address  string      `json:"address"`
	Phone    string      `json:"phone"`
	Hours    string      `json:"hours"`
	Location GeoLocation `json:"location"`
	Geohash  string      `json:"geohash"`
}

// NearbyLocation is a Location plus its distance in km from the queried point.
type NearbyLocation struct {
	Location
	Distance float64 `json:"distance"`
}
