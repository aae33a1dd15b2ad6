package models

// Coordinates represents a geographical point in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"lat"` // Latitude of the geographical point.
	Longitude float64 `json:"lon"` // Longitude of the geographical point.
}

// Valid reports whether the point lies within the conventional
// latitude [-90, 90] and longitude [-180, 180] ranges.
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}
