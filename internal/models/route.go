package models

// Route is a pair of endpoints whose great-circle distance has to be measured.
// Origin and Destination are nil until the endpoint has been geocoded.
type Route struct {
	ID                 int          // ID is the unique identifier for the route.
	OriginAddress      string       // OriginAddress is used when Origin is unknown.
	DestinationAddress string       // DestinationAddress is used when Destination is unknown.
	Origin             *Coordinates // Origin point, if already known.
	Destination        *Coordinates // Destination point, if already known.
}
