package model

// RouteStop - точка маршрута по избранным направлениям.
type RouteStop struct {
	Order         int          `json:"order"`
	DestinationID string       `json:"destination_id"`
	Name          string       `json:"name"`
	Coordinates   *Coordinates `json:"coordinates,omitempty"`
	DistanceKm    float64      `json:"distance_km"` // от предыдущей точки
}
