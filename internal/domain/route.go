package domain

type Route struct {
	ID            string   `json:"id"`
	RouteNumber   string   `json:"routeNumber"`
	StartLocation string   `json:"startLocation"`
	EndLocation   string   `json:"endLocation"`
	Stops         []string `json:"stops"`
	Distance      float64  `json:"distance"`
	AverageSpeed  float64  `json:"averageSpeed"`
	Duration      float64  `json:"duration"`
}
