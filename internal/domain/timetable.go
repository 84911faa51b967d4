package domain

import "time"

// TimetableHeader is the aggregate root. Its details are only ever created,
// replaced or removed together with it, never individually.
type TimetableHeader struct {
	ID        string    `json:"id"`
	RouteID   string    `json:"routeId"`
	CreaterID string    `json:"createrId"`
	ValidFrom time.Time `json:"validFrom"`
	ValidTo   time.Time `json:"validTo"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// TimetableDetail is one per-bus row owned by a header. Departure and
// arrival times are "HH:MM" strings.
type TimetableDetail struct {
	ID                string   `json:"id"`
	HeaderID          string   `json:"headerId"`
	BusID             string   `json:"busId"`
	DepartureLocation string   `json:"departureLocation"`
	DepartureTime     string   `json:"departureTime"`
	ArrivalLocation   string   `json:"arrivalLocation"`
	ArrivalTime       string   `json:"arrivalTime"`
	Stops             []string `json:"stops"`
}

// TimetableDetailView is a detail with its bus reference resolved.
type TimetableDetailView struct {
	TimetableDetail
	Bus *Bus `json:"bus"`
}

// TimetableView is the denormalized list shape: header fields plus the
// resolved route, creating user and detail rows.
type TimetableView struct {
	TimetableHeader
	Route   *Route                `json:"route"`
	Creater *User                 `json:"creater"`
	Details []TimetableDetailView `json:"details"`
}
