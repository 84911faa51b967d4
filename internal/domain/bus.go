package domain

type OwnershipType string

const (
	OwnershipSLTB    OwnershipType = "SLTB"
	OwnershipPrivate OwnershipType = "PRIVATE"
)

func (o OwnershipType) Valid() bool {
	return o == OwnershipSLTB || o == OwnershipPrivate
}

type Bus struct {
	ID            string        `json:"id"`
	BusNumber     string        `json:"busNumber"`
	Capacity      int           `json:"capacity"`
	SeatCount     int           `json:"seatCount"`
	OwnershipType OwnershipType `json:"ownershipType"`
	RouteID       string        `json:"routeId"`
	OperatorID    string        `json:"operatorId"`
}
