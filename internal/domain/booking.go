package domain

import "time"

// PricePerSeat is the fixed per-seat rate applied at booking creation.
const PricePerSeat int64 = 100

type Booking struct {
	ID                        string    `json:"id"`
	BookingNumber             int64     `json:"bookingNumber"`
	BusNumber                 string    `json:"busNumber"`
	PassengerName             string    `json:"passengerName"`
	PassengerIDNo             string    `json:"passengerIDNo"`
	PassengerMobile           string    `json:"passengerMobile"`
	StartLocation             string    `json:"startLocation"`
	EndLocation               string    `json:"endLocation"`
	SeatCount                 int       `json:"seatCount"`
	Date                      time.Time `json:"date"`
	Time                      string    `json:"time"`
	Price                     int64     `json:"price"`
	IsPaid                    bool      `json:"isPaid"`
	IsCancelled               bool      `json:"isCancelled"`
	IsUsed                    bool      `json:"isUsed"`
	IsActive                  bool      `json:"isActive"`
	BookingIdentificationCode string    `json:"bookingIdentificationCode"`
}

// BookingFilter holds conjunctive equality filters for booking search.
// Zero values mean the filter is not applied. Date matches the calendar
// day, time of day is ignored.
type BookingFilter struct {
	BusNumber                 string
	PassengerIDNo             string
	BookingIdentificationCode string
	Date                      *time.Time
}
