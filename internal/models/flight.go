package models

import "time"

// DateLayout is the wire and storage format for departure dates.
const DateLayout = "2006-01-02"

// Flight is one admin-managed private-flight availability entry. The *He
// fields are optional Hebrew labels shown when the Hebrew locale is active;
// IsActive controls public visibility.
type Flight struct {
	ID              string    `json:"id"`
	DepartureCity   string    `json:"departureCity"`
	DepartureCityHe *string   `json:"departureCityHe"`
	ArrivalCity     string    `json:"arrivalCity"`
	ArrivalCityHe   *string   `json:"arrivalCityHe"`
	DepartureDate   string    `json:"departureDate"`
	DepartureTime   *string   `json:"departureTime"`
	AircraftType    string    `json:"aircraftType"`
	AircraftTypeHe  *string   `json:"aircraftTypeHe"`
	AvailableSeats  int       `json:"availableSeats"`
	PriceFrom       *string   `json:"priceFrom"`
	Notes           *string   `json:"notes"`
	NotesHe         *string   `json:"notesHe"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
