package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opatija/backend/internal/middleware"
	"opatija/backend/internal/service"
)

func (h HandlerSet) PublicFlights(c *gin.Context) {
	locale := middleware.LocaleFromContext(c)

	flights, err := h.flights.PublicList(c.Request.Context(), locale)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"flights": flights})
}

type flightRequest struct {
	DepartureCity   string `json:"departureCity"`
	DepartureCityHe string `json:"departureCityHe"`
	ArrivalCity     string `json:"arrivalCity"`
	ArrivalCityHe   string `json:"arrivalCityHe"`
	DepartureDate   string `json:"departureDate"`
	DepartureTime   string `json:"departureTime"`
	AircraftType    string `json:"aircraftType"`
	AircraftTypeHe  string `json:"aircraftTypeHe"`
	AvailableSeats  int    `json:"availableSeats"`
	PriceFrom       string `json:"priceFrom"`
	Notes           string `json:"notes"`
	NotesHe         string `json:"notesHe"`
	IsActive        *bool  `json:"isActive"`
}

func (r flightRequest) input() service.FlightInput {
	return service.FlightInput{
		DepartureCity:   r.DepartureCity,
		DepartureCityHe: r.DepartureCityHe,
		ArrivalCity:     r.ArrivalCity,
		ArrivalCityHe:   r.ArrivalCityHe,
		DepartureDate:   r.DepartureDate,
		DepartureTime:   r.DepartureTime,
		AircraftType:    r.AircraftType,
		AircraftTypeHe:  r.AircraftTypeHe,
		AvailableSeats:  r.AvailableSeats,
		PriceFrom:       r.PriceFrom,
		Notes:           r.Notes,
		NotesHe:         r.NotesHe,
		IsActive:        r.IsActive,
	}
}

func (h HandlerSet) AdminListFlights(c *gin.Context) {
	flights, err := h.flights.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"flights": flights})
}

func (h HandlerSet) AdminCreateFlight(c *gin.Context) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}

	flight, err := h.flights.Create(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"flight": flight})
}

func (h HandlerSet) AdminUpdateFlight(c *gin.Context) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}

	flight, err := h.flights.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"flight": flight})
}

func (h HandlerSet) AdminDeleteFlight(c *gin.Context) {
	if err := h.flights.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
