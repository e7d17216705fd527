package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"opatija/backend/internal/config"
	"opatija/backend/internal/i18n"
	"opatija/backend/internal/middleware"
	"opatija/backend/internal/models"
	"opatija/backend/internal/service"
	"opatija/backend/internal/service/mocks"
)

func newFlightTestHandler() (HandlerSet, *mocks.MockFlights) {
	flights := new(mocks.MockFlights)
	h := HandlerSet{
		log:     zerolog.Nop(),
		cfg:     &config.AppConfig{},
		flights: flights,
	}
	return h, flights
}

func newFlightRouter(h HandlerSet) *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.Locale(i18n.DefaultLocale))

	engine.GET("/api/v1/flights", h.PublicFlights)

	admin := engine.Group("/api/v1/admin")
	admin.GET("/flights", h.AdminListFlights)
	admin.POST("/flights", h.AdminCreateFlight)
	admin.PUT("/flights/:id", h.AdminUpdateFlight)
	admin.DELETE("/flights/:id", h.AdminDeleteFlight)

	return engine
}

func TestPublicFlights_DefaultLocale(t *testing.T) {
	h, flights := newFlightTestHandler()
	router := newFlightRouter(h)

	flights.On("PublicList", mock.Anything, i18n.LocaleEnglish).Return([]service.PublicFlight{
		{ID: "fl-1", DepartureCity: "Tel Aviv", ArrivalCity: "Nice", AvailableSeats: 8},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/flights", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Flights []service.PublicFlight `json:"flights"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Flights, 1)
	assert.Equal(t, "Tel Aviv", resp.Flights[0].DepartureCity)
	flights.AssertExpectations(t)
}

func TestPublicFlights_LangOverride(t *testing.T) {
	h, flights := newFlightTestHandler()
	router := newFlightRouter(h)

	flights.On("PublicList", mock.Anything, i18n.LocaleHebrew).Return([]service.PublicFlight{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/flights?lang=he", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	flights.AssertExpectations(t)
}

func TestAdminCreateFlight_Invalid(t *testing.T) {
	h, flights := newFlightTestHandler()
	router := newFlightRouter(h)

	flights.On("Create", mock.Anything, mock.Anything).Return(models.Flight{}, service.ErrInvalidInput)

	rec := postJSONMethod(router, http.MethodPost, "/api/v1/admin/flights", gin.H{
		"departureCity":  "Tel Aviv",
		"arrivalCity":    "Athens",
		"aircraftType":   "Citation X",
		"departureDate":  "2026-10-01",
		"availableSeats": 0,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminCreateFlight_Success(t *testing.T) {
	h, flights := newFlightTestHandler()
	router := newFlightRouter(h)

	flights.On("Create", mock.Anything, mock.Anything).Return(models.Flight{
		ID:             "fl-1",
		DepartureCity:  "Tel Aviv",
		ArrivalCity:    "Athens",
		AircraftType:   "Citation X",
		DepartureDate:  "2026-10-01",
		AvailableSeats: 6,
		IsActive:       true,
	}, nil)

	rec := postJSONMethod(router, http.MethodPost, "/api/v1/admin/flights", gin.H{
		"departureCity":  "Tel Aviv",
		"arrivalCity":    "Athens",
		"aircraftType":   "Citation X",
		"departureDate":  "2026-10-01",
		"availableSeats": 6,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Flight models.Flight `json:"flight"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "fl-1", resp.Flight.ID)
	assert.True(t, resp.Flight.IsActive)
}

func TestAdminDeleteFlight(t *testing.T) {
	h, flights := newFlightTestHandler()
	router := newFlightRouter(h)

	flights.On("Delete", mock.Anything, "fl-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/flights/fl-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	flights.AssertExpectations(t)
}

func TestAdminFlights_RequiresToken(t *testing.T) {
	h, flights := newFlightTestHandler()

	engine := gin.New()
	admin := engine.Group("/api/v1/admin")
	admin.Use(middleware.Auth(h.cfg, nil, nil))
	admin.GET("/flights", h.AdminListFlights)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/flights", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	flights.AssertNotCalled(t, "List", mock.Anything)
}
