package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opatija/backend/internal/middleware"
	"opatija/backend/internal/pages"
)

func (h HandlerSet) sendPage(c *gin.Context, page pages.Page) {
	c.JSON(http.StatusOK, page)
}

func (h HandlerSet) PageHome(c *gin.Context) {
	h.sendPage(c, h.pages.Home(middleware.LocaleFromContext(c)))
}

func (h HandlerSet) PageServices(c *gin.Context) {
	h.sendPage(c, h.pages.Services(middleware.LocaleFromContext(c)))
}

func (h HandlerSet) PageExperiences(c *gin.Context) {
	h.sendPage(c, h.pages.Experiences(middleware.LocaleFromContext(c)))
}

func (h HandlerSet) PageGallery(c *gin.Context) {
	h.sendPage(c, h.pages.Gallery(middleware.LocaleFromContext(c)))
}

func (h HandlerSet) PageAbout(c *gin.Context) {
	h.sendPage(c, h.pages.About(middleware.LocaleFromContext(c)))
}

func (h HandlerSet) PageContact(c *gin.Context) {
	h.sendPage(c, h.pages.Contact(middleware.LocaleFromContext(c)))
}

func (h HandlerSet) PagePersonal(c *gin.Context) {
	h.sendPage(c, h.pages.Personal(middleware.LocaleFromContext(c)))
}

func (h HandlerSet) PageEliteJourneys(c *gin.Context) {
	h.sendPage(c, h.pages.EliteJourneys(middleware.LocaleFromContext(c)))
}

func (h HandlerSet) PageBoutique(c *gin.Context) {
	h.sendPage(c, h.pages.Boutique(middleware.LocaleFromContext(c)))
}

// PagePrivateFlights serves the flights page shell together with the live
// localized listing so the client renders in a single round trip.
func (h HandlerSet) PagePrivateFlights(c *gin.Context) {
	locale := middleware.LocaleFromContext(c)
	page := h.pages.PrivateFlights(locale)

	flights, err := h.flights.PublicList(c.Request.Context(), locale)
	if err != nil {
		h.log.Error().Err(err).Msg("public flight listing failed")
		flights = nil
	}
	page.Sections["flights"] = flights

	c.JSON(http.StatusOK, page)
}

func (h HandlerSet) PageNotFound(c *gin.Context) {
	locale := middleware.LocaleFromContext(c)
	page := h.pages.NotFound(locale)

	c.JSON(http.StatusNotFound, gin.H{
		"error": "page_not_found",
		"page":  page,
	})
}
