package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opatija/backend/internal/middleware"
	"opatija/backend/internal/models"
	"opatija/backend/internal/service"
)

type submitContactRequest struct {
	FullName           string   `json:"fullName"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	Country            string   `json:"country"`
	Destination        string   `json:"destination"`
	NumTravelers       *int     `json:"numTravelers"`
	TravelDates        string   `json:"travelDates"`
	Budget             string   `json:"budget"`
	TravelerTypes      []string `json:"travelerTypes"`
	ExperienceTypes    []string `json:"experienceTypes"`
	AdditionalRequests string   `json:"additionalRequests"`
}

const submitContactMessage = "Your inquiry has been submitted successfully. We will contact you within 24 hours."

func (h HandlerSet) SubmitContact(c *gin.Context) {
	var req submitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}

	submission, err := h.contacts.Submit(c.Request.Context(), service.SubmitInput{
		FullName:           req.FullName,
		Email:              req.Email,
		Phone:              req.Phone,
		Country:            req.Country,
		Destination:        req.Destination,
		NumTravelers:       req.NumTravelers,
		TravelDates:        req.TravelDates,
		Budget:             req.Budget,
		TravelerTypes:      req.TravelerTypes,
		ExperienceTypes:    req.ExperienceTypes,
		AdditionalRequests: req.AdditionalRequests,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": submitContactMessage,
		"id":      submission.ID,
	})
}

func (h HandlerSet) AdminListContacts(c *gin.Context) {
	submissions, err := h.contacts.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

func (h HandlerSet) AdminGetContact(c *gin.Context) {
	submission, err := h.contacts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submission": submission,
		"labels":     h.submissionLabels(c, submission),
	})
}

// submissionLabels maps the stored enumeration keys to display labels in
// the requester's locale. Stored values are never rewritten; unknown keys
// pass through verbatim.
func (h HandlerSet) submissionLabels(c *gin.Context, sub models.ContactSubmission) gin.H {
	t := h.bundle.Func(middleware.LocaleFromContext(c))

	translate := func(prefix string, keys []string) []string {
		out := make([]string, 0, len(keys))
		for _, key := range keys {
			out = append(out, t(prefix+key))
		}
		return out
	}

	labels := gin.H{
		"status":          t(models.StatusLabelPrefix + string(sub.Status)),
		"travelerTypes":   translate(models.TravelerLabelPrefix, sub.TravelerTypes),
		"experienceTypes": translate(models.ExperienceLabelPrefix, sub.ExperienceTypes),
	}
	if sub.Budget != nil {
		labels["budget"] = t(models.BudgetLabelPrefix + *sub.Budget)
	}
	if sub.Destination != nil {
		labels["destination"] = t(models.DestinationLabelPrefix + *sub.Destination)
	}
	return labels
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h HandlerSet) AdminUpdateContactStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}

	err := h.contacts.UpdateStatus(c.Request.Context(), c.Param("id"), models.SubmissionStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h HandlerSet) AdminDeleteContact(c *gin.Context) {
	if err := h.contacts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
