package models

import "time"

type SubmissionStatus string

const (
	SubmissionStatusNew       SubmissionStatus = "new"
	SubmissionStatusContacted SubmissionStatus = "contacted"
	SubmissionStatusCompleted SubmissionStatus = "completed"
	SubmissionStatusCancelled SubmissionStatus = "cancelled"
)

func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionStatusNew, SubmissionStatusContacted, SubmissionStatusCompleted, SubmissionStatusCancelled:
		return true
	}
	return false
}

// ContactSubmission is one visitor trip inquiry. Optional scalars are
// pointers so an absent field is stored NULL; the tag slices are stored as
// text arrays and default to empty, never NULL. Tag values are the stable
// keys below, not display labels.
type ContactSubmission struct {
	ID                 string           `json:"id"`
	FullName           string           `json:"fullName"`
	Email              string           `json:"email"`
	Phone              *string          `json:"phone"`
	Country            *string          `json:"country"`
	Destination        *string          `json:"destination"`
	NumTravelers       *int             `json:"numTravelers"`
	TravelDates        *string          `json:"travelDates"`
	Budget             *string          `json:"budget"`
	TravelerTypes      []string         `json:"travelerTypes"`
	ExperienceTypes    []string         `json:"experienceTypes"`
	AdditionalRequests *string          `json:"additionalRequests"`
	Status             SubmissionStatus `json:"status"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

// Canonical tag enumerations shared by the public form metadata and the
// admin display layer. Stored values never change once written; display
// labels live in the i18n tables keyed by the prefixes below.
var (
	TravelerTypes = []string{"solo", "couple", "familyKids", "familyTeens", "multiGen", "friends", "business"}

	ExperienceTypes = []string{"hotel", "villa", "cruise", "safari", "tours", "wellness", "cultural", "culinary", "beach", "city"}

	BudgetRanges = []string{"under10k", "10to20k", "20to50k", "50to100k", "over100k", "flexible"}

	Destinations = []string{"italy", "france", "greece", "croatia", "portugal", "spain", "austria", "switzerland", "srilanka", "thailand", "japan", "other"}
)

// Label-key prefixes for the canonical enumerations.
const (
	TravelerLabelPrefix    = "contact.traveler."
	ExperienceLabelPrefix  = "contact.exp."
	BudgetLabelPrefix      = "contact.budget."
	DestinationLabelPrefix = "contact.dest."
	StatusLabelPrefix      = "contact.status."
)
