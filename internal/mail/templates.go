package mail

import (
	"fmt"
	"html"
	"strings"
	"time"

	"opatija/backend/internal/models"
)

// ConfirmationMessage builds the email sent to the submitter after their
// inquiry is persisted.
func ConfirmationMessage(sub models.ContactSubmission) Message {
	name := html.EscapeString(sub.FullName)

	var b strings.Builder
	b.WriteString(`<div style="font-family:Georgia,serif;max-width:600px;margin:0 auto">`)
	b.WriteString(`<h1 style="color:#1a2744">Opatija <span style="color:#d4a853">Travel</span></h1>`)
	fmt.Fprintf(&b, `<h2>Thank you, %s!</h2>`, name)
	b.WriteString(`<p>We have received your travel inquiry and are excited to help you plan your next journey.</p>`)
	b.WriteString(`<p>One of our travel specialists will review your request and get back to you within 24-48 hours with personalized recommendations tailored to your preferences.</p>`)
	b.WriteString(`<p>Warm regards,<br><strong>The Opatija Travel Team</strong></p>`)
	fmt.Fprintf(&b, `<p style="color:#888;font-size:12px">&copy; %d Opatija Travel. All rights reserved.</p>`, time.Now().Year())
	b.WriteString(`</div>`)

	return Message{
		To:      []string{sub.Email},
		Subject: "Thank you for your inquiry - Opatija Travel",
		HTML:    b.String(),
	}
}

// OperatorMessage builds the notification email sent to the operator
// address. Optional fields are omitted rather than rendered empty.
func OperatorMessage(operatorAddress string, sub models.ContactSubmission) Message {
	var b strings.Builder
	b.WriteString(`<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">`)
	b.WriteString(`<h1 style="color:#1a2744;border-bottom:2px solid #d4a853">New Travel Inquiry</h1>`)

	field := func(label, value string) {
		fmt.Fprintf(&b, `<p><strong>%s:</strong> %s</p>`, label, html.EscapeString(value))
	}

	field("Name", sub.FullName)
	field("Email", sub.Email)
	if sub.Phone != nil {
		field("Phone", *sub.Phone)
	}
	if sub.Country != nil {
		field("Country", *sub.Country)
	}
	if sub.Destination != nil {
		field("Destination", *sub.Destination)
	}
	if sub.NumTravelers != nil {
		field("Number of Travelers", fmt.Sprintf("%d", *sub.NumTravelers))
	}
	if sub.TravelDates != nil {
		field("Travel Dates", *sub.TravelDates)
	}
	if sub.Budget != nil {
		field("Budget", *sub.Budget)
	}
	if len(sub.TravelerTypes) > 0 {
		field("Traveler Types", strings.Join(sub.TravelerTypes, ", "))
	}
	if len(sub.ExperienceTypes) > 0 {
		field("Experience Types", strings.Join(sub.ExperienceTypes, ", "))
	}
	if sub.AdditionalRequests != nil {
		field("Additional Requests", *sub.AdditionalRequests)
	}

	fmt.Fprintf(&b, `<hr><p style="color:#888;font-size:12px">Submitted on %s</p>`, sub.CreatedAt.Format(time.RFC1123))
	b.WriteString(`</div>`)

	return Message{
		To:      []string{operatorAddress},
		Subject: fmt.Sprintf("New Travel Inquiry from %s", sub.FullName),
		HTML:    b.String(),
	}
}
