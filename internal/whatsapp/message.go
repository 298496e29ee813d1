// Package whatsapp builds the share messages and wa.me deep links. Message
// building is pure; opening the link is the client's job, so handlers only
// ever return the composed text and URL.
package whatsapp

import (
	"fmt"

	"SURUWE_BACK-END/internal/models"
)

// ProfileURL is the public shareable address of a profile.
func ProfileURL(baseURL string, profile *models.Profile) string {
	return fmt.Sprintf("%s/%s", baseURL, profile.Slug)
}

// ProfileShareMessage is the text sent when the owner shares their profile.
func ProfileShareMessage(baseURL string, profile *models.Profile) string {
	url := ProfileURL(baseURL, profile)
	return fmt.Sprintf("Hi, here is my measurement profile on Suruwe. You can see my photos, measurements, and style notes all in one place: %s", url)
}

// OrderMessage is the text sent to a tailor for a new order. The same
// template covers a resend; there is no separate resend wording. The fit
// notes clause is only appended when notes exist.
func OrderMessage(baseURL string, profile *models.Profile, order *models.Order) string {
	url := ProfileURL(baseURL, profile)

	message := fmt.Sprintf("%s, looking to get something made. %s.", order.TailorName, order.Description)
	if order.FitNotes != "" {
		message += fmt.Sprintf(" A few notes on fit: %s.", order.FitNotes)
	}
	message += fmt.Sprintf("\n\nHere is my full profile with measurements and photos: %s", url)

	return message
}

// CompletedOrderMessage is the text for sharing a finished piece back to the
// tailor. City and phone clauses are conditional on the data being present.
func CompletedOrderMessage(order *models.Order) string {
	who := order.TailorName
	if order.TailorCity != "" {
		who += " in " + order.TailorCity
	}

	message := fmt.Sprintf("Just picked up the %s made by %s. Thank you!", order.Description, who)
	if order.TailorPhone != nil && *order.TailorPhone != "" {
		message += fmt.Sprintf(" You can reach them on %s.", *order.TailorPhone)
	}

	return message
}
