package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"SURUWE_BACK-END/internal/models"
)

const baseURL = "https://suruwe.app/p"

func testProfile() *models.Profile {
	return &models.Profile{Slug: "amina-k3f9", Name: "Amina"}
}

func TestProfileShareMessage(t *testing.T) {
	msg := ProfileShareMessage(baseURL, testProfile())

	assert.Equal(t, "Hi, here is my measurement profile on Suruwe. You can see my photos, measurements, and style notes all in one place: https://suruwe.app/p/amina-k3f9", msg)
}

func TestOrderMessage_WithFitNotes(t *testing.T) {
	order := &models.Order{
		TailorName:  "Mr. Adebayo",
		Description: "two-piece senator set",
		FitNotes:    "slightly loose around the arms",
	}

	msg := OrderMessage(baseURL, testProfile(), order)

	assert.Equal(t, "Mr. Adebayo, looking to get something made. two-piece senator set. A few notes on fit: slightly loose around the arms.\n\nHere is my full profile with measurements and photos: https://suruwe.app/p/amina-k3f9", msg)
}

func TestOrderMessage_OmitsEmptyFitNotes(t *testing.T) {
	order := &models.Order{
		TailorName:  "Mr. Adebayo",
		Description: "two-piece senator set",
	}

	msg := OrderMessage(baseURL, testProfile(), order)

	assert.NotContains(t, msg, "A few notes on fit")
	assert.Contains(t, msg, "two-piece senator set.\n\nHere is my full profile")
}

func TestCompletedOrderMessage(t *testing.T) {
	phone := "+234 801 234 5678"
	order := &models.Order{
		TailorName:  "Mr. Adebayo",
		TailorCity:  "Lagos",
		TailorPhone: &phone,
		Description: "agbada",
	}

	msg := CompletedOrderMessage(order)

	assert.Equal(t, "Just picked up the agbada made by Mr. Adebayo in Lagos. Thank you! You can reach them on +234 801 234 5678.", msg)
}

func TestCompletedOrderMessage_OmitsMissingCityAndPhone(t *testing.T) {
	order := &models.Order{TailorName: "Mr. Adebayo", Description: "agbada"}

	msg := CompletedOrderMessage(order)

	assert.Equal(t, "Just picked up the agbada made by Mr. Adebayo. Thank you!", msg)
}

func TestShareLink_WithPhone(t *testing.T) {
	link := ShareLink("hello there", "+234 (801) 234-5678")

	assert.Equal(t, "https://wa.me/?phone=2348012345678&text=hello+there", link)
}

func TestShareLink_NoPhone(t *testing.T) {
	link := ShareLink("hello & welcome", "")

	assert.Equal(t, "https://wa.me/?text=hello+%26+welcome", link)
}

func TestShareLink_NonDigitPhoneDropped(t *testing.T) {
	link := ShareLink("hi", "n/a")

	assert.Equal(t, "https://wa.me/?text=hi", link)
}
