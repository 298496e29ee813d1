package dto

import (
	"SURUWE_BACK-END/internal/measurements"
	"SURUWE_BACK-END/internal/models"
)

// ProfileCreateRequest is the onboarding payload: a name is all it takes.
type ProfileCreateRequest struct {
	Name string `json:"name"`
}

// ProfileCreateResponse returns the new profile plus the owner session token
// the device keeps as its identity pointer.
type ProfileCreateResponse struct {
	Profile *models.Profile `json:"profile"`
	Token   string          `json:"token"`
}

// MeResponse is the owner dashboard payload: the profile with its photos and
// orders (orders newest first).
type MeResponse struct {
	Profile *models.Profile        `json:"profile"`
	Photos  []models.ProfilePhoto  `json:"photos"`
	Orders  []models.Order         `json:"orders"`
}

// ProfileUpdateRequest updates the profile's mutable non-measurement fields.
// Absent fields are left untouched; phone may be cleared with "".
type ProfileUpdateRequest struct {
	Phone      *string `json:"phone"`
	Theme      *string `json:"theme"`
	StyleNotes *string `json:"style_notes"`
}

// MeasurementsUpdateRequest replaces the measurement map wholesale, together
// with the gender and unit it was taken under.
type MeasurementsUpdateRequest struct {
	Measurements map[string]float64 `json:"measurements"`
	Gender       string             `json:"gender"`
	Unit         string             `json:"measurement_unit"`
}

// PublicProfileResponse is the tailor-facing view of a profile.
type PublicProfileResponse struct {
	Profile  *models.Profile            `json:"profile"`
	Photos   []models.ProfilePhoto      `json:"photos"`
	Preview  []measurements.PreviewChip `json:"key_measurements"`
	Sections []measurements.Section     `json:"sections"`
	Unit     string                     `json:"unit_label"`
}

// PhotoUploadResponse returns the stored photo row.
type PhotoUploadResponse struct {
	Photo *models.ProfilePhoto `json:"photo"`
}
