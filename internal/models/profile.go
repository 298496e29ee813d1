package models

import (
	"time"

	"github.com/google/uuid"
)

// Gender selects which measurement schema applies to a profile.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is one of the two known genders.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// MeasurementUnit is the unit all of a profile's measurements are taken in.
type MeasurementUnit string

const (
	UnitInches MeasurementUnit = "inches"
	UnitCM     MeasurementUnit = "cm"
)

func (u MeasurementUnit) Valid() bool {
	return u == UnitInches || u == UnitCM
}

// Label returns the short display form ("in" / "cm").
func (u MeasurementUnit) Label() string {
	if u == UnitInches {
		return "in"
	}
	return "cm"
}

// Theme is the profile owner's UI theme preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Profile is the owner's shareable measurement record. A missing key in
// Measurements means "not measured"; a measured value is never stored as a
// zero sentinel. Keys that became invalid after a gender switch are kept as
// is; display paths filter by schema membership.
type Profile struct {
	ID                    uuid.UUID          `json:"id" db:"id"`
	Slug                  string             `json:"slug" db:"slug"`
	Name                  string             `json:"name" db:"name"`
	Phone                 *string            `json:"phone" db:"phone"`
	Gender                Gender             `json:"gender" db:"gender"`
	Measurements          map[string]float64 `json:"measurements" db:"measurements"`
	MeasurementUnit       MeasurementUnit    `json:"measurement_unit" db:"measurement_unit"`
	MeasurementsUpdatedAt *time.Time         `json:"measurements_updated_at" db:"measurements_updated_at"`
	StyleNotes            string             `json:"style_notes" db:"style_notes"`
	Theme                 Theme              `json:"theme" db:"theme"`
	CreatedAt             time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at" db:"updated_at"`
}

// HasMeasurements reports whether anything has been recorded at all.
func (p *Profile) HasMeasurements() bool {
	return len(p.Measurements) > 0
}
